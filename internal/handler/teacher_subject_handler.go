package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raisultan/elj-backend/internal/middleware"
	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/response"
	"github.com/raisultan/elj-backend/internal/service"
)

type TeacherSubjectHandler struct {
	teacherSubjectService *service.TeacherSubjectService
}

func NewTeacherSubjectHandler(teacherSubjectService *service.TeacherSubjectService) *TeacherSubjectHandler {
	return &TeacherSubjectHandler{teacherSubjectService: teacherSubjectService}
}

// List godoc
// GET /api/v1/teacher_subjects
func (h *TeacherSubjectHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)

	subjects, err := h.teacherSubjectService.List(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if subjects == nil {
		subjects = []model.TeacherSubject{}
	}

	response.Success(c, http.StatusOK, gin.H{"teacher_subjects": subjects})
}
