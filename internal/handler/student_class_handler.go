package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/repository"
	"github.com/raisultan/elj-backend/internal/response"
	"github.com/raisultan/elj-backend/internal/service"
)

type StudentClassHandler struct {
	studentClassService *service.StudentClassService
}

func NewStudentClassHandler(studentClassService *service.StudentClassService) *StudentClassHandler {
	return &StudentClassHandler{studentClassService: studentClassService}
}

// List godoc
// GET /api/v1/student_classes
func (h *StudentClassHandler) List(c *gin.Context) {
	classes, err := h.studentClassService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if classes == nil {
		classes = []model.StudentClass{}
	}

	response.Success(c, http.StatusOK, gin.H{"student_classes": classes})
}

// Get godoc
// GET /api/v1/student_classes/:id
func (h *StudentClassHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	class, err := h.studentClassService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student_class": class})
}
