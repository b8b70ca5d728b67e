package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raisultan/elj-backend/internal/middleware"
	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/response"
	"github.com/raisultan/elj-backend/internal/service"
	"github.com/raisultan/elj-backend/internal/validator"
)

type LessonHandler struct {
	lessonService *service.LessonService
}

func NewLessonHandler(lessonService *service.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

// List godoc
// GET /api/v1/lessons
func (h *LessonHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)

	lessons, err := h.lessonService.List(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if lessons == nil {
		lessons = []model.Lesson{}
	}

	response.Success(c, http.StatusOK, gin.H{"lessons": lessons})
}

// Create godoc
// POST /api/v1/lessons
func (h *LessonHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateLessonRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lesson, err := h.lessonService.Create(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"lesson": lesson})
}
