package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/raisultan/elj-backend/internal/middleware"
	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/repository"
	"github.com/raisultan/elj-backend/internal/response"
	"github.com/raisultan/elj-backend/internal/service"
	"github.com/raisultan/elj-backend/internal/validator"
)

type DayHandler struct {
	dayService *service.DayService
}

func NewDayHandler(dayService *service.DayService) *DayHandler {
	return &DayHandler{dayService: dayService}
}

// List godoc
// GET /api/v1/days
func (h *DayHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)

	days, err := h.dayService.List(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if days == nil {
		days = []model.Day{}
	}

	response.Success(c, http.StatusOK, gin.H{"days": days})
}

// Get godoc
// GET /api/v1/days/:id — expanded representation with nested lessons.
func (h *DayHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	day, err := h.dayService.Get(c.Request.Context(), claims.UserID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if day.Lessons == nil {
		day.Lessons = []model.Lesson{}
	}

	response.Success(c, http.StatusOK, gin.H{"day": day})
}

// Create godoc
// POST /api/v1/days
func (h *DayHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateDayRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	day, err := h.dayService.Create(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		if errors.Is(err, service.ErrLessonNotOwned) {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"lessons": err.Error()})
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"day": day})
}

// Update godoc
// PUT /api/v1/days/:id
func (h *DayHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateDayRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	day, err := h.dayService.Update(c.Request.Context(), claims.UserID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLessonNotOwned):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"lessons": err.Error()})
		case errors.Is(err, repository.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"day": day})
}

// Delete godoc
// DELETE /api/v1/days/:id
func (h *DayHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.dayService.Delete(c.Request.Context(), claims.UserID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "day deleted successfully"})
}
