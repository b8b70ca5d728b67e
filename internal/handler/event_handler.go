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

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// List godoc
// GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)

	events, err := h.eventService.List(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if events == nil {
		events = []model.Event{}
	}

	response.Success(c, http.StatusOK, gin.H{"events": events})
}

// Get godoc
// GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), claims.UserID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"event": event})
}

// Create godoc
// POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateEventRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"event": event})
}

// Update godoc
// PUT /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateEventRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), claims.UserID, id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"event": event})
}

// Delete godoc
// DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), claims.UserID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "event deleted successfully"})
}
