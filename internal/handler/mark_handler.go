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
	"github.com/raisultan/elj-backend/internal/validator"
)

type MarkHandler struct {
	markService *service.MarkService
}

func NewMarkHandler(markService *service.MarkService) *MarkHandler {
	return &MarkHandler{markService: markService}
}

// List godoc
// GET /api/v1/marks?student=<id>&subject=<id>
func (h *MarkHandler) List(c *gin.Context) {
	var filter model.MarkFilter

	if raw := c.Query("student"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		filter.StudentID = &id
	}
	if raw := c.Query("subject"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		filter.SubjectID = &id
	}

	marks, err := h.markService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if marks == nil {
		marks = []model.Mark{}
	}

	response.Success(c, http.StatusOK, gin.H{"marks": marks})
}

// Get godoc
// GET /api/v1/marks/:id
func (h *MarkHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	mark, err := h.markService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"mark": mark})
}

// Create godoc
// POST /api/v1/marks
func (h *MarkHandler) Create(c *gin.Context) {
	var req model.CreateMarkRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	mark, err := h.markService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidReference)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"mark": mark})
}

// Update godoc
// PUT /api/v1/marks/:id
func (h *MarkHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateMarkRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	mark, err := h.markService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidReference):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidReference)
		case errors.Is(err, repository.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"mark": mark})
}
