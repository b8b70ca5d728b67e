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

// JournalHandler serves the aggregated class+subject journal. Reads
// compose the view; writes go straight to the mark store, the journal
// being a projection of marks rather than a table of its own.
type JournalHandler struct {
	journalService *service.JournalService
	markService    *service.MarkService
}

func NewJournalHandler(journalService *service.JournalService, markService *service.MarkService) *JournalHandler {
	return &JournalHandler{journalService: journalService, markService: markService}
}

// List godoc
// GET /api/v1/journals?student_class=<name>&subject=<name>
//
// Missing parameters behave as the empty string, which matches nothing:
// a journal without a class is empty, never the whole school.
func (h *JournalHandler) List(c *gin.Context) {
	className := c.Query("student_class")
	subjectName := c.Query("subject")

	marks, err := h.journalService.List(c.Request.Context(), className, subjectName)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"marks": marks})
}

// Create godoc
// POST /api/v1/journals
func (h *JournalHandler) Create(c *gin.Context) {
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
// PUT /api/v1/journals/:id
func (h *JournalHandler) Update(c *gin.Context) {
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

// Delete godoc
// DELETE /api/v1/journals/:id
func (h *JournalHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.markService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "mark deleted successfully"})
}
