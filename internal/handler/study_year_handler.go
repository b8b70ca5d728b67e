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

type StudyYearHandler struct {
	studyYearService *service.StudyYearService
}

func NewStudyYearHandler(studyYearService *service.StudyYearService) *StudyYearHandler {
	return &StudyYearHandler{studyYearService: studyYearService}
}

// List godoc
// GET /api/v1/study_years
func (h *StudyYearHandler) List(c *gin.Context) {
	years, err := h.studyYearService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if years == nil {
		years = []model.StudyYear{}
	}

	response.Success(c, http.StatusOK, gin.H{"study_years": years})
}

// Get godoc
// GET /api/v1/study_years/:id
func (h *StudyYearHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	year, err := h.studyYearService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"study_year": year})
}
