package service

import (
	"context"

	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/repository"
	"github.com/rs/zerolog"
)

// MarkService manages journal marks. Marks are shared journal data and
// not scoped to any teacher.
type MarkService struct {
	markRepo *repository.MarkRepository
	log      zerolog.Logger
}

// NewMarkService creates a new MarkService.
func NewMarkService(markRepo *repository.MarkRepository, log zerolog.Logger) *MarkService {
	return &MarkService{
		markRepo: markRepo,
		log:      log.With().Str("component", "mark_service").Logger(),
	}
}

// List retrieves marks matching the optional student/subject filters.
func (s *MarkService) List(ctx context.Context, filter model.MarkFilter) ([]model.Mark, error) {
	return s.markRepo.List(ctx, filter)
}

// Get retrieves a mark by ID.
func (s *MarkService) Get(ctx context.Context, id int) (*model.Mark, error) {
	return s.markRepo.GetByID(ctx, id)
}

// Create stores a new mark. An omitted value defaults to present.
func (s *MarkService) Create(ctx context.Context, req *model.CreateMarkRequest) (*model.Mark, error) {
	value := req.Value
	if value == "" {
		value = model.MarkPresent
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return s.markRepo.Create(ctx, value, date, req.SubjectID, req.StudentID)
}

// Update modifies an existing mark.
func (s *MarkService) Update(ctx context.Context, id int, req *model.UpdateMarkRequest) (*model.Mark, error) {
	value := req.Value
	if value == "" {
		value = model.MarkPresent
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return s.markRepo.Update(ctx, id, value, date, req.SubjectID, req.StudentID)
}

// Delete removes a mark.
func (s *MarkService) Delete(ctx context.Context, id int) error {
	return s.markRepo.Delete(ctx, id)
}
