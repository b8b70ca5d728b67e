package service

import (
	"context"

	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/repository"
)

// EventService manages a teacher's own announcements.
type EventService struct {
	eventRepo *repository.EventRepository
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo *repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// List returns the teacher's events in insertion order.
func (s *EventService) List(ctx context.Context, teacherID int) ([]model.Event, error) {
	return s.eventRepo.ListByTeacher(ctx, teacherID)
}

// Get returns one of the teacher's events.
func (s *EventService) Get(ctx context.Context, teacherID, id int) (*model.Event, error) {
	return s.eventRepo.GetByID(ctx, teacherID, id)
}

// Create stores a new event owned by the teacher. The owner comes from
// the authenticated identity, never from the request body.
func (s *EventService) Create(ctx context.Context, teacherID int, req *model.CreateEventRequest) (*model.Event, error) {
	e := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		TeacherID:   teacherID,
	}
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update modifies one of the teacher's events.
func (s *EventService) Update(ctx context.Context, teacherID, id int, req *model.UpdateEventRequest) (*model.Event, error) {
	e := &model.Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		TeacherID:   teacherID,
	}
	if err := s.eventRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes one of the teacher's events.
func (s *EventService) Delete(ctx context.Context, teacherID, id int) error {
	return s.eventRepo.Delete(ctx, teacherID, id)
}
