package service

import (
	"context"

	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/repository"
)

// LessonService manages a teacher's own timetable slots.
type LessonService struct {
	lessonRepo *repository.LessonRepository
}

// NewLessonService creates a new LessonService.
func NewLessonService(lessonRepo *repository.LessonRepository) *LessonService {
	return &LessonService{lessonRepo: lessonRepo}
}

// List returns the teacher's lessons ordered by slot number.
func (s *LessonService) List(ctx context.Context, teacherID int) ([]model.Lesson, error) {
	return s.lessonRepo.ListByTeacher(ctx, teacherID)
}

// Create stores a new lesson owned by the teacher. The owner comes
// from the authenticated identity, never from the request body.
func (s *LessonService) Create(ctx context.Context, teacherID int, req *model.CreateLessonRequest) (*model.Lesson, error) {
	l := &model.Lesson{
		SubjectName: req.SubjectName,
		Number:      req.Number,
		Cabinet:     req.Cabinet,
		Time:        req.Time,
		ClassName:   req.ClassName,
		TeacherID:   teacherID,
	}
	if err := s.lessonRepo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}
