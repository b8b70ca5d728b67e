package service

import (
	"context"
	"errors"

	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/repository"
)

// ErrLessonNotOwned is returned when a day references a lesson that
// does not exist or belongs to another teacher.
var ErrLessonNotOwned = errors.New("lesson does not exist or is not owned by the caller")

// DayService manages a teacher's timetable days. Day writes only link
// lessons the caller owns.
type DayService struct {
	dayRepo    *repository.DayRepository
	lessonRepo *repository.LessonRepository
}

// NewDayService creates a new DayService.
func NewDayService(dayRepo *repository.DayRepository, lessonRepo *repository.LessonRepository) *DayService {
	return &DayService{dayRepo: dayRepo, lessonRepo: lessonRepo}
}

// List returns the teacher's days with lesson ids.
func (s *DayService) List(ctx context.Context, teacherID int) ([]model.Day, error) {
	return s.dayRepo.ListByTeacher(ctx, teacherID)
}

// Get returns one of the teacher's days with expanded lessons.
func (s *DayService) Get(ctx context.Context, teacherID, id int) (*model.DayDetail, error) {
	return s.dayRepo.GetDetailByID(ctx, teacherID, id)
}

// Create stores a new day after verifying every linked lesson belongs
// to the teacher.
func (s *DayService) Create(ctx context.Context, teacherID int, req *model.CreateDayRequest) (*model.Day, error) {
	if err := s.checkLessonOwnership(ctx, teacherID, req.LessonIDs); err != nil {
		return nil, err
	}

	d := &model.Day{
		DayOfWeek: req.DayOfWeek,
		LessonIDs: req.LessonIDs,
		TeacherID: teacherID,
	}
	if d.LessonIDs == nil {
		d.LessonIDs = []int{}
	}
	if err := s.dayRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update replaces one of the teacher's days.
func (s *DayService) Update(ctx context.Context, teacherID, id int, req *model.UpdateDayRequest) (*model.Day, error) {
	if err := s.checkLessonOwnership(ctx, teacherID, req.LessonIDs); err != nil {
		return nil, err
	}

	d := &model.Day{
		ID:        id,
		DayOfWeek: req.DayOfWeek,
		LessonIDs: req.LessonIDs,
		TeacherID: teacherID,
	}
	if d.LessonIDs == nil {
		d.LessonIDs = []int{}
	}
	if err := s.dayRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete removes one of the teacher's days.
func (s *DayService) Delete(ctx context.Context, teacherID, id int) error {
	return s.dayRepo.Delete(ctx, teacherID, id)
}

func (s *DayService) checkLessonOwnership(ctx context.Context, teacherID int, lessonIDs []int) error {
	if len(lessonIDs) == 0 {
		return nil
	}
	owned, err := s.lessonRepo.CountOwned(ctx, teacherID, lessonIDs)
	if err != nil {
		return err
	}
	if owned != len(lessonIDs) {
		return ErrLessonNotOwned
	}
	return nil
}
