package service

import (
	"context"

	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/repository"
)

// StudentService exposes read-only student reference data with the
// optional exact class-name filter.
type StudentService struct {
	studentRepo *repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// List returns students, restricted to a class when className is
// non-nil. The filter is an exact, case-sensitive match.
func (s *StudentService) List(ctx context.Context, className *string) ([]model.Student, error) {
	if className != nil {
		return s.studentRepo.ListByClassName(ctx, *className)
	}
	return s.studentRepo.GetAll(ctx)
}

// Get retrieves a student by ID.
func (s *StudentService) Get(ctx context.Context, id int) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}
