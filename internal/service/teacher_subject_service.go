package service

import (
	"context"

	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/repository"
)

// TeacherSubjectService lists the subject groups a teacher teaches.
type TeacherSubjectService struct {
	repo *repository.TeacherSubjectRepository
}

// NewTeacherSubjectService creates a new TeacherSubjectService.
func NewTeacherSubjectService(repo *repository.TeacherSubjectRepository) *TeacherSubjectService {
	return &TeacherSubjectService{repo: repo}
}

// List returns the caller's subject groups with nested classes.
func (s *TeacherSubjectService) List(ctx context.Context, teacherID int) ([]model.TeacherSubject, error) {
	return s.repo.ListByTeacher(ctx, teacherID)
}
