package service

import (
	"context"

	"github.com/raisultan/elj-backend/internal/model"
	"github.com/rs/zerolog"
)

// StudentResolver resolves the students of a named class in id order.
type StudentResolver interface {
	ListByClassName(ctx context.Context, name string) ([]model.Student, error)
}

// MarkResolver resolves one student's marks restricted to a named
// subject, in id order.
type MarkResolver interface {
	ListByStudentAndSubjectName(ctx context.Context, studentID int, subjectName string) ([]model.Mark, error)
}

// JournalService composes the class+subject journal view on read.
type JournalService struct {
	students StudentResolver
	marks    MarkResolver
	log      zerolog.Logger
}

// NewJournalService creates a new JournalService.
func NewJournalService(students StudentResolver, marks MarkResolver, log zerolog.Logger) *JournalService {
	return &JournalService{
		students: students,
		marks:    marks,
		log:      log.With().Str("component", "journal_service").Logger(),
	}
}

// List resolves the students of the named class, then collects each
// student's marks in the named subject and concatenates them: students
// in resolution order, each student's marks in their natural order.
//
// An absent parameter arrives as the empty string, which matches no
// class (or subject) and therefore yields an empty journal. Callers
// rely on that: a missing class must not return the whole school.
//
// The per-student queries run sequentially with no wrapping
// transaction, so a mark inserted mid-aggregation may or may not
// appear. Acceptable at single-class scale.
func (s *JournalService) List(ctx context.Context, className, subjectName string) ([]model.Mark, error) {
	students, err := s.students.ListByClassName(ctx, className)
	if err != nil {
		return nil, err
	}

	journal := []model.Mark{}
	for _, student := range students {
		marks, err := s.marks.ListByStudentAndSubjectName(ctx, student.ID, subjectName)
		if err != nil {
			return nil, err
		}
		journal = append(journal, marks...)
	}

	s.log.Debug().
		Str("student_class", className).
		Str("subject", subjectName).
		Int("students", len(students)).
		Int("marks", len(journal)).
		Msg("journal aggregated")

	return journal, nil
}
