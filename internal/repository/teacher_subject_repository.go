package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raisultan/elj-backend/internal/model"
)

// TeacherSubjectRepository handles teacher subject groups and their
// linked classes.
type TeacherSubjectRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherSubjectRepository creates a new TeacherSubjectRepository.
func NewTeacherSubjectRepository(pool *pgxpool.Pool) *TeacherSubjectRepository {
	return &TeacherSubjectRepository{pool: pool}
}

// ListByTeacher retrieves the subject groups linked to a teacher with
// their classes embedded.
func (r *TeacherSubjectRepository) ListByTeacher(ctx context.Context, teacherID int) ([]model.TeacherSubject, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT ts.id, ts.name
		 FROM teacher_subjects ts
		 JOIN user_teacher_subjects uts ON uts.teacher_subject_id = ts.id
		 WHERE uts.user_id = $1
		 ORDER BY ts.id ASC`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []model.TeacherSubject
	for rows.Next() {
		var ts model.TeacherSubject
		if err := rows.Scan(&ts.ID, &ts.Name); err != nil {
			return nil, err
		}
		subjects = append(subjects, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range subjects {
		classes, err := r.listClasses(ctx, subjects[i].ID)
		if err != nil {
			return nil, err
		}
		subjects[i].StudentClasses = classes
	}
	return subjects, nil
}

func (r *TeacherSubjectRepository) listClasses(ctx context.Context, teacherSubjectID int) ([]model.StudentClass, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT sc.id, sc.name, sc.study_year_id
		 FROM student_classes sc
		 JOIN teacher_subject_classes tsc ON tsc.student_class_id = sc.id
		 WHERE tsc.teacher_subject_id = $1
		 ORDER BY sc.id ASC`, teacherSubjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []model.StudentClass
	for rows.Next() {
		var sc model.StudentClass
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.StudyYearID); err != nil {
			return nil, err
		}
		classes = append(classes, sc)
	}
	return classes, rows.Err()
}
