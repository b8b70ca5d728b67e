package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raisultan/elj-backend/internal/model"
)

// LessonRepository handles lesson data access. Every statement carries
// the owning teacher's id so one teacher's lessons are invisible to
// another.
type LessonRepository struct {
	pool *pgxpool.Pool
}

// NewLessonRepository creates a new LessonRepository.
func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{pool: pool}
}

// ListByTeacher retrieves the teacher's lessons ordered by slot number.
func (r *LessonRepository) ListByTeacher(ctx context.Context, teacherID int) ([]model.Lesson, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, subject_name, number, cabinet, time, class_name, teacher_id
		 FROM lessons WHERE teacher_id = $1 ORDER BY number ASC`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []model.Lesson
	for rows.Next() {
		var l model.Lesson
		if err := rows.Scan(&l.ID, &l.SubjectName, &l.Number, &l.Cabinet, &l.Time, &l.ClassName, &l.TeacherID); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

// Create inserts a new lesson owned by the given teacher.
func (r *LessonRepository) Create(ctx context.Context, l *model.Lesson) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO lessons (subject_name, number, cabinet, time, class_name, teacher_id)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		l.SubjectName, l.Number, l.Cabinet, l.Time, l.ClassName, l.TeacherID,
	).Scan(&l.ID)
}

// CountOwned returns how many of the given lesson ids belong to the
// teacher. Used to validate day membership before linking.
func (r *LessonRepository) CountOwned(ctx context.Context, teacherID int, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM lessons WHERE teacher_id = $1 AND id = ANY($2)`,
		teacherID, ids,
	).Scan(&count)
	return count, err
}
