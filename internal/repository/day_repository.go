package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raisultan/elj-backend/internal/model"
)

// DayRepository handles timetable day data access. Days link lessons
// through the day_lessons join table; every statement carries the
// owning teacher's id.
type DayRepository struct {
	pool *pgxpool.Pool
}

// NewDayRepository creates a new DayRepository.
func NewDayRepository(pool *pgxpool.Pool) *DayRepository {
	return &DayRepository{pool: pool}
}

// ListByTeacher retrieves the teacher's days with lesson ids, in
// insertion order.
func (r *DayRepository) ListByTeacher(ctx context.Context, teacherID int) ([]model.Day, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT d.id, d.day_of_week, d.teacher_id,
		        COALESCE(array_agg(dl.lesson_id ORDER BY dl.lesson_id) FILTER (WHERE dl.lesson_id IS NOT NULL), '{}')
		 FROM days d
		 LEFT JOIN day_lessons dl ON dl.day_id = d.id
		 WHERE d.teacher_id = $1
		 GROUP BY d.id
		 ORDER BY d.id ASC`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []model.Day
	for rows.Next() {
		var d model.Day
		if err := rows.Scan(&d.ID, &d.DayOfWeek, &d.TeacherID, &d.LessonIDs); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// GetDetailByID retrieves one of the teacher's days with its lessons
// fully expanded, ordered by lesson number.
func (r *DayRepository) GetDetailByID(ctx context.Context, teacherID, id int) (*model.DayDetail, error) {
	d := &model.DayDetail{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, day_of_week FROM days WHERE id = $1 AND teacher_id = $2`,
		id, teacherID,
	).Scan(&d.ID, &d.DayOfWeek)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT l.id, l.subject_name, l.number, l.cabinet, l.time, l.class_name, l.teacher_id
		 FROM lessons l
		 JOIN day_lessons dl ON dl.lesson_id = l.id
		 WHERE dl.day_id = $1
		 ORDER BY l.number ASC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l model.Lesson
		if err := rows.Scan(&l.ID, &l.SubjectName, &l.Number, &l.Cabinet, &l.Time, &l.ClassName, &l.TeacherID); err != nil {
			return nil, err
		}
		d.Lessons = append(d.Lessons, l)
	}
	return d, rows.Err()
}

// Create inserts a new day and its lesson links in one transaction.
func (r *DayRepository) Create(ctx context.Context, d *model.Day) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO days (day_of_week, teacher_id) VALUES ($1, $2) RETURNING id`,
		d.DayOfWeek, d.TeacherID,
	).Scan(&d.ID)
	if err != nil {
		return err
	}

	if err := insertDayLessons(ctx, tx, d.ID, d.LessonIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update replaces a day's weekday and lesson links. Returns ErrNotFound
// when the day does not exist or belongs to another teacher.
func (r *DayRepository) Update(ctx context.Context, d *model.Day) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE days SET day_of_week = $1 WHERE id = $2 AND teacher_id = $3`,
		d.DayOfWeek, d.ID, d.TeacherID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM day_lessons WHERE day_id = $1`, d.ID); err != nil {
		return err
	}
	if err := insertDayLessons(ctx, tx, d.ID, d.LessonIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Delete removes one of the teacher's days; the day_lessons links go
// with it via ON DELETE CASCADE.
func (r *DayRepository) Delete(ctx context.Context, teacherID, id int) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM days WHERE id = $1 AND teacher_id = $2`, id, teacherID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func insertDayLessons(ctx context.Context, tx pgx.Tx, dayID int, lessonIDs []int) error {
	for _, lessonID := range lessonIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO day_lessons (day_id, lesson_id) VALUES ($1, $2)`,
			dayID, lessonID); err != nil {
			return err
		}
	}
	return nil
}
