package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raisultan/elj-backend/internal/model"
)

// EventRepository handles event data access. Every statement carries
// the owning teacher's id; a row owned by another teacher behaves
// exactly like a missing row.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// ListByTeacher retrieves the teacher's events in insertion order.
func (r *EventRepository) ListByTeacher(ctx context.Context, teacherID int) ([]model.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, date, teacher_id
		 FROM events WHERE teacher_id = $1 ORDER BY id ASC`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.TeacherID); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetByID retrieves one of the teacher's events.
func (r *EventRepository) GetByID(ctx context.Context, teacherID, id int) (*model.Event, error) {
	e := &model.Event{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, date, teacher_id
		 FROM events WHERE id = $1 AND teacher_id = $2`, id, teacherID,
	).Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.TeacherID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Create inserts a new event owned by the given teacher.
func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO events (title, description, date, teacher_id)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		e.Title, e.Description, e.Date, e.TeacherID,
	).Scan(&e.ID)
}

// Update modifies one of the teacher's events.
func (r *EventRepository) Update(ctx context.Context, e *model.Event) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE events SET title = $1, description = $2, date = $3
		 WHERE id = $4 AND teacher_id = $5`,
		e.Title, e.Description, e.Date, e.ID, e.TeacherID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one of the teacher's events.
func (r *EventRepository) Delete(ctx context.Context, teacherID, id int) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM events WHERE id = $1 AND teacher_id = $2`, id, teacherID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
