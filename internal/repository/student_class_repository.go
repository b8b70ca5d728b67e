package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raisultan/elj-backend/internal/model"
)

type StudentClassRepository struct {
	pool *pgxpool.Pool
}

func NewStudentClassRepository(pool *pgxpool.Pool) *StudentClassRepository {
	return &StudentClassRepository{pool: pool}
}

func (r *StudentClassRepository) GetAll(ctx context.Context) ([]model.StudentClass, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, study_year_id FROM student_classes ORDER BY id ASC`)
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

func (r *StudentClassRepository) GetByID(ctx context.Context, id int) (*model.StudentClass, error) {
	sc := &model.StudentClass{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, study_year_id FROM student_classes WHERE id = $1`, id).
		Scan(&sc.ID, &sc.Name, &sc.StudyYearID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sc, nil
}
