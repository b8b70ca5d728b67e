package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raisultan/elj-backend/internal/model"
)

type StudyYearRepository struct {
	pool *pgxpool.Pool
}

func NewStudyYearRepository(pool *pgxpool.Pool) *StudyYearRepository {
	return &StudyYearRepository{pool: pool}
}

func (r *StudyYearRepository) GetAll(ctx context.Context) ([]model.StudyYear, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, year FROM study_years ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []model.StudyYear
	for rows.Next() {
		var y model.StudyYear
		if err := rows.Scan(&y.ID, &y.Year); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func (r *StudyYearRepository) GetByID(ctx context.Context, id int) (*model.StudyYear, error) {
	y := &model.StudyYear{}
	err := r.pool.QueryRow(ctx, `SELECT id, year FROM study_years WHERE id = $1`, id).
		Scan(&y.ID, &y.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return y, nil
}
