package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raisultan/elj-backend/internal/model"
)

// StudentRepository handles student data access. Students always carry
// their class embedded, matching the external representation.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentSelect = `
	SELECT s.id, s.surname, s.name, s.lastname, s.birth_date, s.address, s.phone,
	       sc.id, sc.name, sc.study_year_id
	FROM students s
	JOIN student_classes sc ON sc.id = s.student_class_id`

func scanStudent(row pgx.Row, s *model.Student) error {
	return row.Scan(&s.ID, &s.Surname, &s.Name, &s.Lastname, &s.BirthDate,
		&s.Address, &s.Phone,
		&s.StudentClass.ID, &s.StudentClass.Name, &s.StudentClass.StudyYearID)
}

// GetAll retrieves all students in natural id order.
func (r *StudentRepository) GetAll(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx, studentSelect+` ORDER BY s.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStudents(rows)
}

// ListByClassName retrieves students whose class name exactly equals
// name. An empty name matches no class and yields no students.
func (r *StudentRepository) ListByClassName(ctx context.Context, name string) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		studentSelect+` WHERE sc.name = $1 ORDER BY s.id ASC`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStudents(rows)
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s := &model.Student{}
	err := scanStudent(r.pool.QueryRow(ctx, studentSelect+` WHERE s.id = $1`, id), s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func collectStudents(rows pgx.Rows) ([]model.Student, error) {
	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
