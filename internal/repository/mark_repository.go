package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raisultan/elj-backend/internal/model"
)

// ErrInvalidReference is returned when a mark points at a subject or
// student that does not exist.
var ErrInvalidReference = errors.New("referenced subject or student does not exist")

// MarkRepository handles mark data access. Reads embed the full subject
// and student (with its class); writes accept ids only.
type MarkRepository struct {
	pool *pgxpool.Pool
}

// NewMarkRepository creates a new MarkRepository.
func NewMarkRepository(pool *pgxpool.Pool) *MarkRepository {
	return &MarkRepository{pool: pool}
}

const markSelect = `
	SELECT m.id, m.value, m.date,
	       sub.id, sub.name, sub.study_year_id,
	       st.id, st.surname, st.name, st.lastname, st.birth_date, st.address, st.phone,
	       sc.id, sc.name, sc.study_year_id
	FROM marks m
	JOIN subjects sub ON sub.id = m.subject_id
	JOIN students st ON st.id = m.student_id
	JOIN student_classes sc ON sc.id = st.student_class_id`

func scanMark(row pgx.Row, m *model.Mark) error {
	return row.Scan(&m.ID, &m.Value, &m.Date,
		&m.Subject.ID, &m.Subject.Name, &m.Subject.StudyYearID,
		&m.Student.ID, &m.Student.Surname, &m.Student.Name, &m.Student.Lastname,
		&m.Student.BirthDate, &m.Student.Address, &m.Student.Phone,
		&m.Student.StudentClass.ID, &m.Student.StudentClass.Name,
		&m.Student.StudentClass.StudyYearID)
}

// List retrieves marks matching the filter in natural id order.
// Both predicates apply when both filter fields are set.
func (r *MarkRepository) List(ctx context.Context, filter model.MarkFilter) ([]model.Mark, error) {
	query := markSelect
	var args []interface{}
	argIdx := 1

	if filter.StudentID != nil {
		query += ` WHERE m.student_id = $1`
		args = append(args, *filter.StudentID)
		argIdx++
	}
	if filter.SubjectID != nil {
		if argIdx == 1 {
			query += ` WHERE m.subject_id = $1`
		} else {
			query += ` AND m.subject_id = $` + strconv.Itoa(argIdx)
		}
		args = append(args, *filter.SubjectID)
	}

	query += ` ORDER BY m.id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMarks(rows)
}

// ListByStudentAndSubjectName retrieves one student's marks restricted
// to the subject with exactly the given name, in natural id order. An
// empty subject name matches no subject and yields no marks.
func (r *MarkRepository) ListByStudentAndSubjectName(ctx context.Context, studentID int, subjectName string) ([]model.Mark, error) {
	rows, err := r.pool.Query(ctx,
		markSelect+` WHERE m.student_id = $1 AND sub.name = $2 ORDER BY m.id ASC`,
		studentID, subjectName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMarks(rows)
}

// GetByID retrieves a mark by ID.
func (r *MarkRepository) GetByID(ctx context.Context, id int) (*model.Mark, error) {
	m := &model.Mark{}
	err := scanMark(r.pool.QueryRow(ctx, markSelect+` WHERE m.id = $1`, id), m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// Create inserts a new mark referencing an existing subject and student.
func (r *MarkRepository) Create(ctx context.Context, value model.MarkValue, date model.Date, subjectID, studentID int) (*model.Mark, error) {
	var id int
	err := r.pool.QueryRow(ctx,
		`INSERT INTO marks (value, date, subject_id, student_id)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		value, date, subjectID, studentID,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrInvalidReference
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update modifies an existing mark.
func (r *MarkRepository) Update(ctx context.Context, id int, value model.MarkValue, date model.Date, subjectID, studentID int) (*model.Mark, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE marks SET value = $1, date = $2, subject_id = $3, student_id = $4
		 WHERE id = $5`,
		value, date, subjectID, studentID, id,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrInvalidReference
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a mark by ID.
func (r *MarkRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM marks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectMarks(rows pgx.Rows) ([]model.Mark, error) {
	var marks []model.Mark
	for rows.Next() {
		var m model.Mark
		if err := scanMark(rows, &m); err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}
