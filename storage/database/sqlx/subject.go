package sqlxrepos

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/aasim911-prog/department/core/subject"
)

const subjectColumns = `id, name, code, semester, credits, department, created_at`

type subjectRow struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Code       string    `db:"code"`
	Semester   int       `db:"semester"`
	Credits    int       `db:"credits"`
	Department string    `db:"department"`
	CreatedAt  time.Time `db:"created_at"`
}

func (row subjectRow) subject() subject.Subject {
	return subject.Subject{
		ID:         row.ID,
		Name:       row.Name,
		Code:       row.Code,
		Semester:   row.Semester,
		Credits:    row.Credits,
		Department: row.Department,
		CreatedAt:  row.CreatedAt.UTC(),
	}
}

type subjectRepository struct {
	exec sqlx.ExtContext
}

var _ subject.Repository = (*subjectRepository)(nil) // interface compliance check

func NewSubjectRepository(exec sqlx.ExtContext) *subjectRepository {
	return &subjectRepository{exec: exec}
}

func (repo subjectRepository) CheckCodeUniqueness(ctx context.Context, code string, semester int, department string) error {
	taken, err := exists(ctx, repo.exec,
		`SELECT 1 FROM subject WHERE code = $1 AND semester = $2 AND department = $3`,
		code, semester, department)
	if err != nil {
		return errors.Wrap(err, "checking subject code uniqueness")
	}
	if taken {
		return subject.ErrCodeExists
	}
	return nil
}

func (repo subjectRepository) CreateSubject(ctx context.Context, sbj subject.Subject) (subject.Subject, error) {
	sbj.ID = uuid.New().String()
	sbj.CreatedAt = sbj.CreatedAt.UTC()
	var row subjectRow
	err := get(ctx, repo.exec, &row, `
		INSERT INTO subject (`+subjectColumns+`)
		VALUES (:id, :name, :code, :semester, :credits, :department, :created_at)
		RETURNING `+subjectColumns,
		subjectRow(sbj))
	if err != nil {
		return subject.Subject{}, errors.Wrap(err, "inserting subject")
	}
	return row.subject(), nil
}

func (repo subjectRepository) GetSubject(ctx context.Context, id string) (subject.Subject, error) {
	if !isUUID(id) {
		return subject.Subject{}, subject.ErrNotFound
	}
	var row subjectRow
	err := sqlx.GetContext(ctx, repo.exec, &row, `SELECT `+subjectColumns+` FROM subject WHERE id = $1`, id)
	if err != nil {
		return subject.Subject{}, trapNoRowsErr(err, subject.ErrNotFound, "getting subject")
	}
	return row.subject(), nil
}

func (repo subjectRepository) QuerySubjects(ctx context.Context, filter *subject.QueryFilter) ([]subject.Subject, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter != nil {
		if filter.Semester != 0 {
			args = append(args, filter.Semester)
			conds = append(conds, "semester = ?")
		}
		if filter.Department != "" {
			args = append(args, filter.Department)
			conds = append(conds, "department = ?")
		}
	}

	q := `SELECT ` + subjectColumns + ` FROM subject`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at, id"

	var rows []subjectRow
	if err := sqlx.SelectContext(ctx, repo.exec, &rows, repo.exec.Rebind(q), args...); err != nil {
		return nil, errors.Wrap(err, "querying subjects")
	}

	subjects := make([]subject.Subject, 0, len(rows))
	for _, row := range rows {
		subjects = append(subjects, row.subject())
	}
	return subjects, nil
}

func (repo subjectRepository) DeleteSubject(ctx context.Context, id string) error {
	if !isUUID(id) {
		return subject.ErrNotFound
	}
	res, err := repo.exec.ExecContext(ctx, `DELETE FROM subject WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting subject")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "deleting subject")
	}
	if n == 0 {
		return subject.ErrNotFound
	}
	return nil
}
