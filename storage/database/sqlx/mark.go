package sqlxrepos

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/aasim911-prog/department/core/mark"
)

const markColumns = `id, student_id, subject_id, semester, internal1, internal2, internal3, final_exam, updated_at`

type markRow struct {
	ID        string       `db:"id"`
	StudentID string       `db:"student_id"`
	SubjectID string       `db:"subject_id"`
	Semester  int          `db:"semester"`
	Internal1 null.Float64 `db:"internal1"`
	Internal2 null.Float64 `db:"internal2"`
	Internal3 null.Float64 `db:"internal3"`
	FinalExam null.Float64 `db:"final_exam"`
	UpdatedAt time.Time    `db:"updated_at"`
}

type markRepository struct {
	exec sqlx.ExtContext
}

var _ mark.Repository = (*markRepository)(nil) // interface compliance check

func NewMarkRepository(exec sqlx.ExtContext) *markRepository {
	return &markRepository{exec: exec}
}

func (repo markRepository) boil(mrk mark.Mark) markRow {
	return markRow{
		ID:        mrk.ID,
		StudentID: mrk.StudentID,
		SubjectID: mrk.SubjectID,
		Semester:  mrk.Semester,
		Internal1: null.Float64FromPtr(mrk.Internal1),
		Internal2: null.Float64FromPtr(mrk.Internal2),
		Internal3: null.Float64FromPtr(mrk.Internal3),
		FinalExam: null.Float64FromPtr(mrk.FinalExam),
		UpdatedAt: mrk.UpdatedAt.UTC(),
	}
}

func (repo markRepository) unboil(row markRow) mark.Mark {
	return mark.Mark{
		ID:        row.ID,
		StudentID: row.StudentID,
		SubjectID: row.SubjectID,
		Semester:  row.Semester,
		Internal1: row.Internal1.Ptr(),
		Internal2: row.Internal2.Ptr(),
		Internal3: row.Internal3.Ptr(),
		FinalExam: row.FinalExam.Ptr(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

func (repo markRepository) UpsertMark(ctx context.Context, mrk mark.Mark) (mark.Mark, error) {
	mrk.ID = uuid.New().String() // only used on insert
	var row markRow
	err := get(ctx, repo.exec, &row, `
		INSERT INTO mark (`+markColumns+`)
		VALUES (:id, :student_id, :subject_id, :semester, :internal1, :internal2, :internal3, :final_exam, :updated_at)
		ON CONFLICT (student_id, subject_id) DO UPDATE SET
			semester = EXCLUDED.semester,
			internal1 = EXCLUDED.internal1,
			internal2 = EXCLUDED.internal2,
			internal3 = EXCLUDED.internal3,
			final_exam = EXCLUDED.final_exam,
			updated_at = EXCLUDED.updated_at
		RETURNING `+markColumns,
		repo.boil(mrk))
	if err != nil {
		return mark.Mark{}, errors.Wrap(err, "upserting mark")
	}
	return repo.unboil(row), nil
}

func (repo markRepository) QueryMarks(ctx context.Context, filter *mark.QueryFilter) ([]mark.Mark, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter != nil {
		if filter.StudentID != "" {
			args = append(args, filter.StudentID)
			conds = append(conds, "student_id = ?")
		}
		if filter.SubjectID != "" {
			args = append(args, filter.SubjectID)
			conds = append(conds, "subject_id = ?")
		}
	}

	q := `SELECT ` + markColumns + ` FROM mark`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY updated_at, id"

	var rows []markRow
	if err := sqlx.SelectContext(ctx, repo.exec, &rows, repo.exec.Rebind(q), args...); err != nil {
		return nil, errors.Wrap(err, "querying marks")
	}

	marks := make([]mark.Mark, 0, len(rows))
	for _, row := range rows {
		marks = append(marks, repo.unboil(row))
	}
	return marks, nil
}
