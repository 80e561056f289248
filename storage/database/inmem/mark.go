package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/aasim911-prog/department/core/mark"
)

type markRepository struct {
	db *markTable
}

var _ mark.Repository = (*markRepository)(nil) // interface compliance check

func NewMarkRepository(db *DB) mark.Repository {
	return &markRepository{db: db.mark}
}

func (repo *markRepository) UpsertMark(_ context.Context, mrk mark.Mark) (mark.Mark, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, row := range repo.db.table {
		if row.StudentID == mrk.StudentID && row.SubjectID == mrk.SubjectID {
			mrk.ID = row.ID
			row.Mark = mrk
			return mrk, nil
		}
	}

	mrk.ID = uuid.New().String()
	repo.db.seq++
	repo.db.table[mrk.ID] = &markRow{Mark: mrk, seq: repo.db.seq}
	return mrk, nil
}

func (repo *markRepository) QueryMarks(_ context.Context, filter *mark.QueryFilter) ([]mark.Mark, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	rows := make([]*markRow, 0, len(repo.db.table))
	for _, row := range repo.db.table {
		if filter.Match(row.Mark) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].UpdatedAt.Equal(rows[j].UpdatedAt) {
			return rows[i].UpdatedAt.Before(rows[j].UpdatedAt)
		}
		return rows[i].seq < rows[j].seq
	})

	marks := make([]mark.Mark, 0, len(rows))
	for _, row := range rows {
		marks = append(marks, row.Mark)
	}
	return marks, nil
}
