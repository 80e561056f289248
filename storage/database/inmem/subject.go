package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/aasim911-prog/department/core/subject"
)

type subjectRepository struct {
	db *subjectTable
}

var _ subject.Repository = (*subjectRepository)(nil) // interface compliance check

func NewSubjectRepository(db *DB) subject.Repository {
	return &subjectRepository{db: db.subject}
}

func (repo *subjectRepository) CheckCodeUniqueness(_ context.Context, code string, semester int, department string) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, row := range repo.db.table {
		if row.Code == code && row.Semester == semester && row.Department == department {
			return subject.ErrCodeExists
		}
	}
	return nil
}

func (repo *subjectRepository) CreateSubject(_ context.Context, sbj subject.Subject) (subject.Subject, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	sbj.ID = uuid.New().String()
	repo.db.seq++
	repo.db.table[sbj.ID] = &subjectRow{Subject: sbj, seq: repo.db.seq}
	return sbj, nil
}

func (repo *subjectRepository) GetSubject(_ context.Context, id string) (subject.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if row, ok := repo.db.table[id]; ok {
		return row.Subject, nil
	}
	return subject.Subject{}, subject.ErrNotFound
}

func (repo *subjectRepository) QuerySubjects(_ context.Context, filter *subject.QueryFilter) ([]subject.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	rows := make([]*subjectRow, 0, len(repo.db.table))
	for _, row := range repo.db.table {
		if filter.Match(row.Subject) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	subjects := make([]subject.Subject, 0, len(rows))
	for _, row := range rows {
		subjects = append(subjects, row.Subject)
	}
	return subjects, nil
}

func (repo *subjectRepository) DeleteSubject(_ context.Context, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return subject.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
