package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/aasim911-prog/department/core/user"
)

type userRepository struct {
	db *userTable
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db.user}
}

// query returns copies of the matching users, in insertion order.
func (repo *userRepository) query(filter *user.QueryFilter) []user.User {
	rows := make([]*userRow, 0, len(repo.db.table))
	for _, row := range repo.db.table {
		if filter.Match(row.User) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	users := make([]user.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.User)
	}
	return users
}

func (repo *userRepository) CheckUniqueness(_ context.Context, email, studentID string) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, row := range repo.db.table {
		if email != "" && row.Email == email {
			return user.ErrEmailExists
		}
		if studentID != "" && row.StudentID == studentID {
			return user.ErrStudentIDExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	usr.ID = uuid.New().String()
	repo.db.seq++
	repo.db.table[usr.ID] = &userRow{User: usr, seq: repo.db.seq}
	return usr, nil
}

func (repo *userRepository) GetUser(_ context.Context, filter user.GetFilter) (user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if filter.ID != "" {
		if row, ok := repo.db.table[filter.ID]; ok {
			return row.User, nil
		}
		return user.User{}, user.ErrNotFound
	}

	for _, usr := range repo.query(nil) {
		switch {
		case filter.Email != "":
			if usr.Email == filter.Email {
				return usr, nil
			}
		case filter.StudentID != "":
			if usr.StudentID == filter.StudentID {
				return usr, nil
			}
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) QueryUsers(_ context.Context, filter *user.QueryFilter) ([]user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(filter), nil
}

func (repo *userRepository) UpdateUser(_ context.Context, usr user.User) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	row, ok := repo.db.table[usr.ID]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	usr.CreatedAt = row.CreatedAt
	row.User = usr
	return usr, nil
}
