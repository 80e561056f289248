package sqlxrepos

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/aasim911-prog/department/core/user"
)

const userColumns = `id, name, email, student_id, role, department, semester, password_hash, created_at`

type userRow struct {
	ID           string      `db:"id"`
	Name         string      `db:"name"`
	Email        null.String `db:"email"`
	StudentID    null.String `db:"student_id"`
	Role         string      `db:"role"`
	Department   string      `db:"department"`
	Semester     null.Int    `db:"semester"`
	PasswordHash []byte      `db:"password_hash"`
	CreatedAt    time.Time   `db:"created_at"`
}

type userRepository struct {
	exec sqlx.ExtContext
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(exec sqlx.ExtContext) *userRepository {
	return &userRepository{exec: exec}
}

func (repo userRepository) boil(usr user.User) userRow {
	return userRow{
		ID:           usr.ID,
		Name:         usr.Name,
		Email:        null.NewString(usr.Email, usr.Email != ""),
		StudentID:    null.NewString(usr.StudentID, usr.StudentID != ""),
		Role:         usr.Role,
		Department:   usr.Department,
		Semester:     null.IntFromPtr(usr.Semester),
		PasswordHash: usr.PasswordHash,
		CreatedAt:    usr.CreatedAt.UTC(),
	}
}

func (repo userRepository) unboil(row userRow) user.User {
	return user.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email.String,
		StudentID:    row.StudentID.String,
		Role:         row.Role,
		Department:   row.Department,
		Semester:     row.Semester.Ptr(),
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.UTC(),
	}
}

func (repo userRepository) CheckUniqueness(ctx context.Context, email, studentID string) error {
	if email != "" {
		taken, err := exists(ctx, repo.exec, `SELECT 1 FROM "user" WHERE email = $1`, email)
		if err != nil {
			return errors.Wrap(err, "checking email uniqueness")
		}
		if taken {
			return user.ErrEmailExists
		}
	}
	if studentID != "" {
		taken, err := exists(ctx, repo.exec, `SELECT 1 FROM "user" WHERE student_id = $1`, studentID)
		if err != nil {
			return errors.Wrap(err, "checking student ID uniqueness")
		}
		if taken {
			return user.ErrStudentIDExists
		}
	}
	return nil
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	usr.ID = uuid.New().String()
	var row userRow
	err := get(ctx, repo.exec, &row, `
		INSERT INTO "user" (`+userColumns+`)
		VALUES (:id, :name, :email, :student_id, :role, :department, :semester, :password_hash, :created_at)
		RETURNING `+userColumns,
		repo.boil(usr))
	if err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return repo.unboil(row), nil
}

func (repo userRepository) GetUser(ctx context.Context, filter user.GetFilter) (user.User, error) {
	var (
		where string
		arg   string
	)
	switch {
	case filter.ID != "":
		if !isUUID(filter.ID) {
			return user.User{}, user.ErrNotFound
		}
		where, arg = "id = $1", filter.ID
	case filter.Email != "":
		where, arg = "email = $1", filter.Email
	case filter.StudentID != "":
		where, arg = "student_id = $1", filter.StudentID
	default:
		return user.User{}, user.ErrNotFound
	}

	var row userRow
	err := sqlx.GetContext(ctx, repo.exec, &row, `SELECT `+userColumns+` FROM "user" WHERE `+where, arg)
	if err != nil {
		return user.User{}, trapNoRowsErr(err, user.ErrNotFound, "getting user")
	}
	return repo.unboil(row), nil
}

func (repo userRepository) QueryUsers(ctx context.Context, filter *user.QueryFilter) ([]user.User, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter != nil {
		if filter.Role != "" {
			args = append(args, filter.Role)
			conds = append(conds, "role = ?")
		}
		if filter.Department != "" {
			args = append(args, filter.Department)
			conds = append(conds, "department = ?")
		}
		if filter.Semester != 0 {
			args = append(args, filter.Semester)
			conds = append(conds, "semester = ?")
		}
	}

	q := `SELECT ` + userColumns + ` FROM "user"`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at, id"

	var rows []userRow
	if err := sqlx.SelectContext(ctx, repo.exec, &rows, repo.exec.Rebind(q), args...); err != nil {
		return nil, errors.Wrap(err, "querying users")
	}

	users := make([]user.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, repo.unboil(row))
	}
	return users, nil
}

func (repo userRepository) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	if !isUUID(usr.ID) {
		return user.User{}, user.ErrNotFound
	}
	var row userRow
	err := get(ctx, repo.exec, &row, `
		UPDATE "user" SET
			name = :name, email = :email, student_id = :student_id, role = :role,
			department = :department, semester = :semester, password_hash = :password_hash
		WHERE id = :id
		RETURNING `+userColumns,
		repo.boil(usr))
	if err != nil {
		return user.User{}, trapNoRowsErr(err, user.ErrNotFound, "updating user")
	}
	return repo.unboil(row), nil
}
