package user

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/aasim911-prog/department/core"
)

var (
	// errors
	ErrNotFound        = errors.New("user not found")
	ErrEmailExists     = errors.New("email already registered")
	ErrStudentIDExists = errors.New("student ID already registered")
	ErrInvalidPassword = errors.New("password cannot be empty")
	ErrInvalidCreds    = errors.New("invalid credentials")
)

type (
	Repository interface {
		// CheckUniqueness returns ErrEmailExists or ErrStudentIDExists when a non-empty email or studentID is taken.
		CheckUniqueness(ctx context.Context, email, studentID string) error
		CreateUser(ctx context.Context, usr User) (User, error)
		GetUser(ctx context.Context, filter GetFilter) (User, error)
		// QueryUsers applies AND operation on available QueryFilter fields; users are ordered by creation.
		QueryUsers(ctx context.Context, filter *QueryFilter) ([]User, error)
		UpdateUser(ctx context.Context, usr User) (User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkUniqueness(ctx context.Context, email, studentID string) error {
	if err := svc.repo.CheckUniqueness(ctx, email, studentID); err != nil {
		var field string
		switch errors.Cause(err) {
		case ErrEmailExists:
			field = "email"
		case ErrStudentIDExists:
			field = "student_id"
		default:
			return errors.Wrap(err, "checking user uniqueness")
		}
		return core.NewValidationError(err, core.FieldError{Field: field, Error: err.Error()})
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, nu NewUser) (User, error) {
	usr := User{
		Name:       nu.Name,
		Email:      nu.Email,
		StudentID:  nu.StudentID,
		Role:       nu.Role,
		Department: nu.Department,
		Semester:   nu.Semester,
		CreatedAt:  time.Now().UTC(),
	}
	if err := usr.SetPassword(nu.password()); err != nil {
		return User{}, errors.Wrap(err, "setting password")
	}
	return svc.repo.CreateUser(ctx, usr)
}

func (svc *Service) GetByID(ctx context.Context, id string) (User, error) {
	return svc.repo.GetUser(ctx, GetFilter{ID: id})
}

func (svc *Service) GetByStudentID(ctx context.Context, studentID string) (User, error) {
	return svc.repo.GetUser(ctx, GetFilter{StudentID: core.CleanString(studentID)})
}

// GetByIdentifier finds a teacher by email or a student by student ID.
func (svc *Service) GetByIdentifier(ctx context.Context, identifier string) (User, error) {
	identifier = core.CleanString(identifier)
	if IsEmailIdentifier(identifier) {
		return svc.repo.GetUser(ctx, GetFilter{Email: core.CleanString(identifier, true /* lower */)})
	}
	return svc.repo.GetUser(ctx, GetFilter{StudentID: identifier})
}

// Authenticate returns the User matching identifier & password, or ErrInvalidCreds.
func (svc *Service) Authenticate(ctx context.Context, identifier, pwd string) (User, error) {
	usr, err := svc.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return User{}, ErrInvalidCreds
		}
		return User{}, errors.Wrap(err, "finding user by identifier")
	}
	if err = usr.CheckPassword(pwd); err != nil {
		return User{}, ErrInvalidCreds
	}
	return usr, nil
}

func (svc *Service) QueryStudents(ctx context.Context, filter *QueryFilter) ([]User, error) {
	if filter == nil {
		filter = new(QueryFilter)
	}
	filter.Role = RoleStudent
	return svc.repo.QueryUsers(ctx, filter)
}

func (svc *Service) SetPassword(ctx context.Context, usr User, pwd string) (User, error) {
	if pwd == "" {
		return User{}, ErrInvalidPassword
	}
	if err := usr.SetPassword(pwd); err != nil {
		return User{}, errors.Wrap(err, "setting password")
	}
	return svc.repo.UpdateUser(ctx, usr)
}
