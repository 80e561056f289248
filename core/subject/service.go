package subject

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/aasim911-prog/department/core"
)

var (
	// errors
	ErrNotFound   = errors.New("subject not found")
	ErrCodeExists = errors.New("Subject code already exists for this semester")
)

type (
	Repository interface {
		// CheckCodeUniqueness returns ErrCodeExists if code is taken within the semester & department.
		CheckCodeUniqueness(ctx context.Context, code string, semester int, department string) error
		CreateSubject(ctx context.Context, sbj Subject) (Subject, error)
		GetSubject(ctx context.Context, id string) (Subject, error)
		// QuerySubjects applies AND operation on available QueryFilter fields; subjects are ordered by creation.
		QuerySubjects(ctx context.Context, filter *QueryFilter) ([]Subject, error)
		DeleteSubject(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkCodeUniqueness(ctx context.Context, code string, semester int, department string) error {
	if err := svc.repo.CheckCodeUniqueness(ctx, code, semester, department); err != nil {
		if errors.Cause(err) == ErrCodeExists {
			return core.NewValidationError(err, core.FieldError{Field: "code", Error: err.Error()})
		}
		return errors.Wrap(err, "checking subject code uniqueness")
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, ns NewSubject) (Subject, error) {
	sbj := Subject{
		Name:       ns.Name,
		Code:       ns.Code,
		Semester:   ns.Semester,
		Credits:    ns.Credits,
		Department: ns.Department,
		CreatedAt:  time.Now().UTC(),
	}
	return svc.repo.CreateSubject(ctx, sbj)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Subject, error) {
	return svc.repo.GetSubject(ctx, id)
}

func (svc *Service) Query(ctx context.Context, filter *QueryFilter) ([]Subject, error) {
	return svc.repo.QuerySubjects(ctx, filter)
}

// QueryByDepartment returns every subject offered by a department, across all semesters.
func (svc *Service) QueryByDepartment(ctx context.Context, department string) ([]Subject, error) {
	return svc.repo.QuerySubjects(ctx, &QueryFilter{Department: department})
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteSubject(ctx, id)
}
