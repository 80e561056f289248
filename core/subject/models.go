package subject

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aasim911-prog/department/core"
)

type Subject struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	Semester   int       `json:"semester"`
	Credits    int       `json:"credits"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"` // UTC
}

// NewSubject contains information needed to create a new Subject.
type NewSubject struct {
	Name       string `json:"name" validate:"required"`
	Code       string `json:"code" validate:"required,max=16,alphanum_"`
	Semester   int    `json:"semester" validate:"required,semester"`
	Credits    int    `json:"credits" validate:"required,min=1"`
	Department string `json:"department" validate:"required"`
}

func (ns *NewSubject) Validate(ctx context.Context, validate *validator.Validate, svc *Service) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Code = core.CleanString(ns.Code)
	ns.Department = core.CleanString(ns.Department)

	if err := validate.Struct(ns); err != nil {
		return err
	}
	return svc.checkCodeUniqueness(ctx, ns.Code, ns.Semester, ns.Department)
}

type QueryFilter struct {
	Semester   int    `query:"semester"`
	Department string `query:"department"`
}

func (qf *QueryFilter) Clean() {
	qf.Department = core.CleanString(qf.Department)
}

// Match reports whether sbj satisfies every set field of the filter.
func (qf *QueryFilter) Match(sbj Subject) bool {
	if qf == nil {
		return true
	}
	if qf.Semester != 0 && sbj.Semester != qf.Semester {
		return false
	}
	if qf.Department != "" && sbj.Department != qf.Department {
		return false
	}
	return true
}
