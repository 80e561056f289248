package mark

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aasim911-prog/department/core"
)

// Mark holds a student's scores for one subject. Scores are optional:
// a nil score was never recorded, which is not the same as scoring 0.
type Mark struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"` // internal User.ID
	SubjectID string    `json:"subject_id"`
	Semester  int       `json:"semester"`
	Internal1 *float64  `json:"internal1"`
	Internal2 *float64  `json:"internal2"`
	Internal3 *float64  `json:"internal3"`
	FinalExam *float64  `json:"final_exam"`
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

// HasFinalExam reports whether a final exam score was recorded.
func (m Mark) HasFinalExam() bool {
	return m.FinalExam != nil
}

// NewMark contains information needed to create or overwrite the Mark of a (student, subject) pair.
type NewMark struct {
	StudentID string   `json:"student_id" validate:"required"`
	SubjectID string   `json:"subject_id" validate:"required"`
	Semester  int      `json:"semester" validate:"required,semester"`
	Internal1 *float64 `json:"internal1" validate:"omitempty,min=0,max=100"`
	Internal2 *float64 `json:"internal2" validate:"omitempty,min=0,max=100"`
	Internal3 *float64 `json:"internal3" validate:"omitempty,min=0,max=100"`
	FinalExam *float64 `json:"final_exam" validate:"omitempty,min=0,max=100"`
}

func (nm *NewMark) Validate(validate *validator.Validate) error {
	nm.StudentID = core.CleanString(nm.StudentID)
	nm.SubjectID = core.CleanString(nm.SubjectID)
	return validate.Struct(nm)
}

type QueryFilter struct {
	StudentID string
	SubjectID string
}

// Match reports whether m satisfies every set field of the filter.
func (qf *QueryFilter) Match(m Mark) bool {
	if qf == nil {
		return true
	}
	if qf.StudentID != "" && m.StudentID != qf.StudentID {
		return false
	}
	if qf.SubjectID != "" && m.SubjectID != qf.SubjectID {
		return false
	}
	return true
}
