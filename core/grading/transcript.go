package grading

import (
	"strconv"

	"github.com/aasim911-prog/department/core"
	"github.com/aasim911-prog/department/core/mark"
	"github.com/aasim911-prog/department/core/subject"
	"github.com/aasim911-prog/department/core/user"
)

const semesterKeyPrefix = "semester_"

type Transcript struct {
	Student user.User `json:"student"`
	// SemesterData holds a summary for every semester, keyed by SemesterKey.
	SemesterData map[string]SemesterSummary `json:"semester_data"`
	CGPA         float64                    `json:"cgpa"`
}

// SemesterKey returns the SemesterData key of semester n, e.g. "semester_3".
func SemesterKey(n int) string {
	return semesterKeyPrefix + strconv.Itoa(n)
}

// Semester returns the summary of semester n.
func (t Transcript) Semester(n int) (SemesterSummary, bool) {
	s, ok := t.SemesterData[SemesterKey(n)]
	return s, ok
}

// BuildTranscript aggregates every semester from core.FirstSemester to core.LastSemester,
// even those without graded subjects, and folds their SGPAs into the CGPA.
//
// The CGPA weighs each semester's rounded SGPA by the credits graded that semester.
func BuildTranscript(student user.User, subjects []subject.Subject, marks []mark.Mark) Transcript {
	transcript := Transcript{
		Student:      student,
		SemesterData: make(map[string]SemesterSummary, core.LastSemester-core.FirstSemester+1),
	}

	var totalCredits int
	var totalPoints float64
	for sem := core.FirstSemester; sem <= core.LastSemester; sem++ {
		summary := AggregateSemester(sem, subjects, marks)
		transcript.SemesterData[SemesterKey(sem)] = summary

		totalCredits += summary.TotalCredits
		totalPoints += summary.SGPA * float64(summary.TotalCredits)
	}

	if totalCredits > 0 {
		transcript.CGPA = round2(totalPoints / float64(totalCredits))
	}
	return transcript
}
