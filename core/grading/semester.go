package grading

import (
	"github.com/aasim911-prog/department/core/mark"
	"github.com/aasim911-prog/department/core/subject"
)

// Entry is a graded subject of a semester.
type Entry struct {
	Subject    subject.Subject `json:"subject"`
	Marks      mark.Mark       `json:"marks"`
	GradePoint float64         `json:"grade_point"`
}

type SemesterSummary struct {
	Semester     int     `json:"semester"`
	SGPA         float64 `json:"sgpa"`
	Subjects     []Entry `json:"subjects"`
	TotalCredits int     `json:"total_credits"`
}

// AggregateSemester computes the credit-weighted SGPA of one semester.
//
// Only subjects of the semester are graded, and only against marks recorded for that same semester:
// a mark whose own semester differs from its subject's is left out.
// A subject counts once its mark has a final exam score; internal assessments never count.
func AggregateSemester(semester int, subjects []subject.Subject, marks []mark.Mark) SemesterSummary {
	pool := make([]mark.Mark, 0, len(marks))
	for _, m := range marks {
		if m.Semester == semester {
			pool = append(pool, m)
		}
	}

	summary := SemesterSummary{Semester: semester, Subjects: []Entry{}}
	var totalPoints float64
	for _, sbj := range subjects {
		if sbj.Semester != semester {
			continue
		}
		m, ok := findMark(pool, sbj.ID)
		if !ok || !m.HasFinalExam() {
			continue
		}

		gp := GradePoint(*m.FinalExam)
		summary.TotalCredits += sbj.Credits
		totalPoints += gp * float64(sbj.Credits)
		summary.Subjects = append(summary.Subjects, Entry{Subject: sbj, Marks: m, GradePoint: gp})
	}

	if summary.TotalCredits > 0 {
		summary.SGPA = round2(totalPoints / float64(summary.TotalCredits))
	}
	return summary
}

// findMark returns the first mark of the pool recorded for subjectID.
func findMark(pool []mark.Mark, subjectID string) (mark.Mark, bool) {
	for _, m := range pool {
		if m.SubjectID == subjectID {
			return m, true
		}
	}
	return mark.Mark{}, false
}
