package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aasim911-prog/department/core/mark"
	"github.com/aasim911-prog/department/core/subject"
)

func TestAggregateSemester_empty(t *testing.T) {
	for sem := 1; sem <= 8; sem++ {
		got := AggregateSemester(sem, nil, nil)

		assert.Equal(t, sem, got.Semester)
		assert.Zero(t, got.SGPA)
		assert.Zero(t, got.TotalCredits)
		assert.NotNil(t, got.Subjects)
		assert.Empty(t, got.Subjects)
	}
}

func TestAggregateSemester(t *testing.T) {
	ds := newSubject("DS", 3, 4)
	maths := newSubject("MATHS", 1, 3)
	physics := newSubject("PHY", 1, 4)
	chem := newSubject("CHEM", 1, 2)

	internalsOnly := newMark("CHEM", 1, nil)
	internalsOnly.Internal1 = score(95)
	internalsOnly.Internal2 = score(92)
	internalsOnly.Internal3 = score(99)

	tests := []struct {
		name        string
		semester    int
		subjects    []subject.Subject
		marks       []mark.Mark
		wantSGPA    float64
		wantCredits int
		wantGraded  []string // subject IDs
		wantPoints  []float64
	}{
		{
			name:     "single subject",
			semester: 3, subjects: []subject.Subject{ds}, marks: []mark.Mark{newMark("DS", 3, score(85))},
			wantSGPA: 9, wantCredits: 4, wantGraded: []string{"DS"}, wantPoints: []float64{9},
		},
		{
			name:     "credit weighted",
			semester: 1, subjects: []subject.Subject{maths, physics},
			marks:    []mark.Mark{newMark("MATHS", 1, score(95)), newMark("PHY", 1, score(65))},
			wantSGPA: 8.29, wantCredits: 7, wantGraded: []string{"MATHS", "PHY"}, wantPoints: []float64{10, 7},
		},
		{
			name:     "no final exam is not graded",
			semester: 1, subjects: []subject.Subject{maths, chem},
			marks:    []mark.Mark{newMark("MATHS", 1, score(72)), internalsOnly},
			wantSGPA: 8, wantCredits: 3, wantGraded: []string{"MATHS"}, wantPoints: []float64{8},
		},
		{
			name:     "zero final exam is graded",
			semester: 1, subjects: []subject.Subject{maths, physics},
			marks:    []mark.Mark{newMark("MATHS", 1, score(0)), newMark("PHY", 1, score(90))},
			wantSGPA: 5.71, wantCredits: 7, wantGraded: []string{"MATHS", "PHY"}, wantPoints: []float64{0, 10},
		},
		{
			name:     "subject without mark",
			semester: 1, subjects: []subject.Subject{maths, physics},
			marks:    []mark.Mark{newMark("PHY", 1, score(55))},
			wantSGPA: 6, wantCredits: 4, wantGraded: []string{"PHY"}, wantPoints: []float64{6},
		},
		{
			name:     "mark semester differs from subject semester",
			semester: 3, subjects: []subject.Subject{ds}, marks: []mark.Mark{newMark("DS", 2, score(85))},
			wantSGPA: 0, wantCredits: 0,
		},
		{
			name:     "mismatched mark is not graded in its own semester either",
			semester: 2, subjects: []subject.Subject{ds}, marks: []mark.Mark{newMark("DS", 2, score(85))},
			wantSGPA: 0, wantCredits: 0,
		},
		{
			name:     "mark of unknown subject is ignored",
			semester: 1, subjects: []subject.Subject{maths},
			marks:    []mark.Mark{newMark("GHOST", 1, score(100)), newMark("MATHS", 1, score(45))},
			wantSGPA: 5, wantCredits: 3, wantGraded: []string{"MATHS"}, wantPoints: []float64{5},
		},
		{
			name:     "subjects of other semesters are ignored",
			semester: 1, subjects: []subject.Subject{ds, maths},
			marks:    []mark.Mark{newMark("DS", 3, score(100)), newMark("MATHS", 1, score(61))},
			wantSGPA: 7, wantCredits: 3, wantGraded: []string{"MATHS"}, wantPoints: []float64{7},
		},
		{
			name:     "first matching mark wins",
			semester: 1, subjects: []subject.Subject{maths},
			marks:    []mark.Mark{newMark("MATHS", 1, score(81)), newMark("MATHS", 1, score(30))},
			wantSGPA: 9, wantCredits: 3, wantGraded: []string{"MATHS"}, wantPoints: []float64{9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateSemester(tt.semester, tt.subjects, tt.marks)

			assert.Equal(t, tt.semester, got.Semester)
			assert.Equal(t, tt.wantSGPA, got.SGPA)
			assert.Equal(t, tt.wantCredits, got.TotalCredits)
			require.Len(t, got.Subjects, len(tt.wantGraded))
			for i, entry := range got.Subjects {
				assert.Equal(t, tt.wantGraded[i], entry.Subject.ID)
				assert.Equal(t, tt.wantGraded[i], entry.Marks.SubjectID)
				assert.Equal(t, tt.wantPoints[i], entry.GradePoint)
			}
			if got.SGPA < 0 || got.SGPA > 10 {
				t.Errorf("SGPA %v out of [0, 10]", got.SGPA)
			}
		})
	}
}

func TestAggregateSemester_idempotent(t *testing.T) {
	subjects := []subject.Subject{newSubject("MATHS", 1, 3), newSubject("PHY", 1, 4)}
	marks := []mark.Mark{newMark("MATHS", 1, score(95)), newMark("PHY", 1, score(65))}

	first := AggregateSemester(1, subjects, marks)
	second := AggregateSemester(1, subjects, marks)
	assert.Equal(t, first, second)
	assert.Len(t, marks, 2, "inputs must not be modified")
}
