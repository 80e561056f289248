// Package grading turns stored marks into semester (SGPA) and cumulative (CGPA) grade-point summaries.
package grading

import "math"

// gradeBands maps inclusive lower bounds to grade points, highest first.
var gradeBands = []struct {
	min   float64
	point float64
}{
	{min: 90, point: 10},
	{min: 80, point: 9},
	{min: 70, point: 8},
	{min: 60, point: 7},
	{min: 50, point: 6},
	{min: 40, point: 5},
}

// GradePoint maps a final exam mark onto the 10-point scale.
// Marks are neither clamped nor validated: -5 yields 0 and 150 yields 10.
func GradePoint(mark float64) float64 {
	for _, band := range gradeBands {
		if mark >= band.min {
			return band.point
		}
	}
	return 0
}

// round2 rounds x to 2 decimal places, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
