// Package testutil holds fixtures shared by the test suites.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/aasim911-prog/department/core/mark"
	"github.com/aasim911-prog/department/core/subject"
	"github.com/aasim911-prog/department/core/user"
)

// Score returns a pointer to a recorded score.
func Score(f float64) *float64 { return &f }

// Semester returns a pointer to a semester number.
func Semester(n int) *int { return &n }

func CreateTeacher(t *testing.T, repo user.Repository, name, email, department, pwd string) user.User {
	return createUser(t, repo, user.User{
		Name:       name,
		Email:      email,
		Role:       user.RoleTeacher,
		Department: department,
	}, pwd)
}

func CreateStudent(t *testing.T, repo user.Repository, name, studentID, department string, semester int, pwd string) user.User {
	usr := user.User{
		Name:       name,
		StudentID:  studentID,
		Role:       user.RoleStudent,
		Department: department,
	}
	if semester > 0 {
		usr.Semester = Semester(semester)
	}
	return createUser(t, repo, usr, pwd)
}

func createUser(t *testing.T, repo user.Repository, usr user.User, pwd string) user.User {
	usr.CreatedAt = time.Now().UTC()
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("createUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

func CreateSubject(t *testing.T, repo subject.Repository, name, code string, semester, credits int, department string) subject.Subject {
	sbj, err := repo.CreateSubject(context.Background(), subject.Subject{
		Name:       name,
		Code:       code,
		Semester:   semester,
		Credits:    credits,
		Department: department,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateSubject() failed: %v", err)
	}
	return sbj
}

func UpsertMark(t *testing.T, repo mark.Repository, studentID, subjectID string, semester int, finalExam *float64, internals ...float64) mark.Mark {
	mrk := mark.Mark{
		StudentID: studentID,
		SubjectID: subjectID,
		Semester:  semester,
		FinalExam: finalExam,
		UpdatedAt: time.Now().UTC(),
	}
	for i, s := range internals {
		switch i {
		case 0:
			mrk.Internal1 = Score(s)
		case 1:
			mrk.Internal2 = Score(s)
		case 2:
			mrk.Internal3 = Score(s)
		}
	}
	mrk, err := repo.UpsertMark(context.Background(), mrk)
	if err != nil {
		t.Fatalf("UpsertMark() failed: %v", err)
	}
	return mrk
}
