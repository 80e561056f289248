package inmemdb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aasim911-prog/department/core/user"
	"github.com/aasim911-prog/department/storage/database/inmem"
	"github.com/aasim911-prog/department/testutil"
)

func newUserRepo(t *testing.T) user.Repository {
	db, err := inmemdb.Open()
	require.NoError(t, err)
	return inmemdb.NewUserRepository(db)
}

func Test_userRepository_CheckUniqueness(t *testing.T) {
	repo := newUserRepo(t)
	testutil.CreateTeacher(t, repo, "Teacher", "teacher@dept.edu", "CSE", "")
	testutil.CreateStudent(t, repo, "Student", "STU001", "CSE", 1, "")

	tests := []struct {
		name      string
		email     string
		studentID string
		wantErr   error
	}{
		{name: "free", email: "other@dept.edu", studentID: "STU002"},
		{name: "both empty"},
		{name: "email taken", email: "teacher@dept.edu", wantErr: user.ErrEmailExists},
		{name: "student id taken", studentID: "STU001", wantErr: user.ErrStudentIDExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.CheckUniqueness(context.Background(), tt.email, tt.studentID)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func Test_userRepository_GetUser(t *testing.T) {
	repo := newUserRepo(t)
	teacher := testutil.CreateTeacher(t, repo, "Teacher", "teacher@dept.edu", "CSE", "")
	student := testutil.CreateStudent(t, repo, "Student", "STU001", "CSE", 1, "")

	tests := []struct {
		name    string
		filter  user.GetFilter
		want    user.User
		wantErr error
	}{
		{name: "by id", filter: user.GetFilter{ID: student.ID}, want: student},
		{name: "by email", filter: user.GetFilter{Email: teacher.Email}, want: teacher},
		{name: "by student id", filter: user.GetFilter{StudentID: "STU001"}, want: student},
		{name: "unknown id", filter: user.GetFilter{ID: "lol"}, wantErr: user.ErrNotFound},
		{name: "unknown student id", filter: user.GetFilter{StudentID: "STU404"}, wantErr: user.ErrNotFound},
		{name: "empty filter", wantErr: user.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetUser(context.Background(), tt.filter)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_userRepository_QueryUsers(t *testing.T) {
	repo := newUserRepo(t)
	teacher := testutil.CreateTeacher(t, repo, "Teacher", "teacher@dept.edu", "CSE", "")
	s1 := testutil.CreateStudent(t, repo, "S1", "STU001", "CSE", 1, "")
	s2 := testutil.CreateStudent(t, repo, "S2", "STU002", "ECE", 1, "")
	s3 := testutil.CreateStudent(t, repo, "S3", "STU003", "CSE", 3, "")
	s4 := testutil.CreateStudent(t, repo, "S4", "STU004", "CSE", 0, "")

	tests := []struct {
		name   string
		filter *user.QueryFilter
		want   []user.User
	}{
		{name: "all", want: []user.User{teacher, s1, s2, s3, s4}},
		{name: "students", filter: &user.QueryFilter{Role: user.RoleStudent}, want: []user.User{s1, s2, s3, s4}},
		{name: "department", filter: &user.QueryFilter{Role: user.RoleStudent, Department: "CSE"}, want: []user.User{s1, s3, s4}},
		{name: "semester", filter: &user.QueryFilter{Semester: 1}, want: []user.User{s1, s2}},
		{name: "department & semester", filter: &user.QueryFilter{Department: "CSE", Semester: 3}, want: []user.User{s3}},
		{name: "nothing", filter: &user.QueryFilter{Department: "MECH"}, want: []user.User{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.QueryUsers(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_userRepository_UpdateUser(t *testing.T) {
	repo := newUserRepo(t)
	student := testutil.CreateStudent(t, repo, "Student", "STU001", "CSE", 1, "student")

	require.NoError(t, student.SetPassword("n3w-Pa55"))
	_, err := repo.UpdateUser(context.Background(), student)
	require.NoError(t, err)

	got, err := repo.GetUser(context.Background(), user.GetFilter{ID: student.ID})
	require.NoError(t, err)
	assert.NoError(t, got.CheckPassword("n3w-Pa55"))

	_, err = repo.UpdateUser(context.Background(), user.User{ID: "lol"})
	assert.Equal(t, user.ErrNotFound, err)
}
