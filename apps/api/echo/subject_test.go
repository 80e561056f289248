package echoapi_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aasim911-prog/department/core/subject"
	"github.com/aasim911-prog/department/testutil"
)

func Test_subjectApi_create(t *testing.T) {
	app := setup(t)
	teacher := testutil.CreateTeacher(t, app.repos.Users, "Grace", "grace@dept.edu", "CSE", "teacher")
	student := testutil.CreateStudent(t, app.repos.Users, "Alan", "STU001", "CSE", 3, "student")
	testutil.CreateSubject(t, app.repos.Subjects, "Data Structures", "CS201", 3, 4, "CSE")
	teacherToken := app.getToken(t, teacher)

	tests := []struct {
		httpTest
		wantSubject subject.Subject
	}{
		{httpTest: httpTest{name: "auth required", wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)}},
		{
			httpTest: httpTest{
				name: "teacher required", token: app.getToken(t, student), wantCode: http.StatusForbidden,
				body:     []byte(`{"name": "Algorithms", "code": "CS301", "semester": 5, "credits": 4, "department": "CSE"}`),
				wantData: marshallObj(t, httpErr{Error: "permission denied"}),
			},
		},
		{
			httpTest: httpTest{
				name: "created", token: teacherToken, wantCode: http.StatusCreated,
				body: []byte(`{"name": " Algorithms", "code": "CS301", "semester": 5, "credits": 4, "department": "CSE"}`),
			},
			wantSubject: subject.Subject{Name: "Algorithms", Code: "CS301", Semester: 5, Credits: 4, Department: "CSE"},
		},
		{
			httpTest: httpTest{
				name: "code taken", token: teacherToken, wantCode: http.StatusBadRequest,
				body:     []byte(`{"name": "DS", "code": "CS201", "semester": 3, "credits": 4, "department": "CSE"}`),
				wantData: marshallObj(t, map[string]string{"code": "Subject code already exists for this semester"}),
			},
		},
		{
			httpTest: httpTest{
				name: "invalid", token: teacherToken, wantCode: http.StatusBadRequest,
				body: []byte(`{"name": "DS", "code": "CS 201", "semester": 0, "credits": 4, "department": "CSE"}`),
				wantData: marshallObj(t, map[string]string{
					"code":     "only alphanumeric characters and underscores are allowed",
					"semester": "this field is required",
				}),
			},
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/api/subjects"

		t.Run(tt.name, func(t *testing.T) {
			rec := app.serve(tt.httpTest)
			checkCodeAndData(t, tt.httpTest, rec)

			if tt.wantCode == http.StatusCreated {
				var got subject.Subject
				decode(t, rec, &got)
				assert.NotEmpty(t, got.ID)
				got.ID, got.CreatedAt = "", time.Time{}
				assert.Equal(t, tt.wantSubject, got)
			}
		})
	}
}

func Test_subjectApi_query(t *testing.T) {
	app := setup(t)
	ds := testutil.CreateSubject(t, app.repos.Subjects, "Data Structures", "CS201", 3, 4, "CSE")
	opsys := testutil.CreateSubject(t, app.repos.Subjects, "Operating Systems", "CS301", 5, 4, "CSE")
	circuits := testutil.CreateSubject(t, app.repos.Subjects, "Circuits", "EC101", 3, 3, "ECE")

	tests := []httpTest{
		{name: "all (no auth)", path: "/api/subjects", wantData: marshallList(t, ds, opsys, circuits)},
		{name: "semester", path: "/api/subjects?semester=3", wantData: marshallList(t, ds, circuits)},
		{name: "department", path: "/api/subjects?department=CSE", wantData: marshallList(t, ds, opsys)},
		{name: "both", path: "/api/subjects?semester=3&department=ECE", wantData: marshallList(t, circuits)},
		{name: "none", path: "/api/subjects?semester=8", wantData: marshallList(t)},
		{name: "bad semester", path: "/api/subjects?semester=x", wantData: marshallList(t)},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		tt.wantCode = http.StatusOK

		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.serve(tt))
		})
	}
}

func Test_subjectApi_destroy(t *testing.T) {
	app := setup(t)
	teacher := testutil.CreateTeacher(t, app.repos.Users, "Grace", "grace@dept.edu", "CSE", "teacher")
	student := testutil.CreateStudent(t, app.repos.Users, "Alan", "STU001", "CSE", 3, "student")
	ds := testutil.CreateSubject(t, app.repos.Subjects, "Data Structures", "CS201", 3, 4, "CSE")
	teacherToken := app.getToken(t, teacher)

	tests := []httpTest{
		{name: "auth required", path: "/api/subjects/" + ds.ID, wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)},
		{
			name: "teacher required", path: "/api/subjects/" + ds.ID, token: app.getToken(t, student),
			wantCode: http.StatusForbidden, wantData: marshallObj(t, httpErr{Error: "permission denied"}),
		},
		{name: "deleted", path: "/api/subjects/" + ds.ID, token: teacherToken, wantCode: http.StatusNoContent},
		{
			name: "already deleted", path: "/api/subjects/" + ds.ID, token: teacherToken,
			wantCode: http.StatusNotFound, wantData: marshallObj(t, httpErr{Error: "subject not found"}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodDelete

		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.serve(tt))
		})
	}
}
