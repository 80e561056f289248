package grading

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/aasim911-prog/department/core"
	"github.com/aasim911-prog/department/core/mark"
	"github.com/aasim911-prog/department/core/subject"
	"github.com/aasim911-prog/department/core/user"
)

var (
	// errors
	ErrStudentNotFound = errors.New("student not found")
)

type (
	// RecordStore supplies the records a transcript is computed from.
	RecordStore interface {
		// GetStudent finds a student by their public student ID; returns user.ErrNotFound if none.
		GetStudent(ctx context.Context, studentID string) (user.User, error)
		// StudentMarks returns the marks of a student, identified by their internal User.ID.
		StudentMarks(ctx context.Context, userID string) ([]mark.Mark, error)
		DepartmentSubjects(ctx context.Context, department string) ([]subject.Subject, error)
	}

	Service struct {
		store RecordStore
	}
)

func NewService(store RecordStore) *Service {
	return &Service{store: store}
}

// records fetches a student then, concurrently, their marks & their department's subjects.
func (svc *Service) records(ctx context.Context, studentID string) (user.User, []subject.Subject, []mark.Mark, error) {
	student, err := svc.store.GetStudent(ctx, core.CleanString(studentID))
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return user.User{}, nil, nil, ErrStudentNotFound
		}
		return user.User{}, nil, nil, errors.Wrap(err, "getting student")
	}

	var (
		subjects []subject.Subject
		marks    []mark.Mark
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		marks, err = svc.store.StudentMarks(gctx, student.ID)
		return errors.Wrap(err, "querying student marks")
	})
	g.Go(func() error {
		var err error
		subjects, err = svc.store.DepartmentSubjects(gctx, student.Department)
		return errors.Wrap(err, "querying department subjects")
	})
	if err = g.Wait(); err != nil {
		return user.User{}, nil, nil, err
	}
	return student, subjects, marks, nil
}

// StudentTranscript builds the transcript of the student with the given public student ID.
func (svc *Service) StudentTranscript(ctx context.Context, studentID string) (Transcript, error) {
	student, subjects, marks, err := svc.records(ctx, studentID)
	if err != nil {
		return Transcript{}, err
	}
	return BuildTranscript(student, subjects, marks), nil
}

// StudentSemester aggregates a single semester of the student with the given public student ID.
func (svc *Service) StudentSemester(ctx context.Context, studentID string, semester int) (SemesterSummary, error) {
	if !core.ValidSemester(semester) {
		msg := fmt.Sprintf("semester must be between %d and %d", core.FirstSemester, core.LastSemester)
		return SemesterSummary{}, core.NewValidationError(nil, core.FieldError{Field: "semester", Error: msg})
	}
	_, subjects, marks, err := svc.records(ctx, studentID)
	if err != nil {
		return SemesterSummary{}, err
	}
	return AggregateSemester(semester, subjects, marks), nil
}

// repositoryStore is a RecordStore backed by the domain repositories.
type repositoryStore struct {
	users    user.Repository
	subjects subject.Repository
	marks    mark.Repository
}

var _ RecordStore = (*repositoryStore)(nil) // interface compliance check

func NewRepositoryStore(users user.Repository, subjects subject.Repository, marks mark.Repository) RecordStore {
	return &repositoryStore{users: users, subjects: subjects, marks: marks}
}

func (rs *repositoryStore) GetStudent(ctx context.Context, studentID string) (user.User, error) {
	if studentID == "" {
		return user.User{}, user.ErrNotFound
	}
	return rs.users.GetUser(ctx, user.GetFilter{StudentID: studentID})
}

func (rs *repositoryStore) StudentMarks(ctx context.Context, userID string) ([]mark.Mark, error) {
	return rs.marks.QueryMarks(ctx, &mark.QueryFilter{StudentID: userID})
}

func (rs *repositoryStore) DepartmentSubjects(ctx context.Context, department string) ([]subject.Subject, error) {
	return rs.subjects.QuerySubjects(ctx, &subject.QueryFilter{Department: department})
}
