package mark

import (
	"context"
	"time"
)

type (
	Repository interface {
		// UpsertMark inserts mrk, or overwrites the Mark already stored for its (StudentID, SubjectID) pair.
		// The stored Mark keeps its original ID.
		UpsertMark(ctx context.Context, mrk Mark) (Mark, error)
		// QueryMarks applies AND operation on available QueryFilter fields; marks are ordered by last update.
		QueryMarks(ctx context.Context, filter *QueryFilter) ([]Mark, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Upsert(ctx context.Context, nm NewMark) (Mark, error) {
	mrk := Mark{
		StudentID: nm.StudentID,
		SubjectID: nm.SubjectID,
		Semester:  nm.Semester,
		Internal1: nm.Internal1,
		Internal2: nm.Internal2,
		Internal3: nm.Internal3,
		FinalExam: nm.FinalExam,
		UpdatedAt: time.Now().UTC(),
	}
	return svc.repo.UpsertMark(ctx, mrk)
}

// QueryByStudent returns the marks of a student, identified by their internal User.ID.
func (svc *Service) QueryByStudent(ctx context.Context, userID string) ([]Mark, error) {
	return svc.repo.QueryMarks(ctx, &QueryFilter{StudentID: userID})
}

func (svc *Service) QueryBySubject(ctx context.Context, subjectID string) ([]Mark, error) {
	return svc.repo.QueryMarks(ctx, &QueryFilter{SubjectID: subjectID})
}
