package mongorepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aasim911-prog/department/core/mark"
)

type markDoc struct {
	ID        string    `bson:"_id"`
	StudentID string    `bson:"student_id"`
	SubjectID string    `bson:"subject_id"`
	Semester  int       `bson:"semester"`
	Internal1 *float64  `bson:"internal1"`
	Internal2 *float64  `bson:"internal2"`
	Internal3 *float64  `bson:"internal3"`
	FinalExam *float64  `bson:"final_exam"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (doc markDoc) mark() mark.Mark {
	mrk := mark.Mark(doc)
	mrk.UpdatedAt = mrk.UpdatedAt.UTC()
	return mrk
}

type markRepository struct {
	col *mongo.Collection
}

var _ mark.Repository = (*markRepository)(nil) // interface compliance check

func NewMarkRepository(db *mongo.Database) *markRepository {
	return &markRepository{col: db.Collection(markCollection)}
}

func (repo markRepository) UpsertMark(ctx context.Context, mrk mark.Mark) (mark.Mark, error) {
	filter := bson.M{"student_id": mrk.StudentID, "subject_id": mrk.SubjectID}
	update := bson.M{
		"$set": bson.M{
			"semester":   mrk.Semester,
			"internal1":  mrk.Internal1,
			"internal2":  mrk.Internal2,
			"internal3":  mrk.Internal3,
			"final_exam": mrk.FinalExam,
			"updated_at": mrk.UpdatedAt.UTC(),
		},
		"$setOnInsert": bson.M{"_id": uuid.New().String()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc markDoc
	if err := repo.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return mark.Mark{}, errors.Wrap(err, "upserting mark")
	}
	return doc.mark(), nil
}

func (repo markRepository) QueryMarks(ctx context.Context, filter *mark.QueryFilter) ([]mark.Mark, error) {
	query := bson.M{}
	if filter != nil {
		if filter.StudentID != "" {
			query["student_id"] = filter.StudentID
		}
		if filter.SubjectID != "" {
			query["subject_id"] = filter.SubjectID
		}
	}

	cur, err := repo.col.Find(ctx, query, sortBy("updated_at"))
	if err != nil {
		return nil, errors.Wrap(err, "querying marks")
	}
	var docs []markDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding marks")
	}

	marks := make([]mark.Mark, 0, len(docs))
	for _, doc := range docs {
		marks = append(marks, doc.mark())
	}
	return marks, nil
}
