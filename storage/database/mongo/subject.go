package mongorepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aasim911-prog/department/core/subject"
)

type subjectDoc struct {
	ID         string    `bson:"_id"`
	Name       string    `bson:"name"`
	Code       string    `bson:"code"`
	Semester   int       `bson:"semester"`
	Credits    int       `bson:"credits"`
	Department string    `bson:"department"`
	CreatedAt  time.Time `bson:"created_at"`
}

type subjectRepository struct {
	col *mongo.Collection
}

var _ subject.Repository = (*subjectRepository)(nil) // interface compliance check

func NewSubjectRepository(db *mongo.Database) *subjectRepository {
	return &subjectRepository{col: db.Collection(subjectCollection)}
}

func (repo subjectRepository) CheckCodeUniqueness(ctx context.Context, code string, semester int, department string) error {
	n, err := repo.col.CountDocuments(ctx, bson.M{"code": code, "semester": semester, "department": department})
	if err != nil {
		return errors.Wrap(err, "checking subject code uniqueness")
	}
	if n > 0 {
		return subject.ErrCodeExists
	}
	return nil
}

func (repo subjectRepository) CreateSubject(ctx context.Context, sbj subject.Subject) (subject.Subject, error) {
	sbj.ID = uuid.New().String()
	sbj.CreatedAt = sbj.CreatedAt.UTC()
	if _, err := repo.col.InsertOne(ctx, subjectDoc(sbj)); err != nil {
		return subject.Subject{}, errors.Wrap(err, "inserting subject")
	}
	return sbj, nil
}

func (repo subjectRepository) GetSubject(ctx context.Context, id string) (subject.Subject, error) {
	var doc subjectDoc
	if err := repo.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return subject.Subject{}, trapNoDocsErr(err, subject.ErrNotFound, "getting subject")
	}
	doc.CreatedAt = doc.CreatedAt.UTC()
	return subject.Subject(doc), nil
}

func (repo subjectRepository) QuerySubjects(ctx context.Context, filter *subject.QueryFilter) ([]subject.Subject, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Semester != 0 {
			query["semester"] = filter.Semester
		}
		if filter.Department != "" {
			query["department"] = filter.Department
		}
	}

	cur, err := repo.col.Find(ctx, query, sortBy("created_at"))
	if err != nil {
		return nil, errors.Wrap(err, "querying subjects")
	}
	var docs []subjectDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding subjects")
	}

	subjects := make([]subject.Subject, 0, len(docs))
	for _, doc := range docs {
		doc.CreatedAt = doc.CreatedAt.UTC()
		subjects = append(subjects, subject.Subject(doc))
	}
	return subjects, nil
}

func (repo subjectRepository) DeleteSubject(ctx context.Context, id string) error {
	res, err := repo.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "deleting subject")
	}
	if res.DeletedCount == 0 {
		return subject.ErrNotFound
	}
	return nil
}
