package mongorepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aasim911-prog/department/core/user"
)

type userDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email,omitempty"`
	StudentID    string    `bson:"student_id,omitempty"`
	Role         string    `bson:"role"`
	Department   string    `bson:"department"`
	Semester     *int      `bson:"semester,omitempty"`
	PasswordHash []byte    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

func toUserDoc(usr user.User) userDoc {
	return userDoc{
		ID:           usr.ID,
		Name:         usr.Name,
		Email:        usr.Email,
		StudentID:    usr.StudentID,
		Role:         usr.Role,
		Department:   usr.Department,
		Semester:     usr.Semester,
		PasswordHash: usr.PasswordHash,
		CreatedAt:    usr.CreatedAt.UTC(),
	}
}

func (doc userDoc) user() user.User {
	return user.User{
		ID:           doc.ID,
		Name:         doc.Name,
		Email:        doc.Email,
		StudentID:    doc.StudentID,
		Role:         doc.Role,
		Department:   doc.Department,
		Semester:     doc.Semester,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt.UTC(),
	}
}

type userRepository struct {
	col *mongo.Collection
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *mongo.Database) *userRepository {
	return &userRepository{col: db.Collection(userCollection)}
}

func (repo userRepository) taken(ctx context.Context, field, value string) (bool, error) {
	n, err := repo.col.CountDocuments(ctx, bson.M{field: value})
	return n > 0, err
}

func (repo userRepository) CheckUniqueness(ctx context.Context, email, studentID string) error {
	if email != "" {
		taken, err := repo.taken(ctx, "email", email)
		if err != nil {
			return errors.Wrap(err, "checking email uniqueness")
		}
		if taken {
			return user.ErrEmailExists
		}
	}
	if studentID != "" {
		taken, err := repo.taken(ctx, "student_id", studentID)
		if err != nil {
			return errors.Wrap(err, "checking student ID uniqueness")
		}
		if taken {
			return user.ErrStudentIDExists
		}
	}
	return nil
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	usr.ID = uuid.New().String()
	doc := toUserDoc(usr)
	if _, err := repo.col.InsertOne(ctx, doc); err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return doc.user(), nil
}

func (repo userRepository) GetUser(ctx context.Context, filter user.GetFilter) (user.User, error) {
	var query bson.M
	switch {
	case filter.ID != "":
		query = bson.M{"_id": filter.ID}
	case filter.Email != "":
		query = bson.M{"email": filter.Email}
	case filter.StudentID != "":
		query = bson.M{"student_id": filter.StudentID}
	default:
		return user.User{}, user.ErrNotFound
	}

	var doc userDoc
	if err := repo.col.FindOne(ctx, query).Decode(&doc); err != nil {
		return user.User{}, trapNoDocsErr(err, user.ErrNotFound, "getting user")
	}
	return doc.user(), nil
}

func (repo userRepository) QueryUsers(ctx context.Context, filter *user.QueryFilter) ([]user.User, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Role != "" {
			query["role"] = filter.Role
		}
		if filter.Department != "" {
			query["department"] = filter.Department
		}
		if filter.Semester != 0 {
			query["semester"] = filter.Semester
		}
	}

	cur, err := repo.col.Find(ctx, query, sortBy("created_at"))
	if err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	var docs []userDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding users")
	}

	users := make([]user.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.user())
	}
	return users, nil
}

func (repo userRepository) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	doc := toUserDoc(usr)
	res, err := repo.col.ReplaceOne(ctx, bson.M{"_id": usr.ID}, doc)
	if err != nil {
		return user.User{}, errors.Wrap(err, "updating user")
	}
	if res.MatchedCount == 0 {
		return user.User{}, user.ErrNotFound
	}
	return doc.user(), nil
}
