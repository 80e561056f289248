// Package mongorepos implements the domain repositories on MongoDB.
package mongorepos

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/aasim911-prog/department/core"
)

// collections
const (
	userCollection    = "users"
	subjectCollection = "subjects"
	markCollection    = "marks"
)

// Open connects to MongoDB, checks the primary is reachable & ensures the collection indexes.
func Open(ctx context.Context, conf *core.Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, conf.Database.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.Database.MongoURI))
	if err != nil {
		return nil, nil, errors.Wrap(err, "connecting to mongo")
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errors.Wrap(err, "pinging mongo")
	}

	db := client.Database(conf.Database.Name)
	if err = EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return client, db, nil
}

// EnsureIndexes creates the uniqueness & lookup indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		userCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
			{Keys: bson.D{{Key: "student_id", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
		},
		subjectCollection: {
			{
				Keys:    bson.D{{Key: "code", Value: 1}, {Key: "semester", Value: 1}, {Key: "department", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "department", Value: 1}}},
		},
		markCollection: {
			{Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "subject_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "subject_id", Value: 1}}},
		},
	}
	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "creating %s indexes", name)
		}
	}
	return nil
}

// trapNoDocsErr maps mongo "no documents" err to notFound
func trapNoDocsErr(err error, notFound error, msg string) error {
	if err == mongo.ErrNoDocuments {
		return notFound
	}
	return errors.Wrap(err, msg)
}

// sortBy returns find options sorting by field then _id, ascending.
func sortBy(field string) *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: field, Value: 1}, {Key: "_id", Value: 1}})
}
