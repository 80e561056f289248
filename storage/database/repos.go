package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aasim911-prog/department/core"
	"github.com/aasim911-prog/department/core/mark"
	"github.com/aasim911-prog/department/core/subject"
	"github.com/aasim911-prog/department/core/user"
	inmemdb "github.com/aasim911-prog/department/storage/database/inmem"
	mongorepos "github.com/aasim911-prog/department/storage/database/mongo"
	sqlxrepos "github.com/aasim911-prog/department/storage/database/sqlx"
)

// Repositories bundles the repositories of one storage engine.
type Repositories struct {
	Users    user.Repository
	Subjects subject.Repository
	Marks    mark.Repository

	// SQL is only set for the postgres engine (migrations need it).
	SQL *sqlx.DB

	mongo *mongo.Client
}

// OpenRepositories opens the storage engine configured by conf.Database.Engine.
func OpenRepositories(ctx context.Context, conf *core.Config, logger core.Logger) (*Repositories, error) {
	switch conf.Database.Engine {
	case core.EnginePostgres:
		if err := CreateIfNotExist(ctx, conf); err != nil {
			logger.Warn("could not create database, assuming it exists", err)
		}
		db, err := Open(ctx, conf)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to postgres", map[string]interface{}{"host": conf.Database.Address(), "db": conf.Database.Name})
		return &Repositories{
			Users:    sqlxrepos.NewUserRepository(db),
			Subjects: sqlxrepos.NewSubjectRepository(db),
			Marks:    sqlxrepos.NewMarkRepository(db),
			SQL:      db,
		}, nil

	case core.EngineMongo:
		client, db, err := mongorepos.Open(ctx, conf)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to mongo", map[string]interface{}{"db": conf.Database.Name})
		return &Repositories{
			Users:    mongorepos.NewUserRepository(db),
			Subjects: mongorepos.NewSubjectRepository(db),
			Marks:    mongorepos.NewMarkRepository(db),
			mongo:    client,
		}, nil

	case core.EngineMemory:
		db, err := inmemdb.Open()
		if err != nil {
			return nil, err
		}
		logger.Warn("using the in-memory database, data will be lost on exit")
		return NewInMemRepositories(db), nil
	}
	return nil, errors.Errorf("unknown database engine %q", conf.Database.Engine)
}

// NewInMemRepositories wraps an in-memory database.
func NewInMemRepositories(db *inmemdb.DB) *Repositories {
	return &Repositories{
		Users:    inmemdb.NewUserRepository(db),
		Subjects: inmemdb.NewSubjectRepository(db),
		Marks:    inmemdb.NewMarkRepository(db),
	}
}

func (r *Repositories) Close() error {
	switch {
	case r.SQL != nil:
		return r.SQL.Close()
	case r.mongo != nil:
		return r.mongo.Disconnect(context.Background())
	}
	return nil
}
