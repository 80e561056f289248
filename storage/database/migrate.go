package database

import (
	"database/sql"
	"embed"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

func init() {
	goose.SetBaseFS(migrations)
}

// RunMigrations runs a goose command (up, down, status, version, redo, reset...) against the embedded migrations.
func RunMigrations(command string, db *sql.DB, args ...string) error {
	if db == nil {
		return errors.New("migrations need a SQL database")
	}
	if err := goose.SetDialect(postgresDriver); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}
	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		return errors.Wrapf(err, "running migration command %q", command)
	}
	return nil
}

// Migrate brings the database schema up to date.
func Migrate(db *sql.DB) error {
	return RunMigrations("up", db)
}
