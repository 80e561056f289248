// Package sqlxrepos implements the domain repositories on PostgreSQL.
package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// get runs a named query against exec & scans the first row into dest.
func get(ctx context.Context, exec sqlx.ExtContext, dest interface{}, query string, arg interface{}) error {
	q, args, err := sqlx.Named(query, arg)
	if err != nil {
		return errors.Wrap(err, "binding named query")
	}
	return sqlx.GetContext(ctx, exec, dest, exec.Rebind(q), args...)
}

// exists reports whether query returns at least one row.
func exists(ctx context.Context, exec sqlx.ExtContext, query string, args ...interface{}) (bool, error) {
	var found bool
	err := sqlx.GetContext(ctx, exec, &found, "SELECT EXISTS ("+query+")", args...)
	return found, err
}

// isUUID filters out ids that would make postgres fail on uuid columns.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// trapNoRowsErr maps psql "no rows" err to notFound
func trapNoRowsErr(err error, notFound error, msg string) error {
	if err == sql.ErrNoRows {
		return notFound
	}
	return errors.Wrap(err, msg)
}
