// Package inmemdb implements the repositories on top of in-process maps. Data lives as long as the DB value.
package inmemdb

import (
	"sync"

	"github.com/aasim911-prog/department/core/mark"
	"github.com/aasim911-prog/department/core/subject"
	"github.com/aasim911-prog/department/core/user"
)

type (
	DB struct {
		user    *userTable
		subject *subjectTable
		mark    *markTable
	}

	// seq keeps insertion order, maps don't.
	userRow struct {
		user.User
		seq int
	}

	userTable struct {
		sync.RWMutex
		seq   int
		table map[string]*userRow
	}

	subjectRow struct {
		subject.Subject
		seq int
	}

	subjectTable struct {
		sync.RWMutex
		seq   int
		table map[string]*subjectRow
	}

	markRow struct {
		mark.Mark
		seq int
	}

	markTable struct {
		sync.RWMutex
		seq   int
		table map[string]*markRow
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:    &userTable{table: make(map[string]*userRow)},
		subject: &subjectTable{table: make(map[string]*subjectRow)},
		mark:    &markTable{table: make(map[string]*markRow)},
	}
	return db, nil
}
