// Package database wraps the SQL the API issues against Postgres, in the
// shape of a single Queries value handed to the handlers.
package database

import (
	"database/sql"
	"errors"
)

// ErrVersionConflict reports that a todo aggregate was rewritten by a
// concurrent request between this request's read and write.
var ErrVersionConflict = errors.New("todo was modified concurrently")

type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}
