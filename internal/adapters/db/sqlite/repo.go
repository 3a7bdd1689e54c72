package sqlite

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

// Repo bundles the sqlite handle with a squirrel builder for the
// snapshot storage. A nil handle is legal and marks a session where
// the database could not be opened; repositories built on it degrade
// to memory-only behavior instead of touching the connection.
type Repo struct {
	DB *sql.DB
	SQ sq.StatementBuilderType
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db, SQ: sq.StatementBuilder}
}

// Available reports whether a database connection is actually backing
// this repo.
func (r *Repo) Available() bool { return r.DB != nil }
