// Package db provides SQLite storage for analyzed resume records.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// timeLayout is a fixed-width RFC 3339 form with nanoseconds, so stored
// timestamps compare correctly as strings in ORDER BY clauses. All writes
// are UTC.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store is the durable table of analyzed candidates, keyed by
// (full_name, job_role). It holds only the database path: each operation
// opens, uses, and closes its own connection, so the file on disk stays the
// single source of truth with no in-memory shadow.
type Store struct {
	path string
}

// NewStore returns a store for the SQLite database at path. Call Init once
// at process start to ensure the schema exists.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", s.path, err)
	}
	return db, nil
}

// Init ensures the resumes table exists. Idempotent; safe to call on every
// process start.
func (s *Store) Init(ctx context.Context) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS resumes (
			id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			job_role TEXT NOT NULL,
			match_score INTEGER NOT NULL,
			summary TEXT,
			experience_highlights TEXT,
			matching_skills TEXT,
			missing_skills TEXT,
			suggested_questions TEXT,
			uploaded_at TEXT NOT NULL,
			UNIQUE(full_name, job_role)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_resumes_job_role ON resumes(job_role)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	return nil
}
