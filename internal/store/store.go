// Package store writes snapshots of a loaded course catalog to SQLite.
//
// This is a one-way export for inspection with external tooling: the
// advisor never reads a catalog back from a snapshot, and nothing written
// here feeds future loads.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"iter"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mideakin/advisor/internal/catalog"
)

//go:embed schema.sql
var schemaSQL string

// Store is a handle to a snapshot database.
type Store struct {
	db *sql.DB
}

// Open creates or opens a snapshot database at the given path and applies
// the schema. Safe to call on an existing snapshot; the schema is
// idempotent.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY during snapshot writes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("executing %q: %w", pragma, err)
		}
	}
	return nil
}

// SaveSnapshot replaces the database contents with the given courses. The
// whole snapshot is written in one transaction, so a failed save leaves the
// previous snapshot intact. Returns the number of courses written.
func (s *Store) SaveSnapshot(ctx context.Context, source string, courses iter.Seq[catalog.Course]) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM prerequisites",
		"DELETE FROM courses",
		"DELETE FROM snapshot",
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return 0, fmt.Errorf("clearing previous snapshot: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO snapshot (id, source) VALUES (1, ?)", source); err != nil {
		return 0, fmt.Errorf("recording snapshot source: %w", err)
	}

	insertCourse, err := tx.PrepareContext(ctx,
		"INSERT INTO courses (number, title) VALUES (?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing course insert: %w", err)
	}
	defer insertCourse.Close()

	insertPrereq, err := tx.PrepareContext(ctx,
		"INSERT INTO prerequisites (course_number, position, prereq_number) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing prerequisite insert: %w", err)
	}
	defer insertPrereq.Close()

	count := 0
	for course := range courses {
		if _, err := insertCourse.ExecContext(ctx, course.Number, course.Title); err != nil {
			return 0, fmt.Errorf("inserting course %s: %w", course.Number, err)
		}
		for pos, prereq := range course.Prerequisites {
			if _, err := insertPrereq.ExecContext(ctx, course.Number, pos, prereq); err != nil {
				return 0, fmt.Errorf("inserting prerequisite %s of %s: %w", prereq, course.Number, err)
			}
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing snapshot: %w", err)
	}
	return count, nil
}

// CountCourses returns the number of courses in the current snapshot.
func (s *Store) CountCourses(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM courses").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting courses: %w", err)
	}
	return n, nil
}

// SnapshotSource returns the source recorded for the current snapshot, or
// "" if no snapshot has been saved.
func (s *Store) SnapshotSource(ctx context.Context) (string, error) {
	var source string
	err := s.db.QueryRowContext(ctx, "SELECT source FROM snapshot WHERE id = 1").Scan(&source)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading snapshot source: %w", err)
	}
	return source, nil
}
