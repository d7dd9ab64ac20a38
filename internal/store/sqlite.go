// Package store keeps the history of suite runs in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"myregex/internal/suite"
)

// Run is one recorded suite run.
type Run struct {
	ID        int64
	Source    string
	StartedAt time.Time
	Passed    bool
}

// Record is one stored verdict. Compile failures have Error set and no
// Input.
type Record struct {
	Suite    string
	Pattern  string
	Input    string
	Expected bool
	Matched  bool
	Error    string
}

// Failed reports whether the record is a compile failure or a wrong verdict.
func (r Record) Failed() bool { return r.Error != "" || r.Expected != r.Matched }

// SQLiteStore records runs in a SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates or opens the database at path.
// Use ":memory:" for an in-memory database (useful for testing).
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// an in-memory database lives as long as its single connection
	db.SetMaxOpenConns(1)

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

// RecordRun stores a report under a new run and returns the run ID.
func (s *SQLiteStore) RecordRun(ctx context.Context, source string, report *suite.Report) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO runs (source, started_at, passed) VALUES (?, ?, ?)",
		source, s.now().UTC().Format(time.RFC3339Nano), report.Passed())
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (run_id, suite, pattern, input, expected, matched, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, ce := range report.CompileErrors {
		if _, err := stmt.ExecContext(ctx, runID, ce.Suite, ce.Pattern, "", false, false, ce.Err.Error()); err != nil {
			return 0, fmt.Errorf("inserting compile error: %w", err)
		}
	}
	for _, r := range report.Results {
		if _, err := stmt.ExecContext(ctx, runID, r.Suite, r.Pattern, r.Input, r.Want, r.Got, ""); err != nil {
			return 0, fmt.Errorf("inserting result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Runs lists recorded runs, newest first.
func (s *SQLiteStore) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, source, started_at, passed FROM runs ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			started string
		)
		if err := rows.Scan(&r.ID, &r.Source, &started, &r.Passed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parsing start time of run %d: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the records of one run in insertion order.
func (s *SQLiteStore) Results(ctx context.Context, runID int64) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT suite, pattern, input, expected, matched, error
		FROM results WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Suite, &r.Pattern, &r.Input, &r.Expected, &r.Matched, &r.Error); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
