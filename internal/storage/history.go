// Package storage persists parse runs in SQLite so trend tooling can
// compare issue counts across runs.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/MarkEWaite/analysis-model/internal/model"
)

// HistoryStore records one row per parse run plus one row per issue.
type HistoryStore struct {
	db *sql.DB
}

// RunSummary is one recorded parse run.
type RunSummary struct {
	ID       int64
	ParsedAt time.Time
	Tool     string
	Source   string
	Total    int
	Errors   int
	High     int
	Normal   int
	Low      int
}

// OpenHistory opens (or creates) the history database at path, enables
// WAL mode and creates the schema.
func OpenHistory(path string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}

	// WAL allows readers during writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS runs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		parsed_at   DATETIME NOT NULL,
		tool        TEXT NOT NULL,
		source      TEXT NOT NULL,
		total       INTEGER NOT NULL,
		errors      INTEGER NOT NULL,
		high        INTEGER NOT NULL,
		normal      INTEGER NOT NULL,
		low         INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS issues (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id      INTEGER NOT NULL REFERENCES runs(id),
		file_name   TEXT NOT NULL,
		line_start  INTEGER NOT NULL,
		category    TEXT NOT NULL,
		type        TEXT NOT NULL,
		severity    TEXT NOT NULL,
		message     TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_issues_run ON issues(run_id)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	// SQLite uses file-level locking; a single open connection avoids
	// SQLITE_BUSY from concurrent writers.
	db.SetMaxOpenConns(1)

	return &HistoryStore{db: db}, nil
}

// RecordRun stores the report of one parse and returns the run id.
func (s *HistoryStore) RecordRun(tool, source string, report *model.Report) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin run: %w", err)
	}
	defer tx.Rollback()

	var errors, high, normal, low int
	for _, issue := range report.Issues() {
		switch issue.Severity() {
		case model.SeverityError:
			errors++
		case model.SeverityWarningHigh:
			high++
		case model.SeverityWarningNormal:
			normal++
		case model.SeverityWarningLow:
			low++
		}
	}

	res, err := tx.Exec(
		`INSERT INTO runs (parsed_at, tool, source, total, errors, high, normal, low)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), tool, source, report.Size(), errors, high, normal, low)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO issues (run_id, file_name, line_start, category, type, severity, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing issue insert: %w", err)
	}
	defer stmt.Close()

	for _, issue := range report.Issues() {
		if _, err := stmt.Exec(runID, issue.FileName(), issue.LineStart(),
			issue.Category(), issue.Type(), issue.Severity().String(), issue.Message()); err != nil {
			return 0, fmt.Errorf("inserting issue: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Runs returns the most recent runs, newest first. If limit <= 0 all
// runs are returned.
func (s *HistoryStore) Runs(limit int) ([]RunSummary, error) {
	query := `SELECT id, parsed_at, tool, source, total, errors, high, normal, low
		FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.ParsedAt, &r.Tool, &r.Source,
			&r.Total, &r.Errors, &r.High, &r.Normal, &r.Low); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}
