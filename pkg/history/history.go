// Package history records the outcome of every processed source in a local
// SQLite database so past runs can be inspected with `jobsift history`.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps the history database.
type Store struct {
	db *sql.DB
}

// Entry is one recorded per-source outcome.
type Entry struct {
	ID           int64
	URL          string
	Status       string // "ok", "no_data" or "failed"
	KeywordCount int
	JobTitle     string
	Company      string
	Error        string
	CreatedAt    time.Time
}

// Statuses recorded per source.
const (
	StatusOK     = "ok"
	StatusNoData = "no_data"
	StatusFailed = "failed"
)

// Open opens (or creates) the history database at dbPath and ensures the
// schema exists.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history db: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS scan_results (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		url           TEXT NOT NULL,
		status        TEXT NOT NULL,
		keyword_count INTEGER NOT NULL DEFAULT 0,
		job_title     TEXT NOT NULL DEFAULT '',
		company       TEXT NOT NULL DEFAULT '',
		error         TEXT NOT NULL DEFAULT '',
		created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create scan_results table: %w", err)
	}

	return &Store{db: db}, nil
}

// Record inserts one per-source outcome row.
func (s *Store) Record(e Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO scan_results (url, status, keyword_count, job_title, company, error)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.URL, e.Status, e.KeywordCount, e.JobTitle, e.Company, e.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to record result for %s: %w", e.URL, err)
	}
	return nil
}

// Recent returns up to limit rows, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, url, status, keyword_count, job_title, company, error, created_at
		 FROM scan_results ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan results: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.URL, &e.Status, &e.KeywordCount, &e.JobTitle, &e.Company, &e.Error, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
