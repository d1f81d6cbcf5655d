// File: run_store.go
// Title: Compilation Run History
// Description: SQLite-backed history of compiled units. Every unit checked
//              by the compiler can be recorded with its outcome so earlier
//              sessions can be listed and filtered.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/jackc/foundation/core/error"
)

// Status is the outcome of one compiled unit
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Run is one recorded unit compilation. Kind, Lexeme and Line describe
// the fault and are empty for successful units.
type Run struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Timestamp  time.Time `json:"timestamp"`
	File       string    `json:"file"`
	Status     Status    `json:"status"`
	Kind       string    `json:"kind,omitempty"`
	Lexeme     string    `json:"lexeme,omitempty"`
	Line       int       `json:"line,omitempty"`
	DurationMs float64   `json:"duration_ms"`
}

// RunFilter defines criteria for listing runs
type RunFilter struct {
	SessionID string
	File      string
	Status    Status
	Since     time.Time
	Limit     int
}

// RunStore persists compilation runs
type RunStore interface {
	Record(ctx context.Context, run *Run) error
	Query(ctx context.Context, filter RunFilter) ([]*Run, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRunStore implements RunStore using SQLite
type SQLiteRunStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteRunConfig holds configuration for the SQLite store
type SQLiteRunConfig struct {
	Path        string
	BusyTimeout time.Duration
}

// Open creates the database file and schema if needed
func Open(cfg SQLiteRunConfig) (*SQLiteRunStore, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, storeError(err, "failed to create history directory", "store.Open").
			WithDetail("path", cfg.Path)
	}

	dsn := cfg.Path + "?_journal_mode=WAL&_synchronous=NORMAL"
	if cfg.BusyTimeout > 0 {
		dsn += fmt.Sprintf("&_busy_timeout=%d", cfg.BusyTimeout.Milliseconds())
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, storeError(err, "failed to open history database", "store.Open").
			WithDetail("path", cfg.Path)
	}

	s := &SQLiteRunStore{db: db}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, storeError(err, "failed to initialize history schema", "store.Open").
			WithDetail("path", cfg.Path)
	}

	return s, nil
}

func (s *SQLiteRunStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		file TEXT NOT NULL,
		status TEXT NOT NULL,
		kind TEXT,
		lexeme TEXT,
		line INTEGER,
		duration_ms REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session_id);
	CREATE INDEX IF NOT EXISTS idx_runs_file ON runs(file);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores a run. Missing IDs and timestamps are filled in.
func (s *SQLiteRunStore) Record(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now()
	}
	if run.Status == "" {
		run.Status = StatusOK
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, session_id, timestamp, file, status, kind, lexeme, line, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.SessionID, run.Timestamp.UTC(), run.File, string(run.Status),
		nullString(run.Kind), nullString(run.Lexeme), nullInt(run.Line), run.DurationMs)
	if err != nil {
		return storeError(err, "failed to insert run", "store.Record").
			WithDetail("file", run.File)
	}

	return nil
}

// Query lists runs matching the filter, newest first
func (s *SQLiteRunStore) Query(ctx context.Context, filter RunFilter) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, session_id, timestamp, file, status, kind, lexeme, line, duration_ms FROM runs WHERE 1=1`
	var args []interface{}

	if filter.SessionID != "" {
		query += " AND session_id = ?"
		args = append(args, filter.SessionID)
	}
	if filter.File != "" {
		query += " AND file = ?"
		args = append(args, filter.File)
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if !filter.Since.IsZero() {
		query += " AND timestamp >= ?"
		args = append(args, filter.Since.UTC())
	}

	// rowid keeps insertion order for runs recorded within the same instant
	query += " ORDER BY timestamp DESC, rowid DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "failed to query runs", "store.Query")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var status string
		var kind, lexeme sql.NullString
		var line sql.NullInt64

		if err := rows.Scan(&run.ID, &run.SessionID, &run.Timestamp, &run.File, &status,
			&kind, &lexeme, &line, &run.DurationMs); err != nil {
			return nil, storeError(err, "failed to scan run", "store.Query")
		}

		run.Status = Status(status)
		run.Kind = kind.String
		run.Lexeme = lexeme.String
		run.Line = int(line.Int64)
		runs = append(runs, &run)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(err, "failed to read runs", "store.Query")
	}

	return runs, nil
}

// Recent returns the latest runs, newest first
func (s *SQLiteRunStore) Recent(ctx context.Context, limit int) ([]*Run, error) {
	return s.Query(ctx, RunFilter{Limit: limit})
}

// Prune deletes runs older than the given age
func (s *SQLiteRunStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan).UTC()
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE timestamp < ?", cutoff)
	if err != nil {
		return 0, storeError(err, "failed to prune runs", "store.Prune")
	}

	return res.RowsAffected()
}

// Close closes the database
func (s *SQLiteRunStore) Close() error {
	return s.db.Close()
}

func storeError(err error, msg, op string) *mdwerror.Error {
	return mdwerror.Wrap(err, msg).
		WithCode(mdwerror.CodeStoreError).
		WithOperation(op)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}
