package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/manthanmittal/portfolio-server/internal/domain"
	"github.com/manthanmittal/portfolio-server/internal/shared"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS submissions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		reason TEXT NOT NULL,
		message TEXT NOT NULL,
		client_key TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SaveSubmission records a validated contact-form submission. SQLite
// concurrency conflicts are retried briefly before giving up.
func (s *SQLiteStore) SaveSubmission(ctx context.Context, sub *domain.Submission) error {
	query := `
	INSERT INTO submissions (id, name, email, reason, message, client_key, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	var err error
	for attempt := 0; attempt < 3; attempt++ {
		_, err = s.db.ExecContext(ctx, query,
			sub.ID, sub.Name, sub.Email, sub.Reason, sub.Message,
			sub.ClientKey, sub.CreatedAt.Unix(),
		)
		if err == nil {
			return nil
		}
		if !shared.IsSQLiteConflictError(err) {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 50 * time.Millisecond):
		}
	}
	return fmt.Errorf("insert submission: %w", err)
}

// ListSubmissions retrieves the most recent submissions, newest first.
func (s *SQLiteStore) ListSubmissions(ctx context.Context, limit int) ([]*domain.Submission, error) {
	query := `
	SELECT id, name, email, reason, message, client_key, created_at
	FROM submissions ORDER BY created_at DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var subs []*domain.Submission
	for rows.Next() {
		var sub domain.Submission
		var createdAt int64
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Reason,
			&sub.Message, &sub.ClientKey, &createdAt); err != nil {
			return nil, fmt.Errorf("scan submission row: %w", err)
		}
		sub.CreatedAt = time.Unix(createdAt, 0)
		subs = append(subs, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submission rows: %w", err)
	}
	return subs, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
