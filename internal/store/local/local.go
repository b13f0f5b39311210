// Package local is the SQLite history store, used when no PostgreSQL DSN is
// configured or for single-user installs.
package local

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store implements store.Store on SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at path and creates the schema
// if it does not exist.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := MemoryPath
	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
		dsn = path + "?_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == MemoryPath {
		// Every new connection to :memory: is a separate empty database.
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db}
	if err := s.createSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	log.Debugf("Opened SQLite history store at %s", path)
	return s, nil
}

func (s *Store) createSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS artifacts (
			id         TEXT PRIMARY KEY,
			kind       TEXT NOT NULL,
			topic      TEXT NOT NULL,
			category   TEXT NOT NULL,
			mode       TEXT NOT NULL,
			persona    TEXT NOT NULL,
			method     TEXT NOT NULL,
			payload    TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_artifacts_created_at ON artifacts(created_at)`,
		`CREATE TABLE IF NOT EXISTS ai_usage_logs (
			id            TEXT PRIMARY KEY,
			timestamp     TEXT NOT NULL,
			provider_name TEXT NOT NULL,
			service_type  TEXT NOT NULL,
			model_name    TEXT NOT NULL,
			mode          TEXT NOT NULL,
			input_tokens  INTEGER NOT NULL,
			output_tokens INTEGER NOT NULL,
			cost          REAL NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection.
func (s *Store) Close() {
	if err := s.db.Close(); err != nil {
		log.Warnf("Failed to close SQLite store: %v", err)
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(v string) (time.Time, error) {
	return time.Parse(timeLayout, v)
}
