package primary

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// StoreImpl implements store.Store using PostgreSQL.
type StoreImpl struct {
	db *pgxpool.Pool
}

const schema = `
CREATE TABLE IF NOT EXISTS artifacts (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	topic      TEXT NOT NULL,
	category   TEXT NOT NULL,
	mode       TEXT NOT NULL,
	persona    TEXT NOT NULL,
	method     TEXT NOT NULL,
	payload    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS artifacts_created_at_idx ON artifacts (created_at DESC);
CREATE TABLE IF NOT EXISTS ai_usage_logs (
	id            TEXT PRIMARY KEY,
	timestamp     TIMESTAMPTZ NOT NULL,
	provider_name TEXT NOT NULL,
	service_type  TEXT NOT NULL,
	model_name    TEXT NOT NULL,
	mode          TEXT NOT NULL,
	input_tokens  INTEGER NOT NULL,
	output_tokens INTEGER NOT NULL,
	cost          DOUBLE PRECISION NOT NULL
);
`

// NewPrimaryStore connects to PostgreSQL and creates the schema if needed.
func NewPrimaryStore(ctx context.Context, dsn string) (*StoreImpl, error) {
	if dsn == "" {
		return nil, errors.New("database DSN cannot be empty")
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database DSN: %w", err)
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if _, err := dbpool.Exec(ctx, schema); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("unable to create schema: %w", err)
	}
	log.Debugf("Connected to PostgreSQL history store (%s)", poolConfig.ConnConfig.Host)

	return &StoreImpl{db: dbpool}, nil
}

// Ping checks the database connection.
func (s *StoreImpl) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the database connection pool.
func (s *StoreImpl) Close() {
	s.db.Close()
}
