package local

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"bubble/internal/models"
	"bubble/internal/store"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

const artifactColumns = `id, kind, topic, category, mode, persona, method, payload, created_at`

// SaveArtifact inserts an artifact. A zero ID is replaced with a new UUID and
// a zero CreatedAt with the current time.
func (s *Store) SaveArtifact(ctx context.Context, a *models.Artifact) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO artifacts (`+artifactColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID.String(), a.Kind, a.Topic, a.Category, a.Mode, a.Persona, a.Method,
		string(a.Payload), formatTime(a.CreatedAt),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("artifact %s: %w", a.ID, store.ErrDuplicate)
		}
		return fmt.Errorf("inserting artifact: %w", err)
	}
	return nil
}

// GetArtifact fetches one artifact by ID.
func (s *Store) GetArtifact(ctx context.Context, id uuid.UUID) (*models.Artifact, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+artifactColumns+` FROM artifacts WHERE id = ?`, id.String())
	a, err := scanArtifact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("getting artifact %s: %w", id, err)
	}
	return a, nil
}

// ListArtifacts returns artifacts newest first, optionally filtered by kind.
func (s *Store) ListArtifacts(ctx context.Context, kind string, limit, offset int) ([]*models.Artifact, error) {
	var (
		where strings.Builder
		args  []any
	)
	if kind != "" {
		where.WriteString(` WHERE kind = ?`)
		args = append(args, kind)
	}
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+artifactColumns+` FROM artifacts`+where.String()+` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("querying artifacts: %w", err)
	}
	defer rows.Close()

	var out []*models.Artifact
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArtifact(row scanner) (*models.Artifact, error) {
	var (
		a                  models.Artifact
		id, payload, stamp string
	)
	if err := row.Scan(&id, &a.Kind, &a.Topic, &a.Category, &a.Mode, &a.Persona, &a.Method, &payload, &stamp); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("artifact has malformed id %q: %w", id, err)
	}
	created, err := parseTime(stamp)
	if err != nil {
		return nil, fmt.Errorf("artifact %s has malformed created_at: %w", id, err)
	}
	a.ID = parsed
	a.Payload = []byte(payload)
	a.CreatedAt = created
	return &a, nil
}
