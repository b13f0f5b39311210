package primary

import (
	"context"
	"errors"
	"fmt"

	"bubble/internal/models"
	"bubble/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const artifactColumns = `id, kind, topic, category, mode, persona, method, payload, created_at`

// SaveArtifact inserts an artifact. A zero ID is replaced with a new UUID.
func (s *StoreImpl) SaveArtifact(ctx context.Context, a *models.Artifact) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	query := `INSERT INTO artifacts (` + artifactColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := s.db.Exec(ctx, query,
		a.ID.String(), a.Kind, a.Topic, a.Category, a.Mode, a.Persona, a.Method,
		string(a.Payload), a.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("artifact %s: %w", a.ID, store.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert artifact: %w", err)
	}
	return nil
}

// GetArtifact fetches one artifact by ID.
func (s *StoreImpl) GetArtifact(ctx context.Context, id uuid.UUID) (*models.Artifact, error) {
	query := `SELECT ` + artifactColumns + ` FROM artifacts WHERE id = $1`
	rows, err := s.db.Query(ctx, query, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query artifact %s: %w", id, err)
	}
	a, err := pgx.CollectOneRow(rows, scanArtifact)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artifact %s: %w", id, err)
	}
	return a, nil
}

// ListArtifacts returns artifacts newest first, optionally filtered by kind.
func (s *StoreImpl) ListArtifacts(ctx context.Context, kind string, limit, offset int) ([]*models.Artifact, error) {
	query := `SELECT ` + artifactColumns + ` FROM artifacts
		WHERE ($1 = '' OR kind = $1)
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`
	rows, err := s.db.Query(ctx, query, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query artifacts: %w", err)
	}
	return pgx.CollectRows(rows, scanArtifact)
}

func scanArtifact(row pgx.CollectableRow) (*models.Artifact, error) {
	var (
		a       models.Artifact
		id      string
		payload string
	)
	if err := row.Scan(&id, &a.Kind, &a.Topic, &a.Category, &a.Mode, &a.Persona, &a.Method, &payload, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan artifact: %w", err)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("artifact has malformed id %q: %w", id, err)
	}
	a.ID = parsed
	a.Payload = []byte(payload)
	return &a, nil
}
