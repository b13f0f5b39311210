package primary

import (
	"context"
	"fmt"
	"time"

	"bubble/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RecordUsage inserts a new AI usage log entry.
func (s *StoreImpl) RecordUsage(ctx context.Context, log *models.AIUsageLog) error {
	query := `
		INSERT INTO ai_usage_logs (
			id, timestamp, provider_name, service_type, model_name, mode,
			input_tokens, output_tokens, cost
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}
	_, err := s.db.Exec(ctx, query,
		log.ID.String(),
		log.Timestamp,
		log.ProviderName,
		log.ServiceType,
		log.ModelName,
		log.Mode,
		log.InputTokens,
		log.OutputTokens,
		log.Cost,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ai_usage_log: %w", err)
	}
	return nil
}

// ListUsage returns AI usage logs, newest first.
func (s *StoreImpl) ListUsage(ctx context.Context, limit, offset int) ([]*models.AIUsageLog, error) {
	query := `
		SELECT id, timestamp, provider_name, service_type, model_name, mode,
		       input_tokens, output_tokens, cost
		FROM ai_usage_logs
		ORDER BY timestamp DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query ai_usage_logs: %w", err)
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.AIUsageLog, error) {
		var (
			log models.AIUsageLog
			id  string
		)
		err := row.Scan(
			&id,
			&log.Timestamp,
			&log.ProviderName,
			&log.ServiceType,
			&log.ModelName,
			&log.Mode,
			&log.InputTokens,
			&log.OutputTokens,
			&log.Cost,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ai_usage_log: %w", err)
		}
		if log.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("ai_usage_log has malformed id %q: %w", id, err)
		}
		return &log, nil
	})
}

// GetUsageSummary returns the total cost and token usage.
func (s *StoreImpl) GetUsageSummary(ctx context.Context) (totalCost float64, totalInputTokens, totalOutputTokens int64, err error) {
	query := `
		SELECT
			COALESCE(SUM(cost),0),
			COALESCE(SUM(input_tokens),0),
			COALESCE(SUM(output_tokens),0)
		FROM ai_usage_logs
	`
	err = s.db.QueryRow(ctx, query).Scan(&totalCost, &totalInputTokens, &totalOutputTokens)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to summarize ai_usage_logs: %w", err)
	}
	return totalCost, totalInputTokens, totalOutputTokens, nil
}
