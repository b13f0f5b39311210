package local

import (
	"context"
	"fmt"
	"time"

	"bubble/internal/models"

	"github.com/google/uuid"
)

// RecordUsage inserts a new AI usage log entry.
func (s *Store) RecordUsage(ctx context.Context, log *models.AIUsageLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ai_usage_logs (
			id, timestamp, provider_name, service_type, model_name, mode,
			input_tokens, output_tokens, cost
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		log.ID.String(), formatTime(log.Timestamp), log.ProviderName, log.ServiceType,
		log.ModelName, log.Mode, log.InputTokens, log.OutputTokens, log.Cost,
	)
	if err != nil {
		return fmt.Errorf("inserting ai_usage_log: %w", err)
	}
	return nil
}

// ListUsage returns AI usage logs, newest first.
func (s *Store) ListUsage(ctx context.Context, limit, offset int) ([]*models.AIUsageLog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, provider_name, service_type, model_name, mode,
		       input_tokens, output_tokens, cost
		FROM ai_usage_logs
		ORDER BY timestamp DESC, id
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying ai_usage_logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.AIUsageLog
	for rows.Next() {
		var (
			entry     models.AIUsageLog
			id, stamp string
		)
		if err := rows.Scan(&id, &stamp, &entry.ProviderName, &entry.ServiceType, &entry.ModelName,
			&entry.Mode, &entry.InputTokens, &entry.OutputTokens, &entry.Cost); err != nil {
			return nil, fmt.Errorf("scanning ai_usage_log: %w", err)
		}
		if entry.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("ai_usage_log has malformed id %q: %w", id, err)
		}
		if entry.Timestamp, err = parseTime(stamp); err != nil {
			return nil, fmt.Errorf("ai_usage_log %s has malformed timestamp: %w", id, err)
		}
		logs = append(logs, &entry)
	}
	return logs, rows.Err()
}

// GetUsageSummary returns the total cost and token usage.
func (s *Store) GetUsageSummary(ctx context.Context) (totalCost float64, totalInputTokens, totalOutputTokens int64, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(cost), 0.0),
			COALESCE(SUM(input_tokens), 0),
			COALESCE(SUM(output_tokens), 0)
		FROM ai_usage_logs`).Scan(&totalCost, &totalInputTokens, &totalOutputTokens)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("summarizing ai_usage_logs: %w", err)
	}
	return totalCost, totalInputTokens, totalOutputTokens, nil
}
