package services

import (
	"context"
	"fmt"

	"bubble/internal/models"
	"bubble/internal/store"
)

const (
	defaultUsagePage = 50
	maxUsagePage     = 500
)

// UsageSummary totals every recorded augmenter call.
type UsageSummary struct {
	TotalCost         float64 `json:"total_cost"`
	TotalInputTokens  int64   `json:"total_input_tokens"`
	TotalOutputTokens int64   `json:"total_output_tokens"`
}

// CostService reads back what the cost tracker recorded. A nil store yields
// models.ErrNotConfigured from every method.
type CostService struct {
	store store.CostTrackingStore
}

func NewCostService(store store.CostTrackingStore) *CostService {
	return &CostService{store: store}
}

// ListUsage returns usage rows newest first. A non-positive limit means the
// default page; negative offsets count as zero.
func (s *CostService) ListUsage(ctx context.Context, limit, offset int) ([]*models.AIUsageLog, error) {
	if s.store == nil {
		return nil, models.ErrNotConfigured
	}
	switch {
	case limit <= 0:
		limit = defaultUsagePage
	case limit > maxUsagePage:
		limit = maxUsagePage
	}
	if offset < 0 {
		offset = 0
	}
	logs, err := s.store.ListUsage(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usage (limit %d, offset %d): %w", limit, offset, err)
	}
	return logs, nil
}

func (s *CostService) GetSummary(ctx context.Context) (UsageSummary, error) {
	if s.store == nil {
		return UsageSummary{}, models.ErrNotConfigured
	}
	cost, in, out, err := s.store.GetUsageSummary(ctx)
	if err != nil {
		return UsageSummary{}, fmt.Errorf("usage summary: %w", err)
	}
	return UsageSummary{TotalCost: cost, TotalInputTokens: in, TotalOutputTokens: out}, nil
}
