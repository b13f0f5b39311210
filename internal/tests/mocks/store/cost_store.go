package mock_store

import (
	"context"

	"bubble/internal/models"

	"github.com/stretchr/testify/mock"
)

// CostTrackingStore is a testify mock of store.CostTrackingStore.
type CostTrackingStore struct {
	mock.Mock
}

func (m *CostTrackingStore) RecordUsage(ctx context.Context, log *models.AIUsageLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *CostTrackingStore) ListUsage(ctx context.Context, limit, offset int) ([]*models.AIUsageLog, error) {
	args := m.Called(ctx, limit, offset)
	logs, _ := args.Get(0).([]*models.AIUsageLog)
	return logs, args.Error(1)
}

func (m *CostTrackingStore) GetUsageSummary(ctx context.Context) (float64, int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Get(1).(int64), args.Get(2).(int64), args.Error(3)
}
