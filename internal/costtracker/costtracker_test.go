package costtracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"bubble/internal/config"
	"bubble/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUsageStore struct {
	mock.Mock
}

func (m *mockUsageStore) RecordUsage(ctx context.Context, log *models.AIUsageLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *mockUsageStore) ListUsage(ctx context.Context, limit, offset int) ([]*models.AIUsageLog, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.AIUsageLog), args.Error(1)
}

func (m *mockUsageStore) GetUsageSummary(ctx context.Context) (float64, int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Get(1).(int64), args.Get(2).(int64), args.Error(3)
}

func TestTracker_RecordCost(t *testing.T) {
	ms := new(mockUsageStore)
	tracker := New(ms, map[string]config.PricingInfo{
		"quen-3.4b": {InputPerToken: 0.001, OutputPerToken: 0.002},
	})
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tracker.now = func() time.Time { return fixed }

	ms.On("RecordUsage", mock.Anything, mock.MatchedBy(func(l *models.AIUsageLog) bool {
		return l.ProviderName == "openai" &&
			l.ServiceType == models.ServiceTypeAugmentation &&
			l.ModelName == "quen-3.4b" &&
			l.Mode == "quen-3.4b-thinking" &&
			l.InputTokens == 100 && l.OutputTokens == 50 &&
			l.Timestamp.Equal(fixed) &&
			assert.InDelta(t, 0.2, l.Cost, 1e-9)
	})).Return(nil).Once()

	err := tracker.RecordCost(context.Background(), CostEvent{
		Operation:    models.ServiceTypeAugmentation,
		Provider:     "openai",
		Model:        "quen-3.4b",
		Mode:         "quen-3.4b-thinking",
		InputTokens:  100,
		OutputTokens: 50,
	})
	require.NoError(t, err)
	ms.AssertExpectations(t)
}

func TestTracker_MissingPricingRecordsZero(t *testing.T) {
	ms := new(mockUsageStore)
	tracker := New(ms, nil)

	ms.On("RecordUsage", mock.Anything, mock.MatchedBy(func(l *models.AIUsageLog) bool {
		return l.Cost == 0 && l.ModelName == "unknown"
	})).Return(nil).Once()

	require.NoError(t, tracker.RecordCost(context.Background(), CostEvent{Model: "unknown", InputTokens: 10}))
	ms.AssertExpectations(t)

	_, ok := tracker.Price(CostEvent{Model: "unknown"})
	assert.False(t, ok)
}

func TestTracker_StoreErrorPropagates(t *testing.T) {
	ms := new(mockUsageStore)
	tracker := New(ms, nil)
	ms.On("RecordUsage", mock.Anything, mock.Anything).Return(errors.New("db down"))

	err := tracker.RecordCost(context.Background(), CostEvent{Model: "m"})
	assert.EqualError(t, err, "db down")
}

func TestTracker_Summary(t *testing.T) {
	ms := new(mockUsageStore)
	tracker := New(ms, nil)
	ms.On("GetUsageSummary", mock.Anything).Return(1.5, int64(300), int64(120), nil)

	s, err := tracker.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{TotalCost: 1.5, TotalInputTokens: 300, TotalOutputTokens: 120}, s)

	total, err := tracker.TotalCost(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.5, total)
}

func TestTracker_NilStoreIsNoop(t *testing.T) {
	tracker := New(nil, nil)
	assert.NoError(t, tracker.RecordCost(context.Background(), CostEvent{Model: "m"}))
	total, err := tracker.TotalCost(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}
