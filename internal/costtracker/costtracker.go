package costtracker

import (
	"context"
	"time"

	"bubble/internal/config"
	"bubble/internal/models"
	"bubble/internal/store"

	log "github.com/sirupsen/logrus"
)

// CostEvent represents a single model call and the tokens it consumed.
type CostEvent struct {
	Operation    string // e.g., "augmentation"
	Provider     string
	Model        string
	Mode         string
	InputTokens  int
	OutputTokens int
}

// CostTracker provides methods to record and report costs.
type CostTracker interface {
	RecordCost(ctx context.Context, event CostEvent) error
	TotalCost(ctx context.Context) (float64, error)
}

// Summary aggregates every recorded usage row.
type Summary struct {
	TotalCost         float64
	TotalInputTokens  int64
	TotalOutputTokens int64
}

// Tracker prices cost events and writes them to a CostTrackingStore.
type Tracker struct {
	store   store.CostTrackingStore
	pricing map[string]config.PricingInfo
	now     func() time.Time
}

var _ CostTracker = (*Tracker)(nil)

// New returns a Tracker. A nil store makes every call a no-op.
func New(s store.CostTrackingStore, pricing map[string]config.PricingInfo) *Tracker {
	return &Tracker{store: s, pricing: pricing, now: time.Now}
}

// Price computes the cost of an event. ok is false when the model has no
// pricing entry.
func (t *Tracker) Price(event CostEvent) (cost float64, ok bool) {
	info, ok := t.pricing[event.Model]
	if !ok {
		return 0, false
	}
	return float64(event.InputTokens)*info.InputPerToken + float64(event.OutputTokens)*info.OutputPerToken, true
}

func (t *Tracker) RecordCost(ctx context.Context, event CostEvent) error {
	if t.store == nil {
		return nil
	}
	cost, ok := t.Price(event)
	if !ok {
		log.Warnf("Pricing info not found for model '%s'. Recording usage with zero cost.", event.Model)
	}
	entry := &models.AIUsageLog{
		Timestamp:    t.now().UTC(),
		ProviderName: event.Provider,
		ServiceType:  event.Operation,
		ModelName:    event.Model,
		Mode:         event.Mode,
		InputTokens:  event.InputTokens,
		OutputTokens: event.OutputTokens,
		Cost:         cost,
	}
	if err := t.store.RecordUsage(ctx, entry); err != nil {
		return err
	}
	log.Debugf("Recorded AI usage: Provider=%s, Service=%s, Model=%s, InputTokens=%d, OutputTokens=%d, Cost=%.8f",
		entry.ProviderName, entry.ServiceType, entry.ModelName, entry.InputTokens, entry.OutputTokens, entry.Cost)
	return nil
}

func (t *Tracker) TotalCost(ctx context.Context) (float64, error) {
	s, err := t.Summary(ctx)
	return s.TotalCost, err
}

// Summary returns totals across all recorded usage.
func (t *Tracker) Summary(ctx context.Context) (Summary, error) {
	if t.store == nil {
		return Summary{}, nil
	}
	cost, in, out, err := t.store.GetUsageSummary(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{TotalCost: cost, TotalInputTokens: in, TotalOutputTokens: out}, nil
}
