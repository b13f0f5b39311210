// Package augmenter asks an optional generative model for a study suggestion.
// Every backend failure is absorbed: callers only see "no result".
package augmenter

import (
	"context"
	"sync"

	"bubble/internal/costtracker"
	"bubble/internal/models"

	log "github.com/sirupsen/logrus"
)

// supportedBaselines are the model variants a loaded backend can serve.
var supportedBaselines = map[string]struct{}{
	"quen-3.4b": {},
	"quen-2.5":  {},
}

// SupportsMode reports whether the mode names a recognized model variant.
func SupportsMode(mode models.Mode) bool {
	_, ok := supportedBaselines[mode.Baseline]
	return ok
}

// Request carries everything the model sees.
type Request struct {
	Topic       string
	Keywords    []string
	ArticleText string
	Mode        models.Mode
}

// Suggestion is the partial study suggestion parsed from a model reply.
// Missing fields are left empty for the caller to fill.
type Suggestion struct {
	SpotlightSubject     string
	Questions            []string
	PresentationPrompt   string
	PresentationQuestion string
	ImpactHints          []string
}

// Augmenter is the optional generative collaborator of the composers.
type Augmenter interface {
	// Available reports whether Generate can be attempted for mode.
	Available(mode models.Mode) bool
	// Generate returns a suggestion, or false when the model produced
	// nothing usable.
	Generate(ctx context.Context, req Request) (*Suggestion, bool)
}

// Noop is never available.
type Noop struct{}

func (Noop) Available(models.Mode) bool { return false }

func (Noop) Generate(context.Context, Request) (*Suggestion, bool) { return nil, false }

// Completion is a raw model reply with its token usage.
type Completion struct {
	Text         string
	InputTokens  int
	OutputTokens int
}

// Completer sends a single prompt to a model backend.
type Completer interface {
	Complete(ctx context.Context, prompt string) (Completion, error)
	Name() string
	ModelName() string
	// Loaded is false when the backend is not configured.
	Loaded() bool
}

// LLMAugmenter implements Augmenter over a Completer. Calls into the backend
// are serialized.
type LLMAugmenter struct {
	backend     Completer
	template    string
	costTracker costtracker.CostTracker

	mu sync.Mutex
}

var _ Augmenter = (*LLMAugmenter)(nil)

// NewLLMAugmenter builds an augmenter. An empty template uses
// DefaultPromptTemplate; costTracker may be nil.
func NewLLMAugmenter(backend Completer, template string, costTracker costtracker.CostTracker) *LLMAugmenter {
	if template == "" {
		template = DefaultPromptTemplate
	}
	return &LLMAugmenter{backend: backend, template: template, costTracker: costTracker}
}

func (a *LLMAugmenter) Available(mode models.Mode) bool {
	if a.backend == nil || !a.backend.Loaded() {
		return false
	}
	return SupportsMode(mode)
}

func (a *LLMAugmenter) Generate(ctx context.Context, req Request) (*Suggestion, bool) {
	if !a.Available(req.Mode) {
		return nil, false
	}
	prompt := BuildPrompt(a.template, req)

	a.mu.Lock()
	completion, err := a.backend.Complete(ctx, prompt)
	a.mu.Unlock()
	if err != nil {
		log.Debugf("Augmenter backend %s failed for mode %s: %v", a.backend.Name(), req.Mode, err)
		return nil, false
	}

	a.recordUsage(ctx, req.Mode, completion)

	suggestion, ok := Parse(completion.Text)
	if !ok {
		log.Debugf("Augmenter backend %s returned an unusable reply (%d bytes)", a.backend.Name(), len(completion.Text))
		return nil, false
	}
	return suggestion, true
}

func (a *LLMAugmenter) recordUsage(ctx context.Context, mode models.Mode, c Completion) {
	if a.costTracker == nil || c.InputTokens+c.OutputTokens == 0 {
		return
	}
	event := costtracker.CostEvent{
		Operation:    models.ServiceTypeAugmentation,
		Provider:     a.backend.Name(),
		Model:        a.backend.ModelName(),
		Mode:         mode.String(),
		InputTokens:  c.InputTokens,
		OutputTokens: c.OutputTokens,
	}
	if err := a.costTracker.RecordCost(ctx, event); err != nil {
		log.Errorf("Failed to record AI usage log for augmentation: %v", err)
	}
}
