package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Category is one node of the subject taxonomy. Values are immutable once
// built by the taxonomy package.
type Category struct {
	Slug         string   `json:"slug" yaml:"slug"`
	Label        string   `json:"label" yaml:"label"`
	Group        string   `json:"group" yaml:"group"`
	Parents      []string `json:"parents" yaml:"parents"`
	Tags         []string `json:"tags" yaml:"tags"`
	Professional bool     `json:"professional" yaml:"professional"`
}

// StudySuggestion is the study artifact returned to callers.
type StudySuggestion struct {
	Topic                string   `json:"topic"`
	Category             string   `json:"category"`
	SpotlightSubject     string   `json:"spotlight_subject"`
	Questions            []string `json:"questions"`
	PresentationPrompt   string   `json:"presentation_prompt"`
	PresentationQuestion string   `json:"presentation_question"`
	ImpactHints          []string `json:"impact_hints"`
	Method               string   `json:"method"`
}

// ProfessionalBrief is the professional artifact returned to callers.
type ProfessionalBrief struct {
	Topic        string   `json:"topic"`
	Category     string   `json:"category"`
	KeyPoints    []string `json:"key_points"`
	CreativeHook string   `json:"creative_hook"`
	PitchOutline []string `json:"pitch_outline"`
	VisualMood   string   `json:"visual_mood"`
	PaletteIdeas []string `json:"palette_ideas"`
	CanvasPrompt string   `json:"canvas_prompt"`
	Method       string   `json:"method"`
}

// Artifact is a stored study suggestion or brief.
type Artifact struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	Kind      string          `db:"kind" json:"kind"`
	Topic     string          `db:"topic" json:"topic"`
	Category  string          `db:"category" json:"category"`
	Mode      string          `db:"mode" json:"mode"`
	Persona   string          `db:"persona" json:"persona,omitempty"`
	Method    string          `db:"method" json:"method"`
	Payload   json.RawMessage `db:"payload" json:"payload"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// AIUsageLog represents a record of generative model usage for cost tracking.
type AIUsageLog struct {
	ID           uuid.UUID `db:"id"`
	Timestamp    time.Time `db:"timestamp"`
	ProviderName string    `db:"provider_name"`
	ServiceType  string    `db:"service_type"` // e.g., "augmentation"
	ModelName    string    `db:"model_name"`
	Mode         string    `db:"mode"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	Cost         float64   `db:"cost"`
}
