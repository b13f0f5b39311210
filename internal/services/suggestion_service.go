package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bubble/internal/models"
	"bubble/internal/store"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// StudyParams are the caller-facing inputs of a study suggestion.
type StudyParams struct {
	Topic    string
	Category string
	Text     string
	Mode     string
}

// BriefParams are the caller-facing inputs of a professional brief.
type BriefParams struct {
	Topic    string
	Category string
	Text     string
	Persona  string
	Mode     string
}

// SuggestionService runs the composers and keeps a history of results when
// an ArtifactStore is configured.
type SuggestionService struct {
	study     *StudyComposer
	brief     *BriefComposer
	artifacts store.ArtifactStore
	now       func() time.Time
}

// NewSuggestionService creates the service. artifacts may be nil.
func NewSuggestionService(study *StudyComposer, brief *BriefComposer, artifacts store.ArtifactStore) *SuggestionService {
	return &SuggestionService{study: study, brief: brief, artifacts: artifacts, now: time.Now}
}

// HistoryEnabled reports whether results are being persisted.
func (s *SuggestionService) HistoryEnabled() bool { return s.artifacts != nil }

func validateSubject(topic, category string) error {
	if strings.TrimSpace(topic) == "" {
		return fmt.Errorf("topic is required: %w", models.ErrValidation)
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("category is required: %w", models.ErrValidation)
	}
	return nil
}

func modeOrDefault(mode string) string {
	if strings.TrimSpace(mode) == "" {
		return models.DefaultMode
	}
	return mode
}

// Study composes a study suggestion.
func (s *SuggestionService) Study(ctx context.Context, p StudyParams) (*models.StudySuggestion, error) {
	if err := validateSubject(p.Topic, p.Category); err != nil {
		return nil, err
	}
	mode := modeOrDefault(p.Mode)
	result := s.study.Compose(ctx, StudyRequest{
		Topic:       p.Topic,
		Category:    p.Category,
		ArticleText: p.Text,
		Mode:        mode,
	})
	s.record(ctx, models.KindStudy, p.Topic, result.Category, mode, "", result.Method, result)
	return &result, nil
}

// Brief composes a professional brief.
func (s *SuggestionService) Brief(ctx context.Context, p BriefParams) (*models.ProfessionalBrief, error) {
	if err := validateSubject(p.Topic, p.Category); err != nil {
		return nil, err
	}
	mode := modeOrDefault(p.Mode)
	result := s.brief.Compose(ctx, BriefRequest{
		Topic:       p.Topic,
		Category:    p.Category,
		ArticleText: p.Text,
		Persona:     p.Persona,
		Mode:        mode,
	})
	persona := models.ParsePersona(p.Persona).String()
	s.record(ctx, models.KindBrief, p.Topic, result.Category, mode, persona, result.Method, result)
	return &result, nil
}

// record stores an artifact. Failures are logged and never surface to the
// caller, who already has the result.
func (s *SuggestionService) record(ctx context.Context, kind, topic, category, mode, persona, method string, result any) {
	if s.artifacts == nil {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		log.Warnf("Failed to encode %s artifact for history: %v", kind, err)
		return
	}
	artifact := &models.Artifact{
		ID:        uuid.New(),
		Kind:      kind,
		Topic:     topic,
		Category:  category,
		Mode:      mode,
		Persona:   persona,
		Method:    method,
		Payload:   payload,
		CreatedAt: s.now().UTC(),
	}
	if err := s.artifacts.SaveArtifact(ctx, artifact); err != nil {
		log.Warnf("Failed to record %s artifact in history: %v", kind, err)
		return
	}
	log.Debugf("Recorded %s artifact %s (method %s)", kind, artifact.ID, method)
}

// History lists stored artifacts, newest first. kind may be empty, "study"
// or "brief".
func (s *SuggestionService) History(ctx context.Context, kind string, limit, offset int) ([]*models.Artifact, error) {
	if s.artifacts == nil {
		return nil, models.ErrNotConfigured
	}
	switch kind {
	case "", models.KindStudy, models.KindBrief:
	default:
		return nil, fmt.Errorf("unknown artifact kind %q: %w", kind, models.ErrValidation)
	}
	artifacts, err := s.artifacts.ListArtifacts(ctx, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts from store: %w", err)
	}
	return artifacts, nil
}

// Artifact fetches one stored artifact.
func (s *SuggestionService) Artifact(ctx context.Context, id uuid.UUID) (*models.Artifact, error) {
	if s.artifacts == nil {
		return nil, models.ErrNotConfigured
	}
	return s.artifacts.GetArtifact(ctx, id)
}
