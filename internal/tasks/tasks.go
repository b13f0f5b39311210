package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Defines constants for task types used in Asynq.

const (
	// TypeStudyCompose composes a study suggestion out of band.
	TypeStudyCompose = "study:compose"
	// TypeBriefCompose composes a professional brief out of band.
	TypeBriefCompose = "brief:compose"

	// QueueCompose is the queue both compose tasks are sent to.
	QueueCompose = "compose"
)

// StudyPayload is the JSON payload of a study:compose task.
type StudyPayload struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
	Text     string `json:"text"`
	Mode     string `json:"mode,omitempty"`
}

// BriefPayload is the JSON payload of a brief:compose task.
type BriefPayload struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
	Text     string `json:"text"`
	Persona  string `json:"persona,omitempty"`
	Mode     string `json:"mode,omitempty"`
}

// NewStudyTask builds a study:compose task.
func NewStudyTask(p StudyPayload, opts ...asynq.Option) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal study payload: %w", err)
	}
	return asynq.NewTask(TypeStudyCompose, b, opts...), nil
}

// NewBriefTask builds a brief:compose task.
func NewBriefTask(p BriefPayload, opts ...asynq.Option) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal brief payload: %w", err)
	}
	return asynq.NewTask(TypeBriefCompose, b, opts...), nil
}

// DecodeStudyPayload parses and checks a study:compose payload.
func DecodeStudyPayload(data []byte) (StudyPayload, error) {
	var p StudyPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("invalid study payload: %w", err)
	}
	if p.Topic == "" || p.Category == "" {
		return p, fmt.Errorf("invalid study payload: topic and category are required")
	}
	return p, nil
}

// DecodeBriefPayload parses and checks a brief:compose payload.
func DecodeBriefPayload(data []byte) (BriefPayload, error) {
	var p BriefPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("invalid brief payload: %w", err)
	}
	if p.Topic == "" || p.Category == "" {
		return p, fmt.Errorf("invalid brief payload: topic and category are required")
	}
	return p, nil
}
