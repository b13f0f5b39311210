// Package worker runs compose tasks taken off the asynq queue.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bubble/internal/config"
	"bubble/internal/models"
	"bubble/internal/services"
	"bubble/internal/tasks"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"
)

// Suggester is the part of services.SuggestionService the handlers need.
type Suggester interface {
	Study(ctx context.Context, p services.StudyParams) (*models.StudySuggestion, error)
	Brief(ctx context.Context, p services.BriefParams) (*models.ProfessionalBrief, error)
}

// RedisClientOpt builds asynq connection options from the redis section.
func RedisClientOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
}

// NewServer creates the asynq server with the configured concurrency and
// queue weights.
func NewServer(cfg *config.Config) *asynq.Server {
	return asynq.NewServer(
		RedisClientOpt(cfg),
		asynq.Config{
			Concurrency: cfg.Worker.Concurrency,
			Queues:      cfg.Worker.Queues,
			Logger:      log.StandardLogger(),
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				id, _ := asynq.GetTaskID(ctx)
				log.WithFields(log.Fields{
					"task_id": id,
					"type":    task.Type(),
				}).Errorf("Compose task failed: %v", err)
			}),
		},
	)
}

// RegisterHandlers wires both compose task types into mux.
func RegisterHandlers(mux *asynq.ServeMux, s Suggester) {
	mux.HandleFunc(tasks.TypeStudyCompose, HandleStudyTask(s))
	mux.HandleFunc(tasks.TypeBriefCompose, HandleBriefTask(s))
}

// HandleStudyTask composes a study suggestion and stores it as the task
// result.
func HandleStudyTask(s Suggester) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		p, err := tasks.DecodeStudyPayload(t.Payload())
		if err != nil {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		result, err := s.Study(ctx, services.StudyParams{
			Topic:    p.Topic,
			Category: p.Category,
			Text:     p.Text,
			Mode:     p.Mode,
		})
		if err != nil {
			return permanent(err)
		}
		log.Infof("Composed study suggestion for %q (method %s)", p.Topic, result.Method)
		return writeResult(t, result)
	}
}

// HandleBriefTask composes a professional brief and stores it as the task
// result.
func HandleBriefTask(s Suggester) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		p, err := tasks.DecodeBriefPayload(t.Payload())
		if err != nil {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		result, err := s.Brief(ctx, services.BriefParams{
			Topic:    p.Topic,
			Category: p.Category,
			Text:     p.Text,
			Persona:  p.Persona,
			Mode:     p.Mode,
		})
		if err != nil {
			return permanent(err)
		}
		log.Infof("Composed brief for %q (method %s)", p.Topic, result.Method)
		return writeResult(t, result)
	}
}

// permanent marks validation failures as not worth retrying.
func permanent(err error) error {
	if errors.Is(err, models.ErrValidation) {
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}
	return err
}

// writeResult stores v as JSON on the task. Tasks built outside a server
// have no result writer.
func writeResult(t *asynq.Task, v any) error {
	w := t.ResultWriter()
	if w == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode task result: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write task result: %w", err)
	}
	return nil
}
