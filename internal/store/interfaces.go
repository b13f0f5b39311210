package store

import (
	"context"

	"bubble/internal/models"
	"bubble/internal/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// --- Job Client ---

type JobClient interface {
	Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	EnqueueStudy(ctx context.Context, p tasks.StudyPayload) (*asynq.TaskInfo, error)
	EnqueueBrief(ctx context.Context, p tasks.BriefPayload) (*asynq.TaskInfo, error)
	Close() error
}

// --- Artifact Store ---

// ArtifactStore keeps the history of composed study suggestions and briefs.
type ArtifactStore interface {
	SaveArtifact(ctx context.Context, a *models.Artifact) error
	GetArtifact(ctx context.Context, id uuid.UUID) (*models.Artifact, error)
	// ListArtifacts returns newest first. An empty kind lists every kind.
	ListArtifacts(ctx context.Context, kind string, limit, offset int) ([]*models.Artifact, error)

	Ping(ctx context.Context) error
}

// --- Cost Tracking Store ---

type CostTrackingStore interface {
	RecordUsage(ctx context.Context, log *models.AIUsageLog) error
	ListUsage(ctx context.Context, limit, offset int) ([]*models.AIUsageLog, error)
	GetUsageSummary(ctx context.Context) (totalCost float64, totalInputTokens, totalOutputTokens int64, err error)
}

// Store is implemented by both the Postgres and the SQLite backends.
type Store interface {
	ArtifactStore
	CostTrackingStore
	Close()
}
