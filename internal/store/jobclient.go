package store

import (
	"context"
	"fmt"
	"time"

	"bubble/internal/tasks"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"
)

// DefaultRetention keeps finished compose results readable by `bubble job`.
const DefaultRetention = 24 * time.Hour

// AsynqJobClient is a concrete JobClient
var _ JobClient = (*AsynqJobClient)(nil)

type AsynqJobClient struct {
	client    *asynq.Client
	retention time.Duration
}

// NewAsynqJobClient connects to Redis. A zero retention uses DefaultRetention.
func NewAsynqJobClient(opt asynq.RedisClientOpt, retention time.Duration) (*AsynqJobClient, error) {
	if opt.Addr == "" {
		return nil, fmt.Errorf("redis address is required for the job client")
	}
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &AsynqJobClient{client: asynq.NewClient(opt), retention: retention}, nil
}

func (jc *AsynqJobClient) Close() error {
	return jc.client.Close()
}

// Enqueue sends a task to Redis.
func (jc *AsynqJobClient) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if jc.client == nil {
		return nil, fmt.Errorf("AsynqJobClient internal client is not initialized")
	}
	info, err := jc.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		log.Errorf("Failed to enqueue task type '%s': %v", task.Type(), err)
		return nil, err
	}
	log.Debugf("Enqueued task type '%s' id=%s queue=%s", task.Type(), info.ID, info.Queue)
	return info, nil
}

func (jc *AsynqJobClient) EnqueueStudy(ctx context.Context, p tasks.StudyPayload) (*asynq.TaskInfo, error) {
	task, err := tasks.NewStudyTask(p)
	if err != nil {
		return nil, err
	}
	info, err := jc.Enqueue(ctx, task, asynq.Queue(tasks.QueueCompose), asynq.Retention(jc.retention))
	if err != nil {
		return nil, fmt.Errorf("enqueue study task for topic %q: %w", p.Topic, err)
	}
	return info, nil
}

func (jc *AsynqJobClient) EnqueueBrief(ctx context.Context, p tasks.BriefPayload) (*asynq.TaskInfo, error) {
	task, err := tasks.NewBriefTask(p)
	if err != nil {
		return nil, err
	}
	info, err := jc.Enqueue(ctx, task, asynq.Queue(tasks.QueueCompose), asynq.Retention(jc.retention))
	if err != nil {
		return nil, fmt.Errorf("enqueue brief task for topic %q: %w", p.Topic, err)
	}
	return info, nil
}
