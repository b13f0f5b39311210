package mock_store

import (
	"context"

	"bubble/internal/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
)

// JobClient is a testify mock of store.JobClient.
type JobClient struct {
	mock.Mock
}

func (m *JobClient) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task, opts)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

func (m *JobClient) EnqueueStudy(ctx context.Context, p tasks.StudyPayload) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, p)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

func (m *JobClient) EnqueueBrief(ctx context.Context, p tasks.BriefPayload) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, p)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

func (m *JobClient) Close() error {
	return m.Called().Error(0)
}
