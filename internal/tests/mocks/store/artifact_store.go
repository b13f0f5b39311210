package mock_store

import (
	"context"

	"bubble/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ArtifactStore is a testify mock of store.ArtifactStore.
type ArtifactStore struct {
	mock.Mock
}

func (m *ArtifactStore) SaveArtifact(ctx context.Context, a *models.Artifact) error {
	return m.Called(ctx, a).Error(0)
}

func (m *ArtifactStore) GetArtifact(ctx context.Context, id uuid.UUID) (*models.Artifact, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*models.Artifact)
	return a, args.Error(1)
}

func (m *ArtifactStore) ListArtifacts(ctx context.Context, kind string, limit, offset int) ([]*models.Artifact, error) {
	args := m.Called(ctx, kind, limit, offset)
	list, _ := args.Get(0).([]*models.Artifact)
	return list, args.Error(1)
}

func (m *ArtifactStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
