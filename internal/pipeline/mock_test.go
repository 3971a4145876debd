package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pancake-labs/lead-ingest/internal/model"
)

// --- PartitionStore Mock ---

type mockPartitionStore struct {
	mock.Mock
}

func (m *mockPartitionStore) EnsurePartition(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockPartitionStore) Exists(ctx context.Context, key, customerID, postID string) (bool, error) {
	args := m.Called(ctx, key, customerID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPartitionStore) Append(ctx context.Context, key string, rec model.LeadRecord) error {
	args := m.Called(ctx, key, rec)
	return args.Error(0)
}
