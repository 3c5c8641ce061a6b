package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/embeddings"
)

// MockCache is a mock implementation of the Cache interface for testing
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetEmbedding(ctx context.Context, key string) (embeddings.Vector, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(embeddings.Vector), args.Error(1)
}

func (m *MockCache) SetEmbedding(ctx context.Context, key string, vec embeddings.Vector, ttl time.Duration) error {
	args := m.Called(ctx, key, vec, ttl)
	return args.Error(0)
}

func (m *MockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
