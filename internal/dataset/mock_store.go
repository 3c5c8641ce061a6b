package dataset

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of the Store interface for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveAll(ctx context.Context, articles []ProcessedArticle) error {
	args := m.Called(ctx, articles)
	return args.Error(0)
}
