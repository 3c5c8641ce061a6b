package cache

import (
	"context"
	"testing"
	"time"

	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/embeddings"
)

// TestNoOpCache verifies that NoOpCache implements the Cache interface correctly
func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()

	// GetEmbedding - should always return nil (cache miss)
	vec, err := c.GetEmbedding(ctx, "test-key")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if vec != nil {
		t.Errorf("expected nil vector (cache miss), got %v", vec)
	}

	// SetEmbedding - should succeed silently
	err = c.SetEmbedding(ctx, "test-key", embeddings.Vector{0.1, 0.2, 0.3}, 1*time.Hour)
	if err != nil {
		t.Errorf("expected no error on SetEmbedding, got %v", err)
	}

	// Verify it still returns nil (nothing was actually cached)
	vec, err = c.GetEmbedding(ctx, "test-key")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if vec != nil {
		t.Errorf("expected nil vector (no-op cache doesn't store), got %v", vec)
	}

	// Close - should succeed silently
	if err := c.Close(); err != nil {
		t.Errorf("expected no error on Close, got %v", err)
	}
}

func TestKeyDeterministic(t *testing.T) {
	a := Key("model-a", "Query: ", "some chunk")
	b := Key("model-a", "Query: ", "some chunk")
	if a != b {
		t.Errorf("expected identical keys, got %q and %q", a, b)
	}
	if a == Key("model-b", "Query: ", "some chunk") {
		t.Error("expected different models to produce different keys")
	}
	if a == Key("model-a", "", "some chunk") {
		t.Error("expected different prefixes to produce different keys")
	}
}
