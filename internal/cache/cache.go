package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/embeddings"
)

// Cache stores computed embedding vectors so repeated runs against the
// same model and prefix do not re-encode identical chunks.
type Cache interface {
	// GetEmbedding retrieves a cached vector by key.
	// Returns nil if not found.
	GetEmbedding(ctx context.Context, key string) (embeddings.Vector, error)

	// SetEmbedding stores a vector with TTL
	SetEmbedding(ctx context.Context, key string, vec embeddings.Vector, ttl time.Duration) error

	// Close closes the cache connection
	Close() error
}

// Key derives a stable cache key from the model, prefix, and chunk text.
func Key(model, prefix, chunk string) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(prefix))
	h.Write([]byte{0})
	h.Write([]byte(chunk))
	return hex.EncodeToString(h.Sum(nil))
}
