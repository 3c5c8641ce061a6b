package embeddings

import "context"

// Vector is a simple float32 slice wrapper.
type Vector []float32

// Embedder maps a piece of text to a fixed-length vector. Implementations
// return an error rather than a nil vector so callers can decide how to
// handle a failed record.
type Embedder interface {
	Encode(ctx context.Context, text string) (Vector, error)
}
