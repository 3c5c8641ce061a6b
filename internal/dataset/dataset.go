package dataset

import (
	"context"

	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/embeddings"
)

// Article is one input record: an opaque identifier plus raw text.
type Article struct {
	ID   string
	Text string
}

// ProcessedArticle holds the chunked and embedded form of one article.
// Chunks and Embeddings are index-aligned and of equal length.
type ProcessedArticle struct {
	ArticleID  string
	Chunks     []string
	Embeddings []embeddings.Vector
}

// Store defines the persistence contract for processed articles. The
// whole run is flushed in a single call so implementations can write
// one self-contained dataset.
type Store interface {
	SaveAll(ctx context.Context, articles []ProcessedArticle) error
}
