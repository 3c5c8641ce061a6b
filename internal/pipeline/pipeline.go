package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/cache"
	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/chunker"
	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/dataset"
	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/embeddings"
)

const cacheTTL = 7 * 24 * time.Hour

// Options configures a processing run.
type Options struct {
	Model     string
	Prefix    string
	MaxTokens int
}

// Pipeline runs articles through normalize, sentence split, chunk, and
// embed, isolating failures per article. Articles are processed
// sequentially; results accumulate in memory and are returned in input
// order for a single flush by the caller.
type Pipeline struct {
	log      *slog.Logger
	embedder embeddings.Embedder
	counter  chunker.TokenCounter
	cache    cache.Cache
	opts     Options
}

// New assembles a pipeline from its collaborators.
func New(log *slog.Logger, embedder embeddings.Embedder, counter chunker.TokenCounter, c cache.Cache, opts Options) *Pipeline {
	return &Pipeline{
		log:      log,
		embedder: embedder,
		counter:  counter,
		cache:    c,
		opts:     opts,
	}
}

// Run processes all articles. A failed article is logged and skipped
// with no partial output; the returned slice holds only successes, in
// input order.
func (p *Pipeline) Run(ctx context.Context, articles []dataset.Article) []dataset.ProcessedArticle {
	var processed []dataset.ProcessedArticle
	skipped := 0

	for _, article := range articles {
		result, err := p.processOne(ctx, article)
		if err != nil {
			p.log.Error("skipping article", "article_id", article.ID, "err", err)
			skipped++
			continue
		}
		processed = append(processed, result)
	}

	p.log.Info("processing finished", "processed", len(processed), "skipped", skipped)
	return processed
}

func (p *Pipeline) processOne(ctx context.Context, article dataset.Article) (dataset.ProcessedArticle, error) {
	chunks, err := p.preprocess(article.Text)
	if err != nil {
		return dataset.ProcessedArticle{}, fmt.Errorf("preprocessing error: %w", err)
	}

	embs, err := p.embed(ctx, chunks)
	if err != nil {
		return dataset.ProcessedArticle{}, fmt.Errorf("inference error: %w", err)
	}

	return dataset.ProcessedArticle{
		ArticleID:  article.ID,
		Chunks:     chunks,
		Embeddings: embs,
	}, nil
}

func (p *Pipeline) preprocess(text string) ([]string, error) {
	clean := chunker.Normalize(text)
	sentences := chunker.SplitSentences(clean)
	return chunker.Chunk(sentences, p.opts.MaxTokens, p.counter)
}

// embed encodes every chunk in order. The cache is best effort: a cache
// error degrades to a miss, and a failed write is only logged. An
// encoding error discards the whole article, including vectors already
// computed for it.
func (p *Pipeline) embed(ctx context.Context, chunks []string) ([]embeddings.Vector, error) {
	var embs []embeddings.Vector
	for _, chunk := range chunks {
		input := chunk
		if p.opts.Prefix != "" {
			input = p.opts.Prefix + " " + chunk
		}

		key := cache.Key(p.opts.Model, p.opts.Prefix, chunk)
		if vec, err := p.cache.GetEmbedding(ctx, key); err != nil {
			p.log.Warn("cache read failed", "err", err)
		} else if vec != nil {
			embs = append(embs, vec)
			continue
		}

		vec, err := p.embedder.Encode(ctx, input)
		if err != nil {
			return nil, err
		}
		embs = append(embs, vec)

		if err := p.cache.SetEmbedding(ctx, key, vec, cacheTTL); err != nil {
			p.log.Warn("cache write failed", "err", err)
		}
	}
	return embs, nil
}
