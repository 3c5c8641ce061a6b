package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/cache"
	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/config"
	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/dataset"
	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/embeddings"
	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/logger"
)

// Deps bundles runtime dependencies for a processing run.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Embedder embeddings.Embedder
	Cache    cache.Cache
}

// Build loads env, config, and shared components. A non-empty
// modelOverride replaces the configured embedding model before the
// embedder is constructed.
func Build(modelOverride string) (Deps, error) {
	_ = godotenv.Load() // a .env file is optional for a CLI run

	cfg, err := config.Load()
	if err != nil {
		return Deps{}, err
	}
	if modelOverride != "" {
		cfg.EmbeddingModel = modelOverride
	}
	log := logger.New(cfg.LogLevel)

	embedder, err := buildEmbedder(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize embedder: %w", err)
	}
	c, err := buildCache(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize cache: %w", err)
	}
	return Deps{
		Config:   cfg,
		Log:      log,
		Embedder: embedder,
		Cache:    c,
	}, nil
}

// BuildStore constructs the output store for the run. The disk provider
// writes into the derived dataset directory; the postgres provider
// ignores it.
func BuildStore(cfg config.Config, log *slog.Logger, outputPath string) (dataset.Store, error) {
	switch cfg.StoreProvider {
	case "disk":
		st, err := dataset.NewDiskStore(outputPath)
		if err != nil {
			return nil, err
		}
		log.Info("using disk store", "path", outputPath)
		return st, nil
	case "postgres":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DB_URL is required when STORE_PROVIDER=postgres")
		}
		st, err := dataset.NewPostgres(cfg.DBURL, cfg.EmbeddingModel)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Postgres: %w", err)
		}
		log.Info("using Postgres store")
		return st, nil
	default:
		return nil, fmt.Errorf("invalid STORE_PROVIDER: %s (valid options: disk, postgres)", cfg.StoreProvider)
	}
}

func buildEmbedder(cfg config.Config, log *slog.Logger) (embeddings.Embedder, error) {
	switch cfg.EmbedderProvider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when EMBEDDER_PROVIDER=openai")
		}
		embedder, err := embeddings.NewOpenAIEmbedder(cfg.OpenAIKey, openai.EmbeddingModel(cfg.EmbeddingModel))
		if err != nil {
			return nil, err
		}
		log.Info("using OpenAI embedder", "model", cfg.EmbeddingModel)
		return embedder, nil
	default:
		return nil, fmt.Errorf("invalid EMBEDDER_PROVIDER: %s (valid option: openai)", cfg.EmbedderProvider)
	}
}

func buildCache(cfg config.Config, log *slog.Logger) (cache.Cache, error) {
	switch cfg.CacheProvider {
	case "none":
		return cache.NewNoOpCache(), nil
	case "redis":
		c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		log.Info("using Redis embedding cache", "addr", cfg.RedisAddr)
		return c, nil
	default:
		return nil, fmt.Errorf("invalid CACHE_PROVIDER: %s (valid options: none, redis)", cfg.CacheProvider)
	}
}
