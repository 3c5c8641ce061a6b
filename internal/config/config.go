package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds runtime configuration read from the environment. The
// input/output locations and model come from CLI flags; everything here
// is ambient (credentials, providers, log level).
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Embeddings
	EmbedderProvider string `env:"EMBEDDER_PROVIDER" envDefault:"openai" validate:"oneof=openai"`
	OpenAIKey        string `env:"OPENAI_API_KEY"`
	EmbeddingModel   string `env:"EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`

	// Store
	StoreProvider string `env:"STORE_PROVIDER" envDefault:"disk" validate:"oneof=disk postgres"`
	DBURL         string `env:"DB_URL"`

	// Cache
	CacheProvider string `env:"CACHE_PROVIDER" envDefault:"none" validate:"oneof=none redis"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
}

// Load reads configuration from environment variables with defaults and
// validates provider choices.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
