package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/centre-for-humanities-computing/feuilleton-novels/internal/embeddings"
)

// Key prefix for cached embedding vectors
const embeddingKeyPrefix = "emb:"

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache client
func NewRedisCache(addr, password string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisCache{
		client: client,
	}, nil
}

// GetEmbedding retrieves a cached vector by key
func (c *RedisCache) GetEmbedding(ctx context.Context, key string) (embeddings.Vector, error) {
	data, err := c.client.Get(ctx, embeddingKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, err
	}

	var vec embeddings.Vector
	if err := json.Unmarshal(data, &vec); err != nil {
		return nil, err
	}
	return vec, nil
}

// SetEmbedding stores a vector with TTL
func (c *RedisCache) SetEmbedding(ctx context.Context, key string, vec embeddings.Vector, ttl time.Duration) error {
	data, err := json.Marshal(vec)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, embeddingKeyPrefix+key, data, ttl).Err()
}

// Close closes the cache connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
