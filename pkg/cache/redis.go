// Package cache provides the Redis connection and the per-user product cache
// layered over it.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/produtos-api/pkg/config"
)

const connectTimeout = 2 * time.Second

// RedisClient owns the connection pool shared by the product cache and the
// health endpoint.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient dials cfg.RedisURL and fails fast if the server does not
// answer a ping, so a bad REDIS_URL surfaces at startup rather than as cache
// errors under load. Pool and timeout settings override the client defaults.
func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	opts.PoolSize = 10
	opts.MinIdleConns = 2
	opts.MaxRetries = 3
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolTimeout = 4 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisClient{client: rdb}, nil
}

// Ping reports connection health for the /health endpoint.
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (r *RedisClient) Close() error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("redis close: %w", err)
	}
	return nil
}

// Client exposes the underlying *redis.Client for the cache layer.
func (r *RedisClient) Client() *redis.Client {
	return r.client
}
