package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ProductCacheTTL is the time-to-live for cached products.
	ProductCacheTTL = 24 * time.Hour

	productCacheKeyPrefix = "product"
)

// CachedProduct is the denormalized read model stored in Redis.
type CachedProduct struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductCache provides read/write operations for cached product entries.
// Keys are scoped by the owner's user id, so a cache hit can never cross
// tenants: a lookup with the wrong owner misses even if the product id exists.
// Key format: "product:{userID}:{productID}"
type ProductCache struct {
	client *RedisClient
}

// NewProductCache creates a ProductCache backed by the given RedisClient.
func NewProductCache(r *RedisClient) *ProductCache {
	return &ProductCache{client: r}
}

// Get retrieves a cached product by owner + product id.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ProductCache) Get(ctx context.Context, userID, productID uuid.UUID) (*CachedProduct, error) {
	data, err := c.client.Client().Get(ctx, c.key(userID, productID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var p CachedProduct
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &p, nil
}

// Set writes a cached product with a 24-hour TTL.
func (c *ProductCache) Set(ctx context.Context, p *CachedProduct) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(p.UserID, p.ID), data, ProductCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached product. Called on update and delete so stale
// field values are never served.
func (c *ProductCache) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(userID, productID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "product:{userID}:{productID}"
func (c *ProductCache) key(userID, productID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", productCacheKeyPrefix, userID, productID)
}
