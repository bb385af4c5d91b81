package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/produtos-api/pkg/config"
)

func TestProductCache_KeyIsOwnerScoped(t *testing.T) {
	c := &ProductCache{}
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	productID := uuid.MustParse("660e8400-e29b-41d4-a716-446655440000")

	want := "product:550e8400-e29b-41d4-a716-446655440000:660e8400-e29b-41d4-a716-446655440000"
	if got := c.key(userID, productID); got != want {
		t.Fatalf("key: got %q, want %q", got, want)
	}

	// Same product id under a different owner is a different key.
	other := c.key(uuid.New(), productID)
	if other == want {
		t.Fatal("expected owner-distinct keys for the same product id")
	}
}

// Integration tests below are skipped unless REDIS_URL is set.
func TestProductCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(&config.Config{RedisURL: redisURL})
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	cache := NewProductCache(rc)
	ctx := context.Background()

	owner := uuid.New()
	p := &CachedProduct{
		ID:        uuid.New(),
		UserID:    owner,
		Name:      "Caneca Azul",
		Price:     29.9,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}

	t.Run("SetGetRoundTrip", func(t *testing.T) {
		if err := cache.Set(ctx, p); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := cache.Get(ctx, owner, p.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Name != p.Name || got.Price != p.Price {
			t.Fatalf("round trip mismatch: %+v", got)
		}
	})

	t.Run("MissForOtherOwner", func(t *testing.T) {
		_, err := cache.Get(ctx, uuid.New(), p.ID)
		if !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil for another owner, got %v", err)
		}
	})

	t.Run("DeleteThenMiss", func(t *testing.T) {
		if err := cache.Delete(ctx, owner, p.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := cache.Get(ctx, owner, p.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after delete, got %v", err)
		}
	})
}
