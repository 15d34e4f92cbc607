package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shoply/storefront-api/internal/core/domain"
)

const (
	catalogKey      = "catalog:list"
	catalogCacheTTL = 30 * time.Second
)

// CatalogCache stores the product listing as a single JSON blob under a short
// TTL. Create invalidates it, so the TTL only bounds staleness across
// processes that miss the invalidation.
type CatalogCache struct {
	client *redis.Client
}

// NewCatalogCache wraps the given Redis client.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// Get returns the cached listing, or ok=false on a miss.
func (c *CatalogCache) Get(ctx context.Context) ([]domain.Product, bool, error) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("catalog cache get: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		// Corrupt entry: treat as a miss so the store repopulates it.
		return nil, false, nil
	}
	return products, true, nil
}

// Set stores the listing under the cache TTL.
func (c *CatalogCache) Set(ctx context.Context, products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	return c.client.Set(ctx, catalogKey, raw, catalogCacheTTL).Err()
}

// Invalidate drops the cached listing.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
