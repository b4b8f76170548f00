package category

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

const tableCacheKey = "categories"

// CachedRepository wraps a Repository with a short-TTL read-through cache.
// The category table is global and changes rarely, so every aggregation pass
// hitting the store would be wasted work. Callers still receive the table as
// an explicit value; no aggregation reads this cache directly.
type CachedRepository struct {
	inner Repository
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewCachedRepository(inner Repository, ttl time.Duration) (*CachedRepository, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 100,
		MaxCost:     10,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating category cache: %w", err)
	}

	return &CachedRepository{inner: inner, cache: cache, ttl: ttl}, nil
}

func (c *CachedRepository) ListCategories(ctx context.Context) ([]Category, error) {
	if v, ok := c.cache.Get(tableCacheKey); ok {
		return v.([]Category), nil
	}

	categories, err := c.inner.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	c.cache.SetWithTTL(tableCacheKey, categories, 1, c.ttl)
	c.cache.Wait()

	return categories, nil
}
