// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"startup_radar/internal/feature/discovery/usecase"
)

// CachingSearchRepository decorates a SearchRepository with Redis caching.
// Search context for a given query rarely changes within a day, so caching
// avoids burning the search API quota when a run is repeated.
type CachingSearchRepository struct {
	inner     usecase.SearchRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.SearchRepository = (*CachingSearchRepository)(nil)

// NewCachingSearchRepository decorates a SearchRepository with Redis caching.
// If ttl is 0, it defaults to 1 hour. If namespace is empty, it uses "search".
func NewCachingSearchRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SearchRepository, namespace string) *CachingSearchRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if namespace == "" {
		namespace = "search"
	}
	return &CachingSearchRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetSearchContext retrieves search context, checking cache first then
// falling back to the search API.
func (c *CachingSearchRepository) GetSearchContext(ctx context.Context, query string, maxResults int) (string, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetSearchContext(ctx, query, maxResults)
	}

	key := c.cacheKey(query, maxResults)

	// 1) Check cache
	if s, err := c.rdb.Get(ctx, key).Result(); err == nil && s != "" {
		return s, nil
	}

	// 2) Fallback to the search API
	out, err := c.inner.GetSearchContext(ctx, query, maxResults)
	if err != nil {
		return "", err
	}

	// 3) Store in cache (best effort)
	_ = c.rdb.Set(ctx, key, out, c.ttl).Err()

	return out, nil
}

// cacheKey generates a cache key for a specific query.
func (c *CachingSearchRepository) cacheKey(query string, maxResults int) string {
	return fmt.Sprintf("%s:%s:%d", c.namespace, safe(query), maxResults)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
