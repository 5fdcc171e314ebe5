package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cinevault/catalog-api/internal/core/ports"
)

const (
	cacheTTL   = 30 * time.Second
	versionKey = "catalog:ver"
)

// ListCache caches catalog list responses under versioned keys.
// Key format: catalog:q:<version>:<search>:<sort>:<page>:<limit>
//
// Invalidation bumps the version counter, orphaning every cached page at
// once; orphans expire on their own TTL. Redis errors are logged and the
// caller falls through to storage, so a cache outage degrades to slower
// reads rather than failures.
type ListCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewListCache creates a ListCache wrapping the given Redis client.
func NewListCache(client *redis.Client, log zerolog.Logger) *ListCache {
	return &ListCache{client: client, log: log}
}

// Get returns the cached result for filter, if present.
func (c *ListCache) Get(ctx context.Context, filter ports.ListMoviesFilter) (*ports.ListMoviesResult, bool) {
	key, err := c.key(ctx, filter)
	if err != nil {
		c.log.Warn().Err(err).Msg("list cache: version lookup failed")
		return nil, false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("list cache: get failed")
		}
		return nil, false
	}

	var result ports.ListMoviesResult
	if err := json.Unmarshal(raw, &result); err != nil {
		c.log.Warn().Err(err).Msg("list cache: corrupt entry")
		return nil, false
	}
	return &result, true
}

// Set stores the result for filter with a short TTL.
func (c *ListCache) Set(ctx context.Context, filter ports.ListMoviesFilter, result *ports.ListMoviesResult) {
	key, err := c.key(ctx, filter)
	if err != nil {
		c.log.Warn().Err(err).Msg("list cache: version lookup failed")
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		c.log.Warn().Err(err).Msg("list cache: marshal failed")
		return
	}
	if err := c.client.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("list cache: set failed")
	}
}

// Invalidate orphans all cached pages by bumping the version counter.
func (c *ListCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("list cache: invalidate failed")
	}
}

func (c *ListCache) key(ctx context.Context, f ports.ListMoviesFilter) (string, error) {
	ver, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return cacheKey(ver, f), nil
}

// cacheKey encodes the filter injectively. Search and sort are quoted so a
// separator inside either user-supplied field cannot make two different
// filters share a key.
func cacheKey(ver int64, f ports.ListMoviesFilter) string {
	return fmt.Sprintf("catalog:q:%d:%q:%q:%d:%d", ver, f.Search, string(f.Sort), f.Page, f.Limit)
}
