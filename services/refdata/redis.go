package refdata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/towoju5/bridge-verification-system-sub001/types"
	"github.com/towoju5/bridge-verification-system-sub001/utils/logger"
)

// CachedProvider decorates a Provider with a redis cache. Reference lists
// change rarely; a cache miss falls through to the source and a cache
// failure is logged and ignored.
type CachedProvider struct {
	source Provider
	client *redis.Client
	ttl    time.Duration
}

// NewCachedProvider wraps source with a redis cache.
func NewCachedProvider(source Provider, client *redis.Client, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &CachedProvider{source: source, client: client, ttl: ttl}
}

// Lookup returns the named list, preferring the cache.
func (c *CachedProvider) Lookup(ctx context.Context, listName string) ([]types.ReferenceItem, error) {
	key := fmt.Sprintf("refdata_%s", listName)

	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var items []types.ReferenceItem
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
	}

	items, err := c.source.Lookup(ctx, listName)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(items)
	if err == nil {
		if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
			logger.Warnf("Failed to cache reference list %s: %v", listName, err)
		}
	}

	return items, nil
}
