package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "todoapp/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyListPrefix = "todo:list:"
	keyStats      = "todo:stats"
)

// TodoCache caches filtered list and stats query results in Redis.
type TodoCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTodoCache returns a new TodoCache.
func NewTodoCache(rdb *redis.Client, ttl time.Duration) *TodoCache {
	return &TodoCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list for a filter/sort variant, or nil on miss.
func (c *TodoCache) GetList(ctx context.Context, variant string) ([]dom.Todo, error) {
	b, err := c.rdb.Get(ctx, keyListPrefix+variant).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Todo
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores a list result under its filter/sort variant.
func (c *TodoCache) SetList(ctx context.Context, variant string, list []dom.Todo) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyListPrefix+variant, b, c.ttl).Err()
}

// GetStats returns the cached stats or nil on miss.
func (c *TodoCache) GetStats(ctx context.Context) (*dom.Stats, error) {
	b, err := c.rdb.Get(ctx, keyStats).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s dom.Stats
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SetStats stores the stats result.
func (c *TodoCache) SetStats(ctx context.Context, s dom.Stats) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyStats, b, c.ttl).Err()
}

// InvalidateAll removes the stats key and every list variant (cache
// invalidation on write).
func (c *TodoCache) InvalidateAll(ctx context.Context) error {
	if err := c.rdb.Del(ctx, keyStats).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, keyListPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
