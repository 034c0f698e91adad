package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entity tags used as cache key prefixes. A mutation on an entity type
// invalidates every cached list under its tag.
const (
	EntityBoards    = "boards"
	EntityClasses   = "classes"
	EntitySubjects  = "subjects"
	EntityChapters  = "chapters"
	EntityQuestions = "questions"
)

const keyPrefix = "cache:"

// ListCache is a read-through cache for list responses backed by Redis.
// A nil Redis client disables caching entirely; every method becomes a no-op
// so services never need to branch on availability.
type ListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ListCache{rdb: rdb, ttl: ttl}
}

// GetJSON loads a cached value into dest. Returns false on miss, disabled
// cache, or any Redis/decode failure; a broken cache must never break reads.
func (c *ListCache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetJSON stores a value under key with the configured TTL. Failures are
// swallowed for the same reason as in GetJSON.
func (c *ListCache) SetJSON(ctx context.Context, key string, v interface{}) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, raw, c.ttl)
}

// Invalidate drops every cached list for the given entity tags.
func (c *ListCache) Invalidate(ctx context.Context, entities ...string) {
	if c == nil || c.rdb == nil {
		return
	}
	for _, entity := range entities {
		pattern := keyPrefix + entity + ":*"
		iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if len(keys) > 0 {
			c.rdb.Del(ctx, keys...)
		}
	}
}
