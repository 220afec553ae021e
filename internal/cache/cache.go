// Package cache implements the result cache consulted by resolvers before
// the backing store. Entries expire after a fixed TTL and are explicitly
// invalidated by writes touching the same entity; the cache is advisory
// only and never changes query results.
package cache

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// UserKey returns the cache key for a user entity.
func UserKey(id uuid.UUID) string {
	return "user:" + id.String()
}

// Cache is a TTL-bounded read-through cache. Entries older than the TTL are
// treated as absent. Each key's value is replaced atomically as a whole;
// no cross-key coordination is needed.
type Cache[V any] struct {
	lru *expirable.LRU[string, V]
}

// New creates a Cache holding at most maxEntries values, each valid for ttl.
// The size bound is a safety net; the key space is bounded by the number of
// active entities.
func New[V any](maxEntries int, ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		lru: expirable.NewLRU[string, V](maxEntries, nil, ttl),
	}
}

// Get returns the cached value for key. Expired or missing entries report
// ok=false.
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.lru.Get(key)
}

// Set stores value under key, replacing any previous entry and restarting
// its TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.lru.Add(key, value)
}

// Invalidate removes the entry for key, if present.
func (c *Cache[V]) Invalidate(key string) {
	c.lru.Remove(key)
}
