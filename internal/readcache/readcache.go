// Package readcache is thin glue over an expirable LRU and singleflight:
// read results are cached under "scope:key" entries, concurrent fetches of
// the same entry are deduplicated, and writes drop whole scopes.
package readcache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Cache holds read results until they expire or their scope is
// invalidated by a write.
type Cache struct {
	lru   *expirable.LRU[string, any]
	group singleflight.Group

	mu   sync.Mutex
	gens map[string]uint64
}

// New creates a Cache with the given entry capacity and TTL.
func New(size int, ttl time.Duration) *Cache {
	return &Cache{
		lru:  expirable.NewLRU[string, any](size, nil, ttl),
		gens: make(map[string]uint64),
	}
}

func (c *Cache) generation(scope string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[scope]
}

// Get returns the cached value for (scope, key), fetching and storing it
// on a miss. Concurrent callers for the same entry share one fetch.
// Fetch errors are not cached, and a fetch that raced an Invalidate of
// its scope is returned but not stored, so the next read sees fresh data.
func Get[T any](ctx context.Context, c *Cache, scope, key string, fetch func(context.Context) (T, error)) (T, error) {
	entry := scope + ":" + key

	if v, ok := c.lru.Get(entry); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	gen := c.generation(scope)
	v, err, _ := c.group.Do(entry, func() (any, error) {
		val, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if c.generation(scope) == gen {
			c.lru.Add(entry, val)
		}
		return val, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate drops every entry in the given scope and marks in-flight
// fetches for it stale.
func (c *Cache) Invalidate(scope string) {
	c.mu.Lock()
	c.gens[scope]++
	c.mu.Unlock()

	prefix := scope + ":"
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
}
