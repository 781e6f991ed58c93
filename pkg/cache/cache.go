// Package cache provides a small in-memory TTL cache for hot, slowly-changing
// reference data. Entries expire individually and are evicted lazily on read;
// there is no background sweep. Writers to the same key overwrite each other
// (last write wins), which is safe for idempotent re-derivations of the same
// underlying fact.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value        V
	expiresAt    time.Time
	lastAccessed time.Time
}

// Cache is a concurrency-safe key/value store with per-entry TTLs and an
// optional entry cap. When the cap is exceeded, the least recently accessed
// entry is evicted.
type Cache[V any] struct {
	mu         sync.RWMutex
	entries    map[string]entry[V]
	maxEntries int
	now        func() time.Time
}

// Option configures a Cache.
type Option[V any] func(*Cache[V])

// WithMaxEntries bounds the cache to n entries.
func WithMaxEntries[V any](n int) Option[V] {
	return func(c *Cache[V]) {
		c.maxEntries = n
	}
}

// withClock overrides the time source. Test hook.
func withClock[V any](now func() time.Time) Option[V] {
	return func(c *Cache[V]) {
		c.now = now
	}
}

// New creates an empty cache.
func New[V any](opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set stores value under key for ttl. A non-positive ttl makes the entry an
// immediate miss.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}

	c.entries[key] = entry[V]{
		value:        value,
		expiresAt:    now.Add(ttl),
		lastAccessed: now,
	}
}

// Get returns the value stored under key. Expired entries are treated as
// misses and evicted on the spot.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if !e.expiresAt.After(now) {
		delete(c.entries, key)
		return zero, false
	}

	e.lastAccessed = now
	c.entries[key] = e
	return e.value, true
}

// Delete removes key from the cache.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of entries currently held, expired ones included.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[V]) evictOldestLocked() {
	var (
		oldestKey string
		oldest    time.Time
		first     = true
	)
	for k, e := range c.entries {
		if first || e.lastAccessed.Before(oldest) {
			oldestKey = k
			oldest = e.lastAccessed
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
