package storage

import (
	"encoding/json"
	"sync"
	"time"
)

// Cache defaults. The TTL is deliberately short: the cache exists to
// absorb bursts of reads within one UI interaction, not to keep data
// warm across operations.
const (
	DefaultCacheTTL  = 500 * time.Millisecond
	DefaultCacheSize = 50
)

// Cache is an advisory in-process read cache keyed by substrate key.
// Entries expire after the TTL, are evicted oldest-first when the cache
// is full, and are all invalidated at once by a version bump. It is
// never the source of truth: every operation stays correct with ttl 0,
// which disables it entirely.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	version uint64
	entries map[string]cacheEntry
	order   []string // insertion order, oldest first

	now func() time.Time // injectable for testing
}

type cacheEntry struct {
	data       any
	insertedAt time.Time
	version    uint64
}

// NewCache creates a cache with the given TTL and capacity.
// PRE: max > 0; ttl <= 0 disables caching
func NewCache(ttl time.Duration, max int) *Cache {
	return &Cache{
		ttl:     ttl,
		max:     max,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Invalidate drops the entry for one key.
func (c *Cache) Invalidate(key string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(key)
}

// InvalidateAll drops every entry and bumps the version so that any
// concurrent readers holding stale lookups miss.
func (c *Cache) InvalidateAll() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
	c.order = c.order[:0]
	c.version++
}

// Len returns the number of live entries (expired ones included until read).
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// lookup returns the raw cached value for key, or false on a miss
// (absent, expired, or written before the last version bump).
func (c *Cache) lookup(key string) (any, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.insertedAt) > c.ttl || entry.version < c.version {
		c.remove(key)
		return nil, false
	}
	return entry.data, true
}

// store inserts a value, evicting the oldest entry when full.
func (c *Cache) store(key string, data any) {
	if c == nil || c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; exists {
		c.remove(key)
	}
	for len(c.entries) >= c.max && len(c.order) > 0 {
		c.remove(c.order[0])
	}
	c.entries[key] = cacheEntry{data: data, insertedAt: c.now(), version: c.version}
	c.order = append(c.order, key)
}

// remove deletes key from entries and order. Caller holds the lock.
func (c *Cache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// CacheGet returns a deep, independent copy of the cached value for
// key. Callers can mutate the result freely without touching cached
// state.
func CacheGet[T any](c *Cache, key string) (T, bool) {
	var zero T
	raw, ok := c.lookup(key)
	if !ok {
		return zero, false
	}
	value, ok := raw.(T)
	if !ok {
		c.Invalidate(key)
		return zero, false
	}
	clone, err := cloneValue(value)
	if err != nil {
		c.Invalidate(key)
		return zero, false
	}
	return clone, true
}

// CachePut stores a deep copy of value under key, so later mutations by
// the caller cannot leak into the cache.
func CachePut[T any](c *Cache, key string, value T) {
	if c == nil || c.ttl <= 0 {
		return
	}
	clone, err := cloneValue(value)
	if err != nil {
		return
	}
	c.store(key, clone)
}

// cloneValue deep-copies v through a JSON round trip. All cached values
// are collection/settings types, which are JSON-representable by
// construction.
func cloneValue[T any](v T) (T, error) {
	var out T
	b, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, err
	}
	return out, nil
}
