package memcache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// LookupCache memoizes expensive lookups (geocoding, mostly) in process
// memory. Entries expire after a TTL; when maxEntries is exceeded the next
// write sweeps everything expired and, if still over, drops the whole map
// rather than tracking recency. Zero TTL means entries never expire.
type LookupCache[V any] struct {
	mu         sync.RWMutex
	data       map[string]entry[V]
	ttl        time.Duration
	maxEntries int
}

func NewLookupCache[V any](ttl time.Duration, maxEntries int) *LookupCache[V] {
	return &LookupCache[V]{
		data:       make(map[string]entry[V]),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

func (c *LookupCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[key]
	if !ok {
		var zero V
		return zero, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *LookupCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxEntries > 0 && len(c.data) >= c.maxEntries {
		now := time.Now()
		for k, e := range c.data {
			if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
				delete(c.data, k)
			}
		}
		if len(c.data) >= c.maxEntries {
			c.data = make(map[string]entry[V])
		}
	}

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = time.Now().Add(c.ttl)
	}
	c.data[key] = entry[V]{value: value, expiresAt: expiresAt}
}

func (c *LookupCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
