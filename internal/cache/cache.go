package cache

import (
	"sync"
	"time"
)

// Cache is a mutex-guarded TTL cache keyed by string. Expired entries are
// dropped lazily on the next Get.
type Cache[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry[V]
}

type entry[V any] struct {
	createdAt time.Time
	value     V
}

// New creates a cache whose entries live for ttl.
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl:     ttl,
		entries: make(map[string]entry[V]),
	}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if time.Now().Before(e.createdAt.Add(c.ttl)) {
			return e.value, true
		}
		delete(c.entries, key)
	}
	var zero V
	return zero, false
}

func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	c.entries[key] = entry[V]{createdAt: time.Now(), value: value}
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry[V])
	c.mu.Unlock()
}
