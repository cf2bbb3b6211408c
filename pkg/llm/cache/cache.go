// Package cache provides the LRU+TTL assessment cache and the stable cache
// key derivation for LLM results.
package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const sweepInterval = 60 * time.Second

type entry[V any] struct {
	value      V
	insertedAt time.Time
	ttl        time.Duration
}

func (e entry[V]) expired(now time.Time) bool {
	return e.ttl > 0 && now.Sub(e.insertedAt) >= e.ttl
}

// Cache is a capacity-bounded LRU where every entry carries its own TTL.
// Expired entries are dropped lazily on read and by a periodic sweep. Safe
// for concurrent use.
type Cache[V any] struct {
	lru        *lru.Cache[string, entry[V]]
	defaultTTL time.Duration

	stopOnce sync.Once
	stop     chan struct{}

	// now is replaceable in tests.
	now func() time.Time
}

// New creates a cache holding up to capacity entries with the given default
// TTL, and starts the background sweep. Call Close on shutdown.
func New[V any](capacity int, defaultTTL time.Duration) (*Cache[V], error) {
	inner, err := lru.New[string, entry[V]](capacity)
	if err != nil {
		return nil, err
	}
	c := &Cache[V]{
		lru:        inner,
		defaultTTL: defaultTTL,
		stop:       make(chan struct{}),
		now:        time.Now,
	}
	go c.sweepLoop()
	return c, nil
}

// Get returns the cached value when present and not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	e, ok := c.lru.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	if e.expired(c.now()) {
		c.lru.Remove(key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores a value. ttl <= 0 uses the cache default.
func (c *Cache[V]) Put(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.lru.Add(key, entry[V]{value: value, insertedAt: c.now(), ttl: ttl})
}

// Len reports the number of entries, including not-yet-swept expired ones.
func (c *Cache[V]) Len() int {
	return c.lru.Len()
}

// Purge drops every entry.
func (c *Cache[V]) Purge() {
	c.lru.Purge()
}

// Close stops the background sweep.
func (c *Cache[V]) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache[V]) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

// sweep removes expired entries. Peek avoids promoting entries while
// scanning.
func (c *Cache[V]) sweep() {
	now := c.now()
	for _, key := range c.lru.Keys() {
		if e, ok := c.lru.Peek(key); ok && e.expired(now) {
			c.lru.Remove(key)
		}
	}
}
