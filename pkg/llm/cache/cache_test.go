package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, capacity int) (*Cache[string], *time.Time) {
	t.Helper()
	c, err := New[string](capacity, time.Hour)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCachePutGet(t *testing.T) {
	c, _ := newTestCache(t, 10)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Put("k", "v", 0)
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestCacheLazyTTLExpiry(t *testing.T) {
	c, now := newTestCache(t, 10)

	c.Put("k", "v", 10*time.Minute)

	*now = now.Add(9 * time.Minute)
	_, ok := c.Get("k")
	assert.True(t, ok)

	*now = now.Add(time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry must expire exactly at TTL")
	assert.Equal(t, 0, c.Len(), "expired entry is removed on read")
}

func TestCacheLRUEviction(t *testing.T) {
	c, _ := newTestCache(t, 2)

	c.Put("a", "1", 0)
	c.Put("b", "2", 0)
	c.Get("a") // refresh recency
	c.Put("c", "3", 0)

	_, ok := c.Get("b")
	assert.False(t, ok, "least recently used entry evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestCacheSweepRemovesExpired(t *testing.T) {
	c, now := newTestCache(t, 10)

	c.Put("short", "v", time.Minute)
	c.Put("long", "v", time.Hour)

	*now = now.Add(2 * time.Minute)
	c.sweep()

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("long")
	assert.True(t, ok)
}

func TestKeyStability(t *testing.T) {
	k1 := Key("gpt-4o-mini", "assess this", map[string]any{"temperature": 0.3, "max_tokens": 300})
	k2 := Key("gpt-4o-mini", "assess this", map[string]any{"max_tokens": 300, "temperature": 0.3})
	assert.Equal(t, k1, k2, "map key order must not change the cache key")
	assert.Len(t, k1, 64)

	k3 := Key("gpt-4o", "assess this", map[string]any{"temperature": 0.3, "max_tokens": 300})
	assert.NotEqual(t, k1, k3, "model is part of the key")

	k4 := Key("gpt-4o-mini", "assess that", map[string]any{"temperature": 0.3, "max_tokens": 300})
	assert.NotEqual(t, k1, k4, "prompt is part of the key")
}
