package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCache_SetGet(t *testing.T) {
	c := New[string, int](time.Minute, time.Minute)
	defer c.Close()

	c.Set("a", 1)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestTTLCache_Expiry(t *testing.T) {
	c := New[string, int](time.Second, time.Minute)
	defer c.Close()

	now := time.Now()
	c.now = func() time.Time { return now }
	c.Set("a", 1)

	c.now = func() time.Time { return now.Add(2 * time.Second) }
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.evictExpired()
	c.mu.RLock()
	assert.Empty(t, c.entries)
	c.mu.RUnlock()
}

func TestTTLCache_Invalidate(t *testing.T) {
	c := New[string, int](time.Minute, time.Minute)
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Invalidate()
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestTTLCache_SetIfGeneration(t *testing.T) {
	c := New[string, int](time.Minute, time.Minute)
	defer c.Close()

	gen := c.Generation()
	assert.True(t, c.SetIfGeneration("a", 1, gen))

	stale := c.Generation()
	c.Invalidate()
	assert.NotEqual(t, stale, c.Generation())

	// Invalidate'ten önce başlamış okuma sonucunu geri yazamaz.
	assert.False(t, c.SetIfGeneration("a", 2, stale))
	_, ok := c.Get("a")
	assert.False(t, ok)

	assert.True(t, c.SetIfGeneration("a", 3, c.Generation()))
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestTTLCache_ZeroTTLDisables(t *testing.T) {
	c := New[string, int](0, time.Minute)
	defer c.Close()

	c.Set("a", 1)
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.False(t, c.SetIfGeneration("a", 1, c.Generation()))
}

func TestTTLCache_CloseTwice(t *testing.T) {
	c := New[string, int](time.Minute, time.Minute)
	c.Close()
	assert.NotPanics(t, c.Close)
}
