package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Set("b", 2)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	// Overwrite keeps a single entry
	c.Set("a", 10)
	v, _ = c.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, c.Len())
}

func TestCache_LRUEviction(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// "a" is the least recently touched; inserting a 4th key evicts it.
	c.Set("d", 4)
	assert.False(t, c.Has("a"))
	assert.True(t, c.Has("b"))
	assert.True(t, c.Has("c"))
	assert.True(t, c.Has("d"))
}

func TestCache_GetProtectsFromEviction(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// Touching "a" makes "b" the eviction candidate.
	_, ok := c.Get("a")
	assert.True(t, ok)

	c.Set("d", 4)
	assert.True(t, c.Has("a"))
	assert.False(t, c.Has("b"))
}

func TestCache_TTLExpiry(t *testing.T) {
	now := time.Now()
	c := New[string, string](4)
	c.now = func() time.Time { return now }

	c.SetWithTTL("stale", "v", 50*time.Millisecond)
	c.Set("fresh", "v")

	assert.True(t, c.Has("stale"))

	now = now.Add(100 * time.Millisecond)

	_, ok := c.Get("stale")
	assert.False(t, ok)
	assert.True(t, c.Has("fresh"))

	// Lazy eviction removed the expired entry entirely.
	assert.Equal(t, 1, c.Len())
}

func TestCache_EntriesFiltersExpiredWithoutEvicting(t *testing.T) {
	now := time.Now()
	c := New[string, int](4)
	c.now = func() time.Time { return now }

	c.SetWithTTL("stale", 1, time.Millisecond)
	c.Set("keep", 2)

	now = now.Add(time.Second)

	entries := c.Entries()
	assert.Len(t, entries, 1)
	assert.Equal(t, "keep", entries[0].Key)

	// Snapshot did not mutate state; the expired entry is still counted
	// until a Get/Has observes it.
	assert.Equal(t, 2, c.Len())

	values := c.Values()
	assert.Equal(t, []int{2}, values)
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Set("b", 2)

	assert.True(t, c.Delete("a"))
	assert.False(t, c.Delete("a"))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Has("b"))
}
