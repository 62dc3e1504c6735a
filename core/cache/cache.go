package cache

import (
	"container/list"
	"sync"
	"time"
)

// Entry is a snapshot of a single cache entry.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type item[K comparable, V any] struct {
	key   K
	value V
	// expiresAt is the absolute expiry; zero means no TTL.
	expiresAt time.Time
}

// Cache is a fixed-capacity LRU cache with optional per-entry TTL.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	maxSize int
	ll      *list.List // front = most recently used
	index   map[K]*list.Element

	// now is swapped in tests to control expiry.
	now func() time.Time
}

// New creates a cache holding at most maxSize entries.
func New[K comparable, V any](maxSize int) *Cache[K, V] {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &Cache[K, V]{
		maxSize: maxSize,
		ll:      list.New(),
		index:   make(map[K]*list.Element),
		now:     time.Now,
	}
}

// Get returns the value for key and refreshes its recency.
// An expired entry is evicted and reported as absent.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.index[key]
	if !ok {
		return zero, false
	}
	it := el.Value.(*item[K, V])
	if c.expired(it) {
		c.remove(el)
		return zero, false
	}
	c.ll.MoveToFront(el)
	return it.value, true
}

// Set stores value under key with no expiry.
func (c *Cache[K, V]) Set(key K, value V) {
	c.SetWithTTL(key, value, 0)
}

// SetWithTTL stores value under key, expiring after ttl.
// A ttl of zero means the entry never expires.
func (c *Cache[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = c.now().Add(ttl)
	}

	if el, ok := c.index[key]; ok {
		it := el.Value.(*item[K, V])
		it.value = value
		it.expiresAt = expiresAt
		c.ll.MoveToFront(el)
		return
	}

	if c.ll.Len() >= c.maxSize {
		if back := c.ll.Back(); back != nil {
			c.remove(back)
		}
	}

	el := c.ll.PushFront(&item[K, V]{key: key, value: value, expiresAt: expiresAt})
	c.index[key] = el
}

// Has reports whether key is present and unexpired, without refreshing
// its recency. An expired entry is evicted.
func (c *Cache[K, V]) Has(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		return false
	}
	if c.expired(el.Value.(*item[K, V])) {
		c.remove(el)
		return false
	}
	return true
}

// Delete removes key, reporting whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		return false
	}
	c.remove(el)
	return true
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	c.index = make(map[K]*list.Element)
}

// Len returns the number of stored entries, including any not yet
// lazily evicted.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Entries returns a snapshot of unexpired entries in most-recently-used
// order. Expired entries are filtered out but not evicted.
func (c *Cache[K, V]) Entries() []Entry[K, V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]Entry[K, V], 0, c.ll.Len())
	for el := c.ll.Front(); el != nil; el = el.Next() {
		it := el.Value.(*item[K, V])
		if c.expired(it) {
			continue
		}
		entries = append(entries, Entry[K, V]{Key: it.key, Value: it.value})
	}
	return entries
}

// Values returns a snapshot of unexpired values in most-recently-used order.
func (c *Cache[K, V]) Values() []V {
	entries := c.Entries()
	values := make([]V, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Value)
	}
	return values
}

func (c *Cache[K, V]) expired(it *item[K, V]) bool {
	return !it.expiresAt.IsZero() && c.now().After(it.expiresAt)
}

func (c *Cache[K, V]) remove(el *list.Element) {
	c.ll.Remove(el)
	delete(c.index, el.Value.(*item[K, V]).key)
}
