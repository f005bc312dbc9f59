// Package cache holds raw upstream responses in memory for a fixed time window.
//
// The cache is unbounded. Entries are only replaced, never swept: an expired
// entry stays in the map until the next Set for the same key overwrites it.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is how long a captured response is served before it is refetched.
const DefaultTTL = 5 * time.Minute

type Entry[V any] struct {
	Value      V
	CapturedAt time.Time
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[V]
	ttl     time.Duration
	now     func() time.Time
}

func New[V any](ttl time.Duration, opts ...Option) *Cache[V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache[V]{
		entries: make(map[string]Entry[V]),
		ttl:     ttl,
		now:     o.now,
	}
}

// Get returns the value stored under key if it is younger than the TTL.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(e.CapturedAt) >= c.ttl {
		var zero V
		return zero, false
	}

	return e.Value, true
}

func (c *Cache[V]) Set(key string, v V) {
	c.mu.Lock()
	c.entries[key] = Entry[V]{Value: v, CapturedAt: c.now()}
	c.mu.Unlock()
}

// Len counts stored entries, expired ones included.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[V]) TTL() time.Duration {
	return c.ttl
}
