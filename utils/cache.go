package utils

import (
	"sync"
	"time"
)

// Cache is a TTL cache for expensive read-mostly payloads. Writers that
// change the underlying data call Invalidate; readers get either a fresh
// value or nothing, never a stale hit past the TTL.
type Cache[T any] struct {
	mu      sync.Mutex
	value   T
	ok      bool
	ttl     time.Duration
	savedAt time.Time
}

// NewCache returns an empty cache with the given TTL.
func NewCache[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{ttl: ttl}
}

// Get returns the cached value if present and within TTL.
func (c *Cache[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ok || time.Since(c.savedAt) > c.ttl {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Put stores a value and restarts the TTL clock.
func (c *Cache[T]) Put(value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
	c.ok = true
	c.savedAt = time.Now()
}

// Invalidate drops the cached value.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.value = zero
	c.ok = false
}
