package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheGetPut(t *testing.T) {
	c := NewCache[int](time.Minute)

	_, ok := c.Get()
	assert.False(t, ok)

	c.Put(42)
	v, ok := c.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache[string](10 * time.Millisecond)
	c.Put("snapshot")

	time.Sleep(20 * time.Millisecond)
	_, ok := c.Get()
	assert.False(t, ok)
}

func TestCacheInvalidate(t *testing.T) {
	c := NewCache[string](time.Minute)
	c.Put("snapshot")
	c.Invalidate()

	_, ok := c.Get()
	assert.False(t, ok)
}
