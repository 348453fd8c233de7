// Package clientcache keeps constructed provider clients around for reuse.
// Construction goes through singleflight so concurrent requests for the
// same key build the client once.
package clientcache

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache is a type-safe keyed cache of constructed values.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
	group   singleflight.Group
}

// NewCache creates an empty Cache.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[string]T)}
}

// GetOrCreate returns the cached value for key, building it with factory on
// first use. The factory runs at most once per key under concurrent load.
func (c *Cache[T]) GetOrCreate(key string, factory func() (T, error)) (T, error) {
	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		c.mu.RLock()
		cached, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		built, err := factory()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = built
		c.mu.Unlock()
		return built, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Delete removes a cached value.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
