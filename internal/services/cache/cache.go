// Package cache provides the bounded response cache shared by the HTTP and
// WebSocket surfaces. Eviction is strict insertion-order FIFO: the earliest
// inserted entry goes first, regardless of how often it was read.
package cache

import (
	"sync"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

// DefaultCapacity bounds the cache when no capacity is configured.
const DefaultCapacity = 50

// ResponseCache is a mutex-guarded key→text store with FIFO eviction.
// Both protocol surfaces share one instance, so every access holds the lock.
type ResponseCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]string
	order    []string // insertion order, oldest first
}

// New creates a ResponseCache with the given capacity. Non-positive
// capacities fall back to DefaultCapacity.
func New(capacity int) *ResponseCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ResponseCache{
		capacity: capacity,
		entries:  make(map[string]string, capacity),
		order:    make([]string, 0, capacity),
	}
}

// Get returns the cached text for key, if present.
func (c *ResponseCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.entries[key]
	return value, ok
}

// Put inserts a response. At capacity, the earliest-inserted entry is
// evicted first. An existing key keeps its original value: the first writer
// wins until eviction, so colliding requests see one stable answer.
func (c *ResponseCache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		fiberlog.Debugf("ResponseCache: evicted oldest entry %.12s", oldest)
	}

	c.entries[key] = value
	c.order = append(c.order, key)
}

// Len reports the number of cached entries.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
