package models

// CacheConfig holds configuration for the in-memory response cache.
// Eviction is strict insertion-order FIFO; a disabled cache turns every
// lookup into a miss.
type CacheConfig struct {
	Enabled  bool `json:"enabled,omitzero" yaml:"enabled"`
	Capacity int  `json:"capacity,omitzero" yaml:"capacity"` // Maximum number of cached responses
}
