// Package cache holds the stores behind the generation reply cache: an
// in-process ristretto cache and a shared Redis one.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Memory is an in-process TTL cache bounded by entry count.
type Memory struct {
	cache *ristretto.Cache[string, string]
	ttl   time.Duration
}

// NewMemory builds a cache holding at most maxEntries values. Every value
// costs 1 and ristretto's per-item overhead is not charged, so MaxCost is an
// entry count.
func NewMemory(maxEntries int64, ttl time.Duration) (*Memory, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cache.NewMemory: %w", err)
	}
	return &Memory{cache: c, ttl: ttl}, nil
}

// Get returns the value stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.cache.Get(key)
	return v, ok, nil
}

// Set stores value with unit cost. Writes are flushed before returning so a
// following Get observes them.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.cache.SetWithTTL(key, value, 1, m.ttl)
	m.cache.Wait()
	return nil
}

// Close releases the cache goroutines.
func (m *Memory) Close() error {
	m.cache.Close()
	return nil
}
