package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a string-keyed ristretto cache with a fixed entry TTL.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
	ttl  time.Duration
}

// Stats is a snapshot of the cache metrics for the admin endpoint.
type Stats struct {
	Name        string  `json:"name"`
	Hits        uint64  `json:"hits"`
	Misses      uint64  `json:"misses"`
	HitRate     float64 `json:"hit_rate"`
	KeysAdded   uint64  `json:"keys_added"`
	KeysEvicted uint64  `json:"keys_evicted"`
	SetsDropped uint64  `json:"sets_dropped"`
	CostUsed    uint64  `json:"cost_used"`
	Items       int64   `json:"current_items"`
}

// New creates a cache named name whose entries expire after ttl. costFunc
// is used for entries set with a zero cost.
func New[T any](name string, ttl time.Duration, costFunc func(T) int64) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e5,     // number of keys to track frequency of (100k)
		MaxCost:     1 << 22, // maximum cost of cache (4MB)
		BufferItems: 64,      // number of keys per Get buffer
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl: impl,
		name: name,
		ttl:  ttl,
	}, nil
}

// Name returns the name the cache was created with.
func (c *Cache[T]) Name() string {
	return c.name
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with the cache TTL. Ristretto applies sets
// asynchronously and may drop them under contention.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.impl.SetWithTTL(key, value, cost, c.ttl)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until pending sets have been applied
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// Close stops the cache's background goroutines.
func (c *Cache[T]) Close() {
	c.impl.Close()
}

// Stats returns the current cache metrics.
func (c *Cache[T]) Stats() Stats {
	m := c.impl.Metrics
	s := Stats{
		Name:        c.name,
		Hits:        m.Hits(),
		Misses:      m.Misses(),
		KeysAdded:   m.KeysAdded(),
		KeysEvicted: m.KeysEvicted(),
		SetsDropped: m.SetsDropped(),
		CostUsed:    m.CostAdded() - m.CostEvicted(),
		Items:       int64(m.KeysAdded() - m.KeysEvicted()),
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}
