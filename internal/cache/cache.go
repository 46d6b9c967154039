// Package cache memoizes b-tree lookups in a fixed-size LRU.
package cache

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/elastic/go-freelru"
)

const (
	MinCacheSize = 16 // Minimum: a handful of hot keys
)

// Cache implements an LRU of lookup results keyed by tree key. It has no
// notion of tree versions: the owner must Purge it whenever the tree changes.
type Cache[V any] struct {
	lru *freelru.LRU[int, V]

	// Stats
	hits   atomic.Uint64
	misses atomic.Uint64
	purges atomic.Uint64
}

// hashKey spreads integer keys over the LRU buckets
func hashKey(key int) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return uint32(xxhash.Sum64(buf[:]))
}

// NewCache creates a new cache holding at most maxSize entries
func NewCache[V any](maxSize int) (*Cache[V], error) {
	maxSize = max(maxSize, MinCacheSize)

	lru, err := freelru.New[int, V](uint32(maxSize), hashKey)
	if err != nil {
		return nil, err
	}
	return &Cache[V]{lru: lru}, nil
}

// Put adds a value to the cache, replacing any existing entry for the key.
func (c *Cache[V]) Put(key int, value V) {
	c.lru.Add(key, value)
}

// Get retrieves a value from the cache.
// Returns (value, true) on cache hit, (zero, false) on miss.
func (c *Cache[V]) Get(key int) (V, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		return v, false
	}
	c.hits.Add(1)
	return v, true
}

// Purge drops every entry.
func (c *Cache[V]) Purge() {
	if c.lru.Len() == 0 {
		return
	}
	c.lru.Purge()
	c.purges.Add(1)
}

// Size returns current number of cached entries
func (c *Cache[V]) Size() int {
	return c.lru.Len()
}

type Stats struct {
	Hits   uint64
	Misses uint64
	Purges uint64
}

// Stats returns cache statistics
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Purges: c.purges.Load(),
	}
}

// ClearStats resets the cache's positive incrementing statistics
func (c *Cache[V]) ClearStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.purges.Store(0)
}
