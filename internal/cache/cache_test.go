package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheBasics(t *testing.T) {
	t.Parallel()

	cache, err := NewCache[string](10)
	require.NoError(t, err)

	// Test cache miss
	_, hit := cache.Get(1)
	assert.False(t, hit, "Expected cache miss for key 1")

	cache.Put(1, "one")

	// Should now hit
	v, hit := cache.Get(1)
	assert.True(t, hit, "Expected cache hit for key 1")
	assert.Equal(t, "one", v)

	assert.Equal(t, 1, cache.Size())

	stats := cache.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

func TestCacheReplacement(t *testing.T) {
	t.Parallel()

	cache, err := NewCache[string](10)
	require.NoError(t, err)

	cache.Put(7, "old")
	cache.Put(7, "new")

	v, hit := cache.Get(7)
	assert.True(t, hit)
	assert.Equal(t, "new", v, "Put should replace the existing entry")
	assert.Equal(t, 1, cache.Size())
}

func TestCacheNilValues(t *testing.T) {
	t.Parallel()

	// Negative lookups are cached as nil pointers and must still count as hits
	cache, err := NewCache[*int](10)
	require.NoError(t, err)

	cache.Put(42, nil)
	v, hit := cache.Get(42)
	assert.True(t, hit)
	assert.Nil(t, v)
}

func TestCacheEviction(t *testing.T) {
	t.Parallel()

	cache, err := NewCache[int](MinCacheSize)
	require.NoError(t, err)

	for i := 0; i < MinCacheSize*4; i++ {
		cache.Put(i, i*i)
	}

	assert.LessOrEqual(t, cache.Size(), MinCacheSize, "cache must not grow past its capacity")

	// The most recent key always survives
	v, hit := cache.Get(MinCacheSize*4 - 1)
	assert.True(t, hit)
	assert.Equal(t, (MinCacheSize*4-1)*(MinCacheSize*4-1), v)
}

func TestCacheMinimumSize(t *testing.T) {
	t.Parallel()

	cache, err := NewCache[int](0)
	require.NoError(t, err, "sizes below the minimum are raised, not rejected")

	for i := 0; i < MinCacheSize; i++ {
		cache.Put(i, i)
	}
	assert.Equal(t, MinCacheSize, cache.Size())
}

func TestCachePurge(t *testing.T) {
	t.Parallel()

	cache, err := NewCache[int](32)
	require.NoError(t, err)

	// Purging an empty cache is not counted
	cache.Purge()
	assert.Equal(t, uint64(0), cache.Stats().Purges)

	for i := 0; i < 5; i++ {
		cache.Put(i, i)
	}
	cache.Purge()
	assert.Equal(t, 0, cache.Size())
	assert.Equal(t, uint64(1), cache.Stats().Purges)

	_, hit := cache.Get(3)
	assert.False(t, hit)

	cache.ClearStats()
	assert.Equal(t, Stats{}, cache.Stats())
}
