package factors

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SameBytesShareOneTable(t *testing.T) {
	cache := NewCache(zerolog.Nop())

	first, err := cache.Load([]byte(sampleCSV))
	require.NoError(t, err)
	second, err := cache.Load([]byte(sampleCSV))
	require.NoError(t, err)

	assert.Same(t, first, second, "identical bytes should resolve to one cached table")
	assert.Equal(t, 1, cache.Size())
}

func TestCache_DifferentBytesLoadSeparately(t *testing.T) {
	cache := NewCache(zerolog.Nop())

	first, err := cache.Load([]byte(sampleCSV))
	require.NoError(t, err)

	other := sampleCSV + "fuel,diesel_L,L,2.68,,DCCEEW NGA,2024\n"
	second, err := cache.Load([]byte(other))
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, 2, cache.Size())
}

func TestCache_InvalidateForcesReload(t *testing.T) {
	cache := NewCache(zerolog.Nop())

	first, err := cache.Load([]byte(sampleCSV))
	require.NoError(t, err)

	cache.Invalidate([]byte(sampleCSV))
	assert.Equal(t, 0, cache.Size())

	second, err := cache.Load([]byte(sampleCSV))
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestCache_ParseFailuresNotCached(t *testing.T) {
	cache := NewCache(zerolog.Nop())

	_, err := cache.Load([]byte("category,unit\n"))
	require.Error(t, err)
	assert.Equal(t, 0, cache.Size())
}

func TestCache_ConcurrentLoads(t *testing.T) {
	cache := NewCache(zerolog.Nop())

	const goroutines = 16
	tables := make([]*Table, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			table, err := cache.Load([]byte(sampleCSV))
			assert.NoError(t, err)
			tables[i] = table
		}()
	}
	wg.Wait()

	require.Equal(t, 1, cache.Size())
	for i := 1; i < goroutines; i++ {
		assert.Same(t, tables[0], tables[i])
	}
}

func TestCache_Reset(t *testing.T) {
	cache := NewCache(zerolog.Nop())

	_, err := cache.Load([]byte(sampleCSV))
	require.NoError(t, err)

	cache.Reset()
	assert.Equal(t, 0, cache.Size())
}
