package factors

import (
	"crypto/sha256"
	"sync"

	"github.com/rs/zerolog"
)

// Cache memoizes Load by the SHA-256 of the source bytes, so a front end
// that re-submits the same upload on every request parses it once. A new
// upload hashes to a new key; stale entries for replaced uploads can be
// dropped with Invalidate.
//
// The zero value is not usable; construct with NewCache.
type Cache struct {
	logger zerolog.Logger

	mu     sync.RWMutex
	tables map[[sha256.Size]byte]*Table
}

// NewCache returns an empty table cache. The logger is handed to each
// loaded table and used for cache hit/miss diagnostics.
func NewCache(logger zerolog.Logger) *Cache {
	return &Cache{
		logger: logger,
		tables: make(map[[sha256.Size]byte]*Table),
	}
}

// Load returns the cached table for data, parsing and caching it on first
// sight. Concurrent callers with the same bytes receive the same *Table.
// Parse failures are not cached: a corrected re-upload of the same bytes
// is impossible, so there is nothing to invalidate.
func (c *Cache) Load(data []byte) (*Table, error) {
	key := sha256.Sum256(data)

	c.mu.RLock()
	table, ok := c.tables[key]
	c.mu.RUnlock()
	if ok {
		c.logger.Debug().Msg("factor table cache hit")
		return table, nil
	}

	loaded, err := Load(data, c.logger)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have parsed the same bytes first; keep its table
	// so callers always share one instance per content hash.
	if existing, ok := c.tables[key]; ok {
		return existing, nil
	}
	c.tables[key] = loaded
	c.logger.Debug().Int("rows", loaded.Len()).Msg("factor table cached")
	return loaded, nil
}

// Invalidate drops the cached table for data, if any.
func (c *Cache) Invalidate(data []byte) {
	key := sha256.Sum256(data)
	c.mu.Lock()
	delete(c.tables, key)
	c.mu.Unlock()
}

// Reset drops every cached table.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.tables = make(map[[sha256.Size]byte]*Table)
	c.mu.Unlock()
}

// Size returns the number of cached tables.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables)
}
