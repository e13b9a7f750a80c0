package server

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// ResultCache is a local TTL cache for rendered results. Every entry costs 1.
type ResultCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewResultCache creates a cache holding up to maxCost entries for ttl each.
func NewResultCache(maxCost int64, ttl time.Duration) (*ResultCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e7,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create result cache: %w", err)
	}
	return &ResultCache{
		cache: cache,
		ttl:   ttl,
	}, nil
}

// Set stores value with the default TTL. Writes are buffered and may be
// dropped under contention.
func (c *ResultCache) Set(key string, value interface{}) bool {
	return c.cache.SetWithTTL(key, value, 1, c.ttl)
}

func (c *ResultCache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

// Wait blocks until buffered writes are applied.
func (c *ResultCache) Wait() {
	c.cache.Wait()
}

func (c *ResultCache) Close() {
	c.cache.Close()
}
