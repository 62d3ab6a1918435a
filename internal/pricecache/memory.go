package pricecache

import (
	"fmt"
	"sync"
	"time"

	"QuantDesk/internal/model"
)

type memoryEntry struct {
	series   model.PriceSeries
	storedAt time.Time
}

// MemoryCache is an in-process TTL cache for price series.
type MemoryCache struct {
	ttl     time.Duration
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates an in-memory cache whose entries expire after ttl.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func cacheKey(symbol string, days int) string {
	return fmt.Sprintf("%s|%d", symbol, days)
}

func (c *MemoryCache) Get(symbol string, days int) (model.PriceSeries, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[cacheKey(symbol, days)]
	if !ok || c.now().After(entry.storedAt.Add(c.ttl)) {
		return model.PriceSeries{}, false
	}
	return entry.series, true
}

func (c *MemoryCache) Put(symbol string, days int, series model.PriceSeries) {
	c.mu.Lock()
	c.entries[cacheKey(symbol, days)] = memoryEntry{series: series, storedAt: c.now()}
	c.mu.Unlock()
}

func (c *MemoryCache) Close() error { return nil }
