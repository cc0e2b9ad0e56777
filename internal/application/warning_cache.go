package application

import (
	"sync"
	"time"
)

// warningCache memoizes opening-hours warnings per trip day so repeated
// itinerary reads do not re-evaluate every attraction's weekly entries.
// Entries expire after a TTL and are also invalidated implicitly because the
// cache key includes the item count for the day.
type warningCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]warningCacheEntry
}

type warningCacheEntry struct {
	warnings  []string
	expiresAt time.Time
}

func newWarningCache(ttl time.Duration, now func() time.Time) *warningCache {
	if now == nil {
		now = time.Now
	}
	return &warningCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]warningCacheEntry),
	}
}

func (c *warningCache) get(key string) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.warnings, true
}

func (c *warningCache) set(key string, warnings []string) {
	if c == nil || c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = warningCacheEntry{
		warnings:  warnings,
		expiresAt: c.now().Add(c.ttl),
	}
}
