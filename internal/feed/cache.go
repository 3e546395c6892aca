package feed

import (
	"sync"
	"time"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

// CacheTTL is how long a fetched feed stays valid before the next call
// triggers a refresh.
const CacheTTL = 5 * time.Minute

type cacheEntry struct {
	items     []model.NewsItem
	fetchedAt time.Time
}

// Cache holds the most recent normalized items per feed id. Entries are
// replaced whole on refresh; readers never see a partial update. There is
// no size bound, the number of distinct feed ids is configuration-driven
// and small.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached items for a feed id, or false when there is no
// entry or the entry has outlived the TTL.
func (c *Cache) Get(feedID string) ([]model.NewsItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[feedID]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		return nil, false
	}
	return entry.items, true
}

func (c *Cache) Set(feedID string, items []model.NewsItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[feedID] = cacheEntry{items: items, fetchedAt: c.now()}
}
