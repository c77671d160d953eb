package listing

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// FeedCache keeps feed selections by category for a short time. Invalidate must be called
// whenever feeds are added or removed.
type FeedCache struct {
	selector FeedSelector
	cache    *cache.Cache

	mu  sync.Mutex
	gen uint64 // bumped by Invalidate, loads started before a bump are not stored
}

// NewFeedCache wraps selector with a cache, entries expire after ttl
func NewFeedCache(selector FeedSelector, ttl time.Duration) *FeedCache {
	return &FeedCache{selector: selector, cache: cache.New(ttl, 2*ttl)}
}

// FeedIDsByCategory returns cached feed ids for the category, loading them on a miss
func (c *FeedCache) FeedIDsByCategory(ctx context.Context, categoryID string) ([]int64, error) {
	if v, ok := c.cache.Get(categoryID); ok {
		return slices.Clone(v.([]int64)), nil
	}

	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	ids, err := c.selector.FeedIDsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == gen {
		c.cache.SetDefault(categoryID, slices.Clone(ids))
	}
	return ids, nil
}

// Invalidate drops all cached selections
func (c *FeedCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.cache.Flush()
}
