package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// CountyLoader fetches the county list on a cache miss.
type CountyLoader func(ctx context.Context) ([]string, error)

// CountyCache keeps the distinct county list of each directory in memory.
type CountyCache struct {
	cache *cache.Cache
}

func NewCountyCache(ttl time.Duration) *CountyCache {
	return &CountyCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

// Get returns the cached list for key or loads and stores it.
// Load errors are not cached.
func (c *CountyCache) Get(ctx context.Context, key string, load CountyLoader) ([]string, error) {
	if x, found := c.cache.Get(key); found {
		return x.([]string), nil
	}

	counties, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if counties == nil {
		counties = []string{}
	}

	c.cache.Set(key, counties, cache.DefaultExpiration)
	return counties, nil
}

func (c *CountyCache) Invalidate(key string) {
	c.cache.Delete(key)
}
