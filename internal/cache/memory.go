package cache

import (
	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements in-memory caching of resolved lookups. Entries
// never expire; the cache lives only for one extraction session.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(key string) (string, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(string), true
	}
	return "", false
}

// Set stores a value in the cache
func (c *MemoryCache) Set(key string, value string) {
	c.cache.Set(key, value, gocache.NoExpiration)
}

// Clear removes all values from the cache
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}
