// Package cache provides the freshness cache for computed server listings.
// It wraps patrickmn/go-cache for TTL-based expiry evaluated lazily on read.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/placerank/placerank/internal/models"
)

// Cache holds one ranked listing per gameId for a short TTL.
// Safe for concurrent use; concurrent writers for the same gameId
// overwrite each other, last write wins.
type Cache struct {
	store *gocache.Cache
}

// New creates a cache with the given TTL and cleanup interval.
// ttl is how long an entry stays fresh, checked lazily on read.
// cleanupInterval is how often stale entries are purged from memory;
// zero disables the janitor and stale entries linger until overwritten.
func New(ttl, cleanupInterval time.Duration) *Cache {
	return &Cache{
		store: gocache.New(ttl, cleanupInterval),
	}
}

// Get returns the cached listing for gameID if it is still fresh.
func (c *Cache) Get(gameID string) (*models.ServerList, bool) {
	value, found := c.store.Get(gameID)
	if !found {
		return nil, false
	}

	list, ok := value.(*models.ServerList)
	if !ok {
		return nil, false
	}

	return list, true
}

// Set stores the listing for gameID, overwriting any previous entry.
func (c *Cache) Set(gameID string, list *models.ServerList) {
	c.store.Set(gameID, list, gocache.DefaultExpiration)
}

// ItemCount returns the number of stored entries, stale ones included.
func (c *Cache) ItemCount() int {
	return c.store.ItemCount()
}
