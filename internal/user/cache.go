package user

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached record structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedRecordEntry wraps a record with version metadata for cache invalidation
type cachedRecordEntry struct {
	Version  string
	Record   *domain.UserRecord
	CachedAt time.Time
}

// recordCache provides an in-memory LRU cache for user record reads with
// time-based expiration and version-based invalidation. It always hands out
// clones so callers cannot mutate cached state in place.
type recordCache struct {
	lru *expirable.LRU[string, *cachedRecordEntry]
}

// newRecordCache creates a cache holding at most size records for up to ttl.
func newRecordCache(size int, ttl time.Duration) *recordCache {
	return &recordCache{
		lru: expirable.NewLRU[string, *cachedRecordEntry](size, nil, ttl),
	}
}

// Get retrieves a record clone from the cache.
// Returns (nil, false) if not cached, expired, or the schema version moved.
func (c *recordCache) Get(key string) (*domain.UserRecord, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.Record.Clone(), true
}

// Set stores a clone of the record under the current schema version.
func (c *recordCache) Set(key string, record *domain.UserRecord) {
	c.lru.Add(key, &cachedRecordEntry{
		Version:  CacheSchemaVersion,
		Record:   record.Clone(),
		CachedAt: time.Now(),
	})
}

// Invalidate removes a record from the cache after a write.
func (c *recordCache) Invalidate(key string) {
	c.lru.Remove(key)
}

// Clear removes all entries from the cache.
func (c *recordCache) Clear() {
	c.lru.Purge()
}
