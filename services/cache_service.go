package services

import (
	"sync"
	"time"

	"github.com/software11inc/bluedot/shared"
)

// CacheEntry represents a cached item with expiration
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// IsExpired checks if the cache entry has expired
func (ce *CacheEntry) IsExpired() bool {
	return time.Now().After(ce.ExpiresAt)
}

// CacheService is the process-wide response cache: a key -> (value, expiry)
// map with per-route TTLs chosen by the caller. Expired entries are evicted
// lazily on read; the periodic cleanup job only bounds memory and is never
// needed for correctness. The cache is constructed once in main and injected
// into the service layer.
type CacheService struct {
	cache   map[string]*CacheEntry
	mutex   sync.Mutex
	metrics *shared.GatewayMetrics
}

// NewCacheService creates an empty cache
func NewCacheService(metrics *shared.GatewayMetrics) *CacheService {
	return &CacheService{
		cache:   make(map[string]*CacheEntry),
		metrics: metrics,
	}
}

// Get retrieves a value from cache. A read that observes an expired entry
// behaves as a miss and removes the stale entry.
func (cs *CacheService) Get(key string) (interface{}, bool) {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	entry, exists := cs.cache[key]
	if !exists {
		cs.metrics.RecordCacheMiss()
		return nil, false
	}
	if entry.IsExpired() {
		delete(cs.cache, key)
		cs.metrics.RecordCacheMiss()
		return nil, false
	}

	cs.metrics.RecordCacheHit()
	return entry.Data, true
}

// SetWithTTL stores a value, overwriting any prior entry for the key
func (cs *CacheService) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	cs.cache[key] = &CacheEntry{
		Data:      value,
		ExpiresAt: time.Now().Add(ttl),
	}
}

// Delete removes a value from cache
func (cs *CacheService) Delete(key string) {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	delete(cs.cache, key)
}

// Clear removes all values from cache
func (cs *CacheService) Clear() {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	cs.cache = make(map[string]*CacheEntry)
}

// Size returns the number of items in cache, expired entries included
func (cs *CacheService) Size() int {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	return len(cs.cache)
}

// CleanupExpired removes all expired entries and returns how many were
// removed. Called by the background cleanup job.
func (cs *CacheService) CleanupExpired() int {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	removed := 0
	for key, entry := range cs.cache {
		if entry.IsExpired() {
			delete(cs.cache, key)
			removed++
		}
	}
	return removed
}
