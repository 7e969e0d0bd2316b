package core

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// ResponseCache caches decoded response payloads for public listing
// endpoints, keyed by request path and query. Only the transport writes
// to it; authenticated or mutating calls never touch the cache.
type ResponseCache interface {
	Get(key string) (json.RawMessage, error)
	Set(key string, payload json.RawMessage) error
	Delete(key string) error
	Clear() error
}

// CacheWithStats extends ResponseCache with statistics tracking.
type CacheWithStats interface {
	ResponseCache
	Stats() CacheStats
}

// CacheConfig configures cache behavior.
type CacheConfig struct {
	TTL     time.Duration
	MaxSize int
}

// CacheStats tracks cache performance metrics.
type CacheStats struct {
	Hits      int64         `json:"hits"`
	Misses    int64         `json:"misses"`
	Sets      int64         `json:"sets"`
	Deletes   int64         `json:"deletes"`
	Evictions int64         `json:"evictions"`
	Size      int           `json:"size"`
	TTL       time.Duration `json:"ttl"`
}

// InMemoryCache implements an in-memory response cache with a TTL and a
// max-size bound.
type InMemoryCache struct {
	cache   map[string]*cachedRecord
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int

	// counters
	hits      int64
	misses    int64
	sets      int64
	deletes   int64
	evictions int64
}

type cachedRecord struct {
	payload  json.RawMessage
	cachedAt time.Time
}

// NewInMemoryCache creates a new in-memory cache.
func NewInMemoryCache(c CacheConfig) *InMemoryCache {
	if c.TTL == 0 {
		c.TTL = time.Minute
	}
	if c.MaxSize == 0 {
		c.MaxSize = 200
	}

	return &InMemoryCache{
		cache:   make(map[string]*cachedRecord),
		ttl:     c.TTL,
		maxSize: c.MaxSize,
	}
}

// Get retrieves a payload from cache.
func (c *InMemoryCache) Get(key string) (json.RawMessage, error) {
	c.mu.RLock()

	record, exists := c.cache[key]
	if !exists {
		c.mu.RUnlock()
		atomic.AddInt64(&c.misses, 1)
		return nil, ErrCacheMiss
	}

	if time.Since(record.cachedAt) > c.ttl {
		c.mu.RUnlock()
		atomic.AddInt64(&c.misses, 1)

		if err := c.Delete(key); err != nil {
			return nil, err
		}
		return nil, ErrCacheMiss
	}

	c.mu.RUnlock()
	atomic.AddInt64(&c.hits, 1)
	return record.payload, nil
}

// Set stores a payload in cache.
func (c *InMemoryCache) Set(key string, payload json.RawMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Simple eviction if full
	if len(c.cache) >= c.maxSize {
		for k := range c.cache {
			delete(c.cache, k)
			atomic.AddInt64(&c.evictions, 1)
			break
		}
	}

	c.cache[key] = &cachedRecord{
		payload:  payload,
		cachedAt: time.Now(),
	}

	atomic.AddInt64(&c.sets, 1)
	return nil
}

// Delete removes a payload from cache.
func (c *InMemoryCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, existed := c.cache[key]; existed {
		delete(c.cache, key)
		atomic.AddInt64(&c.deletes, 1)
	}
	return nil
}

// Clear removes all payloads from cache.
func (c *InMemoryCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]*cachedRecord)
	return nil
}

// Len returns the number of cached payloads.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Stats returns cache statistics.
func (c *InMemoryCache) Stats() CacheStats {
	return CacheStats{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Sets:      atomic.LoadInt64(&c.sets),
		Deletes:   atomic.LoadInt64(&c.deletes),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      c.Len(),
		TTL:       c.ttl,
	}
}
