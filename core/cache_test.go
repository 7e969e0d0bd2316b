package core

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

func TestInMemoryCacheGetSetShouldStoreAndRetrieve(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{
		TTL:     5 * time.Minute,
		MaxSize: 500,
	})

	payload := json.RawMessage(`[{"id":"plan1","destination":"Lisbon"}]`)

	err := cache.Set("/travel-plans/public", payload)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	retrieved, err := cache.Get("/travel-plans/public")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if string(retrieved) != string(payload) {
		t.Errorf("Expected payload %s, got %s", payload, retrieved)
	}
}

func TestInMemoryCacheGetNonExistentShouldReturnErrCacheMiss(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{
		TTL:     5 * time.Minute,
		MaxSize: 500,
	})

	_, err := cache.Get("/users?page=1")
	if err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss, got %v", err)
	}
}

func TestInMemoryCacheExpiryShouldExpireEntriesAfterTTL(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{
		TTL:     100 * time.Millisecond,
		MaxSize: 500,
	})

	cache.Set("/users", json.RawMessage(`[]`))

	// Should exist immediately
	_, err := cache.Get("/users")
	if err != nil {
		t.Error("Payload should exist immediately after Set")
	}

	// Wait for TTL to expire
	time.Sleep(150 * time.Millisecond)

	// Should be expired and removed from cache
	_, err = cache.Get("/users")
	if err != ErrCacheMiss {
		t.Error("Payload should be expired and removed from cache")
	}

	if cache.Len() != 0 {
		t.Errorf("Cache should be empty after expired entry removed, got size %d", cache.Len())
	}
}

func TestInMemoryCacheEvictionShouldEvictWhenFull(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{
		TTL:     5 * time.Minute,
		MaxSize: 3,
	})

	for i := 0; i < 4; i++ {
		cache.Set(fmt.Sprintf("/users?page=%d", i), json.RawMessage(`[]`))
	}

	if cache.Len() > 3 {
		t.Errorf("Cache should not exceed max size 3, got %d", cache.Len())
	}

	stats := cache.Stats()
	if stats.Evictions != 1 {
		t.Errorf("Expected 1 eviction, got %d", stats.Evictions)
	}
}

func TestInMemoryCacheDeleteShouldRemoveEntry(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{
		TTL:     5 * time.Minute,
		MaxSize: 500,
	})

	cache.Set("/users", json.RawMessage(`[]`))

	if err := cache.Delete("/users"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := cache.Get("/users"); err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss after delete, got %v", err)
	}

	// Deleting a missing key is a no-op
	if err := cache.Delete("/users"); err != nil {
		t.Errorf("Delete of missing key should not fail: %v", err)
	}
}

func TestInMemoryCacheClearShouldRemoveAllEntries(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{
		TTL:     5 * time.Minute,
		MaxSize: 500,
	})

	cache.Set("/users", json.RawMessage(`[]`))
	cache.Set("/travel-plans/public", json.RawMessage(`[]`))

	if err := cache.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if cache.Len() != 0 {
		t.Errorf("Cache should be empty after Clear, got size %d", cache.Len())
	}
}

func TestInMemoryCacheStatsShouldTrackHitsAndMisses(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{
		TTL:     5 * time.Minute,
		MaxSize: 500,
	})

	cache.Set("/users", json.RawMessage(`[]`))

	cache.Get("/users")       // hit
	cache.Get("/users")       // hit
	cache.Get("/nonexistent") // miss

	stats := cache.Stats()
	if stats.Hits != 2 {
		t.Errorf("Expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}
	if stats.Sets != 1 {
		t.Errorf("Expected 1 set, got %d", stats.Sets)
	}
}

func TestInMemoryCacheDefaultsShouldApplyWhenZero(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{})

	if cache.ttl != time.Minute {
		t.Errorf("Expected default TTL of 1m, got %v", cache.ttl)
	}
	if cache.maxSize != 200 {
		t.Errorf("Expected default max size 200, got %d", cache.maxSize)
	}
}
