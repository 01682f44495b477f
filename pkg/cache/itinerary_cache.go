// Package cache memoizes itinerary results. Build is deterministic, so a result
// can be reused for any request with the same spots, day count and theme flag.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"shinkai/pkg/itinerary"
)

type ItineraryCache interface {
	Get(ctx context.Context, key string) (itinerary.Result, bool)
	Set(ctx context.Context, key string, result itinerary.Result, ttl time.Duration)
}

// Key derives a stable cache key from the builder inputs.
func Key(spots []itinerary.Spot, totalDays int, includeThemePark bool) string {
	h := sha256.New()
	// json.Marshal of plain structs cannot fail
	raw, _ := json.Marshal(spots)
	h.Write(raw)
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.Itoa(totalDays)))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.FormatBool(includeThemePark)))
	return hex.EncodeToString(h.Sum(nil))
}

type entry struct {
	result    itinerary.Result
	expiresAt time.Time
}

// sweepInterval bounds how often Set scans the map for expired entries.
const sweepInterval = time.Minute

// InMemoryItineraryCache is the process-local fallback when no redis is configured.
// Expired entries are dropped on read and by a periodic sweep inside Set.
type InMemoryItineraryCache struct {
	mu        sync.RWMutex
	data      map[string]entry
	now       func() time.Time
	nextSweep time.Time
}

func NewInMemoryItineraryCache() *InMemoryItineraryCache {
	return &InMemoryItineraryCache{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (c *InMemoryItineraryCache) Get(_ context.Context, key string) (itinerary.Result, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return itinerary.Result{}, false
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, key) // cleanup expired
		c.mu.Unlock()
		return itinerary.Result{}, false
	}
	return e.result, true
}

func (c *InMemoryItineraryCache) Set(_ context.Context, key string, result itinerary.Result, ttl time.Duration) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !now.Before(c.nextSweep) {
		c.sweepLocked(now)
		c.nextSweep = now.Add(sweepInterval)
	}
	c.data[key] = entry{
		result:    result,
		expiresAt: now.Add(ttl),
	}
}

func (c *InMemoryItineraryCache) sweepLocked(now time.Time) {
	for k, e := range c.data {
		if now.After(e.expiresAt) {
			delete(c.data, k)
		}
	}
}

// Len reports the number of stored entries, including expired ones not yet swept.
func (c *InMemoryItineraryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
