package cache

import (
	"sync"
	"time"
)

// SeedingCache stores per-competition seeding orders with a TTL. A hit
// returns the exact entity id order that was saved; a miss means the caller
// falls back to the natural ordering.
type SeedingCache interface {
	GetSeeding(competitionID int) ([]int, bool)
	SetSeeding(competitionID int, order []int, ttl time.Duration)
	DeleteSeeding(competitionID int)
}

type entry struct {
	order     []int
	expiresAt time.Time
}

// MemorySeedingCache is an in-process TTL map. Expired entries are dropped
// lazily on read and swept by a background janitor.
type MemorySeedingCache struct {
	mu      sync.RWMutex
	entries map[int]entry
	done    chan struct{}
}

func NewMemorySeedingCache(sweepInterval time.Duration) *MemorySeedingCache {
	c := &MemorySeedingCache{
		entries: make(map[int]entry),
		done:    make(chan struct{}),
	}
	if sweepInterval > 0 {
		go c.janitor(sweepInterval)
	}
	return c
}

func (c *MemorySeedingCache) GetSeeding(competitionID int) ([]int, bool) {
	c.mu.RLock()
	e, ok := c.entries[competitionID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.DeleteSeeding(competitionID)
		return nil, false
	}
	order := make([]int, len(e.order))
	copy(order, e.order)
	return order, true
}

func (c *MemorySeedingCache) SetSeeding(competitionID int, order []int, ttl time.Duration) {
	stored := make([]int, len(order))
	copy(stored, order)
	c.mu.Lock()
	c.entries[competitionID] = entry{order: stored, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

func (c *MemorySeedingCache) DeleteSeeding(competitionID int) {
	c.mu.Lock()
	delete(c.entries, competitionID)
	c.mu.Unlock()
}

// Close stops the janitor goroutine.
func (c *MemorySeedingCache) Close() {
	close(c.done)
}

func (c *MemorySeedingCache) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for id, e := range c.entries {
				if now.After(e.expiresAt) {
					delete(c.entries, id)
				}
			}
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}
