package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedingCacheRoundTrip(t *testing.T) {
	c := NewMemorySeedingCache(0)

	_, ok := c.GetSeeding(1)
	assert.False(t, ok)

	c.SetSeeding(1, []int{3, 1, 2}, time.Minute)
	order, ok := c.GetSeeding(1)
	require.True(t, ok)
	assert.Equal(t, []int{3, 1, 2}, order)
}

func TestSeedingCacheExpiry(t *testing.T) {
	c := NewMemorySeedingCache(0)

	c.SetSeeding(1, []int{1, 2}, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, ok := c.GetSeeding(1)
	assert.False(t, ok)
}

func TestSeedingCacheDelete(t *testing.T) {
	c := NewMemorySeedingCache(0)

	c.SetSeeding(7, []int{1, 2, 3}, time.Minute)
	c.DeleteSeeding(7)

	_, ok := c.GetSeeding(7)
	assert.False(t, ok)
}

func TestSeedingCacheReturnsCopy(t *testing.T) {
	c := NewMemorySeedingCache(0)

	original := []int{1, 2, 3}
	c.SetSeeding(1, original, time.Minute)

	got, ok := c.GetSeeding(1)
	require.True(t, ok)
	got[0] = 99
	original[1] = 99

	again, ok := c.GetSeeding(1)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, again)
}

func TestSeedingCacheJanitorSweeps(t *testing.T) {
	c := NewMemorySeedingCache(10 * time.Millisecond)
	defer c.Close()

	c.SetSeeding(1, []int{1}, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	c.mu.RLock()
	_, present := c.entries[1]
	c.mu.RUnlock()
	assert.False(t, present)
}
