package internal

import (
	"slices"
	"testing"
)

// nil textures stand in for real ones; the cache never dereferences them.
func TestTextureCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewTextureCacheWithSize(2)
	c.Set("a", nil)
	c.Set("b", nil)
	c.Get("a")
	c.Set("c", nil)

	if got, want := c.Keys(), []string{"a", "c"}; !slices.Equal(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func TestTextureCacheStats(t *testing.T) {
	c := NewTextureCache()
	c.Set("a", nil)
	c.Get("a")
	c.Get("missing")

	if hits, misses := c.Stats(); hits != 1 || misses != 1 {
		t.Errorf("stats = %d hits, %d misses", hits, misses)
	}
}

func TestTextureCacheResetOnDestroy(t *testing.T) {
	c := NewTextureCacheWithSize(0)
	c.Set("a", nil)
	c.Set("b", nil)
	if got := c.Keys(); !slices.Equal(got, []string{"b"}) {
		t.Errorf("size-1 cache keys = %v", got)
	}
	c.Destroy()
	if len(c.Keys()) != 0 {
		t.Error("keys left after Destroy")
	}
}
