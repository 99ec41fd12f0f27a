package recipe

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// cachedRecipeEntry wraps a recipe with the schema version it was cached under
type cachedRecipeEntry struct {
	Version  string
	Recipe   *domain.Recipe
	CachedAt time.Time
}

// recipeCache is an in-memory LRU of recipe lookups with time-based expiry.
// Entries are cloned on the way in and out so callers never share ingredient slices.
//
// generation counts invalidations. A reader that missed takes the generation before
// reading the store and fills only if no invalidation happened since, so a write
// racing the read never leaves the old record cached.
type recipeCache struct {
	lru *expirable.LRU[string, *cachedRecipeEntry]

	mu         sync.Mutex
	generation uint64
}

func newRecipeCache(size int, ttl time.Duration) *recipeCache {
	if size < 1 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &recipeCache{
		lru: expirable.NewLRU[string, *cachedRecipeEntry](size, nil, ttl),
	}
}

// Get returns (recipe, true) on a fresh hit. Entries with a stale schema version are evicted.
func (c *recipeCache) Get(id string) (*domain.Recipe, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return nil, false
	}
	return entry.Recipe.Clone(), true
}

// Generation is taken before a store read whose result will be passed to Fill
func (c *recipeCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Fill caches recipe unless an Invalidate or Clear ran after gen was taken
func (c *recipeCache) Fill(recipe *domain.Recipe, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return false
	}
	c.lru.Add(recipe.ID, &cachedRecipeEntry{
		Version:  CacheSchemaVersion,
		Recipe:   recipe.Clone(),
		CachedAt: time.Now(),
	})
	return true
}

func (c *recipeCache) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.lru.Remove(id)
}

func (c *recipeCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.lru.Purge()
}

func (c *recipeCache) Len() int {
	return c.lru.Len()
}
