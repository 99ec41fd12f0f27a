package recipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeCache(t *testing.T) {
	c := newRecipeCache(2, time.Minute)
	ore := base("ore")
	wood := base("wood")
	ingot := craft("ingot", 1, ing("ore", 2))

	c.Fill(&ore, c.Generation())
	c.Fill(&wood, c.Generation())
	c.Fill(&ingot, c.Generation())
	assert.Equal(t, 2, c.Len(), "oldest entry evicted")
	_, ok := c.Get("ore")
	assert.False(t, ok)

	got, ok := c.Get("ingot")
	require.True(t, ok)
	got.Ingredients[0].Quantity = 50
	again, _ := c.Get("ingot")
	assert.Equal(t, 2, again.Ingredients[0].Quantity)

	c.Invalidate("ingot")
	_, ok = c.Get("ingot")
	assert.False(t, ok)

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestRecipeCache_StaleVersion(t *testing.T) {
	c := newRecipeCache(0, 0)
	ore := base("ore")
	c.lru.Add("ore", &cachedRecipeEntry{Version: "0", Recipe: &ore})

	_, ok := c.Get("ore")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestRecipeCache_Expiry(t *testing.T) {
	c := newRecipeCache(4, 20*time.Millisecond)
	ore := base("ore")
	c.Fill(&ore, c.Generation())

	assert.Eventually(t, func() bool {
		_, ok := c.Get("ore")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestRecipeCache_FillAfterInvalidate(t *testing.T) {
	tests := []struct {
		name       string
		invalidate func(c *recipeCache)
		wantFilled bool
	}{
		{"no write in between", func(*recipeCache) {}, true},
		{"invalidate in between", func(c *recipeCache) { c.Invalidate("ingot") }, false},
		{"invalidate other id in between", func(c *recipeCache) { c.Invalidate("ore") }, false},
		{"clear in between", func(c *recipeCache) { c.Clear() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newRecipeCache(4, time.Minute)
			ingot := craft("ingot", 1, ing("ore", 2))

			gen := c.Generation()
			tt.invalidate(c)
			assert.Equal(t, tt.wantFilled, c.Fill(&ingot, gen))

			_, ok := c.Get("ingot")
			assert.Equal(t, tt.wantFilled, ok)
		})
	}
}
