package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

func TestAdjustTargets_BaseIngredient(t *testing.T) {
	ctx := context.Background()
	p := New(fakeRecipes{
		"A": craft("A", 1, ing("B", 2)),
		"B": base("B"),
	}, 0)
	items := map[string]*domain.ItemRecord{
		"A": {ItemID: "A", TargetQuantity: 5},
		"B": {ItemID: "B", TargetQuantity: 10},
	}

	require.NoError(t, p.AdjustTargets(ctx, items, "A", 3))
	assert.Equal(t, 4, items["B"].TargetQuantity)

	require.NoError(t, p.AdjustTargets(ctx, items, "A", 3))
	assert.Zero(t, items["B"].TargetQuantity, "floored at zero")

	require.NoError(t, p.AdjustTargets(ctx, items, "A", -1))
	assert.Equal(t, 2, items["B"].TargetQuantity, "refund restores need")
	assert.Equal(t, 5, items["A"].TargetQuantity, "edited item itself is untouched")
}

func TestAdjustTargets_WalksRecipeGraph(t *testing.T) {
	ctx := context.Background()
	p := New(swordCatalog(), 0)
	tree, err := p.Expand(ctx, "sword", 2, Unbounded)
	require.NoError(t, err)
	items := Flatten(&tree)

	require.NoError(t, p.AdjustTargets(ctx, items, "sword", 1))
	assert.Equal(t, 3, items["ingot"].TargetQuantity)
	assert.Equal(t, 6, items["ore"].TargetQuantity)
	assert.Zero(t, items["stick"].TargetQuantity)
	assert.Zero(t, items["plank"].TargetQuantity)
	assert.Zero(t, items["wood"].TargetQuantity)

	require.NoError(t, p.AdjustTargets(ctx, items, "sword", -1))
	assert.Equal(t, 6, items["ingot"].TargetQuantity)
	assert.Equal(t, 12, items["ore"].TargetQuantity)
	assert.Equal(t, 1, items["stick"].TargetQuantity)
	assert.Equal(t, 1, items["wood"].TargetQuantity)

	// tree untouched
	assert.Equal(t, 6, child(&tree, "ingot").Quantity)
}

func TestAdjustTargets_NoOps(t *testing.T) {
	ctx := context.Background()
	p := New(swordCatalog(), 0)
	items := map[string]*domain.ItemRecord{"ore": {ItemID: "ore", TargetQuantity: 4}}

	require.NoError(t, p.AdjustTargets(ctx, items, "ingot", 0))
	require.NoError(t, p.AdjustTargets(ctx, items, "ore", 5))
	require.NoError(t, p.AdjustTargets(ctx, items, "unknown", 5))
	assert.Equal(t, 4, items["ore"].TargetQuantity)

	require.NoError(t, p.AdjustTargets(ctx, items, "ingot", 1))
	assert.Equal(t, 2, items["ore"].TargetQuantity)
	assert.NotContains(t, items, "ingot")
}

func TestAdjustTargets_Cycle(t *testing.T) {
	p := New(fakeRecipes{
		"a": craft("a", 1, ing("b", 1)),
		"b": craft("b", 1, ing("a", 1)),
	}, 0)
	err := p.AdjustTargets(context.Background(), map[string]*domain.ItemRecord{}, "a", 1)
	assert.ErrorIs(t, err, domain.ErrRecipeCycle)
}
