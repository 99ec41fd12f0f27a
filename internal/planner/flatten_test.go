package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

func TestFlatten_SumsAcrossOccurrences(t *testing.T) {
	catalog := swordCatalog()
	catalog["tool"] = craft("tool", 1, ing("ingot", 2))
	catalog["kit"] = craft("kit", 1, ing("ingot", 1), ing("tool", 1))
	p := New(catalog, 0)

	tree, err := p.Expand(context.Background(), "kit", 1, Unbounded)
	require.NoError(t, err)
	require.NoError(t, p.SetPossessed(context.Background(), &tree, []string{"kit", "tool", "ingot", "ore"}, 3))

	items := Flatten(&tree)
	require.Len(t, items, 4)
	assert.Equal(t, domain.ItemRecord{ItemID: "ingot", TargetQuantity: 3, BaseQuantity: 3}, *items["ingot"])
	assert.Equal(t, domain.ItemRecord{ItemID: "ore", TargetQuantity: 6, CurrentQuantity: 3, BaseQuantity: 6}, *items["ore"])
	assert.Equal(t, 1, items["kit"].TargetQuantity)
}

func TestFlatten_NegativeBaselineIgnored(t *testing.T) {
	tree := domain.TreeNode{
		ItemID: "a", BaseQuantity: -2, Quantity: 1,
		Children: []domain.TreeNode{leaf("b", 4, 4, 1)},
	}
	items := Flatten(&tree)
	assert.Zero(t, items["a"].BaseQuantity)
	assert.Equal(t, 4, items["b"].BaseQuantity)
	assert.Equal(t, 1, items["b"].CurrentQuantity)
}

func TestFlatten_Nil(t *testing.T) {
	assert.Empty(t, Flatten(nil))
}
