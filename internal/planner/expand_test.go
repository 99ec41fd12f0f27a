package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

func TestExpand_SingleIngredient(t *testing.T) {
	p := New(fakeRecipes{
		"A": craft("A", 1, ing("B", 2)),
		"B": base("B"),
	}, 0)

	tree, err := p.Expand(context.Background(), "A", 5, Unbounded)
	require.NoError(t, err)

	assert.Equal(t, 5, tree.Quantity)
	assert.Equal(t, 5, tree.BaseQuantity)
	assert.False(t, tree.IsBase)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "B", tree.Children[0].ItemID)
	assert.Equal(t, 10, tree.Children[0].Quantity)
	assert.True(t, tree.Children[0].IsBase)
	assert.Empty(t, tree.Children[0].Children)
}

func TestExpand_BatchRounding(t *testing.T) {
	p := New(swordCatalog(), 0)

	tree, err := p.Expand(context.Background(), "sword", 2, Unbounded)
	require.NoError(t, err)

	assert.Equal(t, 2, tree.Quantity)
	assert.Equal(t, 6, child(&tree, "ingot").Quantity)
	assert.Equal(t, 12, child(&tree, "ingot", "ore").Quantity)
	assert.Equal(t, 1, child(&tree, "stick").Quantity, "2 sticks fit in one batch of 4")
	assert.Equal(t, 1, child(&tree, "stick", "plank").Quantity)
	assert.Equal(t, 1, child(&tree, "stick", "plank", "wood").Quantity)

	// every child was expanded from ratio * parent batches
	tree.Walk(func(n *domain.TreeNode) {
		assert.Equal(t, n.Quantity, n.BaseQuantity)
		assert.Zero(t, n.CurrentQuantity)
	})
}

func TestExpand_OutputBatchDividesRootQuantity(t *testing.T) {
	p := New(swordCatalog(), 0)

	tree, err := p.Expand(context.Background(), "plank", 10, Unbounded)
	require.NoError(t, err)

	assert.Equal(t, 3, tree.Quantity, "ceil(10/4)")
	assert.Equal(t, 3, child(&tree, "wood").Quantity)
}

func TestExpand_DepthCutoffTreatsItemAsBase(t *testing.T) {
	p := New(swordCatalog(), 0)

	tree, err := p.Expand(context.Background(), "sword", 2, Limit(1))
	require.NoError(t, err)

	ingot := child(&tree, "ingot")
	assert.True(t, ingot.IsBase)
	assert.Empty(t, ingot.Children)
	assert.Equal(t, 6, ingot.Quantity)

	root, err := p.Expand(context.Background(), "sword", 2, Limit(0))
	require.NoError(t, err)
	assert.True(t, root.IsBase)
	assert.Empty(t, root.Children)
}

func TestExpand_MissingIngredientSkipped(t *testing.T) {
	catalog := swordCatalog()
	catalog["amulet"] = craft("amulet", 1, ing("gem", 1), ing("ore", 1))
	p := New(catalog, 0)

	tree, err := p.Expand(context.Background(), "amulet", 1, Unbounded)
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "ore", tree.Children[0].ItemID)
}

func TestExpand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		catalog  fakeRecipes
		limit    int
		item     string
		expected error
	}{
		{
			name:     "unknown root",
			catalog:  swordCatalog(),
			item:     "shield",
			expected: domain.ErrRecipeNotFound,
		},
		{
			name: "mutual recursion",
			catalog: fakeRecipes{
				"a": craft("a", 1, ing("b", 1)),
				"b": craft("b", 1, ing("a", 1)),
			},
			item:     "a",
			expected: domain.ErrRecipeCycle,
		},
		{
			name: "self reference",
			catalog: fakeRecipes{
				"a": craft("a", 1, ing("a", 1)),
			},
			item:     "a",
			expected: domain.ErrRecipeCycle,
		},
		{
			name: "depth ceiling",
			catalog: fakeRecipes{
				"c1":  craft("c1", 1, ing("c2", 1)),
				"c2":  craft("c2", 1, ing("c3", 1)),
				"c3":  craft("c3", 1, ing("ore", 1)),
				"ore": base("ore"),
			},
			limit:    2,
			item:     "c1",
			expected: domain.ErrExpansionTooDeep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.catalog, tt.limit)
			_, err := p.Expand(context.Background(), tt.item, 1, Unbounded)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestDepthFrom(t *testing.T) {
	assert.Equal(t, Unbounded, DepthFrom(nil))
	three := 3
	assert.Equal(t, Depth(3), DepthFrom(&three))
	negative := -4
	assert.Equal(t, Depth(0), DepthFrom(&negative))
}
