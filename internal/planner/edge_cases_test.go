package planner

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

func ingotCatalog() fakeRecipes {
	return fakeRecipes{
		"ore":   base("ore"),
		"ingot": craft("ingot", 1, ing("ore", 4)),
	}
}

func TestExpand_RejectsOverflowingQuantities(t *testing.T) {
	p := New(ingotCatalog(), 0)

	tests := []struct {
		name     string
		quantity int
	}{
		{"product past limit", MaxPlannedQuantity/4 + 1},
		{"root past limit", MaxPlannedQuantity + 1},
		{"would wrap int", math.MaxInt / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Expand(context.Background(), "ingot", tt.quantity, Unbounded)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	tree, err := p.Expand(context.Background(), "ingot", MaxPlannedQuantity/4, Unbounded)
	require.NoError(t, err)
	assert.Equal(t, MaxPlannedQuantity/4*4, tree.Children[0].Quantity)
}

func TestCascade_RejectsOverflowAndKeepsInvariant(t *testing.T) {
	ctx := context.Background()
	p := New(ingotCatalog(), 0)
	tree := expandOrFail(t, p, "ingot", 1, Unbounded)

	err := p.SetRequired(ctx, &tree, []string{"ingot"}, math.MaxInt/2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = p.SetPossessed(ctx, &tree, []string{"ingot"}, math.MaxInt/2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	tree = expandOrFail(t, p, "ingot", 1, Unbounded)
	require.NoError(t, p.SetPossessed(ctx, &tree, []string{"ingot"}, 0))
	tree.Walk(func(n *domain.TreeNode) {
		assert.GreaterOrEqual(t, n.Quantity, 0, n.ItemID)
		assert.LessOrEqual(t, n.CurrentQuantity, n.Quantity, n.ItemID)
	})
	assert.Equal(t, 4, tree.Children[0].Quantity)
}

func TestAdjustTargets_RejectsOverflow(t *testing.T) {
	p := New(ingotCatalog(), 0)
	items := map[string]*domain.ItemRecord{
		"ingot": {ItemID: "ingot", TargetQuantity: 1},
		"ore":   {ItemID: "ore", TargetQuantity: 4},
	}

	err := p.AdjustTargets(context.Background(), items, "ingot", -(math.MaxInt / 2))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 4, items["ore"].TargetQuantity)
}

func TestFlatten_SaturatesSums(t *testing.T) {
	tree := domain.TreeNode{
		ItemID:   "ingot",
		Quantity: 1,
		Children: []domain.TreeNode{
			{ItemID: "ore", Quantity: MaxPlannedQuantity, BaseQuantity: MaxPlannedQuantity},
			{ItemID: "ore", Quantity: MaxPlannedQuantity, BaseQuantity: 1},
		},
	}

	items := Flatten(&tree)

	assert.Equal(t, MaxPlannedQuantity, items["ore"].TargetQuantity)
	assert.Equal(t, MaxPlannedQuantity, items["ore"].BaseQuantity)
}

func TestQuantityArithmetic(t *testing.T) {
	assert.Equal(t, math.MaxInt/2+1, ceilDiv(math.MaxInt, 2))
	assert.Equal(t, 3, ceilDiv(9, 4))
	assert.Zero(t, ceilDiv(-5, 4))

	n, err := mulQty(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = mulQty(MaxPlannedQuantity, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Equal(t, MaxPlannedQuantity, addQty(MaxPlannedQuantity-1, 5))
	assert.Equal(t, 7, addQty(3, 4))
}
