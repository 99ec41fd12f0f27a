package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

func leaf(id string, base, qty, current int) domain.TreeNode {
	return domain.TreeNode{ItemID: id, ItemName: id, BaseQuantity: base, Quantity: qty, CurrentQuantity: current, IsBase: true}
}

func TestMerge(t *testing.T) {
	old := []domain.TreeNode{
		{
			ItemID: "ingot", BaseQuantity: 6, Quantity: 6, CurrentQuantity: 2,
			Children: []domain.TreeNode{leaf("ore", 12, 8, 5)},
		},
		leaf("gem", 1, 1, 1),
	}
	fresh := []domain.TreeNode{
		{
			ItemID: "ingot", BaseQuantity: 3, Quantity: 3,
			Children: []domain.TreeNode{leaf("ore", 20, 20, 0)},
		},
		leaf("stick", 1, 1, 0),
	}

	merged := Merge(old, fresh)
	require.Len(t, merged, 2)

	ingot := merged[0]
	assert.Equal(t, 6, ingot.BaseQuantity, "baseline never shrinks")
	assert.Equal(t, 3, ingot.Quantity)
	assert.Equal(t, 2, ingot.CurrentQuantity, "possession survives rebuild")

	require.Len(t, ingot.Children, 1)
	assert.Equal(t, 20, ingot.Children[0].BaseQuantity, "larger fresh baseline wins")
	assert.Equal(t, 5, ingot.Children[0].CurrentQuantity)

	stick := merged[1]
	assert.Equal(t, "stick", stick.ItemID)
	assert.Equal(t, 1, stick.BaseQuantity)
	assert.Zero(t, stick.CurrentQuantity)

	for _, n := range merged {
		assert.NotEqual(t, "gem", n.ItemID, "removed ingredient is dropped")
	}
}

func TestMerge_FirstMatchWins(t *testing.T) {
	old := []domain.TreeNode{leaf("ore", 4, 4, 3), leaf("ore", 9, 9, 9)}
	fresh := []domain.TreeNode{leaf("ore", 2, 2, 0), leaf("ore", 2, 2, 0)}

	merged := Merge(old, fresh)
	for _, n := range merged {
		assert.Equal(t, 4, n.BaseQuantity)
		assert.Equal(t, 3, n.CurrentQuantity)
	}
}

func TestMerge_Empty(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))
	assert.Len(t, Merge(nil, []domain.TreeNode{leaf("ore", 1, 1, 0)}), 1)
	assert.Empty(t, Merge([]domain.TreeNode{leaf("ore", 1, 1, 1)}, nil))
}
