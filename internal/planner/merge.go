package planner

import "github.com/osse101/CraftPlanner_Go/internal/domain"

// Merge carries user state from oldChildren onto a freshly expanded set.
// Nodes are paired by first match on item id; a matched node keeps the larger
// baseline and the old possessed quantity. Old nodes without a counterpart are dropped.
func Merge(oldChildren, newChildren []domain.TreeNode) []domain.TreeNode {
	merged := make([]domain.TreeNode, len(newChildren))
	for i := range newChildren {
		nc := newChildren[i]
		if old := findChild(oldChildren, nc.ItemID); old != nil {
			nc.BaseQuantity = max(old.BaseQuantity, nc.BaseQuantity)
			nc.CurrentQuantity = max(0, old.CurrentQuantity)
			nc.Children = Merge(old.Children, nc.Children)
		}
		merged[i] = nc
	}
	return merged
}

func findChild(children []domain.TreeNode, itemID string) *domain.TreeNode {
	for i := range children {
		if children[i].ItemID == itemID {
			return &children[i]
		}
	}
	return nil
}
