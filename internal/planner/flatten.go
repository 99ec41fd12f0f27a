package planner

import "github.com/osse101/CraftPlanner_Go/internal/domain"

// Flatten sums quantities per item id over every position in the tree.
// Sums saturate at MaxPlannedQuantity.
func Flatten(root *domain.TreeNode) map[string]*domain.ItemRecord {
	items := make(map[string]*domain.ItemRecord)
	if root == nil {
		return items
	}
	root.Walk(func(n *domain.TreeNode) {
		rec, ok := items[n.ItemID]
		if !ok {
			rec = &domain.ItemRecord{ItemID: n.ItemID}
			items[n.ItemID] = rec
		}
		rec.TargetQuantity = addQty(rec.TargetQuantity, max(0, n.Quantity))
		rec.CurrentQuantity = addQty(rec.CurrentQuantity, max(0, n.CurrentQuantity))
		rec.BaseQuantity = addQty(rec.BaseQuantity, max(0, n.BaseQuantity))
	})
	return items
}
