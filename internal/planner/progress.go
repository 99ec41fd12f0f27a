package planner

import (
	"math"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// Progress mirrors the subtree at node with a completion percentage per position
func Progress(node *domain.TreeNode) domain.ProgressNode {
	children := make([]domain.ProgressNode, 0, len(node.Children))
	for i := range node.Children {
		children = append(children, Progress(&node.Children[i]))
	}

	required := max(0, node.Quantity)
	current := max(0, node.CurrentQuantity)
	return domain.ProgressNode{
		ItemID:          node.ItemID,
		ItemName:        node.ItemName,
		Quantity:        required,
		CurrentQuantity: current,
		IsBase:          node.IsBase,
		Progress:        Percent(max(0, node.BaseQuantity), required, current),
		Children:        children,
	}
}

// Percent credits both the reduction of the requirement below its baseline and
// the possessed quantity, relative to the baseline. The result is clamped to
// [0, 100] and rounded to two decimals. A zero baseline with an outstanding
// requirement reports 0.
func Percent(base, required, current int) float64 {
	if required == 0 {
		return 100
	}
	if base == 0 {
		return 0
	}
	pct := float64(base-required+current) / float64(base) * 100
	pct = math.Max(0, math.Min(100, pct))
	return math.Round(pct*100) / 100
}
