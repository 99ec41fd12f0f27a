package planner

import (
	"context"
	"fmt"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
)

// FindNode resolves a path of item ids, starting at the root, to a tree node.
// Each step follows the first child with a matching id.
func FindNode(root *domain.TreeNode, path []string) (*domain.TreeNode, error) {
	if root == nil || len(path) == 0 || root.ItemID != path[0] {
		return nil, fmt.Errorf(ErrMsgNodePathFmt, domain.ErrNodeNotFound, path)
	}
	curr := root
	for _, id := range path[1:] {
		curr = findChild(curr.Children, id)
		if curr == nil {
			return nil, fmt.Errorf(ErrMsgNodePathFmt, domain.ErrNodeNotFound, path)
		}
	}
	return curr, nil
}

// SetPossessed records that quantity units are held at the node addressed by path
// and redistributes the remaining requirement through its descendants
func (p *Planner) SetPossessed(ctx context.Context, root *domain.TreeNode, path []string, quantity int) error {
	if err := checkQty(quantity); err != nil {
		return err
	}
	node, err := FindNode(root, path)
	if err != nil {
		return err
	}
	node.CurrentQuantity = max(0, quantity)

	if err := p.recalcSubtree(ctx, node, path[:len(path)-1]); err != nil {
		return err
	}
	ClampPossession(ctx, node)
	return nil
}

// SetRequired overrides the required quantity of the node addressed by path,
// rebuilds its subtree and cascades the new requirement downward.
// The node's baseline is left untouched.
func (p *Planner) SetRequired(ctx context.Context, root *domain.TreeNode, path []string, quantity int) error {
	if err := checkQty(quantity); err != nil {
		return err
	}
	node, err := FindNode(root, path)
	if err != nil {
		return err
	}
	recipe, ok, err := p.lookup(ctx, node.ItemID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf(ErrMsgRootRecipeFmt, domain.ErrRecipeNotFound, node.ItemID)
	}

	ancestors := path[:len(path)-1]
	node.Quantity = max(0, quantity)
	rebuilt, err := p.rebuildChildren(ctx, recipe, node.Quantity, ancestors)
	if err != nil {
		return err
	}
	node.IsBase = recipe.IsBase
	node.Children = Merge(node.Children, rebuilt)

	if err := p.recalcSubtree(ctx, node, ancestors); err != nil {
		return err
	}
	ClampPossession(ctx, node)
	return nil
}

// recalcSubtree resizes every existing child of node from the node's remaining
// requirement (quantity minus possessed) and recurses into craftable children.
// Sizes are recomputed at each level because batch rounding is not linear.
func (p *Planner) recalcSubtree(ctx context.Context, node *domain.TreeNode, ancestors []string) error {
	recipe, ok, err := p.lookup(ctx, node.ItemID)
	if err != nil {
		return err
	}
	if !ok || recipe.IsBase {
		return nil
	}

	path, err := p.descend(node.ItemID, ancestors)
	if err != nil {
		return err
	}
	remaining := max(0, node.Quantity-node.CurrentQuantity)

	for _, ing := range recipe.Ingredients {
		child := findChild(node.Children, ing.ItemID)
		if child == nil {
			continue
		}
		childRecipe, ok, err := p.lookup(ctx, ing.ItemID)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		needed, err := mulQty(remaining, ing.Quantity)
		if err != nil {
			return err
		}
		if childRecipe.IsBase {
			child.Quantity = needed
			child.CurrentQuantity = clamp(child.CurrentQuantity, 0, child.Quantity)
			continue
		}

		child.Quantity = ceilDiv(needed, childRecipe.BatchSize())
		child.CurrentQuantity = clamp(child.CurrentQuantity, 0, child.Quantity)

		rebuilt, err := p.rebuildChildren(ctx, childRecipe, child.Quantity, path)
		if err != nil {
			return err
		}
		child.IsBase = false
		child.Children = Merge(child.Children, rebuilt)
		ClampPossession(ctx, child)

		if err := p.recalcSubtree(ctx, child, path); err != nil {
			return err
		}
	}
	return nil
}

// ClampPossession enforces 0 <= currentQuantity <= quantity across a subtree
func ClampPossession(ctx context.Context, node *domain.TreeNode) {
	node.Walk(func(n *domain.TreeNode) {
		required := max(0, n.Quantity)
		current := clamp(n.CurrentQuantity, 0, required)
		if current != n.CurrentQuantity {
			logger.FromContext(ctx).Debug(LogMsgPossessionClamped,
				"item", n.ItemID, "from", n.CurrentQuantity, "to", current)
			n.CurrentQuantity = current
		}
	})
}
