package planner

import (
	"context"
	"fmt"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
)

// Expand builds the requirement tree for quantity units of itemID.
// Each node's quantity is batches for craftable items and units for base items.
// At the depth cutoff a craftable item is emitted as a base leaf.
func (p *Planner) Expand(ctx context.Context, itemID string, quantity int, depth Depth) (domain.TreeNode, error) {
	if err := checkQty(quantity); err != nil {
		return domain.TreeNode{}, err
	}
	recipe, ok, err := p.lookup(ctx, itemID)
	if err != nil {
		return domain.TreeNode{}, err
	}
	if !ok {
		return domain.TreeNode{}, fmt.Errorf(ErrMsgRootRecipeFmt, domain.ErrRecipeNotFound, itemID)
	}
	return p.expandRecipe(ctx, recipe, ceilDiv(quantity, recipe.BatchSize()), depth, nil)
}

func (p *Planner) expandRecipe(ctx context.Context, recipe *domain.Recipe, batches int, depth Depth, ancestors []string) (domain.TreeNode, error) {
	node := domain.TreeNode{
		ItemID:       recipe.ID,
		ItemName:     recipe.Name,
		BaseQuantity: batches,
		Quantity:     batches,
		IsBase:       true,
		Children:     []domain.TreeNode{},
	}
	if recipe.IsBase || depth.exhausted() {
		return node, nil
	}

	path, err := p.descend(recipe.ID, ancestors)
	if err != nil {
		return domain.TreeNode{}, err
	}

	children, err := p.expandIngredients(ctx, recipe, batches, depth.next(), path)
	if err != nil {
		return domain.TreeNode{}, err
	}
	node.IsBase = false
	node.Children = children
	return node, nil
}

// expandIngredients builds one child per ingredient in recipe order.
// Ingredients without a recipe are skipped.
func (p *Planner) expandIngredients(ctx context.Context, recipe *domain.Recipe, batches int, depth Depth, path []string) ([]domain.TreeNode, error) {
	children := make([]domain.TreeNode, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		childRecipe, ok, err := p.lookup(ctx, ing.ItemID)
		if err != nil {
			return nil, err
		}
		if !ok {
			logger.FromContext(ctx).Debug(LogMsgIngredientSkipped, "parent", recipe.ID, "ingredient", ing.ItemID)
			continue
		}

		needed, err := mulQty(ing.Quantity, batches)
		if err != nil {
			return nil, err
		}
		child, err := p.expandRecipe(ctx, childRecipe, ceilDiv(needed, childRecipe.BatchSize()), depth, path)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// rebuildChildren re-expands the ingredients of a node requiring quantity, sized the
// way Expand sizes a root (ceil(quantity / batch size) crafts), with no depth bound below it
func (p *Planner) rebuildChildren(ctx context.Context, recipe *domain.Recipe, quantity int, ancestors []string) ([]domain.TreeNode, error) {
	if recipe.IsBase {
		return []domain.TreeNode{}, nil
	}
	path, err := p.descend(recipe.ID, ancestors)
	if err != nil {
		return nil, err
	}
	return p.expandIngredients(ctx, recipe, ceilDiv(quantity, recipe.BatchSize()), Unbounded, path)
}
