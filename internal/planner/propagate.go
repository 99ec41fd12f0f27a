package planner

import (
	"context"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// AdjustTargets applies a change of craftsDelta crafts of itemID to the aggregate
// targets of its prerequisites, walking the recipe graph down to base items.
// Positive deltas consume prerequisites (targets drop, floored at zero);
// negative deltas refund them. Only items already present in the aggregate change.
func (p *Planner) AdjustTargets(ctx context.Context, items map[string]*domain.ItemRecord, itemID string, craftsDelta int) error {
	return p.adjustTargets(ctx, items, itemID, craftsDelta, nil)
}

func (p *Planner) adjustTargets(ctx context.Context, items map[string]*domain.ItemRecord, itemID string, craftsDelta int, ancestors []string) error {
	if craftsDelta == 0 {
		return nil
	}
	recipe, ok, err := p.lookup(ctx, itemID)
	if err != nil {
		return err
	}
	if !ok || recipe.IsBase {
		return nil
	}
	path, err := p.descend(itemID, ancestors)
	if err != nil {
		return err
	}

	refund := craftsDelta < 0
	crafts := craftsDelta
	if refund {
		crafts = -crafts
	}

	for _, ing := range recipe.Ingredients {
		childRecipe, ok, err := p.lookup(ctx, ing.ItemID)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		amount, err := mulQty(ing.Quantity, crafts)
		if err != nil {
			return err
		}
		if !childRecipe.IsBase {
			amount = ceilDiv(amount, childRecipe.BatchSize())
		}

		if rec, ok := items[ing.ItemID]; ok {
			if refund {
				rec.TargetQuantity = addQty(rec.TargetQuantity, amount)
			} else {
				rec.TargetQuantity = max(0, rec.TargetQuantity-amount)
			}
		}

		if childRecipe.IsBase || amount == 0 {
			continue
		}
		next := amount
		if refund {
			next = -amount
		}
		if err := p.adjustTargets(ctx, items, ing.ItemID, next, path); err != nil {
			return err
		}
	}
	return nil
}
