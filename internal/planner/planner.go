// Package planner turns a recipe graph into per-project requirement trees and keeps
// them consistent as users record what they require and what they already possess.
package planner

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// RecipeSource resolves item ids to recipes.
// Implementations return an error wrapping domain.ErrRecipeNotFound for unknown ids.
type RecipeSource interface {
	GetRecipe(ctx context.Context, itemID string) (*domain.Recipe, error)
}

// Depth bounds how many ingredient levels an expansion descends
type Depth int

// Unbounded expands until base items are reached
const Unbounded Depth = -1

// Limit returns a bounded depth; negative values are clamped to zero
func Limit(n int) Depth {
	if n < 0 {
		return 0
	}
	return Depth(n)
}

// DepthFrom converts an optional project depth into a Depth
func DepthFrom(maxDepth *int) Depth {
	if maxDepth == nil {
		return Unbounded
	}
	return Limit(*maxDepth)
}

func (d Depth) exhausted() bool {
	return d != Unbounded && d <= 0
}

func (d Depth) next() Depth {
	if d == Unbounded {
		return d
	}
	return d - 1
}

// Planner runs the tree algorithms against a recipe source
type Planner struct {
	recipes    RecipeSource
	depthLimit int
}

// New creates a Planner. depthLimit is the hard recursion ceiling applied to every
// expansion, bounded or not; values below one select DefaultDepthLimit.
func New(recipes RecipeSource, depthLimit int) *Planner {
	if depthLimit < 1 {
		depthLimit = DefaultDepthLimit
	}
	return &Planner{
		recipes:    recipes,
		depthLimit: depthLimit,
	}
}

// lookup distinguishes a missing recipe (ok=false) from a failing source
func (p *Planner) lookup(ctx context.Context, itemID string) (*domain.Recipe, bool, error) {
	recipe, err := p.recipes.GetRecipe(ctx, itemID)
	if errors.Is(err, domain.ErrRecipeNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf(ErrMsgLookupFailedFmt, itemID, err)
	}
	if recipe == nil {
		return nil, false, nil
	}
	return recipe, true, nil
}

// descend guards a step from ancestors into itemID and returns the extended path
func (p *Planner) descend(itemID string, ancestors []string) ([]string, error) {
	if slices.Contains(ancestors, itemID) {
		return nil, fmt.Errorf(ErrMsgCycleFmt, domain.ErrRecipeCycle, strings.Join(ancestors, " -> "), itemID)
	}
	if len(ancestors) >= p.depthLimit {
		return nil, fmt.Errorf(ErrMsgTooDeepFmt, domain.ErrExpansionTooDeep, itemID, len(ancestors))
	}
	path := make([]string, len(ancestors), len(ancestors)+1)
	copy(path, ancestors)
	return append(path, itemID), nil
}

// ceilDiv divides rounding up; b must be positive
func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// mulQty multiplies non-negative quantities, failing once the product passes
// MaxPlannedQuantity instead of wrapping
func mulQty(a, b int) (int, error) {
	if a <= 0 || b <= 0 {
		return 0, nil
	}
	if a > MaxPlannedQuantity/b {
		return 0, fmt.Errorf(ErrMsgOverflowFmt, domain.ErrInvalidInput, a, b, MaxPlannedQuantity)
	}
	return a * b, nil
}

// checkQty rejects a caller-supplied quantity above MaxPlannedQuantity
func checkQty(q int) error {
	if q > MaxPlannedQuantity {
		return fmt.Errorf(ErrMsgQuantityFmt, domain.ErrInvalidInput, q, MaxPlannedQuantity)
	}
	return nil
}

// addQty adds non-negative quantities, saturating at MaxPlannedQuantity
func addQty(a, b int) int {
	if a > MaxPlannedQuantity-b {
		return MaxPlannedQuantity
	}
	return a + b
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
