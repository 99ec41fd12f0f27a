// Package memory provides process-local implementations of the repository interfaces.
// Stored values are copied on the way in and out.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// RecipeRepository keeps recipes in a map keyed by id
type RecipeRepository struct {
	mu      sync.RWMutex
	recipes map[string]*domain.Recipe
}

// NewRecipeRepository creates an empty recipe store
func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{recipes: make(map[string]*domain.Recipe)}
}

func (r *RecipeRepository) ListRecipes(_ context.Context) ([]domain.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		out = append(out, *recipe.Clone())
	}
	slices.SortFunc(out, func(a, b domain.Recipe) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *RecipeRepository) GetRecipe(_ context.Context, id string) (*domain.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipe, ok := r.recipes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}
	return recipe.Clone(), nil
}

func (r *RecipeRepository) InsertRecipe(_ context.Context, recipe *domain.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recipes[recipe.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateRecipe, recipe.ID)
	}
	r.recipes[recipe.ID] = recipe.Clone()
	return nil
}

func (r *RecipeRepository) UpdateRecipe(_ context.Context, recipe *domain.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recipes[recipe.ID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, recipe.ID)
	}
	r.recipes[recipe.ID] = recipe.Clone()
	return nil
}

func (r *RecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recipes[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}
	delete(r.recipes, id)
	return nil
}
