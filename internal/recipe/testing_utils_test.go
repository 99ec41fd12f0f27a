package recipe

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/osse101/CraftPlanner_Go/internal/database/memory"
	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

var errStoreUnavailable = errors.New("store unavailable")

// countingRepo counts store reads so tests can observe cache behaviour.
// afterGet runs once after the next read; updates of failUpdate are rejected.
type countingRepo struct {
	*memory.RecipeRepository
	gets       atomic.Int32
	afterGet   func(id string)
	failUpdate string
}

func newCountingRepo() *countingRepo {
	return &countingRepo{RecipeRepository: memory.NewRecipeRepository()}
}

func (r *countingRepo) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	r.gets.Add(1)
	recipe, err := r.RecipeRepository.GetRecipe(ctx, id)
	if hook := r.afterGet; hook != nil {
		r.afterGet = nil
		hook(id)
	}
	return recipe, err
}

func (r *countingRepo) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	if recipe.ID == r.failUpdate {
		return errStoreUnavailable
	}
	return r.RecipeRepository.UpdateRecipe(ctx, recipe)
}

func base(id string) domain.Recipe {
	return domain.Recipe{ID: id, Name: id, Output: 1, IsBase: true, Ingredients: []domain.Ingredient{}}
}

func craft(id string, output int, ingredients ...domain.Ingredient) domain.Recipe {
	return domain.Recipe{ID: id, Name: id, Output: output, Ingredients: ingredients}
}

func ing(id string, qty int) domain.Ingredient {
	return domain.Ingredient{ItemID: id, Quantity: qty}
}

// seedSword stores sword = 3 ingot + 1 stick, ingot = 2 ore, stick (x4) = 2 plank, plank (x4) = 1 wood
func seedSword(ctx context.Context, svc Service) error {
	catalog := &Catalog{
		Version: "1",
		Recipes: []domain.Recipe{
			base("ore"),
			base("wood"),
			craft("ingot", 1, ing("ore", 2)),
			craft("plank", 4, ing("wood", 1)),
			craft("stick", 4, ing("plank", 2)),
			craft("sword", 1, ing("ingot", 3), ing("stick", 1)),
		},
	}
	_, err := svc.SyncCatalog(ctx, catalog)
	return err
}
