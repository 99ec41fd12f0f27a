package planner

import (
	"context"
	"fmt"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// fakeRecipes is an in-memory RecipeSource
type fakeRecipes map[string]*domain.Recipe

func (f fakeRecipes) GetRecipe(_ context.Context, itemID string) (*domain.Recipe, error) {
	r, ok := f[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, itemID)
	}
	return r, nil
}

func base(id string) *domain.Recipe {
	return &domain.Recipe{ID: id, Name: id, Output: 1, IsBase: true}
}

func craft(id string, output int, ingredients ...domain.Ingredient) *domain.Recipe {
	return &domain.Recipe{ID: id, Name: id, Output: output, Ingredients: ingredients}
}

func ing(id string, qty int) domain.Ingredient {
	return domain.Ingredient{ItemID: id, Quantity: qty}
}

// swordCatalog:
//
//	sword (x1) = 3 ingot + 1 stick
//	ingot (x1) = 2 ore
//	stick (x4) = 2 plank
//	plank (x4) = 1 wood
func swordCatalog() fakeRecipes {
	return fakeRecipes{
		"ore":   base("ore"),
		"wood":  base("wood"),
		"ingot": craft("ingot", 1, ing("ore", 2)),
		"plank": craft("plank", 4, ing("wood", 1)),
		"stick": craft("stick", 4, ing("plank", 2)),
		"sword": craft("sword", 1, ing("ingot", 3), ing("stick", 1)),
	}
}

func child(t *domain.TreeNode, path ...string) *domain.TreeNode {
	node, err := FindNode(t, append([]string{t.ItemID}, path...))
	if err != nil {
		panic(err)
	}
	return node
}
