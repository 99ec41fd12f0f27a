package repository

import (
	"context"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// Recipe defines the interface for recipe catalog persistence.
// GetRecipe, UpdateRecipe and DeleteRecipe return an error wrapping
// domain.ErrRecipeNotFound for unknown ids; InsertRecipe returns one wrapping
// domain.ErrDuplicateRecipe when the id is taken.
type Recipe interface {
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	InsertRecipe(ctx context.Context, recipe *domain.Recipe) error
	UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error
	DeleteRecipe(ctx context.Context, id string) error
}
