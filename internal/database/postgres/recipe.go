// Package postgres implements the repository interfaces on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// RecipeRepository implements repository.Recipe for PostgreSQL
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{db: db}
}

const (
	selectRecipes = `
		SELECT recipe_id, name, output, is_base, created_at, updated_at
		FROM recipes`
	selectIngredients = `
		SELECT recipe_id, item_id, quantity
		FROM recipe_ingredients`
)

// ListRecipes returns every recipe ordered by id
func (r *RecipeRepository) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, selectRecipes+` ORDER BY recipe_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRecipes, err)
	}
	recipes, err := pgx.CollectRows(rows, scanRecipe)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRecipes, err)
	}

	ingRows, err := r.db.Query(ctx, selectIngredients+` ORDER BY recipe_id, position`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadIngredients, err)
	}
	byRecipe := make(map[string][]domain.Ingredient, len(recipes))
	var recipeID string
	var ing domain.Ingredient
	_, err = pgx.ForEachRow(ingRows, []any{&recipeID, &ing.ItemID, &ing.Quantity}, func() error {
		byRecipe[recipeID] = append(byRecipe[recipeID], ing)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadIngredients, err)
	}

	for i := range recipes {
		recipes[i].Ingredients = byRecipe[recipes[i].ID]
		if recipes[i].Ingredients == nil {
			recipes[i].Ingredients = []domain.Ingredient{}
		}
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe with its ingredients in recipe order
func (r *RecipeRepository) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	rows, err := r.db.Query(ctx, selectRecipes+` WHERE recipe_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}
	recipe, err := pgx.CollectExactlyOneRow(rows, scanRecipe)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}

	ingRows, err := r.db.Query(ctx, selectIngredients+` WHERE recipe_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadIngredients, err)
	}
	recipe.Ingredients, err = pgx.CollectRows(ingRows, func(row pgx.CollectableRow) (domain.Ingredient, error) {
		var ing domain.Ingredient
		var owner string
		err := row.Scan(&owner, &ing.ItemID, &ing.Quantity)
		return ing, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadIngredients, err)
	}
	return &recipe, nil
}

// InsertRecipe stores a new recipe and its ingredients in one transaction
func (r *RecipeRepository) InsertRecipe(ctx context.Context, recipe *domain.Recipe) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	err = tx.QueryRow(ctx, `
		INSERT INTO recipes (recipe_id, name, output, is_base)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		recipe.ID, recipe.Name, recipe.BatchSize(), recipe.IsBase,
	).Scan(&recipe.CreatedAt, &recipe.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateRecipe, recipe.ID)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecipe, err)
	}

	if err := writeIngredients(ctx, tx, recipe); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// UpdateRecipe replaces a recipe's fields and ingredient list
func (r *RecipeRepository) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	err = tx.QueryRow(ctx, `
		UPDATE recipes
		SET name = $2, output = $3, is_base = $4, updated_at = NOW()
		WHERE recipe_id = $1
		RETURNING created_at, updated_at`,
		recipe.ID, recipe.Name, recipe.BatchSize(), recipe.IsBase,
	).Scan(&recipe.CreatedAt, &recipe.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, recipe.ID)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRecipe, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipe.ID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToWriteIngredients, err)
	}
	if err := writeIngredients(ctx, tx, recipe); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// DeleteRecipe removes a recipe; its ingredient rows cascade
func (r *RecipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE recipe_id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRecipe, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}
	return nil
}

func writeIngredients(ctx context.Context, tx pgx.Tx, recipe *domain.Recipe) error {
	if len(recipe.Ingredients) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		rows = append(rows, []any{recipe.ID, i, ing.ItemID, ing.Quantity})
	}
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"recipe_ingredients"},
		[]string{"recipe_id", "position", "item_id", "quantity"},
		pgx.CopyFromRows(rows),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: duplicate ingredient in %s", domain.ErrInvalidRecipe, recipe.ID)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToWriteIngredients, err)
	}
	return nil
}

func scanRecipe(row pgx.CollectableRow) (domain.Recipe, error) {
	var r domain.Recipe
	err := row.Scan(&r.ID, &r.Name, &r.Output, &r.IsBase, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}
