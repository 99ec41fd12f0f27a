package recipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
	"github.com/osse101/CraftPlanner_Go/internal/metrics"
	"github.com/osse101/CraftPlanner_Go/internal/planner"
	"github.com/osse101/CraftPlanner_Go/internal/repository"
)

// Service defines the recipe catalog operations
type Service interface {
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	UpdateRecipe(ctx context.Context, id string, update Update) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
	CalculateTree(ctx context.Context, id string, quantity int, maxDepth *int) (*domain.TreeNode, error)
	SyncCatalog(ctx context.Context, catalog *Catalog) (*domain.CatalogSyncResult, error)
}

// Update is a partial recipe edit; nil fields are left unchanged.
// Setting IsBase to true without Ingredients clears the ingredient list.
type Update struct {
	Name        *string
	Output      *int
	IsBase      *bool
	Ingredients []domain.Ingredient
}

// Config tunes the lookup cache and expansion ceiling
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
	MaxDepth  int
}

type service struct {
	repo    repository.Recipe
	cache   *recipeCache
	planner *planner.Planner
}

// NewService creates a recipe service backed by repo
func NewService(repo repository.Recipe, cfg Config) Service {
	s := &service{
		repo:  repo,
		cache: newRecipeCache(cfg.CacheSize, cfg.CacheTTL),
	}
	s.planner = planner.New(s, cfg.MaxDepth)
	return s
}

func (s *service) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListRecipesFmt, err)
	}
	return recipes, nil
}

// GetRecipe serves from the cache when possible. Misses are not cached, and a
// read that overlapped a write is returned without being cached.
func (s *service) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	if recipe, ok := s.cache.Get(id); ok {
		metrics.RecipeCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return recipe, nil
	}
	metrics.RecipeCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	gen := s.cache.Generation()
	recipe, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetRecipeFmt, id, err)
	}
	s.cache.Fill(recipe, gen)
	return recipe, nil
}

func (s *service) CreateRecipe(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	if recipe == nil {
		return nil, fmt.Errorf("%w: recipe is required", domain.ErrInvalidInput)
	}
	r := recipe.Clone()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	Normalize(r)
	if err := Validate(r); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	r.CreatedAt, r.UpdatedAt = now, now
	if err := s.repo.InsertRecipe(ctx, r); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveRecipeFmt, r.ID, err)
	}
	s.cache.Invalidate(r.ID)

	logger.FromContext(ctx).Info(LogMsgRecipeCreated, "recipe_id", r.ID, "is_base", r.IsBase)
	return r, nil
}

func (s *service) UpdateRecipe(ctx context.Context, id string, update Update) (*domain.Recipe, error) {
	current, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetRecipeFmt, id, err)
	}

	r := current.Clone()
	if update.Name != nil {
		r.Name = *update.Name
	}
	if update.Output != nil {
		r.Output = *update.Output
	}
	if update.IsBase != nil {
		r.IsBase = *update.IsBase
		if r.IsBase && update.Ingredients == nil {
			r.Ingredients = []domain.Ingredient{}
		}
	}
	if update.Ingredients != nil {
		r.Ingredients = append([]domain.Ingredient(nil), update.Ingredients...)
	}
	Normalize(r)
	if err := Validate(r); err != nil {
		return nil, err
	}

	r.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateRecipe(ctx, r); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveRecipeFmt, id, err)
	}
	s.cache.Invalidate(id)

	logger.FromContext(ctx).Info(LogMsgRecipeUpdated, "recipe_id", id)
	return r, nil
}

func (s *service) DeleteRecipe(ctx context.Context, id string) error {
	if err := s.repo.DeleteRecipe(ctx, id); err != nil {
		return fmt.Errorf(ErrMsgDeleteRecipeFmt, id, err)
	}
	s.cache.Invalidate(id)

	logger.FromContext(ctx).Info(LogMsgRecipeDeleted, "recipe_id", id)
	return nil
}

// CalculateTree expands a preview tree for quantity units of id without creating a project.
// Negative quantities are treated as zero.
func (s *service) CalculateTree(ctx context.Context, id string, quantity int, maxDepth *int) (*domain.TreeNode, error) {
	quantity = max(quantity, 0)
	logger.FromContext(ctx).Debug(LogMsgCalculatingTree, "recipe_id", id, "quantity", quantity)

	tree, err := s.planner.Expand(ctx, id, quantity, planner.DepthFrom(maxDepth))
	if err != nil {
		return nil, err
	}
	return &tree, nil
}

// SyncCatalog writes a loaded catalog into the store: new recipes are inserted,
// changed ones updated and identical ones skipped. Stored recipes missing from the
// catalog are reported as orphans and left in place. The cache is cleared whenever
// anything was written, including when a later recipe fails.
func (s *service) SyncCatalog(ctx context.Context, catalog *Catalog) (*domain.CatalogSyncResult, error) {
	log := logger.FromContext(ctx)
	result := &domain.CatalogSyncResult{
		Inserted: []string{},
		Updated:  []string{},
		Skipped:  []string{},
		Orphans:  []string{},
	}
	defer func() {
		if result.Changed() {
			s.cache.Clear()
			log.Debug(LogMsgCacheInvalidation)
		}
	}()

	inFile := make(map[string]struct{}, len(catalog.Recipes))
	for i := range catalog.Recipes {
		r := catalog.Recipes[i].Clone()
		Normalize(r)
		if err := Validate(r); err != nil {
			return result, err
		}
		inFile[r.ID] = struct{}{}

		existing, err := s.repo.GetRecipe(ctx, r.ID)
		switch {
		case errors.Is(err, domain.ErrRecipeNotFound):
			now := time.Now().UTC()
			r.CreatedAt, r.UpdatedAt = now, now
			if err := s.repo.InsertRecipe(ctx, r); err != nil {
				return result, fmt.Errorf(ErrMsgSyncRecipeFmt, r.ID, err)
			}
			result.Inserted = append(result.Inserted, r.ID)
			metrics.CatalogSyncedRecipes.WithLabelValues(metrics.ActionInserted).Inc()
		case err != nil:
			return result, fmt.Errorf(ErrMsgSyncRecipeFmt, r.ID, err)
		case existing.Equal(r):
			result.Skipped = append(result.Skipped, r.ID)
			metrics.CatalogSyncedRecipes.WithLabelValues(metrics.ActionSkipped).Inc()
		default:
			r.CreatedAt = existing.CreatedAt
			r.UpdatedAt = time.Now().UTC()
			if err := s.repo.UpdateRecipe(ctx, r); err != nil {
				return result, fmt.Errorf(ErrMsgSyncRecipeFmt, r.ID, err)
			}
			result.Updated = append(result.Updated, r.ID)
			metrics.CatalogSyncedRecipes.WithLabelValues(metrics.ActionUpdated).Inc()
		}
	}

	stored, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return result, fmt.Errorf(ErrMsgListRecipesFmt, err)
	}
	for _, r := range stored {
		if _, ok := inFile[r.ID]; !ok {
			result.Orphans = append(result.Orphans, r.ID)
			log.Warn(LogMsgOrphanedRecipe, "recipe_id", r.ID)
		}
	}

	log.Info(LogMsgCatalogSynced,
		"inserted", len(result.Inserted),
		"updated", len(result.Updated),
		"skipped", len(result.Skipped),
		"orphans", len(result.Orphans))
	return result, nil
}
