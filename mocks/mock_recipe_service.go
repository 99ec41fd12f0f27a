package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/recipe"
)

// MockRecipeService is a testify mock of recipe.Service
type MockRecipeService struct {
	mock.Mock
}

// NewMockRecipeService creates a mock whose expectations are asserted on test cleanup
func NewMockRecipeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRecipeService {
	m := &MockRecipeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockRecipeService) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Recipe
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Recipe)
	}
	return r0, ret.Error(1)
}

func (_m *MockRecipeService) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Recipe
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Recipe)
	}
	return r0, ret.Error(1)
}

func (_m *MockRecipeService) CreateRecipe(ctx context.Context, r *domain.Recipe) (*domain.Recipe, error) {
	ret := _m.Called(ctx, r)
	var r0 *domain.Recipe
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Recipe)
	}
	return r0, ret.Error(1)
}

func (_m *MockRecipeService) UpdateRecipe(ctx context.Context, id string, update recipe.Update) (*domain.Recipe, error) {
	ret := _m.Called(ctx, id, update)
	var r0 *domain.Recipe
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Recipe)
	}
	return r0, ret.Error(1)
}

func (_m *MockRecipeService) DeleteRecipe(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *MockRecipeService) CalculateTree(ctx context.Context, id string, quantity int, maxDepth *int) (*domain.TreeNode, error) {
	ret := _m.Called(ctx, id, quantity, maxDepth)
	var r0 *domain.TreeNode
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.TreeNode)
	}
	return r0, ret.Error(1)
}

func (_m *MockRecipeService) SyncCatalog(ctx context.Context, catalog *recipe.Catalog) (*domain.CatalogSyncResult, error) {
	ret := _m.Called(ctx, catalog)
	var r0 *domain.CatalogSyncResult
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.CatalogSyncResult)
	}
	return r0, ret.Error(1)
}

var _ recipe.Service = (*MockRecipeService)(nil)
