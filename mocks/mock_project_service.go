package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/project"
)

// MockProjectService is a testify mock of project.Service
type MockProjectService struct {
	mock.Mock
}

// NewMockProjectService creates a mock whose expectations are asserted on test cleanup
func NewMockProjectService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProjectService {
	m := &MockProjectService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockProjectService) projectResult(ret mock.Arguments) (*domain.Project, error) {
	var r0 *domain.Project
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Project)
	}
	return r0, ret.Error(1)
}

func (_m *MockProjectService) CreateProject(ctx context.Context, input project.CreateInput) (*domain.Project, error) {
	return _m.projectResult(_m.Called(ctx, input))
}

func (_m *MockProjectService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return _m.projectResult(_m.Called(ctx, id))
}

func (_m *MockProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Project
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Project)
	}
	return r0, ret.Error(1)
}

func (_m *MockProjectService) DeleteProject(ctx context.Context, id string) error {
	return _m.Called(ctx, id).Error(0)
}

func (_m *MockProjectService) SetNodePossessed(ctx context.Context, id string, path []string, quantity int) (*domain.Project, error) {
	return _m.projectResult(_m.Called(ctx, id, path, quantity))
}

func (_m *MockProjectService) SetNodeRequired(ctx context.Context, id string, path []string, quantity int) (*domain.Project, error) {
	return _m.projectResult(_m.Called(ctx, id, path, quantity))
}

func (_m *MockProjectService) SetItemPossessed(ctx context.Context, id, itemID string, quantity int) (*domain.Project, error) {
	return _m.projectResult(_m.Called(ctx, id, itemID, quantity))
}

func (_m *MockProjectService) GetProgress(ctx context.Context, id string) (*domain.ProgressNode, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.ProgressNode
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.ProgressNode)
	}
	return r0, ret.Error(1)
}

var _ project.Service = (*MockProjectService)(nil)
