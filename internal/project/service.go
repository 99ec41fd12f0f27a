// Package project owns the lifecycle of crafting projects: creation from a target
// recipe, lazy tree construction, and the node and aggregate quantity edits.
package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CraftPlanner_Go/internal/concurrency"
	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
	"github.com/osse101/CraftPlanner_Go/internal/metrics"
	"github.com/osse101/CraftPlanner_Go/internal/planner"
	"github.com/osse101/CraftPlanner_Go/internal/repository"
)

// CreateInput describes a new project
type CreateInput struct {
	Name           string
	TargetItemID   string
	TargetQuantity int
	// MaxDepth limits expansion levels; nil expands down to base items
	MaxDepth *int
}

// Service defines the project operations
type Service interface {
	CreateProject(ctx context.Context, input CreateInput) (*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
	SetNodePossessed(ctx context.Context, id string, path []string, quantity int) (*domain.Project, error)
	SetNodeRequired(ctx context.Context, id string, path []string, quantity int) (*domain.Project, error)
	SetItemPossessed(ctx context.Context, id, itemID string, quantity int) (*domain.Project, error)
	GetProgress(ctx context.Context, id string) (*domain.ProgressNode, error)
}

type service struct {
	repo        repository.Project
	planner     *planner.Planner
	lockManager *concurrency.LockManager
	now         func() time.Time
}

// NewService creates a project service. maxDepth is the expansion ceiling handed to the planner.
func NewService(repo repository.Project, recipes planner.RecipeSource, lockManager *concurrency.LockManager, maxDepth int) Service {
	return &service{
		repo:        repo,
		planner:     planner.New(recipes, maxDepth),
		lockManager: lockManager,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) CreateProject(ctx context.Context, input CreateInput) (_ *domain.Project, err error) {
	defer func(start time.Time) { metrics.ObserveOperation(OpCreate, start, err) }(time.Now())

	input.TargetItemID = strings.TrimSpace(input.TargetItemID)
	if input.TargetItemID == "" {
		return nil, fmt.Errorf(ErrMsgTargetRequired, domain.ErrInvalidInput)
	}
	input.TargetQuantity = clampQuantity(ctx, input.TargetQuantity)
	if input.MaxDepth != nil && *input.MaxDepth < 0 {
		depth := 0
		input.MaxDepth = &depth
	}

	tree, err := s.planner.Expand(ctx, input.TargetItemID, input.TargetQuantity, planner.DepthFrom(input.MaxDepth))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgExpandFmt, input.TargetItemID, err)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = tree.ItemName
	}
	now := s.now()
	project := &domain.Project{
		ID:             uuid.NewString(),
		Name:           name,
		TargetItemID:   input.TargetItemID,
		TargetQuantity: input.TargetQuantity,
		MaxDepth:       input.MaxDepth,
		Items:          planner.Flatten(&tree),
		Tree:           &tree,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.InsertProject(ctx, project); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveFmt, project.ID, err)
	}
	observeTree(project.Tree)

	logger.FromContext(ctx).Info(LogMsgProjectCreated,
		"project_id", project.ID,
		"target", project.TargetItemID,
		"quantity", project.TargetQuantity)
	return project, nil
}

// GetProject returns the project, building its tree first if it has none
func (s *service) GetProject(ctx context.Context, id string) (_ *domain.Project, err error) {
	defer func(start time.Time) { metrics.ObserveOperation(OpGet, start, err) }(time.Now())

	return s.withProject(ctx, id, func(*domain.Project) (bool, error) {
		return false, nil
	})
}

func (s *service) ListProjects(ctx context.Context) (_ []domain.Project, err error) {
	defer func(start time.Time) { metrics.ObserveOperation(OpList, start, err) }(time.Now())

	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFmt, err)
	}
	return projects, nil
}

func (s *service) DeleteProject(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { metrics.ObserveOperation(OpDelete, start, err) }(time.Now())

	unlock := s.lockManager.Lock(id)
	defer unlock()

	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf(ErrMsgDeleteFmt, id, err)
	}
	s.lockManager.Forget(id)

	logger.FromContext(ctx).Info(LogMsgProjectDeleted, "project_id", id)
	return nil
}

// SetNodePossessed records that quantity units are held at the node addressed by path
// and cascades the reduced remaining need through its subtree
func (s *service) SetNodePossessed(ctx context.Context, id string, path []string, quantity int) (_ *domain.Project, err error) {
	defer func(start time.Time) { metrics.ObserveOperation(OpSetNodePossessed, start, err) }(time.Now())

	quantity = clampQuantity(ctx, quantity)
	return s.withProject(ctx, id, func(p *domain.Project) (bool, error) {
		if err := s.planner.SetPossessed(ctx, p.Tree, path, quantity); err != nil {
			return false, err
		}
		p.Items = planner.Flatten(p.Tree)
		logger.FromContext(ctx).Info(LogMsgNodePossessed, "project_id", id, "path", path, "quantity", quantity)
		return true, nil
	})
}

// SetNodeRequired overrides the required quantity at the node addressed by path
func (s *service) SetNodeRequired(ctx context.Context, id string, path []string, quantity int) (_ *domain.Project, err error) {
	defer func(start time.Time) { metrics.ObserveOperation(OpSetNodeRequired, start, err) }(time.Now())

	quantity = clampQuantity(ctx, quantity)
	return s.withProject(ctx, id, func(p *domain.Project) (bool, error) {
		if err := s.planner.SetRequired(ctx, p.Tree, path, quantity); err != nil {
			return false, err
		}
		p.Items = planner.Flatten(p.Tree)
		logger.FromContext(ctx).Info(LogMsgNodeRequired, "project_id", id, "path", path, "quantity", quantity)
		return true, nil
	})
}

// SetItemPossessed edits the aggregate possessed count of itemID and propagates the
// crafted delta to prerequisite targets. The tree is left untouched.
func (s *service) SetItemPossessed(ctx context.Context, id, itemID string, quantity int) (_ *domain.Project, err error) {
	defer func(start time.Time) { metrics.ObserveOperation(OpSetItemPossessed, start, err) }(time.Now())

	quantity = clampQuantity(ctx, quantity)
	return s.withProject(ctx, id, func(p *domain.Project) (bool, error) {
		rec, ok := p.Items[itemID]
		if !ok {
			return false, fmt.Errorf(ErrMsgItemFmt, domain.ErrItemNotFound, itemID)
		}
		delta := quantity - rec.CurrentQuantity
		rec.CurrentQuantity = quantity
		if err := s.planner.AdjustTargets(ctx, p.Items, itemID, delta); err != nil {
			return false, err
		}
		logger.FromContext(ctx).Info(LogMsgItemPossessed, "project_id", id, "item_id", itemID, "delta", delta)
		return true, nil
	})
}

func (s *service) GetProgress(ctx context.Context, id string) (_ *domain.ProgressNode, err error) {
	defer func(start time.Time) { metrics.ObserveOperation(OpGetProgress, start, err) }(time.Now())

	p, err := s.withProject(ctx, id, func(*domain.Project) (bool, error) {
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	progress := planner.Progress(p.Tree)
	return &progress, nil
}

// withProject runs fn on a private copy of the project under the project's lock.
// The copy is persisted only when fn reports a change or the tree had to be built,
// so a failing mutation leaves the stored record as it was.
func (s *service) withProject(ctx context.Context, id string, fn func(p *domain.Project) (bool, error)) (*domain.Project, error) {
	unlock := s.lockManager.Lock(id)
	defer unlock()

	p, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadFmt, id, err)
	}

	built, err := s.ensureTree(ctx, p)
	if err != nil {
		return nil, err
	}
	changed, err := fn(p)
	if err != nil {
		return nil, err
	}
	if !built && !changed {
		return p, nil
	}

	p.UpdatedAt = s.now()
	if err := s.repo.SaveProject(ctx, p); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "project_id", id, "error", err)
		return nil, fmt.Errorf(ErrMsgSaveFmt, id, err)
	}
	if changed {
		observeTree(p.Tree)
	}
	return p, nil
}

// ensureTree expands the tree of a stored project that lacks one and re-derives its aggregate
func (s *service) ensureTree(ctx context.Context, p *domain.Project) (bool, error) {
	if p.Tree != nil {
		return false, nil
	}
	tree, err := s.planner.Expand(ctx, p.TargetItemID, p.TargetQuantity, planner.DepthFrom(p.MaxDepth))
	if err != nil {
		return false, fmt.Errorf(ErrMsgExpandFmt, p.TargetItemID, err)
	}
	p.Tree = &tree
	p.Items = planner.Flatten(p.Tree)
	logger.FromContext(ctx).Info(LogMsgTreeBuilt, "project_id", p.ID)
	return true, nil
}

func clampQuantity(ctx context.Context, quantity int) int {
	if quantity < 0 {
		logger.FromContext(ctx).Debug(LogMsgQuantityClamped, "quantity", quantity)
		return 0
	}
	return quantity
}

func observeTree(tree *domain.TreeNode) {
	if tree == nil {
		return
	}
	nodes := 0
	tree.Walk(func(*domain.TreeNode) { nodes++ })
	metrics.TreeNodes.Observe(float64(nodes))
}
