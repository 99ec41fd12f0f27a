package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// ProjectRepository keeps whole project records in a map keyed by id
type ProjectRepository struct {
	mu       sync.RWMutex
	projects map[string]*domain.Project
}

// NewProjectRepository creates an empty project store
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{projects: make(map[string]*domain.Project)}
}

// ListProjects returns projects oldest first
func (r *ProjectRepository) ListProjects(_ context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p.Clone())
	}
	slices.SortFunc(out, func(a, b domain.Project) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

func (r *ProjectRepository) GetProject(_ context.Context, id string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, id)
	}
	return p.Clone(), nil
}

func (r *ProjectRepository) InsertProject(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[project.ID]; ok {
		return fmt.Errorf("%w: project %s already exists", domain.ErrInvalidInput, project.ID)
	}
	r.projects[project.ID] = project.Clone()
	return nil
}

func (r *ProjectRepository) SaveProject(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[project.ID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrProjectNotFound, project.ID)
	}
	r.projects[project.ID] = project.Clone()
	return nil
}

func (r *ProjectRepository) DeleteProject(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrProjectNotFound, id)
	}
	delete(r.projects, id)
	return nil
}
