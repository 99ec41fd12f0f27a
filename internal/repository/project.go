package repository

import (
	"context"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// Project defines the interface for project persistence.
// The stored record is the whole project: aggregate map and requirement tree included.
type Project interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	// GetProject returns an error wrapping domain.ErrProjectNotFound for unknown ids
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	InsertProject(ctx context.Context, project *domain.Project) error
	// SaveProject replaces the stored record; unknown ids yield domain.ErrProjectNotFound
	SaveProject(ctx context.Context, project *domain.Project) error
	DeleteProject(ctx context.Context, id string) error
}
