package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// ProjectRepository implements repository.Project for PostgreSQL.
// The aggregate map and requirement tree are stored as JSONB documents.
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const selectProjects = `
	SELECT project_id, name, target_item_id, target_quantity, max_depth, items, tree, created_at, updated_at
	FROM projects`

// ListProjects returns projects oldest first
func (r *ProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx, selectProjects+` ORDER BY created_at, project_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListProjects, err)
	}
	projects, err := pgx.CollectRows(rows, scanProject)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListProjects, err)
	}
	return projects, nil
}

func (r *ProjectRepository) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	projectID, err := uuid.Parse(id)
	if err != nil {
		// ids are generated as UUIDs; anything else cannot exist
		return nil, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, id)
	}
	rows, err := r.db.Query(ctx, selectProjects+` WHERE project_id = $1`, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProject, err)
	}
	project, err := pgx.CollectExactlyOneRow(rows, scanProject)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProject, err)
	}
	return &project, nil
}

func (r *ProjectRepository) InsertProject(ctx context.Context, project *domain.Project) error {
	projectID, err := uuid.Parse(project.ID)
	if err != nil {
		return fmt.Errorf("%w: invalid project id %q", domain.ErrInvalidInput, project.ID)
	}
	items, tree, err := encodeState(project)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO projects (project_id, name, target_item_id, target_quantity, max_depth, items, tree, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		projectID, project.Name, project.TargetItemID, project.TargetQuantity, int4(project.MaxDepth),
		items, tree, project.CreatedAt, project.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: project %s already exists", domain.ErrInvalidInput, project.ID)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertProject, err)
	}
	return nil
}

// SaveProject writes back the mutable state of a project
func (r *ProjectRepository) SaveProject(ctx context.Context, project *domain.Project) error {
	projectID, err := uuid.Parse(project.ID)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrProjectNotFound, project.ID)
	}
	items, tree, err := encodeState(project)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE projects
		SET name = $2, target_quantity = $3, max_depth = $4, items = $5, tree = $6, updated_at = $7
		WHERE project_id = $1`,
		projectID, project.Name, project.TargetQuantity, int4(project.MaxDepth), items, tree, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveProject, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrProjectNotFound, project.ID)
	}
	return nil
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, id string) error {
	projectID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrProjectNotFound, id)
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE project_id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteProject, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrProjectNotFound, id)
	}
	return nil
}

// encodeState marshals the aggregate and the optional tree; a missing tree encodes as NULL
func encodeState(project *domain.Project) (items, tree []byte, err error) {
	aggregate := project.Items
	if aggregate == nil {
		aggregate = map[string]*domain.ItemRecord{}
	}
	if items, err = json.Marshal(aggregate); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeProject, err)
	}
	if project.Tree != nil {
		if tree, err = json.Marshal(project.Tree); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeProject, err)
		}
	}
	return items, tree, nil
}

func scanProject(row pgx.CollectableRow) (domain.Project, error) {
	var (
		p        domain.Project
		id       uuid.UUID
		maxDepth pgtype.Int4
		items    []byte
		tree     []byte
	)
	if err := row.Scan(&id, &p.Name, &p.TargetItemID, &p.TargetQuantity, &maxDepth, &items, &tree, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return p, err
	}
	p.ID = id.String()
	p.MaxDepth = ptrInt(maxDepth)

	if err := json.Unmarshal(items, &p.Items); err != nil {
		return p, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeProject, err)
	}
	if tree != nil {
		p.Tree = &domain.TreeNode{}
		if err := json.Unmarshal(tree, p.Tree); err != nil {
			return p, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeProject, err)
		}
	}
	return p, nil
}
