package recipe

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
)

// SeedFromFile loads the catalog at path, validates it and syncs it into svc.
// Validation warnings are logged; violations abort before anything is written.
func SeedFromFile(ctx context.Context, svc Service, loader Loader, path string) (*domain.CatalogSyncResult, error) {
	log := logger.FromContext(ctx)

	catalog, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	warnings, err := loader.Validate(catalog)
	for _, w := range warnings {
		log.Warn(LogMsgCatalogWarning, "path", path, "warning", w)
	}
	if err != nil {
		return nil, err
	}
	log.Info(LogMsgCatalogLoaded, "path", path, "version", catalog.Version, "recipes", len(catalog.Recipes))

	return svc.SyncCatalog(ctx, catalog)
}

// ReloadJob re-syncs a catalog file whenever its modification time moves
type ReloadJob struct {
	service Service
	loader  Loader
	path    string

	mu         sync.Mutex
	lastSynced time.Time
}

// NewReloadJob creates a job that keeps svc in step with the catalog at path
func NewReloadJob(svc Service, loader Loader, path string) *ReloadJob {
	return &ReloadJob{service: svc, loader: loader, path: path}
}

// MarkSynced records a sync done outside the job, such as the startup seed
func (j *ReloadJob) MarkSynced() error {
	info, err := os.Stat(j.path)
	if err != nil {
		return err
	}
	j.mu.Lock()
	j.lastSynced = info.ModTime()
	j.mu.Unlock()
	return nil
}

func (j *ReloadJob) Name() string {
	return JobNameCatalogReload
}

func (j *ReloadJob) Process(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	info, err := os.Stat(j.path)
	if err != nil {
		return err
	}
	if info.ModTime().Equal(j.lastSynced) {
		logger.FromContext(ctx).Debug(LogMsgCatalogUnchanged, "path", j.path)
		return nil
	}

	if _, err := SeedFromFile(ctx, j.service, j.loader, j.path); err != nil {
		return err
	}
	j.lastSynced = info.ModTime()
	return nil
}
