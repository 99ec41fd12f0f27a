package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftPlanner_Go/internal/concurrency"
	"github.com/osse101/CraftPlanner_Go/internal/config"
	"github.com/osse101/CraftPlanner_Go/internal/database"
	"github.com/osse101/CraftPlanner_Go/internal/database/memory"
	"github.com/osse101/CraftPlanner_Go/internal/database/postgres"
	"github.com/osse101/CraftPlanner_Go/internal/handler"
	"github.com/osse101/CraftPlanner_Go/internal/project"
	"github.com/osse101/CraftPlanner_Go/internal/recipe"
	"github.com/osse101/CraftPlanner_Go/internal/repository"
	"github.com/osse101/CraftPlanner_Go/internal/scheduler"
	"github.com/osse101/CraftPlanner_Go/internal/server"
	"github.com/osse101/CraftPlanner_Go/internal/worker"
	"github.com/osse101/CraftPlanner_Go/migrations"
)

const shutdownTimeout = 10 * time.Second

type storage struct {
	recipes  repository.Recipe
	projects repository.Project
	pinger   handler.Pinger
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	for _, w := range cfg.Warnings() {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open storage", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}
	defer store.close()

	recipeService := recipe.NewService(store.recipes, recipe.Config{
		CacheSize: cfg.RecipeCacheSize,
		CacheTTL:  cfg.RecipeCacheTTL,
		MaxDepth:  cfg.MaxExpansionDepth,
	})

	if cfg.RecipeSeedPath != "" {
		if _, err := recipe.SeedFromFile(ctx, recipeService, recipe.NewLoader(), cfg.RecipeSeedPath); err != nil {
			slog.Error("Failed to seed recipes", "path", cfg.RecipeSeedPath, "error", err)
			os.Exit(1)
		}
		if cfg.RecipeReloadInterval > 0 {
			stopReload := startCatalogReload(recipeService, cfg.RecipeSeedPath, cfg.RecipeReloadInterval)
			defer stopReload()
		}
	}

	projectService := project.NewService(store.projects, recipeService, concurrency.NewLockManager(), cfg.MaxExpansionDepth)

	srv := server.NewServer(cfg.Port, cfg.Version, cfg.TrustedProxies, store.pinger, recipeService, projectService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	if !cfg.UsesPostgres() {
		slog.Info("Using in-memory storage")
		return &storage{
			recipes:  memory.NewRecipeRepository(),
			projects: memory.NewProjectRepository(),
			close:    func() {},
		}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
		pool.Close()
		return nil, err
	}
	return newPostgresStorage(pool), nil
}

func newPostgresStorage(pool *pgxpool.Pool) *storage {
	return &storage{
		recipes:  postgres.NewRecipeRepository(pool),
		projects: postgres.NewProjectRepository(pool),
		pinger:   pool,
		close:    pool.Close,
	}
}

// startCatalogReload re-syncs the seed catalog on a schedule and returns its stop function
func startCatalogReload(svc recipe.Service, path string, interval time.Duration) func() {
	job := recipe.NewReloadJob(svc, recipe.NewLoader(), path)
	if err := job.MarkSynced(); err != nil {
		slog.Warn("Could not stat recipe catalog", "path", path, "error", err)
	}

	pool := worker.NewPool(1, 1, interval)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(interval, job)
	slog.Info("Recipe catalog reload scheduled", "path", path, "interval", interval)

	return func() {
		sched.Stop()
		pool.Stop()
	}
}
