package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/osse101/CraftPlanner_Go/internal/database/memory"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
	"github.com/osse101/CraftPlanner_Go/internal/recipe"
)

const (
	envPrefix       = "CRAFTPLAN"
	keyRecipes      = "recipes"
	keyLogLevel     = "log_level"
	defaultLogLevel = "warn"
)

var version = "dev"

// newRootCmd builds the command tree around its own viper instance so
// flags, CRAFTPLAN_* variables and defaults resolve per invocation
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "craftplan",
		Short:         "Plan crafting trees from a recipe catalog",
		Long:          "craftplan loads a YAML or JSON recipe catalog and prints expansion trees with progress, or checks the catalog for errors.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitLoggerWithWriter(logger.CLIConfig(v.GetString(keyLogLevel), version), cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().String("recipes", "", "recipe catalog file (.yaml, .yml or .json)")
	root.PersistentFlags().String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	_ = v.BindPFlag(keyRecipes, root.PersistentFlags().Lookup("recipes"))
	_ = v.BindPFlag(keyLogLevel, root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newTreeCmd(v), newValidateCmd(v))
	return root
}

// loadCatalog reads and validates the configured catalog, printing warnings to stderr
func loadCatalog(cmd *cobra.Command, v *viper.Viper) (*recipe.Catalog, error) {
	path := v.GetString(keyRecipes)
	if path == "" {
		return nil, fmt.Errorf("no recipe catalog given: pass --recipes or set %s_RECIPES", envPrefix)
	}

	loader := recipe.NewLoader()
	catalog, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	warnings, err := loader.Validate(catalog)
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog %s is invalid:\n%w", path, err)
	}
	return catalog, nil
}

// newCatalogService syncs catalog into an in-memory recipe service
func newCatalogService(ctx context.Context, catalog *recipe.Catalog) (recipe.Service, error) {
	svc := recipe.NewService(memory.NewRecipeRepository(), recipe.Config{})
	if _, err := svc.SyncCatalog(ctx, catalog); err != nil {
		return nil, err
	}
	return svc, nil
}
