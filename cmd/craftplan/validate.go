package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newValidateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a recipe catalog for errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(cmd, v)
			if err != nil {
				return err
			}
			if catalog.Version == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %d recipes valid\n", len(catalog.Recipes))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %d recipes valid (catalog version %s)\n", len(catalog.Recipes), catalog.Version)
			return nil
		},
	}
}
