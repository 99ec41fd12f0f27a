package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/planner"
)

const (
	keyItem     = "item"
	keyQuantity = "quantity"
	keyDepth    = "depth"
	keyJSON     = "json"
)

func newTreeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the expansion tree of an item with per-node progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			item := v.GetString(keyItem)
			if item == "" {
				return fmt.Errorf("--item is required")
			}
			catalog, err := loadCatalog(cmd, v)
			if err != nil {
				return err
			}
			svc, err := newCatalogService(cmd.Context(), catalog)
			if err != nil {
				return err
			}

			var maxDepth *int
			if d := v.GetInt(keyDepth); d >= 0 {
				maxDepth = &d
			}
			tree, err := svc.CalculateTree(cmd.Context(), item, v.GetInt(keyQuantity), maxDepth)
			if err != nil {
				return err
			}

			progress := planner.Progress(tree)
			if v.GetBool(keyJSON) {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(progress)
			}
			writeTree(cmd.OutOrStdout(), progress, "", "")
			return nil
		},
	}

	cmd.Flags().String("item", "", "item id to expand")
	cmd.Flags().Int("quantity", 1, "number of items wanted")
	cmd.Flags().Int("depth", -1, "expansion depth limit; negative means unbounded")
	cmd.Flags().Bool("json", false, "print the progress tree as JSON")
	for _, key := range []string{keyItem, keyQuantity, keyDepth, keyJSON} {
		_ = v.BindPFlag(key, cmd.Flags().Lookup(key))
	}
	return cmd
}

// writeTree renders one node per line with box-drawing connectors
func writeTree(w io.Writer, node domain.ProgressNode, prefix, connector string) {
	kind := ""
	if node.IsBase {
		kind = " [base]"
	}
	fmt.Fprintf(w, "%s%s%s x%d (have %d, %.2f%%)%s\n",
		prefix, connector, node.ItemName, node.Quantity, node.CurrentQuantity, node.Progress, kind)

	childPrefix := prefix
	switch connector {
	case "├── ":
		childPrefix += "│   "
	case "└── ":
		childPrefix += "    "
	}
	for i, child := range node.Children {
		next := "├── "
		if i == len(node.Children)-1 {
			next = "└── "
		}
		writeTree(w, child, childPrefix, next)
	}
}
