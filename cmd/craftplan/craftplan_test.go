package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

const testCatalog = `version: "3"
recipes:
  - id: ore
    name: Iron Ore
    is_base: true
  - id: ingot
    name: Iron Ingot
    ingredients:
      - item_id: ore
        quantity: 2
`

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTreeCommand_Text(t *testing.T) {
	path := writeCatalog(t, "recipes.yaml", testCatalog)

	out, _, err := run(t, "tree", "--recipes", path, "--item", "ingot", "--quantity", "3")

	require.NoError(t, err)
	assert.Equal(t, "Iron Ingot x3 (have 0, 0.00%)\n└── Iron Ore x6 (have 0, 0.00%) [base]\n", out)
}

func TestTreeCommand_JSONAndDepth(t *testing.T) {
	path := writeCatalog(t, "recipes.yaml", testCatalog)

	out, _, err := run(t, "tree", "--recipes", path, "--item", "ingot", "--json")
	require.NoError(t, err)
	var node domain.ProgressNode
	require.NoError(t, json.Unmarshal([]byte(out), &node))
	assert.Equal(t, "ingot", node.ItemID)
	require.Len(t, node.Children, 1)
	assert.Equal(t, 2, node.Children[0].Quantity)

	out, _, err = run(t, "tree", "--recipes", path, "--item", "ingot", "--depth", "0")
	require.NoError(t, err)
	assert.NotContains(t, out, "Iron Ore")
}

func TestTreeCommand_RecipesFromEnv(t *testing.T) {
	t.Setenv("CRAFTPLAN_RECIPES", writeCatalog(t, "recipes.yaml", testCatalog))

	out, _, err := run(t, "tree", "--item", "ore")

	require.NoError(t, err)
	assert.Contains(t, out, "Iron Ore x1")
}

func TestTreeCommand_Errors(t *testing.T) {
	path := writeCatalog(t, "recipes.yaml", testCatalog)

	_, _, err := run(t, "tree", "--recipes", path)
	assert.ErrorContains(t, err, "--item")

	_, _, err = run(t, "tree", "--recipes", path, "--item", "ghost")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, _, err = run(t, "tree", "--item", "ingot")
	assert.ErrorContains(t, err, "CRAFTPLAN_RECIPES")
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		out, _, err := run(t, "validate", "--recipes", writeCatalog(t, "recipes.yaml", testCatalog))
		require.NoError(t, err)
		assert.Equal(t, "✓ 2 recipes valid (catalog version 3)\n", out)
	})

	t.Run("json catalog with dangling ingredient warns", func(t *testing.T) {
		catalog := `{"version":"1","recipes":[{"id":"ingot","ingredients":[{"itemId":"ore","quantity":2}]}]}`
		out, errOut, err := run(t, "validate", "--recipes", writeCatalog(t, "recipes.json", catalog))
		require.NoError(t, err)
		assert.Contains(t, out, "1 recipes valid")
		assert.Contains(t, errOut, "warning:")
	})

	t.Run("invalid catalog", func(t *testing.T) {
		catalog := `recipes:
  - id: ore
    is_base: true
  - id: ore
    is_base: true
`
		_, _, err := run(t, "validate", "--recipes", writeCatalog(t, "recipes.yml", catalog))
		assert.ErrorIs(t, err, domain.ErrInvalidRecipe)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, _, err := run(t, "validate", "--recipes", writeCatalog(t, "recipes.toml", ""))
		assert.ErrorContains(t, err, "unsupported recipe catalog extension")
	})
}
