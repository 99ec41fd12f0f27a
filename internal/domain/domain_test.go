package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTree() TreeNode {
	return TreeNode{
		ItemID: "sword", Quantity: 2, BaseQuantity: 2,
		Children: []TreeNode{
			{ItemID: "ingot", Quantity: 6, BaseQuantity: 6, Children: []TreeNode{
				{ItemID: "ore", Quantity: 12, BaseQuantity: 12, IsBase: true},
			}},
			{ItemID: "stick", Quantity: 1, BaseQuantity: 1, IsBase: true},
		},
	}
}

func TestTreeNode_CloneIsDeep(t *testing.T) {
	tree := sampleTree()
	cp := tree.Clone()
	assert.Equal(t, tree, cp)

	cp.Children[0].Children[0].CurrentQuantity = 5
	cp.Children = append(cp.Children, TreeNode{ItemID: "gem"})

	assert.Zero(t, tree.Children[0].Children[0].CurrentQuantity)
	assert.Len(t, tree.Children, 2)
}

func TestTreeNode_WalkPreOrder(t *testing.T) {
	tree := sampleTree()
	var order []string
	tree.Walk(func(n *TreeNode) { order = append(order, n.ItemID) })
	assert.Equal(t, []string{"sword", "ingot", "ore", "stick"}, order)
}

func TestProject_Clone(t *testing.T) {
	depth := 3
	tree := sampleTree()
	p := &Project{
		ID:       "p1",
		MaxDepth: &depth,
		Items:    map[string]*ItemRecord{"ore": {ItemID: "ore", TargetQuantity: 12}},
		Tree:     &tree,
	}

	cp := p.Clone()
	*cp.MaxDepth = 9
	cp.Items["ore"].TargetQuantity = 1
	cp.Tree.Quantity = 99

	assert.Equal(t, 3, *p.MaxDepth)
	assert.Equal(t, 12, p.Items["ore"].TargetQuantity)
	assert.Equal(t, 2, p.Tree.Quantity)
}

func TestRecipe_BatchSizeAndEqual(t *testing.T) {
	r := &Recipe{ID: "plank", Name: "Plank", Output: 0, Ingredients: []Ingredient{{ItemID: "wood", Quantity: 1}}}
	assert.Equal(t, 1, r.BatchSize())

	same := r.Clone()
	same.Output = 1
	assert.True(t, r.Equal(same), "output 0 and 1 both mean one unit per craft")

	same.Ingredients[0].Quantity = 2
	assert.False(t, r.Equal(same))
	assert.Equal(t, 1, r.Ingredients[0].Quantity, "clone does not share ingredients")
}

func TestCatalogSyncResult_Changed(t *testing.T) {
	assert.False(t, (&CatalogSyncResult{Skipped: []string{"a"}, Orphans: []string{"b"}}).Changed())
	assert.True(t, (&CatalogSyncResult{Updated: []string{"a"}}).Changed())
}
