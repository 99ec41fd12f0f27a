package domain

import "time"

// TreeNode is one position in a project's requirement tree.
// The same item may appear at several positions; each is owned by its parent.
type TreeNode struct {
	ItemID          string     `json:"itemId"`
	ItemName        string     `json:"itemName"`
	BaseQuantity    int        `json:"baseQuantity"`
	Quantity        int        `json:"quantity"`
	CurrentQuantity int        `json:"currentQuantity"`
	IsBase          bool       `json:"isBase"`
	Children        []TreeNode `json:"children"`
}

// Clone returns a deep copy of the subtree rooted at n
func (n *TreeNode) Clone() TreeNode {
	out := *n
	if n.Children != nil {
		out.Children = make([]TreeNode, len(n.Children))
		for i := range n.Children {
			out.Children[i] = n.Children[i].Clone()
		}
	}
	return out
}

// Walk visits n and its descendants in pre-order
func (n *TreeNode) Walk(fn func(*TreeNode)) {
	fn(n)
	for i := range n.Children {
		n.Children[i].Walk(fn)
	}
}

// ItemRecord aggregates every tree position sharing one item id.
// Values are sums across occurrences, not deduplicated.
type ItemRecord struct {
	ItemID          string `json:"itemId"`
	TargetQuantity  int    `json:"targetQuantity"`
	CurrentQuantity int    `json:"currentQuantity"`
	BaseQuantity    int    `json:"baseQuantity"`
}

// Project is a user's plan to produce TargetQuantity of TargetItemID
type Project struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	TargetItemID   string                 `json:"targetRecipeId"`
	TargetQuantity int                    `json:"targetQuantity"`
	MaxDepth       *int                   `json:"maxDepth,omitempty"`
	Items          map[string]*ItemRecord `json:"items"`
	Tree           *TreeNode              `json:"tree,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// ProgressNode mirrors a TreeNode with a derived completion percentage
type ProgressNode struct {
	ItemID          string         `json:"itemId"`
	ItemName        string         `json:"itemName"`
	Quantity        int            `json:"quantity"`
	CurrentQuantity int            `json:"currentQuantity"`
	IsBase          bool           `json:"isBase"`
	Progress        float64        `json:"progress"`
	Children        []ProgressNode `json:"children"`
}

// Clone returns a deep copy of p
func (p *Project) Clone() *Project {
	out := *p
	if p.MaxDepth != nil {
		depth := *p.MaxDepth
		out.MaxDepth = &depth
	}
	if p.Items != nil {
		out.Items = make(map[string]*ItemRecord, len(p.Items))
		for id, rec := range p.Items {
			cp := *rec
			out.Items[id] = &cp
		}
	}
	if p.Tree != nil {
		tree := p.Tree.Clone()
		out.Tree = &tree
	}
	return &out
}
