package domain

import "time"

// MaxQuantity bounds every quantity accepted from callers: targets, possessed and
// required counts, ingredient ratios and batch sizes. The literal is repeated in
// validate tags and catalog schemas.
const MaxQuantity = 1_000_000_000

// Ingredient is a single input of a recipe, consumed once per crafted batch
type Ingredient struct {
	ItemID   string `json:"itemId" yaml:"item_id" validate:"required"`
	Quantity int    `json:"quantity" yaml:"quantity" validate:"gt=0,lte=1000000000"`
}

// Recipe describes how one output batch of an item is produced.
// A base recipe has no ingredients and is terminal in every expansion.
type Recipe struct {
	ID          string       `json:"id" yaml:"id" validate:"required,max=100"`
	Name        string       `json:"name" yaml:"name" validate:"max=200"`
	Output      int          `json:"output" yaml:"output" validate:"gte=0,lte=1000000000"`
	IsBase      bool         `json:"isBase" yaml:"is_base"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients" validate:"dive"`
	CreatedAt   time.Time    `json:"createdAt,omitempty" yaml:"-"`
	UpdatedAt   time.Time    `json:"updatedAt,omitempty" yaml:"-"`
}

// BatchSize returns the number of units produced per craft, never less than one
func (r *Recipe) BatchSize() int {
	if r.Output < 1 {
		return 1
	}
	return r.Output
}

// Equal reports whether two recipes describe the same crafting rule
func (r *Recipe) Equal(other *Recipe) bool {
	if r.ID != other.ID || r.Name != other.Name || r.BatchSize() != other.BatchSize() || r.IsBase != other.IsBase {
		return false
	}
	if len(r.Ingredients) != len(other.Ingredients) {
		return false
	}
	for i := range r.Ingredients {
		if r.Ingredients[i] != other.Ingredients[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of r that shares no ingredient storage
func (r *Recipe) Clone() *Recipe {
	out := *r
	if r.Ingredients != nil {
		out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	}
	return &out
}
