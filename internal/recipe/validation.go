package recipe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

var (
	validate  = validator.New(validator.WithRequiredStructEnabled())
	titleCase = cases.Title(language.English)
)

// Normalize fills defaults on a recipe about to be written: a zero batch size
// becomes one and an empty name is derived from the id.
func Normalize(r *domain.Recipe) {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	if r.Output < 1 {
		r.Output = 1
	}
	if r.Name == "" {
		r.Name = DisplayName(r.ID)
	}
	if r.IsBase && r.Ingredients == nil {
		r.Ingredients = []domain.Ingredient{}
	}
}

// DisplayName turns an item id like "iron_ingot" into "Iron Ingot"
func DisplayName(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ':'
	})
	return titleCase.String(strings.Join(words, " "))
}

// Validate enforces the catalog rules on a single recipe. Every failure wraps
// domain.ErrInvalidRecipe.
func Validate(r *domain.Recipe) error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf(ErrMsgRecipeFieldFmt, domain.ErrInvalidRecipe, r.ID, strings.Join(fields, ", "))
		}
		return fmt.Errorf(ErrMsgRecipeFieldFmt, domain.ErrInvalidRecipe, r.ID, err.Error())
	}

	if r.IsBase {
		if len(r.Ingredients) > 0 {
			return fmt.Errorf(ErrMsgBaseIngredientsFmt, domain.ErrInvalidRecipe, r.ID)
		}
		return nil
	}
	if len(r.Ingredients) == 0 {
		return fmt.Errorf(ErrMsgNoIngredientsFmt, domain.ErrInvalidRecipe, r.ID)
	}

	seen := make(map[string]struct{}, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		if ing.ItemID == r.ID {
			return fmt.Errorf(ErrMsgSelfIngredientFmt, domain.ErrInvalidRecipe, r.ID)
		}
		if _, dup := seen[ing.ItemID]; dup {
			return fmt.Errorf(ErrMsgDuplicateIngrFmt, domain.ErrInvalidRecipe, r.ID, ing.ItemID)
		}
		seen[ing.ItemID] = struct{}{}
	}
	return nil
}
