package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/recipe"
)

// RecipeHandler serves the recipe catalog
type RecipeHandler struct {
	service recipe.Service
}

func NewRecipeHandler(service recipe.Service) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// IngredientRequest is one ingredient line of a recipe body
type IngredientRequest struct {
	ItemID   string `json:"itemId" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"gt=0,lte=1000000000"`
}

// CreateRecipeRequest is the body of POST /recipes. An empty id is generated.
type CreateRecipeRequest struct {
	ID          string              `json:"id" validate:"max=100"`
	Name        string              `json:"name" validate:"max=200"`
	Output      int                 `json:"output" validate:"gte=0,lte=1000000000"`
	IsBase      bool                `json:"isBase"`
	Ingredients []IngredientRequest `json:"ingredients" validate:"max=100,dive"`
}

// UpdateRecipeRequest is the body of PUT /recipes/{id}; omitted fields are unchanged
type UpdateRecipeRequest struct {
	Name        *string             `json:"name" validate:"omitempty,max=200"`
	Output      *int                `json:"output" validate:"omitempty,gte=0,lte=1000000000"`
	IsBase      *bool               `json:"isBase"`
	Ingredients []IngredientRequest `json:"ingredients" validate:"omitempty,max=100,dive"`
}

func toIngredients(in []IngredientRequest) []domain.Ingredient {
	if in == nil {
		return nil
	}
	out := make([]domain.Ingredient, len(in))
	for i, ing := range in {
		out[i] = domain.Ingredient{ItemID: ing.ItemID, Quantity: ing.Quantity}
	}
	return out
}

// HandleListRecipes lists every recipe
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Success 200 {array} domain.Recipe
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/recipes [get]
func (h *RecipeHandler) HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.ListRecipes(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgListRecipesFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, recipes)
}

// HandleGetRecipe returns one recipe
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id} [get]
func (h *RecipeHandler) HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	got, err := h.service.GetRecipe(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, ErrMsgGetRecipeFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, got)
}

// HandleCreateRecipe adds a recipe to the catalog
// @Summary Create recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body CreateRecipeRequest true "Recipe"
// @Success 201 {object} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/recipes [post]
func (h *RecipeHandler) HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req CreateRecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create recipe"); err != nil {
		return
	}

	created, err := h.service.CreateRecipe(r.Context(), &domain.Recipe{
		ID:          req.ID,
		Name:        req.Name,
		Output:      req.Output,
		IsBase:      req.IsBase,
		Ingredients: toIngredients(req.Ingredients),
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateRecipeFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// HandleUpdateRecipe applies a partial edit
// @Summary Update recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param request body UpdateRecipeRequest true "Fields to change"
// @Success 200 {object} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id} [put]
func (h *RecipeHandler) HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	var req UpdateRecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update recipe"); err != nil {
		return
	}

	updated, err := h.service.UpdateRecipe(r.Context(), chi.URLParam(r, "id"), recipe.Update{
		Name:        req.Name,
		Output:      req.Output,
		IsBase:      req.IsBase,
		Ingredients: toIngredients(req.Ingredients),
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgUpdateRecipeFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// HandleDeleteRecipe removes a recipe. Existing project trees keep their nodes.
// @Summary Delete recipe
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id} [delete]
func (h *RecipeHandler) HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRecipe(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, ErrMsgDeleteRecipeFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRecipeDeletedSuccess})
}

// HandleCalculateTree previews the requirement tree of a recipe without creating a project
// @Summary Preview requirement tree
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Param quantity query int false "Units wanted (default 1)"
// @Param maxDepth query int false "Expansion depth limit"
// @Success 200 {object} domain.TreeNode
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id}/calculate [get]
func (h *RecipeHandler) HandleCalculateTree(w http.ResponseWriter, r *http.Request) {
	quantity, ok := GetOptionalIntQueryParam(r, w, "quantity")
	if !ok {
		return
	}
	maxDepth, ok := GetOptionalIntQueryParam(r, w, "maxDepth")
	if !ok {
		return
	}
	qty := 1
	if quantity != nil {
		qty = *quantity
	}
	if qty > domain.MaxQuantity {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "quantity"))
		return
	}

	tree, err := h.service.CalculateTree(r.Context(), chi.URLParam(r, "id"), qty, maxDepth)
	if err != nil {
		respondServiceError(w, r, ErrMsgCalculateTreeFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, tree)
}
