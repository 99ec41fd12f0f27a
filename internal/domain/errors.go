package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgRecipeNotFound  = "recipe not found"
	ErrMsgInvalidRecipe   = "invalid recipe"
	ErrMsgDuplicateRecipe = "recipe already exists"

	// Planning errors
	ErrMsgRecipeCycle      = "recipe cycle detected"
	ErrMsgExpansionTooDeep = "expansion exceeds maximum depth"
	ErrMsgProjectNotFound  = "project not found"
	ErrMsgNodeNotFound     = "tree node not found"
	ErrMsgItemNotFound     = "item not found in project"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrRecipeNotFound  = errors.New(ErrMsgRecipeNotFound)
	ErrInvalidRecipe   = errors.New(ErrMsgInvalidRecipe)
	ErrDuplicateRecipe = errors.New(ErrMsgDuplicateRecipe)

	ErrRecipeCycle      = errors.New(ErrMsgRecipeCycle)
	ErrExpansionTooDeep = errors.New(ErrMsgExpansionTooDeep)
	ErrProjectNotFound  = errors.New(ErrMsgProjectNotFound)
	ErrNodeNotFound     = errors.New(ErrMsgNodeNotFound)
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
