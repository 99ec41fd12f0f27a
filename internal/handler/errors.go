package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Recipe operation error messages
	ErrMsgListRecipesFailed   = "Failed to list recipes"
	ErrMsgGetRecipeFailed     = "Failed to get recipe"
	ErrMsgCreateRecipeFailed  = "Failed to create recipe"
	ErrMsgUpdateRecipeFailed  = "Failed to update recipe"
	ErrMsgDeleteRecipeFailed  = "Failed to delete recipe"
	ErrMsgCalculateTreeFailed = "Failed to calculate recipe tree"

	// Project operation error messages
	ErrMsgListProjectsFailed  = "Failed to list projects"
	ErrMsgGetProjectFailed    = "Failed to get project"
	ErrMsgCreateProjectFailed = "Failed to create project"
	ErrMsgDeleteProjectFailed = "Failed to delete project"
	ErrMsgUpdateItemFailed    = "Failed to update item quantity"
	ErrMsgUpdateNodeFailed    = "Failed to update node"
	ErrMsgGetProgressFailed   = "Failed to get project progress"
)

// Success messages for API responses
const (
	MsgRecipeDeletedSuccess  = "Recipe deleted successfully"
	MsgProjectDeletedSuccess = "Project deleted successfully"
)
