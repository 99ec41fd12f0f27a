package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Recipe Operations
const (
	ErrMsgFailedToListRecipes      = "failed to list recipes"
	ErrMsgFailedToGetRecipe        = "failed to get recipe"
	ErrMsgFailedToInsertRecipe     = "failed to insert recipe"
	ErrMsgFailedToUpdateRecipe     = "failed to update recipe"
	ErrMsgFailedToDeleteRecipe     = "failed to delete recipe"
	ErrMsgFailedToWriteIngredients = "failed to write recipe ingredients"
	ErrMsgFailedToLoadIngredients  = "failed to load recipe ingredients"
)

// Error Messages - Project Operations
const (
	ErrMsgFailedToListProjects  = "failed to list projects"
	ErrMsgFailedToGetProject    = "failed to get project"
	ErrMsgFailedToInsertProject = "failed to insert project"
	ErrMsgFailedToSaveProject   = "failed to save project"
	ErrMsgFailedToDeleteProject = "failed to delete project"
	ErrMsgFailedToEncodeProject = "failed to encode project state"
	ErrMsgFailedToDecodeProject = "failed to decode project state"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
