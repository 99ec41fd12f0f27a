package recipe

import "time"

// Cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute

	// CacheSchemaVersion invalidates cached entries written by an older layout
	CacheSchemaVersion = "1"
)

// Catalog file formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Log messages
const (
	LogMsgRecipeCreated     = "Recipe created"
	LogMsgRecipeUpdated     = "Recipe updated"
	LogMsgRecipeDeleted     = "Recipe deleted"
	LogMsgCatalogLoaded     = "Recipe catalog loaded"
	LogMsgCatalogSynced     = "Recipe catalog synced"
	LogMsgCatalogWarning    = "Recipe catalog warning"
	LogMsgOrphanedRecipe    = "Stored recipe not present in catalog file"
	LogMsgCalculatingTree   = "Calculating recipe tree preview"
	LogMsgCacheInvalidation = "Recipe cache purged"
	LogMsgCatalogUnchanged  = "Recipe catalog file unchanged, skipping reload"
)

// JobNameCatalogReload labels the periodic catalog reload job
const JobNameCatalogReload = "catalog_reload"

// Error message formats
const (
	ErrMsgReadCatalogFmt      = "failed to read recipe catalog %s: %w"
	ErrMsgParseCatalogFmt     = "failed to parse recipe catalog %s: %w"
	ErrMsgUnknownFormatFmt    = "unsupported recipe catalog extension %q"
	ErrMsgDuplicateIDFmt      = "%w: duplicate recipe id %s"
	ErrMsgRecipeFieldFmt      = "%w: %s: %s"
	ErrMsgBaseIngredientsFmt  = "%w: %s: base recipe cannot have ingredients"
	ErrMsgNoIngredientsFmt    = "%w: %s: non-base recipe needs at least one ingredient"
	ErrMsgDuplicateIngrFmt    = "%w: %s: ingredient %s listed twice"
	ErrMsgSelfIngredientFmt   = "%w: %s: recipe lists itself as an ingredient"
	ErrMsgGetRecipeFmt        = "failed to get recipe %s: %w"
	ErrMsgListRecipesFmt      = "failed to list recipes: %w"
	ErrMsgSaveRecipeFmt       = "failed to save recipe %s: %w"
	ErrMsgDeleteRecipeFmt     = "failed to delete recipe %s: %w"
	ErrMsgSyncRecipeFmt       = "failed to sync recipe %s: %w"
	ErrMsgDanglingIngrFmt     = "recipe %s uses %s which has no recipe"
	ErrMsgEmptyCatalogVersion = "recipe catalog has no version"
)
