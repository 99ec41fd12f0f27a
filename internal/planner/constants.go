package planner

// DefaultDepthLimit caps recursion for expansions requested without a depth bound
const DefaultDepthLimit = 64

// MaxPlannedQuantity bounds every computed quantity. It is the largest integer a
// JSON client holds exactly.
const MaxPlannedQuantity = 1 << 53

// Log messages
const (
	LogMsgIngredientSkipped = "Ingredient has no recipe, skipping"
	LogMsgPossessionClamped = "Possessed quantity clamped to requirement"
)

// Error message formats
const (
	ErrMsgLookupFailedFmt = "failed to look up recipe %s: %w"
	ErrMsgCycleFmt        = "%w: %s -> %s"
	ErrMsgTooDeepFmt      = "%w: %s at %d levels"
	ErrMsgNodePathFmt     = "%w: %v"
	ErrMsgRootRecipeFmt   = "%w: %s"
	ErrMsgOverflowFmt     = "%w: %d x %d exceeds %d"
	ErrMsgQuantityFmt     = "%w: quantity %d exceeds %d"
)
