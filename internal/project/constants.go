package project

// Operation names used as metric labels
const (
	OpCreate           = "create"
	OpGet              = "get"
	OpList             = "list"
	OpDelete           = "delete"
	OpSetNodePossessed = "set_node_possessed"
	OpSetNodeRequired  = "set_node_required"
	OpSetItemPossessed = "set_item_possessed"
	OpGetProgress      = "get_progress"
)

// Log messages
const (
	LogMsgProjectCreated  = "Project created"
	LogMsgProjectDeleted  = "Project deleted"
	LogMsgTreeBuilt       = "Built missing requirement tree"
	LogMsgNodePossessed   = "Node possession updated"
	LogMsgNodeRequired    = "Node requirement updated"
	LogMsgItemPossessed   = "Aggregate item possession updated"
	LogMsgSaveFailed      = "Failed to save project"
	LogMsgQuantityClamped = "Negative quantity clamped to zero"
)

// Error message formats
const (
	ErrMsgTargetRequired = "%w: target recipe id is required"
	ErrMsgExpandFmt      = "failed to expand %s: %w"
	ErrMsgLoadFmt        = "failed to load project %s: %w"
	ErrMsgSaveFmt        = "failed to save project %s: %w"
	ErrMsgListFmt        = "failed to list projects: %w"
	ErrMsgDeleteFmt      = "failed to delete project %s: %w"
	ErrMsgItemFmt        = "%w: %s"
)
