package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Planner metric names
const (
	MetricNameProjectOperations    = "craftplan_project_operations_total"
	MetricNameProjectOperationTime = "craftplan_project_operation_duration_seconds"
	MetricNameTreeNodes            = "craftplan_tree_nodes"
	MetricNameRecipeCacheLookups   = "craftplan_recipe_cache_lookups_total"
	MetricNameCatalogSyncedRecipes = "craftplan_catalog_synced_recipes_total"
	MetricNameBackgroundJobs       = "craftplan_background_jobs_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Planner metric help text
const (
	HelpTextProjectOperations    = "Total number of project operations by outcome"
	HelpTextProjectOperationTime = "Project operation latency in seconds"
	HelpTextTreeNodes            = "Number of nodes in requirement trees after each mutation"
	HelpTextRecipeCacheLookups   = "Recipe lookups served from or missing the cache"
	HelpTextCatalogSyncedRecipes = "Recipes touched by catalog sync, by action"
	HelpTextBackgroundJobs       = "Background jobs run by the worker pool, by outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelResult    = "result"
	LabelAction    = "action"
	LabelJob       = "job"
)

// Label values
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultDropped = "dropped"

	ActionInserted = "inserted"
	ActionUpdated  = "updated"
	ActionSkipped  = "skipped"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TreeSizeBuckets covers small hand-built plans up to large modpack trees
var TreeSizeBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000}
