package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Planner Metrics
var (
	ProjectOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProjectOperations,
			Help: HelpTextProjectOperations,
		},
		[]string{LabelOperation, LabelResult},
	)

	ProjectOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameProjectOperationTime,
			Help:    HelpTextProjectOperationTime,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	TreeNodes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTreeNodes,
			Help:    HelpTextTreeNodes,
			Buckets: TreeSizeBuckets,
		},
	)

	RecipeCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipeCacheLookups,
			Help: HelpTextRecipeCacheLookups,
		},
		[]string{LabelResult},
	)

	CatalogSyncedRecipes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogSyncedRecipes,
			Help: HelpTextCatalogSyncedRecipes,
		},
		[]string{LabelAction},
	)
)

// Background Metrics
var (
	BackgroundJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBackgroundJobs,
			Help: HelpTextBackgroundJobs,
		},
		[]string{LabelJob, LabelResult},
	)
)

// ObserveOperation records the outcome and latency of one project operation
func ObserveOperation(operation string, start time.Time, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	ProjectOperations.WithLabelValues(operation, result).Inc()
	ProjectOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
