package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It covers list fetches issued by sessions, stale responses dropped by the
// page state machine, exports, the query API and database latency.
type Metrics struct {
	FetchRequests   *prometheus.CounterVec
	FetchDuration   prometheus.Histogram
	StaleResponses  prometheus.Counter
	ActiveSessions  prometheus.Gauge
	Exports         *prometheus.CounterVec
	APIRequests     *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		FetchRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "athena_fetch_requests_total",
			Help: "Total employee list fetches issued by sessions, by outcome.",
		}, []string{"status"}),
		FetchDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "athena_fetch_duration_seconds",
			Help:    "Duration of employee list fetches against the query API.",
			Buckets: prometheus.DefBuckets,
		}),
		StaleResponses: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "athena_stale_responses_total",
			Help: "Total fetch results discarded because a newer request was issued.",
		}),
		ActiveSessions: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "athena_active_sessions",
			Help: "Number of live directory sessions.",
		}),
		Exports: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "athena_exports_total",
			Help: "Total exported employee lists, by format.",
		}, []string{"format"}),
		APIRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "athena_api_requests_total",
			Help: "Total requests served by the employee list API, by status.",
		}, []string{"status"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "athena_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'list_employees', 'save_employee'
	}

	metrics.FetchRequests.WithLabelValues("success")
	metrics.FetchRequests.WithLabelValues("failure")

	return metrics
}
