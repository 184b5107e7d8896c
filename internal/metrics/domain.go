package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// namespace prefixes every tripdex metric.
const namespace = "tripdex"

// Search and booking Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Total number of catalog searches",
		},
		[]string{"entity", "mode"}, // entity: flight|hotel, mode: body|query
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of records returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 200},
		},
		[]string{"entity"},
	)

	BookingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Total number of booking operations",
		},
		[]string{"type", "action"}, // action: created|cancelled
	)

	HistoryWriteFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_history_write_failures_total",
			Help:      "Search history saves that failed and were swallowed",
		},
	)
)

var registerDomainOnce sync.Once

// RegisterDomainMetrics registers search and booking metrics with the default
// registry. Safe to call more than once.
func RegisterDomainMetrics() {
	registerDomainOnce.Do(func() {
		prometheus.MustRegister(SearchRequestsTotal)
		prometheus.MustRegister(SearchResults)
		prometheus.MustRegister(BookingsTotal)
		prometheus.MustRegister(HistoryWriteFailuresTotal)
	})
}
