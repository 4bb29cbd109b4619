package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// clientRequestsTotal counts SDK calls by action and outcome.
	clientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fleet",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Total number of Fleet API calls issued by the SDK.",
		},
		[]string{"action", "status"},
	)

	// clientRequestDurationSeconds observes call latency in seconds.
	clientRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fleet",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Fleet API call duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"action", "status"},
	)
)

// ObserveClientCall records one completed SDK call.
func ObserveClientCall(action, status string, d time.Duration) {
	if action == "" {
		action = "unknown"
	}
	clientRequestsTotal.WithLabelValues(action, status).Inc()
	clientRequestDurationSeconds.WithLabelValues(action, status).Observe(d.Seconds())
}
