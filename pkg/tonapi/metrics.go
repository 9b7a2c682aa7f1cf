package tonapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tonapi_requests_total",
			Help: "Number of requests sent to tonapi per method and response status",
		},
		[]string{"method", "status"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tonapi_request_duration_seconds",
			Help:    "Duration of tonapi requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func observeRequest(method, status string, duration time.Duration) {
	requestsTotal.WithLabelValues(method, status).Inc()
	requestDuration.WithLabelValues(method).Observe(duration.Seconds())
}
