package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "doglicense_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "doglicense_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	registrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "doglicense_registrations_total",
		Help: "Count of dog registration attempts by result",
	}, []string{"result"})

	renewalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "doglicense_renewals_total",
		Help: "Count of license renewal attempts by result",
	}, []string{"result"})
)

// ObserveHTTPRequest records an HTTP request metric.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveRegistration increments the registration counter ("ok" / "error").
func ObserveRegistration(result string) {
	registrationsTotal.WithLabelValues(result).Inc()
}

// ObserveRenewal increments the renewal counter ("ok" / "error").
func ObserveRenewal(result string) {
	renewalsTotal.WithLabelValues(result).Inc()
}
