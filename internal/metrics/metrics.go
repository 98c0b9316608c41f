package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeCreated    = "created"
	OutcomeConflict   = "conflict"
	OutcomeSoldOut    = "sold_out"
	OutcomeValidation = "validation"
	OutcomeError      = "error"
)

var (
	registerOnce sync.Once

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "venuebook_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "venuebook_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	bookingAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "venuebook_booking_attempts_total",
			Help: "Booking creation attempts by outcome",
		},
		[]string{"outcome"},
	)
)

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequestsTotal,
			httpRequestDuration,
			bookingAttemptsTotal,
		)
	})
}

func IncHTTPRequest(method, route, status string) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
}

func ObserveHTTPDuration(method, route string, seconds float64) {
	httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func IncBookingAttempt(outcome string) {
	bookingAttemptsTotal.WithLabelValues(outcome).Inc()
}
