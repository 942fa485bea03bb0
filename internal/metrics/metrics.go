// Package metrics holds the Prometheus collectors shared by the HTTP server,
// the planner and the recipe client.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealcraft_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mealcraft_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mealcraft_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealcraft_upstream_requests_total",
			Help: "Total number of recipe search requests by response code",
		},
		[]string{"code", "method"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mealcraft_upstream_request_duration_seconds",
			Help:    "Recipe search latency in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"code", "method"},
	)

	bmiStatusTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealcraft_bmi_status_total",
			Help: "Total number of BMI evaluations by weight status",
		},
		[]string{"status"},
	)

	planOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealcraft_plan_outcomes_total",
			Help: "Total number of plan requests by outcome",
		},
		[]string{"outcome"},
	)
)

// Plan outcome labels.
const (
	OutcomeOK              = "ok"
	OutcomeEmpty           = "empty"
	OutcomeInvalidInput    = "invalid_input"
	OutcomeUpstreamError   = "upstream_error"
	OutcomeTransportFailed = "transport_error"
)

// ObserveHTTPRequest records one handled inbound request.
func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// TrackInFlight increments the in-flight gauge and returns its release.
func TrackInFlight() func() {
	httpRequestsInFlight.Inc()
	return httpRequestsInFlight.Dec
}

// RecordBMIStatus counts one classification.
func RecordBMIStatus(status string) {
	bmiStatusTotal.WithLabelValues(status).Inc()
}

// RecordPlanOutcome counts one plan request.
func RecordPlanOutcome(outcome string) {
	planOutcomesTotal.WithLabelValues(outcome).Inc()
}

// InstrumentTransport wraps rt so every outbound request is counted and
// timed. A nil rt means http.DefaultTransport.
func InstrumentTransport(rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperCounter(upstreamRequestsTotal,
		promhttp.InstrumentRoundTripperDuration(upstreamRequestDuration, rt))
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
