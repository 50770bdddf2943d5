package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the SDK.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so embedding applications can scrape it alongside their own.
	Registry *prometheus.Registry

	requestDuration    *prometheus.HistogramVec
	apiErrors          *prometheus.CounterVec
	transportErrors    *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	tokenRefreshes     *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// SDK metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in
// tests, or when an application holds several clients).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "zapay_request_duration_seconds",
				Help:    "Duration of Zapay API calls by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		apiErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zapay_api_errors_total",
				Help: "Total non-200 responses from the Zapay API.",
			},
			[]string{"operation", "status"},
		),
		transportErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zapay_transport_errors_total",
				Help: "Total requests that never produced a response.",
			},
			[]string{"operation"},
		),
		validationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zapay_validation_failures_total",
				Help: "Total 200 payloads that failed domain validation.",
			},
			[]string{"operation"},
		),
		tokenRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zapay_token_refreshes_total",
				Help: "Total access token refresh attempts by outcome.",
			},
			[]string{"outcome"},
		),
	}
}

// RecordRequestDuration records the duration of an API operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrAPIError increments the non-200 response counter.
func (m *Metrics) IncrAPIError(operation string, status int) {
	m.apiErrors.WithLabelValues(operation, statusLabel(status)).Inc()
}

// IncrTransportError increments the failed round trip counter.
func (m *Metrics) IncrTransportError(operation string) {
	m.transportErrors.WithLabelValues(operation).Inc()
}

// IncrValidationFailure increments the broken remote contract counter.
func (m *Metrics) IncrValidationFailure(operation string) {
	m.validationFailures.WithLabelValues(operation).Inc()
}

// IncrTokenRefresh records one token refresh attempt. Outcome is
// "success" or "error".
func (m *Metrics) IncrTokenRefresh(outcome string) {
	m.tokenRefreshes.WithLabelValues(outcome).Inc()
}

// Snapshot is a point-in-time view of the SDK counters, for applications
// that want health numbers without scraping the registry.
type Snapshot struct {
	APIErrors          float64
	TransportErrors    float64
	ValidationFailures float64
	TokenRefreshes     float64
	TokenRefreshErrors float64
}

// GetSnapshot gathers current counter values from the registry.
func (m *Metrics) GetSnapshot() *Snapshot {
	s := &Snapshot{
		TokenRefreshes:     getCounterValue(m.tokenRefreshes, "success"),
		TokenRefreshErrors: getCounterValue(m.tokenRefreshes, "error"),
	}

	families, err := m.Registry.Gather()
	if err != nil {
		return s
	}
	for _, family := range families {
		var total float64
		for _, metric := range family.GetMetric() {
			if metric.Counter != nil && metric.Counter.Value != nil {
				total += *metric.Counter.Value
			}
		}
		switch family.GetName() {
		case "zapay_api_errors_total":
			s.APIErrors = total
		case "zapay_transport_errors_total":
			s.TransportErrors = total
		case "zapay_validation_failures_total":
			s.ValidationFailures = total
		}
	}
	return s
}

// getCounterValue extracts the current float64 value from a CounterVec for a given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	default:
		return "other"
	}
}
