package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthgate_requests_total",
			Help: "Total number of chat requests processed",
		},
		[]string{"provider", "model", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "healthgate_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"provider", "model"},
	)

	TokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthgate_tokens_total",
			Help: "Total number of tokens processed",
		},
		[]string{"provider", "model", "type"},
	)

	ProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthgate_provider_errors_total",
			Help: "Total number of provider errors",
		},
		[]string{"provider", "error_type"},
	)

	KeyValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthgate_key_validations_total",
			Help: "Total number of API key validation attempts",
		},
		[]string{"provider", "valid"},
	)

	ActiveStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "healthgate_active_streams",
			Help: "Number of active streaming connections",
		},
	)
)

func RecordRequest(provider, model, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(provider, model, status).Inc()
	RequestDuration.WithLabelValues(provider, model).Observe(durationSec)
}

func RecordTokens(provider, model string, promptTokens, completionTokens int) {
	TokensTotal.WithLabelValues(provider, model, "prompt").Add(float64(promptTokens))
	TokensTotal.WithLabelValues(provider, model, "completion").Add(float64(completionTokens))
}

func RecordProviderError(provider, errorType string) {
	ProviderErrors.WithLabelValues(provider, errorType).Inc()
}

func RecordKeyValidation(provider string, valid bool) {
	v := "false"
	if valid {
		v = "true"
	}
	KeyValidations.WithLabelValues(provider, v).Inc()
}

func IncrementActiveStreams() {
	ActiveStreams.Inc()
}

func DecrementActiveStreams() {
	ActiveStreams.Dec()
}
