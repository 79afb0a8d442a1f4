// Package observability provides Prometheus-backed implementations of the
// metrics port, plus the /metrics handler wiring.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	llmhttp "github.com/kprsnt/brandscore/internal/adapter/llm/http"
)

// PrometheusMetrics implements the llm metrics port on a Prometheus
// registry. It also keeps an in-memory aggregate so GetStats works without
// scraping.
type PrometheusMetrics struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	errors    *prometheus.CounterVec
	durations *prometheus.HistogramVec
	tokens    *prometheus.CounterVec

	inner *llmhttp.DefaultMetrics
}

// NewPrometheusMetrics creates and registers the provider metric vectors
// on a fresh registry.
func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()

	m := &PrometheusMetrics{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brandscore_provider_requests_total",
			Help: "Number of LLM provider requests issued.",
		}, []string{"provider", "model"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brandscore_provider_errors_total",
			Help: "Number of LLM provider requests that failed.",
		}, []string{"provider", "model", "type"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "brandscore_provider_request_seconds",
			Help:    "LLM provider request latency.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		}, []string{"provider", "model"}),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brandscore_provider_tokens_total",
			Help: "Tokens exchanged with LLM providers.",
		}, []string{"provider", "model", "direction"}),
		inner: llmhttp.NewDefaultMetrics(),
	}

	registry.MustRegister(m.requests, m.errors, m.durations, m.tokens)
	return m
}

// Handler returns the /metrics scrape handler for this registry.
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRequest counts one outbound provider request.
func (m *PrometheusMetrics) RecordRequest(provider, model string) {
	m.requests.WithLabelValues(provider, model).Inc()
	m.inner.RecordRequest(provider, model)
}

// RecordDuration observes one provider call latency.
func (m *PrometheusMetrics) RecordDuration(provider, model string, duration time.Duration) {
	m.durations.WithLabelValues(provider, model).Observe(duration.Seconds())
	m.inner.RecordDuration(provider, model, duration)
}

// RecordTokens counts tokens in both directions.
func (m *PrometheusMetrics) RecordTokens(provider, model string, tokensIn, tokensOut int) {
	m.tokens.WithLabelValues(provider, model, "in").Add(float64(tokensIn))
	m.tokens.WithLabelValues(provider, model, "out").Add(float64(tokensOut))
	m.inner.RecordTokens(provider, model, tokensIn, tokensOut)
}

// RecordError counts one failed provider request by error type.
func (m *PrometheusMetrics) RecordError(provider, model string, errType llmhttp.ErrorType) {
	m.errors.WithLabelValues(provider, model, errType.String()).Inc()
	m.inner.RecordError(provider, model, errType)
}

// GetStats returns the in-memory aggregate.
func (m *PrometheusMetrics) GetStats() llmhttp.Stats {
	return m.inner.GetStats()
}
