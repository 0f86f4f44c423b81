package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the advisor.
type Metrics struct {
	ZipLookups      *prometheus.CounterVec // labels: outcome={found,not_covered}
	Recommendations *prometheus.CounterVec // labels: tier={minimum,basic,standard,enhanced,premium}
	Searches        prometheus.Counter
	CustomQuotes    prometheus.Counter

	HTTPRequestDuration *prometheus.HistogramVec // labels: route
}

// NewMetrics creates and registers all advisor metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ZipLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coverage_advisor",
			Name:      "zip_lookups_total",
			Help:      "Zip code analyses by outcome.",
		}, []string{"outcome"}),
		Recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coverage_advisor",
			Name:      "recommendations_total",
			Help:      "Coverage recommendations by resulting tier.",
		}, []string{"tier"}),
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "coverage_advisor",
			Name:      "searches_total",
			Help:      "Zip code searches served.",
		}),
		CustomQuotes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "coverage_advisor",
			Name:      "custom_quotes_total",
			Help:      "Custom coverage quotes priced.",
		}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "coverage_advisor",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
	}

	prometheus.MustRegister(
		m.ZipLookups,
		m.Recommendations,
		m.Searches,
		m.CustomQuotes,
		m.HTTPRequestDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ZipLookups:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "coverage_advisor", Name: "zip_lookups_total"}, []string{"outcome"}),
		Recommendations:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "coverage_advisor", Name: "recommendations_total"}, []string{"tier"}),
		Searches:            prometheus.NewCounter(prometheus.CounterOpts{Namespace: "coverage_advisor", Name: "searches_total"}),
		CustomQuotes:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "coverage_advisor", Name: "custom_quotes_total"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "coverage_advisor", Name: "http_request_duration_seconds"}, []string{"route"}),
	}
}
