// Package metrics bundles the Prometheus collectors for the bot. All
// record methods are nil-receiver safe so the pipeline runs unchanged
// with metrics disabled.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors behind their own registry.
type Metrics struct {
	registry         *prometheus.Registry
	searchesTotal    prometheus.Counter
	searchDuration   prometheus.Histogram
	providerResults  *prometheus.CounterVec
	providerFailures *prometheus.CounterVec
	catalogEmotes    prometheus.Gauge
}

// New creates and registers the collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		searchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "emotebot",
			Name:      "searches_total",
			Help:      "Total emote searches served",
		}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "emotebot",
			Name:      "search_duration_seconds",
			Help:      "Histogram of end-to-end search durations",
			Buckets:   prometheus.DefBuckets,
		}),
		providerResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emotebot",
			Name:      "provider_results_total",
			Help:      "Candidates contributed by each provider",
		}, []string{"provider"}),
		providerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emotebot",
			Name:      "provider_failures_total",
			Help:      "Provider calls that contributed nothing due to an error",
		}, []string{"provider"}),
		catalogEmotes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "emotebot",
			Name:      "catalog_emotes",
			Help:      "Emotes in the static global catalog loaded at startup",
		}),
	}

	registry.MustRegister(
		m.searchesTotal,
		m.searchDuration,
		m.providerResults,
		m.providerFailures,
		m.catalogEmotes,
	)

	return m
}

// Handler returns an HTTP handler exposing the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveSearch records one completed search.
func (m *Metrics) ObserveSearch(dur time.Duration) {
	if m == nil {
		return
	}
	m.searchesTotal.Inc()
	m.searchDuration.Observe(dur.Seconds())
}

// AddProviderResults counts candidates contributed by a provider.
func (m *Metrics) AddProviderResults(provider string, n int) {
	if m == nil {
		return
	}
	m.providerResults.WithLabelValues(provider).Add(float64(n))
}

// IncProviderFailures counts a failed provider call.
func (m *Metrics) IncProviderFailures(provider string) {
	if m == nil {
		return
	}
	m.providerFailures.WithLabelValues(provider).Inc()
}

// SetCatalogSize records the size of the loaded global catalog.
func (m *Metrics) SetCatalogSize(n int) {
	if m == nil {
		return
	}
	m.catalogEmotes.Set(float64(n))
}
