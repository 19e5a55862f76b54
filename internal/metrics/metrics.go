// Package metrics defines the Prometheus instruments of the discovery service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the discovery instruments.
type Metrics struct {
	Results  *prometheus.CounterVec
	Duration prometheus.Histogram
	Pages    *prometheus.CounterVec
}

// New registers the discovery instruments on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Results: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "phone_discovery_results_total",
				Help: "Total number of discoveries by terminal status",
			},
			[]string{"status"},
		),
		Duration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "phone_discovery_duration_seconds",
				Help:    "Duration of a discovery in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 40},
			},
		),
		Pages: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "phone_discovery_pages_probed_total",
				Help: "Total number of candidate pages probed by page type and outcome",
			},
			[]string{"page_type", "matched"},
		),
	}
}

// ObserveResult records one finished discovery.
func (m *Metrics) ObserveResult(status string, elapsed time.Duration) {
	m.Results.WithLabelValues(status).Inc()
	m.Duration.Observe(elapsed.Seconds())
}

// ObservePage records one probed candidate page.
func (m *Metrics) ObservePage(pageType string, matched bool) {
	label := "false"
	if matched {
		label = "true"
	}
	m.Pages.WithLabelValues(pageType, label).Inc()
}

// InitPages creates the page counters for every page type at zero so they
// are exported before the first probe.
func (m *Metrics) InitPages(pageTypes ...string) {
	for _, pt := range pageTypes {
		m.Pages.WithLabelValues(pt, "false")
		m.Pages.WithLabelValues(pt, "true")
	}
}
