// SPDX-License-Identifier: MIT

package httpapi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors of one Server on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	analyses *prometheus.CounterVec
	duration *prometheus.HistogramVec
	cells    prometheus.Histogram
	limited  prometheus.Counter
}

// NewMetrics registers the analysis collectors and the Go runtime collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sptable",
			Name:      "analyses_total",
			Help:      "Analyses by source and outcome.",
		}, []string{"source", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sptable",
			Name:      "analysis_duration_seconds",
			Help:      "Time spent in Analyze.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"source"}),
		cells: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sptable",
			Name:      "analysis_cells",
			Help:      "Students × problems per analyzed table.",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 8),
		}),
		limited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sptable",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the analysis rate limit.",
		}),
	}
	m.registry.MustRegister(
		m.analyses, m.duration, m.cells, m.limited,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// observe records one analysis.
func (m *Metrics) observe(source string, elapsed time.Duration, cells int, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	} else {
		m.cells.Observe(float64(cells))
	}
	m.analyses.WithLabelValues(source, outcome).Inc()
	m.duration.WithLabelValues(source).Observe(elapsed.Seconds())
}
