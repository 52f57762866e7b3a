package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for one
// export run.
type Metrics struct {
	EntriesFetched    prometheus.Counter
	EntriesDropped    prometheus.Counter
	PlacemarksWritten prometheus.Counter
	RunSuccess        prometheus.Gauge

	FetchDuration prometheus.Histogram
	RunDuration   prometheus.Histogram
}

// NewMetrics creates and registers all exporter metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		EntriesFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "alertmap",
			Name:      "entries_fetched_total",
			Help:      "Total feed entries parsed from the Atom document.",
		}),
		EntriesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "alertmap",
			Name:      "entries_dropped_total",
			Help:      "Total entries dropped because no point could be resolved.",
		}),
		PlacemarksWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "alertmap",
			Name:      "placemarks_written_total",
			Help:      "Total placemarks written to the output document.",
		}),
		RunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "alertmap",
			Name:      "run_success",
			Help:      "1 when the last run completed, 0 when it aborted.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "alertmap",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of the feed HTTP fetch.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "alertmap",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete fetch-extract-build-write run.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}

	prometheus.MustRegister(
		m.EntriesFetched,
		m.EntriesDropped,
		m.PlacemarksWritten,
		m.RunSuccess,
		m.FetchDuration,
		m.RunDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		EntriesFetched:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "alertmap", Name: "entries_fetched_total"}),
		EntriesDropped:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "alertmap", Name: "entries_dropped_total"}),
		PlacemarksWritten: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "alertmap", Name: "placemarks_written_total"}),
		RunSuccess:        prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "alertmap", Name: "run_success"}),
		FetchDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "alertmap", Name: "fetch_duration_seconds"}),
		RunDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "alertmap", Name: "run_duration_seconds"}),
	}
}
