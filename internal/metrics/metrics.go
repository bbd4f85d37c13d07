// Package metrics holds the Prometheus collectors of the plot server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Plot kind label values.
const (
	KindScene  = "scene"
	KindGrid   = "grid"
	KindPoints = "points"
)

// Metrics is one set of collectors on its own registry, so tests and
// multiple servers in one process do not collide.
type Metrics struct {
	reg      *prometheus.Registry
	plots    *prometheus.CounterVec
	traces   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates and registers the collectors. Process and Go runtime
// collectors are included.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		plots: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zplot_plots_total",
				Help: "Plot requests by kind and result",
			},
			[]string{"kind", "result"},
		),
		traces: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zplot_traces_total",
				Help: "Traces drawn, by trace family",
			},
			[]string{"family"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "zplot_plot_duration_seconds",
				Help:    "Time to build and encode a plot",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			},
			[]string{"format"},
		),
	}
	m.reg.MustRegister(
		m.plots, m.traces, m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObservePlot records one finished plot.
func (m *Metrics) ObservePlot(kind, format string, err error, elapsed time.Duration) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.plots.WithLabelValues(kind, result).Inc()
	m.duration.WithLabelValues(format).Observe(elapsed.Seconds())
}

// AddTraces counts n traces of one family ("const-real", "const-imag", "points").
func (m *Metrics) AddTraces(family string, n int) {
	if n > 0 {
		m.traces.WithLabelValues(family).Add(float64(n))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
