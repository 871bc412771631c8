package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Load results.
const (
	ResultSuccess    = "success"
	ResultFetchError = "fetch_error"
	ResultParseError = "parse_error"
	ResultError      = "error"
)

// Metrics groups the collectors of the heat map service.
type Metrics struct {
	Loads          *prometheus.CounterVec
	RenderDuration prometheus.Histogram
	RenderedCells  prometheus.Gauge
	HoverEvents    *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "dataset_loads_total",
			Help:      "Dataset load attempts by result.",
		}, []string{"result"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "heatmap",
			Name:      "render_duration_seconds",
			Help:      "Time spent building the visual tree.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		RenderedCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "heatmap",
			Name:      "rendered_cells",
			Help:      "Cells in the current visual tree.",
		}),
		HoverEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "hover_events_total",
			Help:      "Hover events reduced, by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.Loads, m.RenderDuration, m.RenderedCells, m.HoverEvents)
	return m
}

// ObserveRender records one render.
func (m *Metrics) ObserveRender(started time.Time, cells int) {
	m.RenderDuration.Observe(time.Since(started).Seconds())
	m.RenderedCells.Set(float64(cells))
}
