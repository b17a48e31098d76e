package astar

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records search outcomes. Create one with NewMetrics and pass it to
// each run with WithMetrics; a single Metrics may serve many runs.
type Metrics struct {
	// runs counts finished runs by status
	runs *prometheus.CounterVec
	// expansions tracks cells expanded per run
	expansions prometheus.Histogram
	// duration tracks wall time per run, pacing included
	duration *prometheus.HistogramVec
}

// NewMetrics creates the search collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathgrid_search_runs_total",
			Help: "Total A* runs by terminal status",
		}, []string{"status"}),
		expansions: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathgrid_search_expansions",
			Help:    "Cells expanded per A* run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
		}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathgrid_search_duration_seconds",
			Help:    "A* run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12), // 0.1ms to ~7min
		}, []string{"status"}),
	}
}

func (m *Metrics) observe(status Status, expanded int, elapsed time.Duration) {
	label := status.String()
	m.runs.WithLabelValues(label).Inc()
	m.expansions.Observe(float64(expanded))
	m.duration.WithLabelValues(label).Observe(elapsed.Seconds())
}
