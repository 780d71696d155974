package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the scheduled-refresh daemon.
type Metrics struct {
	RunsTotal     *prometheus.CounterVec // label: outcome={success,error}
	RunDuration   prometheus.Histogram
	ActivityScore *prometheus.GaugeVec // label: activity={surf,photo,cycle}
}

// NewMetrics creates and registers all daemon metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.RunsTotal, m.RunDuration, m.ActivityScore)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dawnpatrol",
			Name:      "runs_total",
			Help:      "Advisory runs by outcome.",
		}, []string{"outcome"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dawnpatrol",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete fetch-score-arbitrate run.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		ActivityScore: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "dawnpatrol",
			Name:      "activity_score",
			Help:      "Last computed score per activity.",
		}, []string{"activity"}),
	}
}
