package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus records solver runs as Prometheus metrics.
type Prometheus struct {
	SolvesTotal   *prometheus.CounterVec
	SolveDuration *prometheus.HistogramVec
	StatesTotal   *prometheus.CounterVec
	LastCost      *prometheus.GaugeVec
}

var _ Observer = (*Prometheus)(nil)

// NewPrometheus builds the solver metrics and registers them on reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	p := &Prometheus{
		SolvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "subsetdp",
				Name:      "solves_total",
				Help:      "Total number of subset DP solve runs",
			},
			[]string{"solver", "status"},
		),
		SolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "subsetdp",
				Name:      "solve_duration_seconds",
				Help:      "Duration of subset DP solve runs",
				Buckets:   []float64{.0001, .001, .01, .1, .5, 1, 5, 30, 120},
			},
			[]string{"solver"},
		),
		StatesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "subsetdp",
				Name:      "dp_states_total",
				Help:      "Total number of DP cells relaxed",
			},
			[]string{"solver"},
		),
		LastCost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "subsetdp",
				Name:      "last_optimum_cost",
				Help:      "Optimum cost found by the most recent successful run",
			},
			[]string{"solver"},
		),
	}

	for _, c := range []prometheus.Collector{p.SolvesTotal, p.SolveDuration, p.StatesTotal, p.LastCost} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register collector: %w", err)
		}
	}

	return p, nil
}

// ObserveSolve implements Observer.
func (p *Prometheus) ObserveSolve(s SolveStats) {
	p.SolvesTotal.WithLabelValues(s.Solver, s.Status).Inc()
	p.SolveDuration.WithLabelValues(s.Solver).Observe(s.Duration.Seconds())
	p.StatesTotal.WithLabelValues(s.Solver).Add(float64(s.States))
	if s.Status == StatusOK {
		p.LastCost.WithLabelValues(s.Solver).Set(s.Cost)
	}
}
