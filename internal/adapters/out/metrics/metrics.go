// Package metrics exposes Prometheus instruments for the order save pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "order_integrity"

// Hook outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeSkipped   = "skipped"
	OutcomeViolation = "violation"
	OutcomeError     = "error"
)

type Metrics struct {
	HookOutcomes       *prometheus.CounterVec
	InconsistentOrders prometheus.Gauge
}

// New creates the instruments and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		HookOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "save_hook_outcomes_total",
			Help:      "Order pre-save integrity checks by outcome.",
		}, []string{"outcome"}),
		InconsistentOrders: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inconsistent_orders",
			Help:      "Stored orders whose status is not assigned to their state, as of the last audit.",
		}),
	}

	for _, c := range []prometheus.Collector{m.HookOutcomes, m.InconsistentOrders} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// SetInconsistentOrders is called by the audit job.
func (m *Metrics) SetInconsistentOrders(n int) {
	m.InconsistentOrders.Set(float64(n))
}
