package scheduler

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes counters for scheduling operations by outcome.
type Metrics struct {
	operationsTotal *prometheus.CounterVec
}

// NewMetrics registers the scheduling counters with reg, or with the
// default registerer when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "scheduler",
			Name:      "operations_total",
			Help:      "Scheduling operations by operation and outcome",
		}, []string{"operation", "outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.operationsTotal)
	return m
}

// ObserveOperation records one operation attempt and its outcome.
func (m *Metrics) ObserveOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.operationsTotal.WithLabelValues(operation, outcome).Inc()
}
