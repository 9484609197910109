package observers

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/anggasct/tickfsm"
)

// Metrics counts executed transitions and completions of one machine as
// Prometheus metrics.
type Metrics struct {
	machine     string
	transitions *prometheus.CounterVec
	completions prometheus.Counter
}

// NewMetrics creates a metrics observer labelled with the machine name and
// registers its collectors with reg. A nil reg skips registration, leaving
// the caller to register the collectors returned by Collectors.
func NewMetrics(reg prometheus.Registerer, machine string) *Metrics {
	m := &Metrics{
		machine: machine,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tickfsm_transitions_total",
			Help: "Executed transitions, by machine and edge.",
		}, []string{"machine", "from", "to"}),
		completions: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "tickfsm_completions_total",
			Help:        "Times the machine reached its exit sentinel.",
			ConstLabels: prometheus.Labels{"machine": machine},
		}),
	}
	if reg != nil {
		reg.MustRegister(m.transitions, m.completions)
	}
	return m
}

// Collectors returns the observer's collectors for manual registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.transitions, m.completions}
}

// OnTransition counts the executed transition, and a completion when the
// target is the exit sentinel.
func (m *Metrics) OnTransition(from, to tickfsm.State) {
	m.transitions.WithLabelValues(m.machine, tickfsm.StateName(from), tickfsm.StateName(to)).Inc()
	if to == tickfsm.Exit {
		m.completions.Inc()
	}
}
