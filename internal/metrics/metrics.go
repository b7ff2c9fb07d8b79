// Package metrics holds the prometheus collectors shared by the services.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "capstone"

// Consume outcomes.
const (
	OutcomeOK      = "ok"
	OutcomePoison  = "poison"
	OutcomeRequeue = "requeue"
	OutcomeError   = "error"
)

type Metrics struct {
	published    *prometheus.CounterVec
	consumed     *prometheus.CounterVec
	transitions  *prometheus.CounterVec
	postulations *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		published: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_published_total",
			Help:      "Messages published to the bus by logical queue and outcome.",
		}, []string{"queue", "outcome"}),
		consumed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "Messages consumed from the bus by logical queue and outcome.",
		}, []string{"queue", "outcome"}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "project_transitions_total",
			Help:      "Project lifecycle operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		postulations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "postulations_total",
			Help:      "Student postulation attempts by outcome.",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) ObservePublish(queue string, err error) {
	if m == nil {
		return
	}
	m.published.WithLabelValues(queue, outcomeOf(err)).Inc()
}

func (m *Metrics) ObserveConsume(queue, outcome string) {
	if m == nil {
		return
	}
	m.consumed.WithLabelValues(queue, outcome).Inc()
}

func (m *Metrics) ObserveTransition(operation string, err error) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(operation, outcomeOf(err)).Inc()
}

func (m *Metrics) ObservePostulation(err error) {
	if m == nil {
		return
	}
	m.postulations.WithLabelValues(outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
