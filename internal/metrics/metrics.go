// Package metrics exposes the live setpoint and evaluation counters in the
// Prometheus text format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smartfurnace/internal/engine"
)

const namespace = "smartfurnace"

// Metrics owns a private registry so tests can build as many as they like.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	setpoint    *prometheus.GaugeVec
	elapsed     *prometheus.GaugeVec
	remaining   *prometheus.GaugeVec
	evaluations *prometheus.CounterVec
	rejected    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		setpoint: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "setpoint_celsius",
			Help:      "Interpolated target temperature of the selected schedule.",
		}, []string{"schedule"}),
		elapsed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cycle_elapsed_minutes",
			Help:      "Minutes since the cycle start.",
		}, []string{"schedule"}),
		remaining: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cycle_remaining_minutes",
			Help:      "Minutes until the last step ends.",
		}, []string{"schedule"}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Schedule evaluations by resulting status.",
		}, []string{"status"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedules_rejected_total",
			Help:      "Schedules refused by validation, by error kind.",
		}, []string{"kind"}),
	}
	m.registry.MustRegister(
		m.setpoint, m.elapsed, m.remaining, m.evaluations, m.rejected,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveEvaluation records one tick for schedule.
func (m *Metrics) ObserveEvaluation(schedule string, ev engine.Evaluation) {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(string(ev.Status)).Inc()
	m.remaining.WithLabelValues(schedule).Set(ev.RemainingMinutes)

	temp, ok := ev.Temperature()
	if !ok {
		m.setpoint.DeleteLabelValues(schedule)
		m.elapsed.DeleteLabelValues(schedule)
		return
	}
	m.setpoint.WithLabelValues(schedule).Set(temp)
	m.elapsed.WithLabelValues(schedule).Set(ev.ElapsedMinutes)
}

// ObserveError counts an evaluation that could not be computed.
func (m *Metrics) ObserveError() {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues("error").Inc()
}

// ObserveRejected counts a schedule refused by validation.
func (m *Metrics) ObserveRejected(kind engine.ErrorKind) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(string(kind)).Inc()
}

// Forget drops the per-schedule series, e.g. after a schedule is deleted or
// deselected.
func (m *Metrics) Forget(schedule string) {
	if m == nil {
		return
	}
	m.setpoint.DeleteLabelValues(schedule)
	m.elapsed.DeleteLabelValues(schedule)
	m.remaining.DeleteLabelValues(schedule)
}
