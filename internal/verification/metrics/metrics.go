// Package metrics exposes Prometheus instrumentation for the verification
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Outcomes        *prometheus.CounterVec
	SignalScore     *prometheus.HistogramVec
	EvaluateLatency prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "trustgate_verification_outcomes_total",
			Help: "Verification outcomes by verdict.",
		}, []string{"verdict"}),
		SignalScore: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trustgate_verification_signal_score",
			Help:    "Per-signal score distribution.",
			Buckets: []float64{0, 20, 40, 60, 80, 100, 150, 200},
		}, []string{"signal"}),
		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "trustgate_verification_evaluate_duration_seconds",
			Help:    "Time spent evaluating all signals for a request.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Methods are nil-safe so callers never have to guard instrumentation.

func (m *Metrics) RecordOutcome(verdict string) {
	if m != nil {
		m.Outcomes.WithLabelValues(verdict).Inc()
	}
}

func (m *Metrics) ObserveSignal(signal string, score int) {
	if m != nil {
		m.SignalScore.WithLabelValues(signal).Observe(float64(score))
	}
}

func (m *Metrics) ObserveEvaluateLatency(seconds float64) {
	if m != nil {
		m.EvaluateLatency.Observe(seconds)
	}
}
