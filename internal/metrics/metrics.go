// Package metrics exposes prometheus instrumentation for calculations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/alexiusacademia/gocable/internal/circuit"
)

const (
	metricPrefix = "gocable_"

	ResultSuccess = "success"
	ResultError   = "error"

	ReasonInvalidInput = "invalid_input"
	ReasonBadRequest   = "bad_request"
	ReasonTable        = "table"
	ReasonRender       = "render"
)

// Metrics bundles calculation metrics.
type Metrics struct {
	CalculationsTotal  *prometheus.CounterVec
	CalculationErrors  *prometheus.CounterVec
	CalculationLatency prometheus.Histogram
	LoopImpedanceFails prometheus.Counter
	ExportsTotal       *prometheus.CounterVec
}

// New constructs metrics and registers them with reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		CalculationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "calculations_total",
				Help: "Total completed calculations by voltage drop suitability",
			},
			[]string{"suitability"},
		),
		CalculationErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "calculation_errors_total",
				Help: "Total rejected calculations by reason",
			},
			[]string{"reason"},
		),
		CalculationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricPrefix + "calculation_latency_seconds",
			Help:    "Calculation latency in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		}),
		LoopImpedanceFails: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "loop_impedance_failures_total",
			Help: "Total calculations whose earth fault loop impedance exceeded the maximum",
		}),
		ExportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "exports_total",
				Help: "Total exports by format and result",
			},
			[]string{"format", "result"},
		),
	}
	reg.MustRegister(
		m.CalculationsTotal,
		m.CalculationErrors,
		m.CalculationLatency,
		m.LoopImpedanceFails,
		m.ExportsTotal,
	)
	return m
}

// ObserveCalculation records a completed calculation.
func (m *Metrics) ObserveCalculation(result *circuit.CalculationResult, duration time.Duration) {
	if m == nil || result == nil {
		return
	}
	m.CalculationsTotal.WithLabelValues(string(result.Suitability)).Inc()
	m.CalculationLatency.Observe(duration.Seconds())
	if !result.LoopImpedanceCompliant {
		m.LoopImpedanceFails.Inc()
	}
}

// IncError records a rejected calculation.
func (m *Metrics) IncError(reason string) {
	if m == nil {
		return
	}
	m.CalculationErrors.WithLabelValues(reason).Inc()
}

// ObserveExport records an export attempt.
func (m *Metrics) ObserveExport(format, result string) {
	if m == nil {
		return
	}
	m.ExportsTotal.WithLabelValues(format, result).Inc()
}
