package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocable/internal/circuit"
)

func TestObserveCalculation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveCalculation(&circuit.CalculationResult{Suitability: circuit.Suitable, LoopImpedanceCompliant: true}, time.Millisecond)
	m.ObserveCalculation(&circuit.CalculationResult{Suitability: circuit.Unsuitable}, time.Millisecond)
	m.ObserveCalculation(&circuit.CalculationResult{Suitability: circuit.Unsuitable}, time.Millisecond)
	m.ObserveCalculation(nil, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues("suitable")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues("unsuitable")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LoopImpedanceFails))

	count, err := testutil.GatherAndCount(reg, "gocable_calculation_latency_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestErrorsAndExports(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncError(ReasonInvalidInput)
	m.IncError(ReasonInvalidInput)
	m.ObserveExport("pdf", ResultSuccess)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CalculationErrors.WithLabelValues(ReasonInvalidInput)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExportsTotal.WithLabelValues("pdf", ResultSuccess)))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCalculation(&circuit.CalculationResult{}, time.Second)
		m.IncError(ReasonBadRequest)
		m.ObserveExport("json", ResultError)
	})
}
