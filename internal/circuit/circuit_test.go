package circuit

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocable/internal/bs7671"
)

func cookerLoad() LoadSpecification {
	return LoadSpecification{
		TotalLoadWatts:     7200,
		Voltage:            230,
		PhaseConfiguration: bs7671.PhaseSingle,
		PowerFactor:        1,
		LoadCategory:       bs7671.CategoryCooker,
	}
}

func domesticRun() InstallationContext {
	return InstallationContext{
		CableLengthMeters:           20,
		InstallationMethod:          bs7671.InstallClippedDirect,
		AmbientTemperatureCelsius:   30,
		GroupingFactor:              1,
		ThermalDeratingFactor:       1,
		EarthingSystemImpedanceOhms: 0.35,
		ProtectiveDeviceFamily:      bs7671.DeviceMCBTypeB,
	}
}

func TestDesignCurrentScenarios(t *testing.T) {
	tests := []struct {
		name     string
		load     LoadSpecification
		basis    CurrentBasis
		expected float64
	}{
		{
			name:     "single phase cooker",
			load:     LoadSpecification{TotalLoadWatts: 7200, Voltage: 230, PhaseConfiguration: bs7671.PhaseSingle},
			basis:    RealPowerBasis,
			expected: 31.30,
		},
		{
			name:     "three phase 22kW",
			load:     LoadSpecification{TotalLoadWatts: 22000, Voltage: 400, PhaseConfiguration: bs7671.PhaseThree},
			basis:    RealPowerBasis,
			expected: 31.75,
		},
		{
			name:     "zero load",
			load:     LoadSpecification{TotalLoadWatts: 0, Voltage: 230, PhaseConfiguration: bs7671.PhaseSingle},
			basis:    RealPowerBasis,
			expected: 0,
		},
		{
			name:     "apparent power divides by power factor",
			load:     LoadSpecification{TotalLoadWatts: 7200, Voltage: 230, PhaseConfiguration: bs7671.PhaseSingle, PowerFactor: 0.8},
			basis:    ApparentPowerBasis,
			expected: 39.13,
		},
		{
			name:     "real power ignores power factor",
			load:     LoadSpecification{TotalLoadWatts: 7200, Voltage: 230, PhaseConfiguration: bs7671.PhaseSingle, PowerFactor: 0.8},
			basis:    RealPowerBasis,
			expected: 31.30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amps, err := DesignCurrent(tt.load, tt.basis)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, amps, 0.01)
		})
	}
}

func TestThreePhaseFormula(t *testing.T) {
	for _, watts := range []float64{100, 1500, 22000, 75000} {
		for _, volts := range []float64{380, 400, 415} {
			load := LoadSpecification{TotalLoadWatts: watts, Voltage: volts, PhaseConfiguration: bs7671.PhaseThree}
			amps, err := ComputeDesignCurrent(load)
			require.NoError(t, err)
			assert.InEpsilon(t, watts/(volts*math.Sqrt(3)), amps, 1e-12)
		}
	}
}

func TestDesignCurrentInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		load  LoadSpecification
		basis CurrentBasis
		field string
	}{
		{"zero voltage", LoadSpecification{TotalLoadWatts: 1000, Voltage: 0, PhaseConfiguration: bs7671.PhaseSingle}, RealPowerBasis, "voltage"},
		{"negative voltage", LoadSpecification{TotalLoadWatts: 1000, Voltage: -230, PhaseConfiguration: bs7671.PhaseSingle}, RealPowerBasis, "voltage"},
		{"negative load", LoadSpecification{TotalLoadWatts: -1, Voltage: 230, PhaseConfiguration: bs7671.PhaseSingle}, RealPowerBasis, "totalLoadWatts"},
		{"unknown phase", LoadSpecification{TotalLoadWatts: 1000, Voltage: 230, PhaseConfiguration: "two"}, RealPowerBasis, "phaseConfiguration"},
		{"apparent with zero pf", LoadSpecification{TotalLoadWatts: 1000, Voltage: 230, PhaseConfiguration: bs7671.PhaseSingle}, ApparentPowerBasis, "powerFactor"},
		{"infinite voltage", LoadSpecification{TotalLoadWatts: 1000, Voltage: math.Inf(1), PhaseConfiguration: bs7671.PhaseSingle}, RealPowerBasis, "voltage"},
		{"infinite load", LoadSpecification{TotalLoadWatts: math.Inf(1), Voltage: 230, PhaseConfiguration: bs7671.PhaseSingle}, RealPowerBasis, "totalLoadWatts"},
		{"apparent overflow", LoadSpecification{TotalLoadWatts: 1e308, Voltage: 0.5, PhaseConfiguration: bs7671.PhaseSingle, PowerFactor: 0.001}, ApparentPowerBasis, "totalLoadWatts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DesignCurrent(tt.load, tt.basis)
			var inputErr *InvalidInputError
			require.True(t, errors.As(err, &inputErr), "expected InvalidInputError, got %v", err)
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestCorrectedCurrent(t *testing.T) {
	assert.Equal(t, 20.0, CorrectedCurrent(20, 1.0, 1.0))

	for _, cg := range []float64{0.1, 0.5, 0.7, 0.8, 1} {
		for _, cd := range []float64{0.2, 0.5, 0.87, 1} {
			assert.GreaterOrEqual(t, CorrectedCurrent(31.3, cg, cd), 31.3)
		}
	}
}

func TestSelectCable(t *testing.T) {
	table := []bs7671.CableCandidate{
		{CrossSectionMm2: "2.5", RatedCurrentAmps: 27},
		{CrossSectionMm2: "4.0", RatedCurrentAmps: 36},
		{CrossSectionMm2: "6.0", RatedCurrentAmps: 46},
		{CrossSectionMm2: "10.0", RatedCurrentAmps: 63},
		{CrossSectionMm2: "16.0", RatedCurrentAmps: 85},
	}

	tests := []struct {
		name     string
		current  float64
		size     string
		adequate bool
	}{
		{"smallest sufficient", 64.9, "16.0", true},
		{"exact rating is sufficient", 36, "4.0", true},
		{"below first entry", 5, "2.5", true},
		{"exceeds table", 90, "16.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cable, adequate := SelectCable(tt.current, table)
			assert.Equal(t, tt.size, cable.CrossSectionMm2)
			assert.Equal(t, tt.adequate, adequate)
		})
	}

	t.Run("empty table", func(t *testing.T) {
		cable, adequate := SelectCable(10, nil)
		assert.False(t, adequate)
		assert.Zero(t, cable.RatedCurrentAmps)
	})
}

func TestSelectCableMonotonic(t *testing.T) {
	table := bs7671.DefaultCableTable()
	previous := 0.0
	for current := 0.0; current <= 200; current += 0.25 {
		cable, _ := SelectCable(current, table)
		assert.GreaterOrEqual(t, cable.RatedCurrentAmps, previous, "current %.2f", current)
		previous = cable.RatedCurrentAmps
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		percent  float64
		limit    float64
		expected Suitability
	}{
		{5.0, 5.0, Suitable},
		{5.5, 5.0, Marginal},
		{6.0, 5.0, Marginal},
		{6.5, 5.0, Unsuitable},
		{3.0, 3.0, Suitable},
		{3.5, 3.0, Marginal},
		{4.5, 3.0, Unsuitable},
		{0, 5.0, Suitable},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Classify(tt.percent, tt.limit, 1.0), "%.1f%% against %.1f%%", tt.percent, tt.limit)
	}
}

func TestEvaluateComplianceVoltageDropBoundary(t *testing.T) {
	// 25 m × 20 A × 23 mV/A/m = 11.5 V = 5% of 230 V
	cable := bs7671.CableCandidate{CrossSectionMm2: "x", RatedCurrentAmps: 40, MillivoltPerAmpMeter: 23, ResistancePerKmOhms: 1}
	ctx := domesticRun()
	ctx.CableLengthMeters = 25
	load := LoadSpecification{Voltage: 230, PhaseConfiguration: bs7671.PhaseSingle, LoadCategory: bs7671.CategoryPower}

	result := DefaultPolicy().EvaluateCompliance(cable, ctx, load, 20)
	assert.InDelta(t, 5.0, result.VoltageDropPercent, 1e-9)
	assert.Equal(t, Suitable, result.Suitability)
}

func TestEvaluateComplianceProtectiveDevice(t *testing.T) {
	cable := bs7671.DefaultCableTable()[1]
	result := DefaultPolicy().EvaluateCompliance(cable, domesticRun(), cookerLoad(), 20)
	assert.Equal(t, 29.0, result.ProtectiveDeviceRatingAmps)
	assert.Equal(t, 32.0, result.StandardDeviceRatingAmps)
}

func TestCalculateCookerCircuit(t *testing.T) {
	result, err := Calculate(cookerLoad(), domesticRun())
	require.NoError(t, err)

	assert.InDelta(t, 31.30, result.DesignCurrentAmps, 0.01)
	assert.InDelta(t, 31.30, result.CorrectedCurrentAmps, 0.01)
	assert.Equal(t, "4.0", result.RecommendedCable.CrossSectionMm2)
	assert.True(t, result.CableAdequate)
	assert.InDelta(t, 2.99, result.VoltageDropPercent, 0.01)
	assert.Equal(t, 5.0, result.VoltageDropLimitPercent)
	assert.Equal(t, Suitable, result.Suitability)
	assert.InDelta(t, 0.684, result.EarthFaultLoopImpedanceOhms, 0.001)
	assert.Equal(t, 1.44, result.MaxEarthFaultLoopImpedanceOhms)
	assert.True(t, result.LoopImpedanceCompliant)
	assert.Equal(t, 46.0, result.ProtectiveDeviceRatingAmps)
	assert.Equal(t, 50.0, result.StandardDeviceRatingAmps)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, DefaultRecommendations, result.Recommendations)
	assert.True(t, result.IsCompliant())
}

func TestCalculateLongLightingRun(t *testing.T) {
	load := LoadSpecification{
		TotalLoadWatts:     2000,
		Voltage:            230,
		PhaseConfiguration: bs7671.PhaseSingle,
		LoadCategory:       "Lights",
	}
	ctx := domesticRun()
	ctx.CableLengthMeters = 100
	ctx.EarthingSystemImpedanceOhms = 0.8

	result, err := Calculate(load, ctx)
	require.NoError(t, err)

	assert.Equal(t, "1.5", result.RecommendedCable.CrossSectionMm2)
	assert.Equal(t, 3.0, result.VoltageDropLimitPercent)
	assert.Equal(t, Unsuitable, result.Suitability)
	assert.False(t, result.LoopImpedanceCompliant)
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "Earth fault loop impedance")
	assert.Contains(t, result.Warnings[1], "voltage drop")
	assert.False(t, result.IsCompliant())
}

func TestCalculateWarningOrder(t *testing.T) {
	load := LoadSpecification{
		TotalLoadWatts:     9000,
		Voltage:            230,
		PhaseConfiguration: bs7671.PhaseSingle,
		LoadCategory:       bs7671.CategoryLighting,
	}
	ctx := domesticRun()
	ctx.CableLengthMeters = 100
	ctx.EarthingSystemImpedanceOhms = 0.8

	result, err := Calculate(load, ctx)
	require.NoError(t, err)

	assert.Equal(t, "6.0", result.RecommendedCable.CrossSectionMm2)
	assert.True(t, result.CableAdequate)
	assert.Equal(t, Unsuitable, result.Suitability)
	require.Len(t, result.Warnings, 3)
	assert.Contains(t, result.Warnings[0], "Earth fault loop impedance")
	assert.Contains(t, result.Warnings[1], "voltage drop")
	assert.Contains(t, result.Warnings[2], "consider load splitting")
}

func TestCalculateUndersizedReturnsLargestCable(t *testing.T) {
	load := cookerLoad()
	load.TotalLoadWatts = 50000
	ctx := domesticRun()
	ctx.CableLengthMeters = 10

	result, err := Calculate(load, ctx)
	require.NoError(t, err)

	table := bs7671.DefaultCableTable()
	assert.Equal(t, table[len(table)-1], result.RecommendedCable)
	assert.False(t, result.CableAdequate)
	assert.Equal(t, Unsuitable, result.Suitability)
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "largest available size")
	assert.Contains(t, result.Warnings[1], "consider load splitting")
}

func TestCalculateIsIdempotent(t *testing.T) {
	calc := NewCalculator()
	first, err := calc.Calculate(cookerLoad(), domesticRun())
	require.NoError(t, err)
	second, err := calc.Calculate(cookerLoad(), domesticRun())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculateZeroVoltage(t *testing.T) {
	load := cookerLoad()
	load.Voltage = 0

	result, err := Calculate(load, domesticRun())
	assert.Nil(t, result)
	var inputErr *InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "voltage", inputErr.Field)
}

func TestCalculateDeratingRaisesCorrectedCurrent(t *testing.T) {
	ctx := domesticRun()
	ctx.GroupingFactor = 0.7
	ctx.ThermalDeratingFactor = 0.9

	result, err := Calculate(cookerLoad(), ctx)
	require.NoError(t, err)
	assert.InDelta(t, 31.304/(0.7*0.9), result.CorrectedCurrentAmps, 0.01)
	assert.Equal(t, "10.0", result.RecommendedCable.CrossSectionMm2)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "load splitting")
}

func TestCalculateApparentPowerBasis(t *testing.T) {
	calc := NewCalculator()
	calc.Basis = ApparentPowerBasis

	load := cookerLoad()
	load.PowerFactor = 0.8
	result, err := calc.Calculate(load, domesticRun())
	require.NoError(t, err)
	assert.InDelta(t, 39.13, result.DesignCurrentAmps, 0.01)
	assert.Equal(t, "6.0", result.RecommendedCable.CrossSectionMm2)
}

func TestCalculateReferenceMethodTable(t *testing.T) {
	calc, err := NewCalculator().WithReferenceMethodTable("swa-xlpe")
	require.NoError(t, err)

	ctx := domesticRun()
	ctx.InstallationMethod = bs7671.InstallDirectBuried
	result, err := calc.Calculate(cookerLoad(), ctx)
	require.NoError(t, err)
	assert.Equal(t, "2.5", result.RecommendedCable.CrossSectionMm2)
	assert.Equal(t, 36.0, result.RecommendedCable.RatedCurrentAmps)

	twinEarth, err := NewCalculator().WithReferenceMethodTable("pvc-twin-earth")
	require.NoError(t, err)
	_, err = twinEarth.Calculate(cookerLoad(), ctx)
	assert.ErrorContains(t, err, "direct-buried")

	_, err = NewCalculator().WithReferenceMethodTable("paper-lead")
	assert.Error(t, err)
}

func TestZeroCalculatorUsesDefaults(t *testing.T) {
	var calc Calculator
	load := LoadSpecification{TotalLoadWatts: 3000, Voltage: 230, LoadCategory: bs7671.CategoryPower}

	result, err := calc.Calculate(load, InstallationContext{CableLengthMeters: 10})
	require.NoError(t, err)

	expected, err := Calculate(load, InstallationContext{CableLengthMeters: 10})
	require.NoError(t, err)
	assert.Equal(t, expected, result)
	assert.Equal(t, Suitable, result.Suitability)
	assert.Equal(t, 5.0, result.VoltageDropLimitPercent)
	assert.Positive(t, result.MaxEarthFaultLoopImpedanceOhms)
	assert.Equal(t, 19.0, result.ProtectiveDeviceRatingAmps)
	assert.Equal(t, DefaultRecommendations, result.Recommendations)
}

func TestPartialPolicyKeepsSetFields(t *testing.T) {
	policy := Policy{LoadSplitThreshold: 10}
	assert.False(t, policy.IsZero())
	assert.True(t, Policy{}.IsZero())

	// 40 m × 20 A × 18 mV/A/m = 14.4 V = 6.26% of 230 V
	cable := bs7671.DefaultCableTable()[1]
	ctx := domesticRun()
	ctx.CableLengthMeters = 40
	result := policy.EvaluateCompliance(cable, ctx, cookerLoad(), 20)

	assert.Equal(t, 5.0, result.VoltageDropLimitPercent)
	assert.Equal(t, Unsuitable, result.Suitability, "zero marginal band is kept")
	assert.Equal(t, 29.0, result.ProtectiveDeviceRatingAmps)
	assert.Equal(t, DefaultRecommendations, result.Recommendations)
	assert.Contains(t, result.Warnings[len(result.Warnings)-1], "exceeds 10A")
}

func TestCalculateRejectsOverflow(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*LoadSpecification, *InstallationContext)
		field string
	}{
		{"voltage drop", func(l *LoadSpecification, c *InstallationContext) {
			l.TotalLoadWatts = 1e300
			c.CableLengthMeters = 1e300
		}, "cableLengthMeters"},
		{"corrected current", func(l *LoadSpecification, c *InstallationContext) {
			l.TotalLoadWatts = 1e306
			c.GroupingFactor = 1e-10
		}, "groupingFactor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			load, ctx := cookerLoad(), domesticRun()
			tt.edit(&load, &ctx)

			result, err := Calculate(load, ctx)
			assert.Nil(t, result)
			var inputErr *InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}
