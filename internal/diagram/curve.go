package diagram

import (
	"math"

	"github.com/alexiusacademia/gocable/internal/bs7671"
	"github.com/alexiusacademia/gocable/internal/circuit"
)

// Point represents a 2D coordinate on a chart
type Point struct {
	X float64
	Y float64
}

// CurveData holds what is needed to chart voltage drop against run length
// for one selected cable.
type CurveData struct {
	Cable        bs7671.CableCandidate
	CurrentAmps  float64 // Corrected current It
	Voltage      float64 // Nominal voltage (V)
	LengthMeters float64 // Design run length (m)

	LimitPercent float64
	MarginalBand float64
}

// NewCurveData takes the chart inputs from a completed calculation.
func NewCurveData(result *circuit.CalculationResult, load circuit.LoadSpecification, ctx circuit.InstallationContext, marginalBand float64) CurveData {
	return CurveData{
		Cable:        result.RecommendedCable,
		CurrentAmps:  result.CorrectedCurrentAmps,
		Voltage:      load.Voltage,
		LengthMeters: ctx.CableLengthMeters,
		LimitPercent: result.VoltageDropLimitPercent,
		MarginalBand: marginalBand,
	}
}

// MaxLength returns the longest run that keeps the drop within limitPercent.
// It returns +Inf when the drop does not depend on length.
func (d CurveData) MaxLength(limitPercent float64) float64 {
	perMeter := d.percentPerMeter()
	if perMeter <= 0 {
		return math.Inf(1)
	}
	return limitPercent / perMeter
}

// percentPerMeter is the voltage drop in percent for each metre of run.
func (d CurveData) percentPerMeter() float64 {
	if d.Voltage <= 0 {
		return 0
	}
	return d.CurrentAmps * d.Cable.MillivoltPerAmpMeter / 1000 / d.Voltage * 100
}

// Span returns the chart's length axis extent: past both the design length
// and the marginal limit.
func (d CurveData) Span() float64 {
	span := d.LengthMeters * 1.5
	if maxLen := d.MaxLength(d.LimitPercent + d.MarginalBand); !math.IsInf(maxLen, 1) && maxLen*1.2 > span {
		span = maxLen * 1.2
	}
	if span <= 0 {
		span = 1
	}
	return span
}

// Curve samples the voltage drop percentage at n+1 evenly spaced lengths
// from zero to Span.
func (d CurveData) Curve(n int) []Point {
	if n < 1 {
		n = 1
	}
	span := d.Span()
	perMeter := d.percentPerMeter()
	points := make([]Point, n+1)
	for i := range points {
		length := span * float64(i) / float64(n)
		points[i] = Point{X: length, Y: length * perMeter}
	}
	return points
}
