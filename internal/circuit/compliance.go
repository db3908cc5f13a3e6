package circuit

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gocable/internal/bs7671"
)

// Floating point slack for limit comparisons, so a value that lands on a
// limit after arithmetic still counts as on the limit.
const tolerance = 1e-9

// DefaultRecommendations are attached to every result.
var DefaultRecommendations = []string{
	"This is a simplified calculation - confirm cable ratings against BS 7671 Appendix 4 for the actual reference method",
	"Confirm the maximum Zs against the tabulated value for the device rating and trip characteristic",
	"Measure Ze and Zs on site before energising the circuit",
	"The design must be verified by a qualified electrician",
}

// Policy holds the limits used to judge a design.
type Policy struct {
	VoltageDrop        bs7671.VoltageDropLimits
	MarginalBand       float64 // Percentage points above the limit still classed marginal
	Zs                 bs7671.ZsTable
	DeviceMargin       float64 // Multiplier on corrected current for device rating
	LoadSplitThreshold float64 // Corrected current (A) above which splitting is advised
	Recommendations    []string
}

// DefaultPolicy returns the BS 7671 style defaults.
func DefaultPolicy() Policy {
	return Policy{
		VoltageDrop:        bs7671.DefaultVoltageDropLimits(),
		MarginalBand:       bs7671.MarginalBand,
		Zs:                 bs7671.DefaultZsTable(),
		DeviceMargin:       bs7671.DeviceMargin,
		LoadSplitThreshold: bs7671.LoadSplitThreshold,
		Recommendations:    append([]string(nil), DefaultRecommendations...),
	}
}

// IsZero reports whether no field of the policy is set.
func (p Policy) IsZero() bool {
	return p.VoltageDrop.Default == 0 && len(p.VoltageDrop.Categories) == 0 &&
		p.MarginalBand == 0 &&
		len(p.Zs.Rules) == 0 && p.Zs.FallbackOhms == 0 &&
		p.DeviceMargin == 0 && p.LoadSplitThreshold == 0 &&
		len(p.Recommendations) == 0
}

// withDefaults returns DefaultPolicy for a zero policy. Otherwise it fills
// only the fields whose zero value cannot be a real limit; a zero
// MarginalBand is kept.
func (p Policy) withDefaults() Policy {
	if p.IsZero() {
		return DefaultPolicy()
	}
	d := DefaultPolicy()
	if p.VoltageDrop.Default <= 0 {
		p.VoltageDrop.Default = d.VoltageDrop.Default
	}
	if len(p.Zs.Rules) == 0 && p.Zs.FallbackOhms <= 0 {
		p.Zs = d.Zs
	}
	if p.DeviceMargin <= 0 {
		p.DeviceMargin = d.DeviceMargin
	}
	if p.LoadSplitThreshold <= 0 {
		p.LoadSplitThreshold = d.LoadSplitThreshold
	}
	if len(p.Recommendations) == 0 {
		p.Recommendations = d.Recommendations
	}
	return p
}

// Classify grades a voltage drop against its limit.
func Classify(percent, limit, marginalBand float64) Suitability {
	switch {
	case percent <= limit+tolerance:
		return Suitable
	case percent <= limit+marginalBand+tolerance:
		return Marginal
	default:
		return Unsuitable
	}
}

// VoltageDrop returns the drop in volts and as a percentage of nominal:
//
//	Vd = L × It × (mV/A/m) / 1000
func VoltageDrop(cable bs7671.CableCandidate, lengthMeters, current, voltage float64) (volts, percent float64) {
	millivolts := lengthMeters * current * cable.MillivoltPerAmpMeter
	volts = millivolts / 1000
	percent = volts / voltage * 100
	return volts, percent
}

// LoopImpedance returns Zs = Ze + (R1+R2) for the run.
func LoopImpedance(cable bs7671.CableCandidate, lengthMeters, ze float64) float64 {
	r1r2 := lengthMeters * cable.ResistancePerKmOhms / 1000
	return ze + r1r2
}

// EvaluateCompliance checks the selected cable for voltage drop and earth
// fault loop impedance and suggests a protective device rating. It never
// fails: a poor design is reported through the result fields. Unset policy
// fields take their defaults.
func (p Policy) EvaluateCompliance(cable bs7671.CableCandidate, ctx InstallationContext, load LoadSpecification, corrected float64) *CalculationResult {
	p = p.withDefaults()
	result := &CalculationResult{
		CorrectedCurrentAmps: corrected,
		RecommendedCable:     cable,
		CableAdequate:        cable.RatedCurrentAmps > 0 && cable.RatedCurrentAmps >= corrected,
		Warnings:             []string{},
		Recommendations:      append([]string{}, p.Recommendations...),
	}

	// Voltage drop
	result.VoltageDropVolts, result.VoltageDropPercent = VoltageDrop(cable, ctx.CableLengthMeters, corrected, load.Voltage)
	result.VoltageDropLimitPercent = p.VoltageDrop.For(load.LoadCategory)
	result.Suitability = Classify(result.VoltageDropPercent, result.VoltageDropLimitPercent, p.MarginalBand)
	if !result.CableAdequate {
		result.Suitability = Unsuitable
	}

	// Earth fault loop impedance
	result.EarthFaultLoopImpedanceOhms = LoopImpedance(cable, ctx.CableLengthMeters, ctx.EarthingSystemImpedanceOhms)
	result.MaxEarthFaultLoopImpedanceOhms = p.Zs.MaxZs(ctx.ProtectiveDeviceFamily, load.Voltage)
	result.LoopImpedanceCompliant = result.EarthFaultLoopImpedanceOhms <= result.MaxEarthFaultLoopImpedanceOhms+tolerance

	// Protective device
	result.ProtectiveDeviceRatingAmps = math.Ceil(corrected*p.DeviceMargin - tolerance)
	result.StandardDeviceRatingAmps = bs7671.NextStandardRating(result.ProtectiveDeviceRatingAmps)

	result.Warnings = appendNonEmpty(result.Warnings,
		p.loopImpedanceWarning(result, ctx),
		p.suitabilityWarning(result),
		p.loadSplitWarning(corrected),
	)

	return result
}

func (p Policy) loopImpedanceWarning(r *CalculationResult, ctx InstallationContext) string {
	if r.LoopImpedanceCompliant {
		return ""
	}
	return fmt.Sprintf("Earth fault loop impedance %.2fΩ exceeds the %.2fΩ maximum for %s protection - reduce run length or increase CPC size",
		r.EarthFaultLoopImpedanceOhms, r.MaxEarthFaultLoopImpedanceOhms, ctx.ProtectiveDeviceFamily)
}

func (p Policy) suitabilityWarning(r *CalculationResult) string {
	if r.Suitability != Unsuitable {
		return ""
	}
	if !r.CableAdequate {
		return fmt.Sprintf("Cable unsuitable: largest available size %smm² (%.0fA) is below the corrected current of %.1fA",
			r.RecommendedCable.CrossSectionMm2, r.RecommendedCable.RatedCurrentAmps, r.CorrectedCurrentAmps)
	}
	return fmt.Sprintf("Cable unsuitable: voltage drop %.2f%% exceeds the %.1f%% limit by more than %.1f points",
		r.VoltageDropPercent, r.VoltageDropLimitPercent, p.MarginalBand)
}

func (p Policy) loadSplitWarning(corrected float64) string {
	if corrected <= p.LoadSplitThreshold {
		return ""
	}
	return fmt.Sprintf("Corrected current %.1fA exceeds %.0fA - consider load splitting", corrected, p.LoadSplitThreshold)
}

func appendNonEmpty(dst []string, msgs ...string) []string {
	for _, m := range msgs {
		if m != "" {
			dst = append(dst, m)
		}
	}
	return dst
}
