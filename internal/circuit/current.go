package circuit

import (
	"math"

	"github.com/alexiusacademia/gocable/internal/bs7671"
)

// ComputeDesignCurrent returns Ib on the real-power basis.
func ComputeDesignCurrent(load LoadSpecification) (float64, error) {
	return DesignCurrent(load, RealPowerBasis)
}

// DesignCurrent calculates the design current Ib (A).
//
//	single phase: Ib = P / V
//	three phase:  Ib = P / (√3 V)
//
// On the apparent-power basis P is first divided by the power factor.
func DesignCurrent(load LoadSpecification, basis CurrentBasis) (float64, error) {
	if !(load.Voltage > 0) {
		return 0, invalid("voltage", load.Voltage, "must be greater than zero")
	}
	if math.IsInf(load.Voltage, 1) {
		return 0, invalid("voltage", load.Voltage, "must be finite")
	}
	if load.TotalLoadWatts < 0 || math.IsNaN(load.TotalLoadWatts) {
		return 0, invalid("totalLoadWatts", load.TotalLoadWatts, "must not be negative")
	}
	if math.IsInf(load.TotalLoadWatts, 1) {
		return 0, invalid("totalLoadWatts", load.TotalLoadWatts, "must be finite")
	}

	watts := load.TotalLoadWatts
	if basis == ApparentPowerBasis {
		if !(load.PowerFactor > 0 && load.PowerFactor <= 1) {
			return 0, invalid("powerFactor", load.PowerFactor, "must be in (0, 1]")
		}
		watts /= load.PowerFactor
	}

	var ib float64
	switch load.PhaseConfiguration {
	case bs7671.PhaseSingle:
		ib = watts / load.Voltage
	case bs7671.PhaseThree:
		ib = watts / (load.Voltage * math.Sqrt(3))
	default:
		return 0, &InvalidInputError{
			Field:  "phaseConfiguration",
			Reason: "must be single or three, got " + string(load.PhaseConfiguration),
		}
	}
	if math.IsInf(ib, 0) {
		return 0, invalid("totalLoadWatts", load.TotalLoadWatts, "too large: design current overflows")
	}
	return ib, nil
}
