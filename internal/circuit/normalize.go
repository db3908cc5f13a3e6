package circuit

import (
	"math"

	"github.com/alexiusacademia/gocable/internal/bs7671"
)

// NormalizeOptions controls optional input adjustments.
type NormalizeOptions struct {
	// ApplyAmbientCorrection folds the ambient temperature factor Ca into
	// the thermal derating factor. Off by default: ambient temperature is
	// otherwise informational.
	ApplyAmbientCorrection bool
}

// Normalize fills unset optional fields from the category template and
// validates the ranges the later stages depend on. Voltage and load are never
// defaulted; they are checked when the design current is calculated.
func Normalize(load LoadSpecification, ctx InstallationContext, templates bs7671.TemplateTable, opts NormalizeOptions) (LoadSpecification, InstallationContext, error) {
	load.LoadCategory = bs7671.ParseLoadCategory(string(load.LoadCategory))
	tpl, _ := templates.Lookup(load.LoadCategory)

	if load.PhaseConfiguration == "" {
		load.PhaseConfiguration = tpl.Phase
	}
	if !load.PhaseConfiguration.Valid() {
		return load, ctx, &InvalidInputError{
			Field:  "phaseConfiguration",
			Reason: "must be single or three, got " + string(load.PhaseConfiguration),
		}
	}
	if load.PowerFactor == 0 {
		load.PowerFactor = tpl.PowerFactor
	}
	if err := checkFraction("powerFactor", load.PowerFactor); err != nil {
		return load, ctx, err
	}

	if ctx.InstallationMethod == "" {
		ctx.InstallationMethod = tpl.InstallationMethod
	}
	if !ctx.InstallationMethod.Valid() {
		return load, ctx, &InvalidInputError{
			Field:  "installationMethod",
			Reason: "unknown method " + string(ctx.InstallationMethod),
		}
	}
	if ctx.ProtectiveDeviceFamily == "" {
		ctx.ProtectiveDeviceFamily = tpl.ProtectiveDevice
	}
	if !ctx.ProtectiveDeviceFamily.Valid() {
		return load, ctx, &InvalidInputError{
			Field:  "protectiveDeviceFamily",
			Reason: "unknown device family " + string(ctx.ProtectiveDeviceFamily),
		}
	}

	if ctx.GroupingFactor == 0 {
		ctx.GroupingFactor = 1
	}
	if err := checkFraction("groupingFactor", ctx.GroupingFactor); err != nil {
		return load, ctx, err
	}
	if ctx.ThermalDeratingFactor == 0 {
		ctx.ThermalDeratingFactor = 1
	}
	if err := checkFraction("thermalDeratingFactor", ctx.ThermalDeratingFactor); err != nil {
		return load, ctx, err
	}

	if !(ctx.CableLengthMeters > 0) {
		return load, ctx, invalid("cableLengthMeters", ctx.CableLengthMeters, "must be greater than zero")
	}
	if math.IsInf(ctx.CableLengthMeters, 0) {
		return load, ctx, invalid("cableLengthMeters", ctx.CableLengthMeters, "must be finite")
	}
	if ctx.EarthingSystemImpedanceOhms < 0 || math.IsNaN(ctx.EarthingSystemImpedanceOhms) {
		return load, ctx, invalid("earthingSystemImpedanceOhms", ctx.EarthingSystemImpedanceOhms, "must not be negative")
	}
	if math.IsInf(ctx.EarthingSystemImpedanceOhms, 0) {
		return load, ctx, invalid("earthingSystemImpedanceOhms", ctx.EarthingSystemImpedanceOhms, "must be finite")
	}
	if !isFinite(ctx.AmbientTemperatureCelsius) {
		return load, ctx, invalid("ambientTemperatureCelsius", ctx.AmbientTemperatureCelsius, "must be finite")
	}

	if opts.ApplyAmbientCorrection {
		ca := bs7671.AmbientTemperatureFactor(ctx.AmbientTemperatureCelsius)
		if ca == 0 {
			return load, ctx, invalid("ambientTemperatureCelsius", ctx.AmbientTemperatureCelsius, "above the cable's operating limit")
		}
		ctx.ThermalDeratingFactor = math.Min(1, ctx.ThermalDeratingFactor*ca)
	}

	return load, ctx, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkFraction(field string, v float64) error {
	if !(v > 0 && v <= 1) {
		return invalid(field, v, "must be in (0, 1]")
	}
	return nil
}
