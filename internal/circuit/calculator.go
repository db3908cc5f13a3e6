package circuit

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gocable/internal/bs7671"
)

// Calculator runs the full sizing pipeline: normalize, design current,
// correction and cable selection, compliance. It holds no state between
// calls and is safe for concurrent use as long as its fields are not
// modified.
type Calculator struct {
	// Table is the capacity table used when CableType is empty.
	Table []bs7671.CableCandidate

	// CableType, when set, selects a table from the cable database keyed
	// by the reference method of the installation method.
	CableType string

	Policy    Policy
	Templates bs7671.TemplateTable
	Basis     CurrentBasis
	Options   NormalizeOptions
}

// NewCalculator returns a calculator with the default table, policy and
// templates on the real-power basis.
func NewCalculator() *Calculator {
	return &Calculator{
		Table:     bs7671.DefaultCableTable(),
		Policy:    DefaultPolicy(),
		Templates: bs7671.DefaultTemplates(),
		Basis:     RealPowerBasis,
	}
}

// WithReferenceMethodTable returns a copy of c that sizes from the named
// cable type's ratings for the installation method's reference method.
func (c *Calculator) WithReferenceMethodTable(cableType string) (*Calculator, error) {
	if _, ok := bs7671.CableDatabase[cableType]; !ok {
		return nil, fmt.Errorf("unknown cable type %q", cableType)
	}
	clone := *c
	clone.CableType = cableType
	return &clone, nil
}

// TableFor returns the capacity table that applies to the installation.
func (c *Calculator) TableFor(ctx InstallationContext) ([]bs7671.CableCandidate, error) {
	if c.CableType == "" {
		if len(c.Table) == 0 {
			return bs7671.DefaultCableTable(), nil
		}
		return c.Table, nil
	}
	info, ok := ctx.InstallationMethod.Lookup()
	if !ok {
		return nil, fmt.Errorf("unknown installation method %q", ctx.InstallationMethod)
	}
	table, err := bs7671.CableTable(c.CableType, info.ReferenceMethod)
	if err != nil {
		return nil, fmt.Errorf("installation method %s: %w", ctx.InstallationMethod, err)
	}
	return table, nil
}

// Calculate produces a fresh result for the inputs. An error is returned
// only for invalid inputs or an unusable table; design problems are
// reported in the result.
func (c *Calculator) Calculate(load LoadSpecification, ctx InstallationContext) (*CalculationResult, error) {
	load, ctx, err := c.Normalize(load, ctx)
	if err != nil {
		return nil, err
	}

	basis := c.Basis
	if basis == "" {
		basis = RealPowerBasis
	}
	design, err := DesignCurrent(load, basis)
	if err != nil {
		return nil, err
	}

	table, err := c.TableFor(ctx)
	if err != nil {
		return nil, err
	}

	corrected := CorrectedCurrent(design, ctx.GroupingFactor, ctx.ThermalDeratingFactor)
	if math.IsInf(corrected, 0) {
		if ctx.GroupingFactor < ctx.ThermalDeratingFactor {
			return nil, invalid("groupingFactor", ctx.GroupingFactor, "too small: corrected current overflows")
		}
		return nil, invalid("thermalDeratingFactor", ctx.ThermalDeratingFactor, "too small: corrected current overflows")
	}
	cable, _ := SelectCable(corrected, table)

	result := c.Policy.EvaluateCompliance(cable, ctx, load, corrected)
	result.DesignCurrentAmps = design
	if err := checkFinite(result, load, ctx); err != nil {
		return nil, err
	}
	return result, nil
}

// checkFinite rejects inputs that are individually valid but whose product
// overflows.
func checkFinite(r *CalculationResult, load LoadSpecification, ctx InstallationContext) error {
	for _, v := range []float64{r.VoltageDropVolts, r.VoltageDropPercent, r.EarthFaultLoopImpedanceOhms} {
		if !isFinite(v) {
			return invalid("cableLengthMeters", ctx.CableLengthMeters, "too large: voltage drop or loop impedance overflows")
		}
	}
	if !isFinite(r.ProtectiveDeviceRatingAmps) {
		return invalid("totalLoadWatts", load.TotalLoadWatts, "too large: device rating overflows")
	}
	return nil
}

// Normalize applies the calculator's templates and options to the inputs.
func (c *Calculator) Normalize(load LoadSpecification, ctx InstallationContext) (LoadSpecification, InstallationContext, error) {
	templates := c.Templates
	if templates == nil {
		templates = bs7671.DefaultTemplates()
	}
	return Normalize(load, ctx, templates, c.Options)
}

// Calculate runs the pipeline with the default calculator.
func Calculate(load LoadSpecification, ctx InstallationContext) (*CalculationResult, error) {
	return NewCalculator().Calculate(load, ctx)
}
