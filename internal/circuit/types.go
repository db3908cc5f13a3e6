package circuit

import "github.com/alexiusacademia/gocable/internal/bs7671"

// LoadSpecification describes the electrical load on the circuit.
type LoadSpecification struct {
	TotalLoadWatts     float64             `json:"totalLoadWatts"`     // Real power demand (W)
	Voltage            float64             `json:"voltage"`            // Nominal supply voltage (V)
	PhaseConfiguration bs7671.Phase        `json:"phaseConfiguration"` // single or three
	PowerFactor        float64             `json:"powerFactor"`        // (0, 1]
	LoadCategory       bs7671.LoadCategory `json:"loadCategory,omitempty"`
}

// InstallationContext describes the cable route and supply.
type InstallationContext struct {
	CableLengthMeters           float64                   `json:"cableLengthMeters"` // One-way route length (m)
	InstallationMethod          bs7671.InstallationMethod `json:"installationMethod"`
	AmbientTemperatureCelsius   float64                   `json:"ambientTemperatureCelsius"`
	GroupingFactor              float64                   `json:"groupingFactor"`              // Cg, (0, 1]
	ThermalDeratingFactor       float64                   `json:"thermalDeratingFactor"`       // Combined insulation and other reductions, (0, 1]
	EarthingSystemImpedanceOhms float64                   `json:"earthingSystemImpedanceOhms"` // Ze (Ω)
	ProtectiveDeviceFamily      bs7671.DeviceFamily       `json:"protectiveDeviceFamily"`
}

// Suitability classifies the selected cable against the voltage drop limit.
type Suitability string

const (
	Suitable   Suitability = "suitable"
	Marginal   Suitability = "marginal"
	Unsuitable Suitability = "unsuitable"
)

// CurrentBasis selects how design current is derived from the load.
type CurrentBasis string

const (
	// RealPowerBasis divides real power by voltage only; the load figure is
	// taken as already net of reactive component.
	RealPowerBasis CurrentBasis = "real-power"
	// ApparentPowerBasis also divides by power factor.
	ApparentPowerBasis CurrentBasis = "apparent-power"
)

// Valid reports whether b is a known basis.
func (b CurrentBasis) Valid() bool {
	return b == RealPowerBasis || b == ApparentPowerBasis
}

// CalculationResult is the complete design report for one input set.
// It is rebuilt from scratch on every calculation.
type CalculationResult struct {
	// Currents (A)
	DesignCurrentAmps    float64 `json:"designCurrentAmps"`
	CorrectedCurrentAmps float64 `json:"correctedCurrentAmps"`

	// Cable
	RecommendedCable bs7671.CableCandidate `json:"recommendedCable"`
	CableAdequate    bool                  `json:"cableAdequate"`

	// Voltage drop
	VoltageDropVolts        float64     `json:"voltageDropVolts"`
	VoltageDropPercent      float64     `json:"voltageDropPercent"`
	VoltageDropLimitPercent float64     `json:"voltageDropLimitPercent"`
	Suitability             Suitability `json:"suitability"`

	// Protection
	ProtectiveDeviceRatingAmps     float64 `json:"protectiveDeviceRatingAmps"`
	StandardDeviceRatingAmps       float64 `json:"standardDeviceRatingAmps"`
	EarthFaultLoopImpedanceOhms    float64 `json:"earthFaultLoopImpedanceOhms"`
	MaxEarthFaultLoopImpedanceOhms float64 `json:"maxEarthFaultLoopImpedanceOhms"`
	LoopImpedanceCompliant         bool    `json:"loopImpedanceCompliant"`

	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// IsCompliant reports whether the design passes every check.
func (r *CalculationResult) IsCompliant() bool {
	return r.CableAdequate && r.Suitability == Suitable && r.LoopImpedanceCompliant
}
