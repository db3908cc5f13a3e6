package bs7671

import "math"

const (
	// Voltage drop limits, percent of nominal (Appendix 4 Table 4Ab style)
	VoltageDropLighting = 3.0
	VoltageDropOther    = 5.0

	// Width of the marginal band above the voltage drop limit (percentage points)
	MarginalBand = 1.0

	// Protective device margin over corrected current (simplified heuristic)
	DeviceMargin = 1.45

	// Corrected currents above this suggest splitting the load (A)
	LoadSplitThreshold = 32.0

	// Reference ambient temperature for tabulated capacities (°C)
	ReferenceAmbientC = 30.0
)

// VoltageDropLimits maps a load category to its permitted voltage drop in
// percent. Categories not listed use Default.
type VoltageDropLimits struct {
	Default    float64                  `yaml:"default"`
	Categories map[LoadCategory]float64 `yaml:"categories,omitempty"`
}

// DefaultVoltageDropLimits returns 3% for lighting and 5% for everything else.
func DefaultVoltageDropLimits() VoltageDropLimits {
	return VoltageDropLimits{
		Default: VoltageDropOther,
		Categories: map[LoadCategory]float64{
			CategoryLighting: VoltageDropLighting,
		},
	}
}

// For returns the limit for a category.
func (l VoltageDropLimits) For(category LoadCategory) float64 {
	if limit, ok := l.Categories[category]; ok {
		return limit
	}
	return l.Default
}

type ambientPoint struct {
	tempC  float64
	factor float64
}

// Ambient temperature correction for 70 °C thermoplastic insulation
// (Table 4B1). Beyond 60 °C the cable cannot carry load.
var ambientFactors = []ambientPoint{
	{10, 1.22},
	{15, 1.17},
	{20, 1.12},
	{25, 1.06},
	{30, 1.00},
	{35, 0.94},
	{40, 0.87},
	{45, 0.79},
	{50, 0.71},
	{55, 0.61},
	{60, 0.50},
}

// AmbientTemperatureFactor returns Ca for the given ambient temperature,
// interpolating linearly between tabulated points. Below the table the first
// factor applies; above 60 °C it returns 0.
func AmbientTemperatureFactor(tempC float64) float64 {
	first := ambientFactors[0]
	last := ambientFactors[len(ambientFactors)-1]
	if tempC <= first.tempC {
		return first.factor
	}
	if tempC > last.tempC {
		return 0
	}
	for i := 1; i < len(ambientFactors); i++ {
		lo, hi := ambientFactors[i-1], ambientFactors[i]
		if tempC <= hi.tempC {
			frac := (tempC - lo.tempC) / (hi.tempC - lo.tempC)
			ca := lo.factor + frac*(hi.factor-lo.factor)
			return math.Round(ca*1000) / 1000
		}
	}
	return last.factor
}
