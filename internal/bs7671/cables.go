package bs7671

import (
	"fmt"
	"sort"
	"strconv"
)

// CableCandidate is one row of a current-capacity table.
// Tables are ordered ascending by RatedCurrentAmps.
type CableCandidate struct {
	CrossSectionMm2      string  `json:"crossSectionMm2" yaml:"cross_section_mm2"`
	RatedCurrentAmps     float64 `json:"ratedCurrentAmps" yaml:"rated_current_amps"`
	MillivoltPerAmpMeter float64 `json:"millivoltPerAmpMeter" yaml:"millivolt_per_amp_meter"`
	ResistancePerKmOhms  float64 `json:"resistancePerKmOhms" yaml:"resistance_per_km_ohms"`
}

// DefaultCableTable returns the simplified copper cable table used when no
// reference method is selected. Capacities are at 30 °C ambient with no
// grouping. ResistancePerKmOhms is R1+R2 (line plus CPC) at 20 °C.
//
// A fresh slice is returned on every call so callers may modify it.
func DefaultCableTable() []CableCandidate {
	return []CableCandidate{
		{CrossSectionMm2: "1.5", RatedCurrentAmps: 20, MillivoltPerAmpMeter: 29, ResistancePerKmOhms: 30.20},
		{CrossSectionMm2: "2.5", RatedCurrentAmps: 27, MillivoltPerAmpMeter: 18, ResistancePerKmOhms: 19.51},
		{CrossSectionMm2: "4.0", RatedCurrentAmps: 36, MillivoltPerAmpMeter: 11, ResistancePerKmOhms: 16.71},
		{CrossSectionMm2: "6.0", RatedCurrentAmps: 46, MillivoltPerAmpMeter: 7.3, ResistancePerKmOhms: 10.49},
		{CrossSectionMm2: "10.0", RatedCurrentAmps: 63, MillivoltPerAmpMeter: 4.4, ResistancePerKmOhms: 6.44},
		{CrossSectionMm2: "16.0", RatedCurrentAmps: 85, MillivoltPerAmpMeter: 2.8, ResistancePerKmOhms: 4.23},
		{CrossSectionMm2: "25.0", RatedCurrentAmps: 112, MillivoltPerAmpMeter: 1.75, ResistancePerKmOhms: 2.557},
		{CrossSectionMm2: "35.0", RatedCurrentAmps: 138, MillivoltPerAmpMeter: 1.25, ResistancePerKmOhms: 1.674},
	}
}

// IsAscending reports whether the table is ordered by rated current.
func IsAscending(table []CableCandidate) bool {
	return sort.SliceIsSorted(table, func(i, j int) bool {
		return table[i].RatedCurrentAmps < table[j].RatedCurrentAmps
	})
}

// ReferenceMethod is a BS 7671 Appendix 4 installation reference method.
type ReferenceMethod string

const (
	MethodA1 ReferenceMethod = "A1" // Enclosed in conduit in thermally insulating wall
	MethodA2 ReferenceMethod = "A2" // Enclosed in conduit on wall or ceiling
	MethodB1 ReferenceMethod = "B1" // Enclosed in conduit in masonry wall
	MethodB2 ReferenceMethod = "B2" // Enclosed in trunking on wall
	MethodC  ReferenceMethod = "C"  // Clipped direct
	MethodD1 ReferenceMethod = "D1" // In ducts in ground
	MethodD2 ReferenceMethod = "D2" // Direct buried
	MethodE  ReferenceMethod = "E"  // In free air
	MethodF  ReferenceMethod = "F"  // Ventilated cable tray
	MethodG  ReferenceMethod = "G"  // Perforated cable tray
)

var referenceMethodOrder = []ReferenceMethod{
	MethodA1, MethodA2, MethodB1, MethodB2, MethodC,
	MethodD1, MethodD2, MethodE, MethodF, MethodG,
}

// capacityRow holds the tabulated capacity of one size for every reference
// method. A zero entry means the method is not applicable to that cable.
type capacityRow struct {
	size       float64
	capacities [10]float64 // indexed as referenceMethodOrder
	mvPerAm    float64
	r1r2PerKm  float64
}

// FirePerformance grades a cable's behaviour in fire.
type FirePerformance string

const (
	FireStandard  FirePerformance = "Standard"
	FireLSOH      FirePerformance = "LSOH"
	FireResistant FirePerformance = "Fire Resistant"
	FireMineral   FirePerformance = "Mineral"
)

// MechanicalProtection is the protection the cable construction itself gives.
type MechanicalProtection string

const (
	ProtectionNone   MechanicalProtection = "None"
	ProtectionLight  MechanicalProtection = "Light"
	ProtectionMedium MechanicalProtection = "Medium"
	ProtectionHeavy  MechanicalProtection = "Heavy"
)

// CableType describes one cable construction in the database.
type CableType struct {
	Key                  string               `json:"key"`
	Name                 string               `json:"name"`
	Description          string               `json:"description"`
	TemperatureC         int                  `json:"temperatureC"`
	VoltageRating        int                  `json:"voltageRating"`
	MaxPracticalSizeMm2  float64              `json:"maxPracticalSizeMm2"`
	MinBendRadius        int                  `json:"minBendRadius"` // multiple of cable diameter
	FirePerformance      FirePerformance      `json:"firePerformance"`
	MechanicalProtection MechanicalProtection `json:"mechanicalProtection"`
	UVResistant          bool                 `json:"uvResistant"`
	DirectBurial         bool                 `json:"directBurial"`

	// Portable cords are rated for temporary use only and have no
	// reference methods.
	Portable        bool              `json:"portable"`
	Methods         []ReferenceMethod `json:"methods"`
	Applications    []string          `json:"applications"`
	Limitations     []string          `json:"limitations"`
	Recommendations []string          `json:"recommendations"`

	rows    []capacityRow
	pricing []CablePrice
}

// Sizes returns the cross sections available for the cable type.
func (c CableType) Sizes() []float64 {
	sizes := make([]float64, 0, len(c.rows))
	for _, r := range c.rows {
		sizes = append(sizes, r.size)
	}
	return sizes
}

// SupportsMethod reports whether the cable has tabulated values for m.
func (c CableType) SupportsMethod(m ReferenceMethod) bool {
	for _, supported := range c.Methods {
		if supported == m {
			return true
		}
	}
	return false
}

// MaxRating returns the highest tabulated capacity for method m, or 0 when
// the cable is not rated for it.
func (c CableType) MaxRating(m ReferenceMethod) float64 {
	idx := methodIndex(m)
	if idx < 0 || !c.SupportsMethod(m) {
		return 0
	}
	var max float64
	for _, r := range c.rows {
		if r.capacities[idx] > max {
			max = r.capacities[idx]
		}
	}
	return max
}

// CableTypeKeys returns the database keys in sorted order.
func CableTypeKeys() []string {
	keys := make([]string, 0, len(CableDatabase))
	for k := range CableDatabase {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CableTypesForMethod returns, in key order, the cable types rated for
// reference method m.
func CableTypesForMethod(m ReferenceMethod) []string {
	var keys []string
	for _, key := range CableTypeKeys() {
		if CableDatabase[key].SupportsMethod(m) {
			keys = append(keys, key)
		}
	}
	return keys
}

// CableTypesForCurrent returns, in key order, the cable types with at least
// one size rated for amps under reference method m.
func CableTypesForCurrent(amps float64, m ReferenceMethod) []string {
	var keys []string
	for _, key := range CableTypeKeys() {
		if max := CableDatabase[key].MaxRating(m); max > 0 && max >= amps {
			keys = append(keys, key)
		}
	}
	return keys
}

// CableTable builds an ascending capacity table for one cable type and
// reference method. Sizes with no tabulated capacity are skipped.
func CableTable(cableType string, method ReferenceMethod) ([]CableCandidate, error) {
	ct, ok := CableDatabase[cableType]
	if !ok {
		return nil, fmt.Errorf("unknown cable type %q", cableType)
	}
	idx := methodIndex(method)
	if idx < 0 {
		return nil, fmt.Errorf("unknown reference method %q", method)
	}
	if !ct.SupportsMethod(method) {
		return nil, fmt.Errorf("cable type %q has no ratings for reference method %s", cableType, method)
	}

	var table []CableCandidate
	for _, r := range ct.rows {
		rating := r.capacities[idx]
		if rating <= 0 {
			continue
		}
		table = append(table, CableCandidate{
			CrossSectionMm2:      sizeLabel(r.size),
			RatedCurrentAmps:     rating,
			MillivoltPerAmpMeter: r.mvPerAm,
			ResistancePerKmOhms:  r.r1r2PerKm,
		})
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].RatedCurrentAmps < table[j].RatedCurrentAmps
	})
	return table, nil
}

func methodIndex(m ReferenceMethod) int {
	for i, candidate := range referenceMethodOrder {
		if candidate == m {
			return i
		}
	}
	return -1
}

// sizeLabel formats a cross section the way the default table labels it:
// one decimal place for whole numbers, otherwise as written.
func sizeLabel(size float64) string {
	if size == float64(int(size)) {
		return strconv.FormatFloat(size, 'f', 1, 64)
	}
	return strconv.FormatFloat(size, 'f', -1, 64)
}
