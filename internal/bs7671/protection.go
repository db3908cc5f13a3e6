package bs7671

import "math"

// DeviceFamily identifies the protective device type and characteristic.
type DeviceFamily string

const (
	DeviceMCBTypeB     DeviceFamily = "mcb-b"
	DeviceMCBTypeC     DeviceFamily = "mcb-c"
	DeviceMCBTypeD     DeviceFamily = "mcb-d"
	DeviceRCBOTypeB    DeviceFamily = "rcbo-b"
	DeviceRCBOTypeC    DeviceFamily = "rcbo-c"
	DeviceBS88gG       DeviceFamily = "bs88-gg"
	DeviceMCCB         DeviceFamily = "mccb"
	DeviceACB          DeviceFamily = "acb"
	DeviceMotorStarter DeviceFamily = "motor-starter"
)

// DeviceFamilies lists every supported family in display order.
var DeviceFamilies = []DeviceFamily{
	DeviceMCBTypeB, DeviceMCBTypeC, DeviceMCBTypeD,
	DeviceRCBOTypeB, DeviceRCBOTypeC,
	DeviceBS88gG, DeviceMCCB, DeviceACB, DeviceMotorStarter,
}

// Valid reports whether f is a known family.
func (f DeviceFamily) Valid() bool {
	for _, known := range DeviceFamilies {
		if f == known {
			return true
		}
	}
	return false
}

// Miniature groups MCB and RCBO families.
var Miniature = []DeviceFamily{
	DeviceMCBTypeB, DeviceMCBTypeC, DeviceMCBTypeD,
	DeviceRCBOTypeB, DeviceRCBOTypeC,
}

// ZsRule gives the maximum earth fault loop impedance for a set of device
// families within the voltage band (AboveVoltage, UpToVoltage]. An empty
// Families list matches any family; a zero UpToVoltage means no upper bound.
type ZsRule struct {
	Families     []DeviceFamily `yaml:"families,omitempty"`
	AboveVoltage float64        `yaml:"above_voltage"`
	UpToVoltage  float64        `yaml:"up_to_voltage"`
	MaxZsOhms    float64        `yaml:"max_zs_ohms"`
}

func (r ZsRule) matches(family DeviceFamily, voltage float64) bool {
	if voltage <= r.AboveVoltage {
		return false
	}
	if r.UpToVoltage > 0 && voltage > r.UpToVoltage {
		return false
	}
	if len(r.Families) == 0 {
		return true
	}
	for _, f := range r.Families {
		if f == family {
			return true
		}
	}
	return false
}

// ZsTable is an ordered rule list; the first matching rule wins.
type ZsTable struct {
	Rules        []ZsRule `yaml:"rules"`
	FallbackOhms float64  `yaml:"fallback_ohms"`
}

// MaxZs returns the permitted loop impedance for the device and voltage.
func (t ZsTable) MaxZs(family DeviceFamily, voltage float64) float64 {
	for _, r := range t.Rules {
		if r.matches(family, voltage) {
			return r.MaxZsOhms
		}
	}
	return t.FallbackOhms
}

// DefaultZsTable returns the simplified Zs limits. Real limits depend on
// device rating and trip curve as well; these are single representative
// values per band.
func DefaultZsTable() ZsTable {
	return ZsTable{
		Rules: []ZsRule{
			{Families: append([]DeviceFamily(nil), Miniature...), AboveVoltage: 110, UpToVoltage: 250, MaxZsOhms: 1.44},
			{AboveVoltage: 250, MaxZsOhms: 0.83},
		},
		FallbackOhms: 1.15,
	}
}

// StandardDeviceRatings are common fixed ratings (A) for MCB/RCBO/fuse ranges.
var StandardDeviceRatings = []float64{
	6, 10, 16, 20, 25, 32, 40, 50, 63, 80, 100, 125, 160, 200, 250, 315, 400, 500, 630, 800,
}

// NextStandardRating returns the smallest standard rating at or above amps.
// Above the range, amps is rounded up to the next 100 A.
func NextStandardRating(amps float64) float64 {
	for _, r := range StandardDeviceRatings {
		if r >= amps {
			return r
		}
	}
	return math.Ceil(amps/100) * 100
}
