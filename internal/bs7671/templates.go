package bs7671

import "strings"

// Phase is the supply phase configuration.
type Phase string

const (
	PhaseSingle Phase = "single"
	PhaseThree  Phase = "three"
)

// Valid reports whether p is single or three phase.
func (p Phase) Valid() bool {
	return p == PhaseSingle || p == PhaseThree
}

// LoadCategory is a closed set of load kinds. Any other label is kept as
// written and reports Known() == false.
type LoadCategory string

const (
	CategoryLighting   LoadCategory = "lighting"
	CategoryPower      LoadCategory = "power"
	CategorySocketRing LoadCategory = "socket-ring"
	CategoryCooker     LoadCategory = "cooker"
	CategoryShower     LoadCategory = "shower"
	CategoryImmersion  LoadCategory = "immersion"
	CategoryHeating    LoadCategory = "heating"
	CategoryMotor      LoadCategory = "motor"
	CategoryHVAC       LoadCategory = "hvac"
	CategoryEVCharging LoadCategory = "ev-charging"
	CategoryWelding    LoadCategory = "welding"
	CategorySolarPV    LoadCategory = "solar-pv"
	CategoryData       LoadCategory = "data"
)

// LoadCategories lists the known categories in display order.
var LoadCategories = []LoadCategory{
	CategoryLighting, CategoryPower, CategorySocketRing, CategoryCooker,
	CategoryShower, CategoryImmersion, CategoryHeating, CategoryMotor,
	CategoryHVAC, CategoryEVCharging, CategoryWelding, CategorySolarPV,
	CategoryData,
}

var categoryAliases = map[string]LoadCategory{
	"lights":         CategoryLighting,
	"sockets":        CategorySocketRing,
	"ring":           CategorySocketRing,
	"ring-final":     CategorySocketRing,
	"ev":             CategoryEVCharging,
	"ev-charger":     CategoryEVCharging,
	"heat-pump":      CategoryHVAC,
	"air-con":        CategoryHVAC,
	"solar":          CategorySolarPV,
	"pv":             CategorySolarPV,
	"water-heater":   CategoryImmersion,
	"storage-heater": CategoryHeating,
}

// ParseLoadCategory maps a free-text label to a category. Matching ignores
// case, surrounding space and the choice of space, underscore or hyphen.
// Unrecognised labels are returned trimmed but otherwise unchanged.
func ParseLoadCategory(raw string) LoadCategory {
	trimmed := strings.TrimSpace(raw)
	key := strings.ToLower(trimmed)
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	for _, c := range LoadCategories {
		if string(c) == key {
			return c
		}
	}
	if c, ok := categoryAliases[key]; ok {
		return c
	}
	return LoadCategory(trimmed)
}

// Known reports whether c is one of the closed set.
func (c LoadCategory) Known() bool {
	for _, known := range LoadCategories {
		if c == known {
			return true
		}
	}
	return false
}

// LoadTemplate holds form defaults for a load category.
type LoadTemplate struct {
	Description        string             `json:"description" yaml:"description"`
	TypicalLoad        string             `json:"typicalLoad" yaml:"typical_load"`
	TypicalLoadWatts   float64            `json:"typicalLoadWatts" yaml:"typical_load_watts"`
	Voltage            float64            `json:"voltage" yaml:"voltage"`
	Phase              Phase              `json:"phase" yaml:"phase"`
	PowerFactor        float64            `json:"powerFactor" yaml:"power_factor"`
	CableType          string             `json:"cableType" yaml:"cable_type"`
	InstallationMethod InstallationMethod `json:"installationMethod" yaml:"installation_method"`
	ProtectiveDevice   DeviceFamily       `json:"protectiveDevice" yaml:"protective_device"`
}

// FallbackTemplate applies to categories with no template of their own.
var FallbackTemplate = LoadTemplate{
	Description:        "General load",
	TypicalLoad:        "Varies",
	Voltage:            230,
	Phase:              PhaseSingle,
	PowerFactor:        0.95,
	CableType:          "pvc-twin-earth",
	InstallationMethod: InstallClippedDirect,
	ProtectiveDevice:   DeviceMCBTypeB,
}

// TemplateTable maps categories to defaults.
type TemplateTable map[LoadCategory]LoadTemplate

// Lookup returns the template for c, or FallbackTemplate when none exists.
func (t TemplateTable) Lookup(c LoadCategory) (LoadTemplate, bool) {
	if tpl, ok := t[c]; ok {
		return tpl, true
	}
	return FallbackTemplate, false
}

// DefaultTemplates returns a fresh copy of the built-in templates.
func DefaultTemplates() TemplateTable {
	return TemplateTable{
		CategoryLighting: {
			Description: "Lighting circuit", TypicalLoad: "500W - 2kW", TypicalLoadWatts: 1000,
			Voltage: 230, Phase: PhaseSingle, PowerFactor: 0.95,
			CableType: "pvc-twin-earth", InstallationMethod: InstallClippedDirect, ProtectiveDevice: DeviceMCBTypeB,
		},
		CategoryPower: {
			Description: "General power radial", TypicalLoad: "2kW - 7kW", TypicalLoadWatts: 4600,
			Voltage: 230, Phase: PhaseSingle, PowerFactor: 0.95,
			CableType: "pvc-twin-earth", InstallationMethod: InstallClippedDirect, ProtectiveDevice: DeviceMCBTypeB,
		},
		CategorySocketRing: {
			Description: "Ring final socket circuit", TypicalLoad: "7.36kW", TypicalLoadWatts: 7360,
			Voltage: 230, Phase: PhaseSingle, PowerFactor: 0.95,
			CableType: "pvc-twin-earth", InstallationMethod: InstallClippedDirect, ProtectiveDevice: DeviceRCBOTypeB,
		},
		CategoryCooker: {
			Description: "Cooker circuit", TypicalLoad: "6kW - 12kW", TypicalLoadWatts: 7200,
			Voltage: 230, Phase: PhaseSingle, PowerFactor: 1.0,
			CableType: "pvc-twin-earth", InstallationMethod: InstallClippedDirect, ProtectiveDevice: DeviceMCBTypeB,
		},
		CategoryShower: {
			Description: "Electric shower", TypicalLoad: "8.5kW - 10.5kW", TypicalLoadWatts: 9500,
			Voltage: 230, Phase: PhaseSingle, PowerFactor: 1.0,
			CableType: "pvc-twin-earth", InstallationMethod: InstallClippedDirect, ProtectiveDevice: DeviceRCBOTypeB,
		},
		CategoryImmersion: {
			Description: "Immersion heater", TypicalLoad: "3kW", TypicalLoadWatts: 3000,
			Voltage: 230, Phase: PhaseSingle, PowerFactor: 1.0,
			CableType: "pvc-twin-earth", InstallationMethod: InstallClippedDirect, ProtectiveDevice: DeviceMCBTypeB,
		},
		CategoryHeating: {
			Description: "Space or storage heating", TypicalLoad: "2kW - 10kW", TypicalLoadWatts: 6000,
			Voltage: 230, Phase: PhaseSingle, PowerFactor: 1.0,
			CableType: "pvc-twin-earth", InstallationMethod: InstallClippedDirect, ProtectiveDevice: DeviceMCBTypeB,
		},
		CategoryMotor: {
			Description: "Three phase motor", TypicalLoad: "1.5kW - 55kW", TypicalLoadWatts: 11000,
			Voltage: 400, Phase: PhaseThree, PowerFactor: 0.85,
			CableType: "swa-xlpe", InstallationMethod: InstallCableTray, ProtectiveDevice: DeviceMCBTypeD,
		},
		CategoryHVAC: {
			Description: "Air conditioning or heat pump", TypicalLoad: "3kW - 15kW", TypicalLoadWatts: 7000,
			Voltage: 230, Phase: PhaseSingle, PowerFactor: 0.9,
			CableType: "swa-xlpe", InstallationMethod: InstallClippedDirect, ProtectiveDevice: DeviceMCBTypeC,
		},
		CategoryEVCharging: {
			Description: "EV charge point", TypicalLoad: "7.4kW - 22kW", TypicalLoadWatts: 7400,
			Voltage: 230, Phase: PhaseSingle, PowerFactor: 0.99,
			CableType: "swa-xlpe", InstallationMethod: InstallDirectBuried, ProtectiveDevice: DeviceRCBOTypeB,
		},
		CategoryWelding: {
			Description: "Welding supply", TypicalLoad: "5kW - 20kW", TypicalLoadWatts: 10000,
			Voltage: 400, Phase: PhaseThree, PowerFactor: 0.7,
			CableType: "swa-xlpe", InstallationMethod: InstallCableTray, ProtectiveDevice: DeviceMCBTypeD,
		},
		CategorySolarPV: {
			Description: "Solar PV inverter AC side", TypicalLoad: "3.68kW - 10kW", TypicalLoadWatts: 3680,
			Voltage: 230, Phase: PhaseSingle, PowerFactor: 1.0,
			CableType: "swa-xlpe", InstallationMethod: InstallClippedDirect, ProtectiveDevice: DeviceRCBOTypeB,
		},
		CategoryData: {
			Description: "Comms and data cabinet", TypicalLoad: "1kW - 5kW", TypicalLoadWatts: 2000,
			Voltage: 230, Phase: PhaseSingle, PowerFactor: 0.9,
			CableType: "pvc-twin-earth", InstallationMethod: InstallTrunkingMetal, ProtectiveDevice: DeviceRCBOTypeC,
		},
	}
}
