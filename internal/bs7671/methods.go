package bs7671

// InstallationMethod is how the cable run is installed on site.
type InstallationMethod string

const (
	InstallClippedDirect      InstallationMethod = "clipped-direct"
	InstallConduitSurface     InstallationMethod = "conduit-surface"
	InstallConduitEmbedded    InstallationMethod = "conduit-embedded"
	InstallConduitUnderground InstallationMethod = "conduit-underground"
	InstallTrunkingMetal      InstallationMethod = "trunking-metal"
	InstallTrunkingPlastic    InstallationMethod = "trunking-plastic"
	InstallCableTray          InstallationMethod = "cable-tray"
	InstallCableLadder        InstallationMethod = "cable-ladder"
	InstallCableBasket        InstallationMethod = "cable-basket"
	InstallDirectBuried       InstallationMethod = "direct-buried"
	InstallOverhead           InstallationMethod = "overhead"
	InstallCeilingVoid        InstallationMethod = "ceiling-void"
	InstallWallChase          InstallationMethod = "wall-chase"
	InstallRisingMain         InstallationMethod = "rising-main"
)

// MethodInfo is reference data for an installation method. Guidance is
// advisory text only and plays no part in the calculation.
type MethodInfo struct {
	Method          InstallationMethod `json:"method"`
	Name            string             `json:"name"`
	ReferenceMethod ReferenceMethod    `json:"referenceMethod"`
	Guidance        []string           `json:"guidance"`
}

// InstallationMethods lists every method in display order.
var InstallationMethods = []MethodInfo{
	{
		Method:          InstallClippedDirect,
		Name:            "Clipped direct",
		ReferenceMethod: MethodC,
		Guidance: []string{
			"Clip spacing 250mm horizontal, 400mm vertical for T&E up to 9mm overall diameter",
			"Use metal fixings on escape routes",
		},
	},
	{
		Method:          InstallConduitSurface,
		Name:            "Conduit on wall or ceiling",
		ReferenceMethod: MethodB1,
		Guidance: []string{
			"Saddle spacing 0.8m horizontal, 1.0m vertical for 20mm PVC conduit",
			"Observe the conduit space factor (45%)",
		},
	},
	{
		Method:          InstallConduitEmbedded,
		Name:            "Conduit in thermally insulating wall",
		ReferenceMethod: MethodA1,
		Guidance: []string{
			"Avoid contact with thermal insulation where possible",
			"Keep within safe zones or provide 30mA RCD protection",
		},
	},
	{
		Method:          InstallConduitUnderground,
		Name:            "Ducts in ground",
		ReferenceMethod: MethodD1,
		Guidance: []string{
			"Minimum burial depth 450mm, 600mm under roadways",
			"Lay warning tape 150mm above the duct",
		},
	},
	{
		Method:          InstallTrunkingMetal,
		Name:            "Metal trunking",
		ReferenceMethod: MethodB2,
		Guidance: []string{
			"Bond trunking sections with copper links",
			"Observe the trunking space factor (45%)",
		},
	},
	{
		Method:          InstallTrunkingPlastic,
		Name:            "Plastic trunking",
		ReferenceMethod: MethodB2,
		Guidance: []string{
			"Provide fire-resistant supports to prevent premature collapse",
		},
	},
	{
		Method:          InstallCableTray,
		Name:            "Perforated cable tray",
		ReferenceMethod: MethodG,
		Guidance: []string{
			"Tie cables at 300mm intervals on vertical runs",
			"Support tray at 1.5m to 2m centres",
		},
	},
	{
		Method:          InstallCableLadder,
		Name:            "Cable ladder",
		ReferenceMethod: MethodF,
		Guidance: []string{
			"Cleat heavy cables at each rung on vertical runs",
		},
	},
	{
		Method:          InstallCableBasket,
		Name:            "Cable basket",
		ReferenceMethod: MethodF,
		Guidance: []string{
			"Support basket at 1.5m centres",
		},
	},
	{
		Method:          InstallDirectBuried,
		Name:            "Direct buried",
		ReferenceMethod: MethodD2,
		Guidance: []string{
			"Use armoured cable only",
			"Minimum burial depth 600mm, 450mm in gardens",
			"Bed on 75mm of fine sand and lay warning tape above",
		},
	},
	{
		Method:          InstallOverhead,
		Name:            "Overhead catenary",
		ReferenceMethod: MethodE,
		Guidance: []string{
			"Minimum height 3.5m over footpaths, 5.2m over roads",
			"Support on a catenary wire for spans over 3m",
		},
	},
	{
		Method:          InstallCeilingVoid,
		Name:            "Ceiling void",
		ReferenceMethod: MethodA2,
		Guidance: []string{
			"Keep clear of insulation or apply a 0.5 derating where covered",
			"Support cables so they do not rest on the ceiling",
		},
	},
	{
		Method:          InstallWallChase,
		Name:            "Chased into masonry wall",
		ReferenceMethod: MethodC,
		Guidance: []string{
			"Run vertically or horizontally from accessories within safe zones",
			"Chase depth no more than 1/3 of wall thickness vertically",
		},
	},
	{
		Method:          InstallRisingMain,
		Name:            "Rising main",
		ReferenceMethod: MethodE,
		Guidance: []string{
			"Fire-stop at every floor penetration",
			"Allow for expansion on long vertical runs",
		},
	},
}

// Lookup returns the reference data for a method.
func (m InstallationMethod) Lookup() (MethodInfo, bool) {
	for _, info := range InstallationMethods {
		if info.Method == m {
			return info, true
		}
	}
	return MethodInfo{}, false
}

// Valid reports whether m is a known installation method.
func (m InstallationMethod) Valid() bool {
	_, ok := m.Lookup()
	return ok
}
