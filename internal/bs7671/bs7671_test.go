package bs7671

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCableTableIsAscendingCopy(t *testing.T) {
	table := DefaultCableTable()
	require.NotEmpty(t, table)
	assert.True(t, IsAscending(table))

	table[0].RatedCurrentAmps = 999
	assert.Equal(t, 20.0, DefaultCableTable()[0].RatedCurrentAmps)
}

func TestCableTable(t *testing.T) {
	table, err := CableTable("pvc-twin-earth", MethodC)
	require.NoError(t, err)
	require.Len(t, table, 6)
	assert.Equal(t, "1.0", table[0].CrossSectionMm2)
	assert.Equal(t, 20.0, table[0].RatedCurrentAmps)
	assert.Equal(t, "2.5", table[2].CrossSectionMm2)
	assert.Equal(t, "10.0", table[5].CrossSectionMm2)
	assert.True(t, IsAscending(table))

	swa, err := CableTable("swa-xlpe", MethodD2)
	require.NoError(t, err)
	assert.Equal(t, 27.0, swa[0].RatedCurrentAmps)
	assert.Equal(t, 7.3, swa[3].MillivoltPerAmpMeter)

	_, err = CableTable("pvc-twin-earth", MethodD1)
	assert.ErrorContains(t, err, "no ratings")
	_, err = CableTable("swa-xlpe", "Z9")
	assert.ErrorContains(t, err, "unknown reference method")
	_, err = CableTable("aluminium", MethodC)
	assert.ErrorContains(t, err, "unknown cable type")
}

func TestCableTypeKeysSorted(t *testing.T) {
	assert.Equal(t, []string{
		"fire-resistant", "h07rn-f", "lsoh-cable", "micc",
		"nyy-j", "pvc-single", "pvc-twin-earth", "swa-xlpe",
	}, CableTypeKeys())
	assert.Equal(t, []float64{1.0, 1.5, 2.5, 4, 6, 10}, CableDatabase["pvc-twin-earth"].Sizes())
	assert.Len(t, CableDatabase["swa-xlpe"].Sizes(), 17)
}

func TestCableDatabaseTables(t *testing.T) {
	for _, key := range CableTypeKeys() {
		ct := CableDatabase[key]
		assert.Equal(t, key, ct.Key)
		assert.Len(t, ct.Prices(), len(ct.Sizes()), key)
		assert.Equal(t, ct.Portable, len(ct.Methods) == 0, key)
		for _, m := range ct.Methods {
			table, err := CableTable(key, m)
			require.NoError(t, err, "%s %s", key, m)
			require.NotEmpty(t, table, "%s %s", key, m)
			assert.True(t, IsAscending(table), "%s %s", key, m)
			for _, c := range table {
				assert.Positive(t, c.MillivoltPerAmpMeter, "%s %s", key, c.CrossSectionMm2)
				assert.Positive(t, c.ResistancePerKmOhms, "%s %s", key, c.CrossSectionMm2)
			}
		}
	}

	assert.False(t, CableDatabase["pvc-twin-earth"].SupportsMethod(MethodE))
	_, err := CableTable("h07rn-f", MethodC)
	assert.ErrorContains(t, err, "no ratings")

	micc, err := CableTable("micc", MethodE)
	require.NoError(t, err)
	assert.Equal(t, "1.0", micc[0].CrossSectionMm2)
	assert.Equal(t, 32.0, micc[0].RatedCurrentAmps)
	assert.InDelta(t, 36.2, micc[0].ResistancePerKmOhms, 1e-9)
}

func TestCableTypesForMethod(t *testing.T) {
	assert.Equal(t, []string{"nyy-j", "swa-xlpe"}, CableTypesForMethod(MethodD2))
	assert.Equal(t, []string{"fire-resistant", "lsoh-cable", "pvc-single", "pvc-twin-earth"}, CableTypesForMethod(MethodA1))
	assert.Empty(t, CableTypesForMethod("Portable"))
}

func TestCableTypesForCurrent(t *testing.T) {
	assert.Equal(t, []string{"nyy-j", "pvc-single", "swa-xlpe"}, CableTypesForCurrent(800, MethodC))
	assert.Equal(t, []string{"fire-resistant", "lsoh-cable", "micc", "nyy-j", "pvc-single", "swa-xlpe"},
		CableTypesForCurrent(100, MethodC))
	assert.Empty(t, CableTypesForCurrent(2000, MethodC))
	assert.Empty(t, CableTypesForCurrent(10, "Z9"))
}

func TestCablePricing(t *testing.T) {
	price, ok := CableDatabase["pvc-twin-earth"].Price(2.5)
	require.True(t, ok)
	assert.Equal(t, 2.25, price.Retail)
	assert.Equal(t, InStock, price.Availability)
	assert.Equal(t, 15.0, price.Bulk.Qty500m)

	_, ok = CableDatabase["pvc-twin-earth"].Price(16)
	assert.False(t, ok)

	micc, ok := CableDatabase["micc"].Price(1.5)
	require.True(t, ok)
	assert.Equal(t, SpecialOrder, micc.Availability)
	assert.Equal(t, 7, micc.LeadTimeDays)
}

func TestCostEffectiveAlternatives(t *testing.T) {
	alternatives, err := CostEffectiveAlternatives("swa-xlpe", 4, 5)
	require.NoError(t, err)
	require.Len(t, alternatives, 3)
	assert.Equal(t, "pvc-single", alternatives[0].CableType)
	assert.InDelta(t, 5.0, alternatives[0].Savings, 1e-9)
	assert.Equal(t, "lsoh-cable", alternatives[1].CableType)
	assert.Equal(t, "pvc-twin-earth", alternatives[2].CableType)

	none, err := CostEffectiveAlternatives("pvc-single", 4, 100)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = CostEffectiveAlternatives("pvc-twin-earth", 95, 100)
	assert.ErrorContains(t, err, "no price")
	_, err = CostEffectiveAlternatives("paper-lead", 4, 100)
	assert.ErrorContains(t, err, "unknown cable type")
}

func TestMaxZs(t *testing.T) {
	table := DefaultZsTable()
	tests := []struct {
		family   DeviceFamily
		voltage  float64
		expected float64
	}{
		{DeviceMCBTypeB, 230, 1.44},
		{DeviceRCBOTypeC, 230, 1.44},
		{DeviceMCBTypeB, 400, 0.83},
		{DeviceMCCB, 400, 0.83},
		{DeviceBS88gG, 230, 1.15},
		{DeviceMotorStarter, 230, 1.15},
		{DeviceMCBTypeB, 110, 1.15},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, table.MaxZs(tt.family, tt.voltage), "%s at %.0fV", tt.family, tt.voltage)
	}
}

func TestNextStandardRating(t *testing.T) {
	assert.Equal(t, 6.0, NextStandardRating(1))
	assert.Equal(t, 32.0, NextStandardRating(29))
	assert.Equal(t, 32.0, NextStandardRating(32))
	assert.Equal(t, 50.0, NextStandardRating(46))
	assert.Equal(t, 900.0, NextStandardRating(801))
}

func TestVoltageDropLimits(t *testing.T) {
	limits := DefaultVoltageDropLimits()
	assert.Equal(t, 3.0, limits.For(CategoryLighting))
	assert.Equal(t, 5.0, limits.For(CategoryMotor))
	assert.Equal(t, 5.0, limits.For("jacuzzi"))
}

func TestAmbientTemperatureFactor(t *testing.T) {
	assert.Equal(t, 1.0, AmbientTemperatureFactor(30))
	assert.InDelta(t, 0.87, AmbientTemperatureFactor(40), 1e-9)
	assert.InDelta(t, 0.905, AmbientTemperatureFactor(37.5), 1e-9)
	assert.Equal(t, 1.22, AmbientTemperatureFactor(-5))
	assert.Equal(t, 0.0, AmbientTemperatureFactor(65))
}

func TestParseLoadCategory(t *testing.T) {
	tests := []struct {
		raw      string
		expected LoadCategory
		known    bool
	}{
		{"lighting", CategoryLighting, true},
		{"  Lighting ", CategoryLighting, true},
		{"EV Charging", CategoryEVCharging, true},
		{"solar_pv", CategorySolarPV, true},
		{"heat pump", CategoryHVAC, true},
		{"Sauna Heater", LoadCategory("Sauna Heater"), false},
		{"", LoadCategory(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c := ParseLoadCategory(tt.raw)
			assert.Equal(t, tt.expected, c)
			assert.Equal(t, tt.known, c.Known())
		})
	}
}

func TestTemplatesCoverEveryCategory(t *testing.T) {
	templates := DefaultTemplates()
	for _, c := range LoadCategories {
		tpl, ok := templates.Lookup(c)
		require.True(t, ok, "missing template for %s", c)
		assert.True(t, tpl.Phase.Valid(), c)
		assert.True(t, tpl.InstallationMethod.Valid(), c)
		assert.True(t, tpl.ProtectiveDevice.Valid(), c)
		assert.Contains(t, CableDatabase, tpl.CableType, c)
	}

	tpl, ok := templates.Lookup("unknown")
	assert.False(t, ok)
	assert.Equal(t, "Varies", tpl.TypicalLoad)
}

func TestInstallationMethodsMapToReferenceMethods(t *testing.T) {
	for _, info := range InstallationMethods {
		assert.GreaterOrEqual(t, methodIndex(info.ReferenceMethod), 0, info.Method)
		assert.NotEmpty(t, info.Guidance, info.Method)
	}
	_, ok := InstallationMethod("nailed").Lookup()
	assert.False(t, ok)
}
