package circuit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocable/internal/bs7671"
)

func TestNormalizeDefaultsFromTemplate(t *testing.T) {
	load := LoadSpecification{TotalLoadWatts: 11000, Voltage: 400, LoadCategory: "Motor"}
	ctx := InstallationContext{CableLengthMeters: 30}

	load, ctx, err := Normalize(load, ctx, bs7671.DefaultTemplates(), NormalizeOptions{})
	require.NoError(t, err)

	assert.Equal(t, bs7671.CategoryMotor, load.LoadCategory)
	assert.Equal(t, bs7671.PhaseThree, load.PhaseConfiguration)
	assert.Equal(t, 0.85, load.PowerFactor)
	assert.Equal(t, bs7671.InstallCableTray, ctx.InstallationMethod)
	assert.Equal(t, bs7671.DeviceMCBTypeD, ctx.ProtectiveDeviceFamily)
	assert.Equal(t, 1.0, ctx.GroupingFactor)
	assert.Equal(t, 1.0, ctx.ThermalDeratingFactor)
	assert.Equal(t, 400.0, load.Voltage)
}

func TestNormalizeUnknownCategoryUsesFallback(t *testing.T) {
	load := LoadSpecification{TotalLoadWatts: 1500, Voltage: 230, LoadCategory: " Hot Tub "}
	ctx := InstallationContext{CableLengthMeters: 12}

	load, ctx, err := Normalize(load, ctx, bs7671.DefaultTemplates(), NormalizeOptions{})
	require.NoError(t, err)

	assert.Equal(t, bs7671.LoadCategory("Hot Tub"), load.LoadCategory)
	assert.False(t, load.LoadCategory.Known())
	assert.Equal(t, bs7671.FallbackTemplate.PowerFactor, load.PowerFactor)
	assert.Equal(t, bs7671.FallbackTemplate.InstallationMethod, ctx.InstallationMethod)
}

func TestNormalizeCustomTemplates(t *testing.T) {
	templates := bs7671.TemplateTable{
		bs7671.CategoryLighting: {Phase: bs7671.PhaseSingle, PowerFactor: 0.5, InstallationMethod: bs7671.InstallCeilingVoid, ProtectiveDevice: bs7671.DeviceRCBOTypeB},
	}
	load := LoadSpecification{TotalLoadWatts: 800, Voltage: 230, LoadCategory: bs7671.CategoryLighting}

	load, ctx, err := Normalize(load, InstallationContext{CableLengthMeters: 5}, templates, NormalizeOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0.5, load.PowerFactor)
	assert.Equal(t, bs7671.InstallCeilingVoid, ctx.InstallationMethod)
	assert.Equal(t, bs7671.DeviceRCBOTypeB, ctx.ProtectiveDeviceFamily)
}

func TestNormalizeRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*LoadSpecification, *InstallationContext)
		field string
	}{
		{"grouping above one", func(_ *LoadSpecification, c *InstallationContext) { c.GroupingFactor = 1.2 }, "groupingFactor"},
		{"negative derating", func(_ *LoadSpecification, c *InstallationContext) { c.ThermalDeratingFactor = -0.5 }, "thermalDeratingFactor"},
		{"zero length", func(_ *LoadSpecification, c *InstallationContext) { c.CableLengthMeters = 0 }, "cableLengthMeters"},
		{"negative Ze", func(_ *LoadSpecification, c *InstallationContext) { c.EarthingSystemImpedanceOhms = -0.1 }, "earthingSystemImpedanceOhms"},
		{"unknown method", func(_ *LoadSpecification, c *InstallationContext) { c.InstallationMethod = "stapled" }, "installationMethod"},
		{"unknown device", func(_ *LoadSpecification, c *InstallationContext) { c.ProtectiveDeviceFamily = "rewirable" }, "protectiveDeviceFamily"},
		{"power factor above one", func(l *LoadSpecification, _ *InstallationContext) { l.PowerFactor = 1.1 }, "powerFactor"},
		{"unknown phase", func(l *LoadSpecification, _ *InstallationContext) { l.PhaseConfiguration = "split" }, "phaseConfiguration"},
		{"infinite length", func(_ *LoadSpecification, c *InstallationContext) { c.CableLengthMeters = math.Inf(1) }, "cableLengthMeters"},
		{"infinite Ze", func(_ *LoadSpecification, c *InstallationContext) { c.EarthingSystemImpedanceOhms = math.Inf(1) }, "earthingSystemImpedanceOhms"},
		{"NaN ambient", func(_ *LoadSpecification, c *InstallationContext) { c.AmbientTemperatureCelsius = math.NaN() }, "ambientTemperatureCelsius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			load, ctx := cookerLoad(), domesticRun()
			tt.edit(&load, &ctx)

			_, _, err := Normalize(load, ctx, bs7671.DefaultTemplates(), NormalizeOptions{})
			var inputErr *InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestNormalizeAmbientCorrection(t *testing.T) {
	opts := NormalizeOptions{ApplyAmbientCorrection: true}

	t.Run("hot ambient derates", func(t *testing.T) {
		ctx := domesticRun()
		ctx.AmbientTemperatureCelsius = 40
		_, ctx, err := Normalize(cookerLoad(), ctx, nil, opts)
		require.NoError(t, err)
		assert.InDelta(t, 0.87, ctx.ThermalDeratingFactor, 1e-9)
	})

	t.Run("cool ambient never exceeds one", func(t *testing.T) {
		ctx := domesticRun()
		ctx.AmbientTemperatureCelsius = 20
		_, ctx, err := Normalize(cookerLoad(), ctx, nil, opts)
		require.NoError(t, err)
		assert.Equal(t, 1.0, ctx.ThermalDeratingFactor)
	})

	t.Run("beyond cable limit", func(t *testing.T) {
		ctx := domesticRun()
		ctx.AmbientTemperatureCelsius = 70
		_, _, err := Normalize(cookerLoad(), ctx, nil, opts)
		var inputErr *InvalidInputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "ambientTemperatureCelsius", inputErr.Field)
	})

	t.Run("ignored when disabled", func(t *testing.T) {
		ctx := domesticRun()
		ctx.AmbientTemperatureCelsius = 70
		_, ctx, err := Normalize(cookerLoad(), ctx, nil, NormalizeOptions{})
		require.NoError(t, err)
		assert.Equal(t, 1.0, ctx.ThermalDeratingFactor)
	})
}
