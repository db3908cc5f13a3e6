package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gocable/internal/bs7671"
	"github.com/alexiusacademia/gocable/internal/circuit"
)

func sampleExport(t *testing.T) *Export {
	t.Helper()
	load := circuit.LoadSpecification{
		TotalLoadWatts:     2000,
		Voltage:            230,
		PhaseConfiguration: bs7671.PhaseSingle,
		PowerFactor:        0.95,
		LoadCategory:       bs7671.CategoryLighting,
	}
	ctx := circuit.InstallationContext{
		CableLengthMeters:           100,
		InstallationMethod:          bs7671.InstallClippedDirect,
		AmbientTemperatureCelsius:   30,
		GroupingFactor:              1,
		ThermalDeratingFactor:       1,
		EarthingSystemImpedanceOhms: 0.8,
		ProtectiveDeviceFamily:      bs7671.DeviceMCBTypeB,
	}
	result, err := circuit.Calculate(load, ctx)
	require.NoError(t, err)
	return NewExport(load, ctx, result, time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.FixedZone("BST", 3600)))
}

func TestJSONRoundTrip(t *testing.T) {
	e := sampleExport(t)

	data, err := BuildJSON(e)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "planData")
	assert.Contains(t, raw, "results")
	assert.Equal(t, "2026-03-14T08:26:53Z", raw["timestamp"])

	parsed, err := ParseExport(data)
	require.NoError(t, err)
	assert.Equal(t, e, parsed)
	assert.Len(t, parsed.Results.Warnings, 2)
}

func TestParseExportRejectsIncomplete(t *testing.T) {
	_, err := ParseExport([]byte(`{"planData":{}}`))
	assert.ErrorContains(t, err, "no results")

	_, err = ParseExport([]byte(`{"results":{}}`))
	assert.ErrorContains(t, err, "no timestamp")

	_, err = ParseExport([]byte(`not json`))
	assert.ErrorContains(t, err, "failed to parse export")
}

func TestBuildPDF(t *testing.T) {
	data, err := BuildPDF(sampleExport(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	_, err = BuildPDF(&Export{})
	assert.Error(t, err)
}

func TestBuildXLSX(t *testing.T) {
	e := sampleExport(t)
	data, err := BuildXLSX(e)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, InputsSheet, NotesSheet}, f.GetSheetList())

	cable, err := f.GetCellValue(SummarySheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "1.5", cable)

	suitability, err := f.GetCellValue(SummarySheet, "B10")
	require.NoError(t, err)
	assert.Equal(t, "unsuitable", suitability)

	method, err := f.GetCellValue(InputsSheet, "B7")
	require.NoError(t, err)
	assert.Equal(t, "clipped-direct", method)

	rows, err := f.GetRows(NotesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1+len(e.Results.Warnings)+len(e.Results.Recommendations))
	assert.Equal(t, "warning", rows[1][0])
}

func TestRender(t *testing.T) {
	e := sampleExport(t)
	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			data, err := Render(format, e)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}

	format, err := ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, format)
	assert.Equal(t, "application/pdf", format.ContentType())
	assert.Equal(t, "cable-calculation-20260314-082653.pdf", format.Filename(e))

	_, err = ParseFormat("docx")
	assert.Error(t, err)
}
