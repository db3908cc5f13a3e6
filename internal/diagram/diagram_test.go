package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocable/internal/bs7671"
)

func cookerCurve() CurveData {
	return CurveData{
		Cable:        bs7671.CableCandidate{CrossSectionMm2: "4.0", RatedCurrentAmps: 36, MillivoltPerAmpMeter: 11, ResistancePerKmOhms: 16.71},
		CurrentAmps:  20,
		Voltage:      230,
		LengthMeters: 20,
		LimitPercent: 5,
		MarginalBand: 1,
	}
}

func TestCurveData(t *testing.T) {
	data := cookerCurve()

	// 5% of 230V = 11.5V; 11.5V / (20A x 11mV) = 52.27m
	assert.InDelta(t, 52.2727, data.MaxLength(5), 1e-3)
	assert.InDelta(t, 62.7273*1.2, data.Span(), 1e-3)

	curve := data.Curve(10)
	require.Len(t, curve, 11)
	assert.Equal(t, 0.0, curve[0].Y)
	assert.InDelta(t, data.Span(), curve[10].X, 1e-9)
	for i := 1; i < len(curve); i++ {
		assert.Greater(t, curve[i].Y, curve[i-1].Y)
	}

	flat := CurveData{Voltage: 230, LengthMeters: 10}
	assert.True(t, flat.MaxLength(5) > 1e300)
	assert.Equal(t, 15.0, flat.Span())
}

func TestDrawVoltageDropChart(t *testing.T) {
	out := DrawVoltageDropChart(cookerCurve())
	assert.Contains(t, out, "VOLTAGE DROP vs RUN LENGTH")
	assert.Contains(t, out, "4.0mm²")
	assert.Contains(t, out, "Max length within 5% limit = 52.3 m")
}

func TestDrawCapacityBars(t *testing.T) {
	out := DrawCapacityBars(bs7671.DefaultCableTable(), 31.3, "4.0")
	lines := strings.Split(out, "\n")

	var selected []string
	for _, l := range lines {
		if strings.Contains(l, "selected") {
			selected = append(selected, l)
		}
	}
	require.Len(t, selected, 1)
	assert.Contains(t, selected[0], "4.0 mm²")
	assert.Contains(t, out, "It = 31.3 A")

	assert.Empty(t, DrawCapacityBars(nil, 0, ""))
}

func TestDrawSummaryBoxAligned(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"Cable: 4.0 mm²", "Zs: 0.684Ω"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l), l)
	}
}

func TestExportVoltageDropChart(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"drop.png", "drop.svg", "out/drop.pdf"} {
		t.Run(name, func(t *testing.T) {
			path, err := ExportVoltageDropChart(cookerCurve(), filepath.Join(dir, name))
			require.NoError(t, err)
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		})
	}

	path, err := ExportVoltageDropChart(cookerCurve(), filepath.Join(dir, "drop"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "drop.png"), path)
}
