package report

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the workbook export.
const (
	SummarySheet = "summary"
	InputsSheet  = "inputs"
	NotesSheet   = "notes"
)

// BuildXLSX renders the export as a workbook with summary, inputs and notes sheets.
func BuildXLSX(e *Export) ([]byte, error) {
	if e == nil || e.Results == nil {
		return nil, errors.New("export has no results")
	}
	load, inst, r := e.PlanData.Load, e.PlanData.Installation, e.Results

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(InputsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(NotesSheet); err != nil {
		return nil, err
	}

	summary := [][2]interface{}{
		{"Cable Sizing Calculation", e.Timestamp.Format(time.RFC3339)},
		{"Design current (A)", r.DesignCurrentAmps},
		{"Corrected current (A)", r.CorrectedCurrentAmps},
		{"Cable (mm²)", r.RecommendedCable.CrossSectionMm2},
		{"Cable rating (A)", r.RecommendedCable.RatedCurrentAmps},
		{"Cable adequate", r.CableAdequate},
		{"Voltage drop (V)", r.VoltageDropVolts},
		{"Voltage drop (%)", r.VoltageDropPercent},
		{"Voltage drop limit (%)", r.VoltageDropLimitPercent},
		{"Suitability", string(r.Suitability)},
		{"Zs (Ω)", r.EarthFaultLoopImpedanceOhms},
		{"Max Zs (Ω)", r.MaxEarthFaultLoopImpedanceOhms},
		{"Zs compliant", r.LoopImpedanceCompliant},
		{"Device rating (A)", r.ProtectiveDeviceRatingAmps},
		{"Standard device (A)", r.StandardDeviceRatingAmps},
	}
	if err := writeRows(f, SummarySheet, summary); err != nil {
		return nil, err
	}

	inputs := [][2]interface{}{
		{"Load category", string(load.LoadCategory)},
		{"Total load (W)", load.TotalLoadWatts},
		{"Voltage (V)", load.Voltage},
		{"Phase", string(load.PhaseConfiguration)},
		{"Power factor", load.PowerFactor},
		{"Cable length (m)", inst.CableLengthMeters},
		{"Installation method", string(inst.InstallationMethod)},
		{"Ambient temperature (°C)", inst.AmbientTemperatureCelsius},
		{"Grouping factor", inst.GroupingFactor},
		{"Thermal derating factor", inst.ThermalDeratingFactor},
		{"Ze (Ω)", inst.EarthingSystemImpedanceOhms},
		{"Protective device", string(inst.ProtectiveDeviceFamily)},
	}
	if err := writeRows(f, InputsSheet, inputs); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(NotesSheet, "A1", "Type")
	_ = f.SetCellValue(NotesSheet, "B1", "Note")
	row := 2
	for _, w := range r.Warnings {
		_ = f.SetCellValue(NotesSheet, fmt.Sprintf("A%d", row), "warning")
		_ = f.SetCellValue(NotesSheet, fmt.Sprintf("B%d", row), w)
		row++
	}
	for _, rec := range r.Recommendations {
		_ = f.SetCellValue(NotesSheet, fmt.Sprintf("A%d", row), "recommendation")
		_ = f.SetCellValue(NotesSheet, fmt.Sprintf("B%d", row), rec)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][2]interface{}) error {
	for i, kv := range rows {
		n := i + 1
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", n), kv[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", n), kv[1]); err != nil {
			return err
		}
	}
	return nil
}
