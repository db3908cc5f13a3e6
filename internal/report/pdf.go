package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Core PDF fonts have no omega.
var pdfText = strings.NewReplacer("Ω", " ohm")

// BuildPDF renders a one-page design summary.
func BuildPDF(e *Export) ([]byte, error) {
	if e == nil || e.Results == nil {
		return nil, errors.New("export has no results")
	}
	load, inst, r := e.PlanData.Load, e.PlanData.Installation, e.Results

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfText.Replace(s)) }

	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()
	pdf.Cell(0, 8, "Cable Sizing Calculation")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", e.Timestamp.Format(time.RFC3339)))
	pdf.Ln(8)

	section := func(title string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, title)
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
	}
	row := func(label, value string) {
		pdf.CellFormat(70, 6, text(label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(100, 6, text(value), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	section("Load")
	row("Category", string(load.LoadCategory))
	row("Total load", fmt.Sprintf("%.0f W", load.TotalLoadWatts))
	row("Voltage", fmt.Sprintf("%.0f V %s phase", load.Voltage, load.PhaseConfiguration))
	row("Power factor", fmt.Sprintf("%.2f", load.PowerFactor))
	pdf.Ln(4)

	section("Installation")
	row("Cable length", fmt.Sprintf("%.1f m", inst.CableLengthMeters))
	row("Installation method", string(inst.InstallationMethod))
	row("Ambient temperature", fmt.Sprintf("%.0f °C", inst.AmbientTemperatureCelsius))
	row("Grouping / derating", fmt.Sprintf("%.2f / %.2f", inst.GroupingFactor, inst.ThermalDeratingFactor))
	row("Ze", fmt.Sprintf("%.2fΩ", inst.EarthingSystemImpedanceOhms))
	row("Protective device", string(inst.ProtectiveDeviceFamily))
	pdf.Ln(4)

	section("Results")
	row("Design current Ib", fmt.Sprintf("%.2f A", r.DesignCurrentAmps))
	row("Corrected current It", fmt.Sprintf("%.2f A", r.CorrectedCurrentAmps))
	row("Recommended cable", fmt.Sprintf("%s mm² (%.0f A)", r.RecommendedCable.CrossSectionMm2, r.RecommendedCable.RatedCurrentAmps))
	row("Voltage drop", fmt.Sprintf("%.2f V (%.2f%% of %.0f%% limit)", r.VoltageDropVolts, r.VoltageDropPercent, r.VoltageDropLimitPercent))
	row("Suitability", string(r.Suitability))
	row("Zs / max Zs", fmt.Sprintf("%.3fΩ / %.2fΩ", r.EarthFaultLoopImpedanceOhms, r.MaxEarthFaultLoopImpedanceOhms))
	row("Protective device", fmt.Sprintf("%.0f A (use %.0f A)", r.ProtectiveDeviceRatingAmps, r.StandardDeviceRatingAmps))
	pdf.Ln(4)

	if len(r.Warnings) > 0 {
		section("Warnings")
		for _, w := range r.Warnings {
			pdf.MultiCell(0, 5, text("- "+w), "", "L", false)
		}
		pdf.Ln(2)
	}
	section("Recommendations")
	for _, rec := range r.Recommendations {
		pdf.MultiCell(0, 5, text("- "+rec), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
