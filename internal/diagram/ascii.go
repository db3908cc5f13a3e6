package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gocable/internal/bs7671"
)

// DrawVoltageDropChart plots voltage drop (%) against run length with the
// limit as a flat second series.
func DrawVoltageDropChart(data CurveData) string {
	const samples = 60
	curve := data.Curve(samples)

	drop := make([]float64, len(curve))
	limit := make([]float64, len(curve))
	for i, p := range curve {
		drop[i] = p.Y
		limit[i] = data.LimitPercent
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  VOLTAGE DROP vs RUN LENGTH\n")
	sb.WriteString("  ──────────────────────────\n\n")
	sb.WriteString(asciigraph.PlotMany([][]float64{drop, limit},
		asciigraph.Height(12),
		asciigraph.Width(samples),
		asciigraph.Precision(1),
		asciigraph.LowerBound(0),
		asciigraph.Caption(fmt.Sprintf("%% drop over 0-%.0f m, %smm² at %.1fA (flat line = %.0f%% limit)",
			data.Span(), data.Cable.CrossSectionMm2, data.CurrentAmps, data.LimitPercent)),
	))
	sb.WriteString("\n\n")

	maxLen := data.MaxLength(data.LimitPercent)
	sb.WriteString(fmt.Sprintf("  Design length = %.1f m\n", data.LengthMeters))
	sb.WriteString(fmt.Sprintf("  Max length within %.0f%% limit = %.1f m\n", data.LimitPercent, maxLen))

	return sb.String()
}

// DrawCapacityBars draws each cable's rating as a bar against the corrected
// current, marking the selected size.
func DrawCapacityBars(table []bs7671.CableCandidate, corrected float64, selected string) string {
	var sb strings.Builder

	width := 40
	largest := corrected
	for _, c := range table {
		largest = max(largest, c.RatedCurrentAmps)
	}
	if largest <= 0 {
		return ""
	}
	scale := float64(width) / largest
	marker := int(corrected * scale)

	sb.WriteString("\n")
	sb.WriteString("  CABLE CAPACITY vs CORRECTED CURRENT\n")
	sb.WriteString("  ───────────────────────────────────\n\n")

	for _, c := range table {
		barLen := int(c.RatedCurrentAmps * scale)
		bar := []rune(strings.Repeat("█", barLen) + strings.Repeat(" ", width-barLen))
		if marker < len(bar) {
			bar[marker] = '┊'
		}
		mark := ""
		if c.CrossSectionMm2 == selected {
			mark = " ◄─ selected"
		}
		sb.WriteString(fmt.Sprintf("  %6s mm² │%s %5.0fA%s\n", c.CrossSectionMm2, string(bar), c.RatedCurrentAmps, mark))
	}
	sb.WriteString(fmt.Sprintf("\n  ┊ = corrected current It = %.1f A\n", corrected))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
