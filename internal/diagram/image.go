package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportVoltageDropChart exports the voltage drop curve to an image file.
// The format follows the extension (.png, .svg, .pdf); anything else is
// saved as PNG with the extension appended. It returns the path written.
func ExportVoltageDropChart(data CurveData, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Voltage Drop - %smm² at %.1fA", data.Cable.CrossSectionMm2, data.CurrentAmps)
	p.X.Label.Text = "Run length (m)"
	p.Y.Label.Text = "Voltage drop (%)"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	curve := data.Curve(50)
	dropPts := make(plotter.XYs, len(curve))
	for i, pt := range curve {
		dropPts[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	dropLine, err := plotter.NewLine(dropPts)
	if err != nil {
		return "", err
	}
	dropLine.LineStyle.Width = vg.Points(2)
	dropLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(dropLine)

	span := data.Span()
	limitLine, err := horizontal(span, data.LimitPercent, color.RGBA{R: 255, A: 255})
	if err != nil {
		return "", err
	}
	p.Add(limitLine)
	p.Legend.Add(fmt.Sprintf("limit %.0f%%", data.LimitPercent), limitLine)

	if data.MarginalBand > 0 {
		marginalLine, err := horizontal(span, data.LimitPercent+data.MarginalBand, color.RGBA{R: 255, G: 140, A: 255})
		if err != nil {
			return "", err
		}
		p.Add(marginalLine)
		p.Legend.Add("marginal", marginalLine)
	}

	designDrop := data.LengthMeters * data.percentPerMeter()
	design, err := plotter.NewScatter(plotter.XYs{{X: data.LengthMeters, Y: designDrop}})
	if err != nil {
		return "", err
	}
	design.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	design.GlyphStyle.Radius = vg.Points(5)
	design.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(design)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: data.LengthMeters, Y: designDrop}},
		Labels: []string{fmt.Sprintf("  %.1fm: %.2f%%", data.LengthMeters, designDrop)},
	})
	if err != nil {
		return "", err
	}
	p.Add(label)
	p.Legend.Top = true
	p.Legend.Left = true

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}

func horizontal(span, y float64, c color.Color) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: y}, {X: span, Y: y}})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = c
	line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	return line, nil
}
