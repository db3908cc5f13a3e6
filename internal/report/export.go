// Package report renders a completed calculation as a downloadable artifact.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexiusacademia/gocable/internal/circuit"
)

// PlanData is the input half of an export.
type PlanData struct {
	Load         circuit.LoadSpecification   `json:"load"`
	Installation circuit.InstallationContext `json:"installation"`
}

// Export is the saved form of one calculation: the inputs, the result and
// when it was produced.
type Export struct {
	PlanData  PlanData                   `json:"planData"`
	Results   *circuit.CalculationResult `json:"results"`
	Timestamp time.Time                  `json:"timestamp"`
}

// NewExport bundles a calculation. The timestamp is stored in UTC to the
// second so it serialises as plain RFC 3339.
func NewExport(load circuit.LoadSpecification, ctx circuit.InstallationContext, result *circuit.CalculationResult, at time.Time) *Export {
	return &Export{
		PlanData:  PlanData{Load: load, Installation: ctx},
		Results:   result,
		Timestamp: at.UTC().Truncate(time.Second),
	}
}

// BuildJSON renders the export as indented JSON.
func BuildJSON(e *Export) ([]byte, error) {
	if e == nil || e.Results == nil {
		return nil, errors.New("export has no results")
	}
	return json.MarshalIndent(e, "", "  ")
}

// ParseExport reads an export produced by BuildJSON.
func ParseExport(data []byte) (*Export, error) {
	var e Export
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("failed to parse export: %w", err)
	}
	if e.Results == nil {
		return nil, errors.New("export has no results")
	}
	if e.Timestamp.IsZero() {
		return nil, errors.New("export has no timestamp")
	}
	return &e, nil
}

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatPDF, FormatXLSX}

// ParseFormat accepts a format name in any case.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want json, pdf or xlsx)", name)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// Filename returns a download name for the export.
func (f Format) Filename(e *Export) string {
	return fmt.Sprintf("cable-calculation-%s.%s", e.Timestamp.Format("20060102-150405"), f)
}

// Render builds the export in the given format.
func Render(f Format, e *Export) ([]byte, error) {
	switch f {
	case FormatJSON:
		return BuildJSON(e)
	case FormatPDF:
		return BuildPDF(e)
	case FormatXLSX:
		return BuildXLSX(e)
	default:
		return nil, fmt.Errorf("unknown export format %q", f)
	}
}
