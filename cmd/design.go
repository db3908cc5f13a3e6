package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alexiusacademia/gocable/internal/bs7671"
	"github.com/alexiusacademia/gocable/internal/circuit"
	"github.com/alexiusacademia/gocable/internal/diagram"
	"github.com/alexiusacademia/gocable/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Load inputs
	designLoad     float64
	designVoltage  float64
	designPhase    string
	designPF       float64
	designCategory string

	// Installation inputs
	designLength   float64
	designMethod   string
	designAmbient  float64
	designGrouping float64
	designDerating float64
	designZe       float64
	designDevice   string

	// Calculation options
	designBasis             string
	designAmbientCorrection bool
	designCableType         string

	// Output options
	designExport     string
	designExportFile string
	designChart      bool
	designBars       bool
	designPlotFile   string
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Size a cable and check voltage drop, Zs and protection",
	Long: `Run the full sizing pipeline for one circuit:

  1. Design current Ib from load, voltage and phase
  2. Corrected current It = Ib / (Cg × Cd)
  3. Smallest cable from the capacity table with rating ≥ It
  4. Voltage drop against the category limit (3% lighting, 5% other)
  5. Earth fault loop impedance Zs = Ze + (R1+R2) against the device maximum
  6. Protective device rating from It × 1.45

Unset optional inputs (voltage, phase, power factor, installation method,
device) are taken from the load category template.

Examples:
  # 7.2kW cooker, 20m clipped direct
  gocable design --load 7200 --category cooker --length 20

  # 11kW three phase motor on cable tray, grouped with 3 other circuits
  gocable design --load 11000 --category motor --length 45 --grouping 0.65

  # Size from SWA ratings for the installation's reference method
  gocable design --load 9000 --length 30 --method direct-buried --reference-method swa-xlpe

  # Export a PDF report and a voltage drop chart
  gocable design --load 7200 --length 20 --export pdf --plot vd.png`,
	RunE: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	// Load flags
	designCmd.Flags().Float64VarP(&designLoad, "load", "p", 0, "Total load (W) [required]")
	designCmd.Flags().Float64VarP(&designVoltage, "voltage", "v", 230, "Nominal supply voltage (V) (default from category)")
	designCmd.Flags().StringVar(&designPhase, "phase", "", "Phase configuration: single or three (default from category)")
	designCmd.Flags().Float64Var(&designPF, "pf", 0, "Power factor (default from category)")
	designCmd.Flags().StringVarP(&designCategory, "category", "c", "", "Load category, e.g. lighting, cooker, motor")

	// Installation flags
	designCmd.Flags().Float64VarP(&designLength, "length", "l", 0, "Cable run length (m) [required]")
	designCmd.Flags().StringVarP(&designMethod, "method", "m", "", "Installation method (default from category)")
	designCmd.Flags().Float64Var(&designAmbient, "ambient", bs7671.ReferenceAmbientC, "Ambient temperature (°C)")
	designCmd.Flags().Float64Var(&designGrouping, "grouping", 1, "Grouping factor Cg")
	designCmd.Flags().Float64Var(&designDerating, "derating", 1, "Thermal derating factor")
	designCmd.Flags().Float64Var(&designZe, "ze", 0.35, "External earth fault loop impedance Ze (Ω)")
	designCmd.Flags().StringVarP(&designDevice, "device", "d", "", "Protective device family, e.g. mcb-b (default from category)")

	designCmd.MarkFlagRequired("load")
	designCmd.MarkFlagRequired("length")

	// Calculation options
	designCmd.Flags().StringVar(&designBasis, "basis", "", "Current basis: real-power or apparent-power (overrides config)")
	designCmd.Flags().BoolVar(&designAmbientCorrection, "ambient-correction", false, "Apply the ambient temperature factor Ca")
	designCmd.Flags().StringVar(&designCableType, "reference-method", "", "Size from the cable database for this cable type, e.g. swa-xlpe")

	// Output options
	designCmd.Flags().StringVar(&designExport, "export", "", "Export the calculation: json, pdf or xlsx")
	designCmd.Flags().StringVarP(&designExportFile, "output", "o", "", "Export file name (default: generated)")
	designCmd.Flags().BoolVar(&designChart, "chart", false, "Show ASCII voltage drop chart")
	designCmd.Flags().BoolVar(&designBars, "bars", false, "Show cable capacity bars")
	designCmd.Flags().StringVar(&designPlotFile, "plot", "", "Export voltage drop chart to file (png, svg, pdf)")
}

func runDesign(cmd *cobra.Command, args []string) error {
	calc, err := designCalculator()
	if err != nil {
		return err
	}

	voltage := designVoltage
	if !cmd.Flags().Changed("voltage") {
		tpl, _ := calc.Templates.Lookup(bs7671.ParseLoadCategory(designCategory))
		voltage = tpl.Voltage
	}

	load := circuit.LoadSpecification{
		TotalLoadWatts:     designLoad,
		Voltage:            voltage,
		PhaseConfiguration: bs7671.Phase(designPhase),
		PowerFactor:        designPF,
		LoadCategory:       bs7671.LoadCategory(designCategory),
	}
	ctx := circuit.InstallationContext{
		CableLengthMeters:           designLength,
		InstallationMethod:          bs7671.InstallationMethod(designMethod),
		AmbientTemperatureCelsius:   designAmbient,
		GroupingFactor:              designGrouping,
		ThermalDeratingFactor:       designDerating,
		EarthingSystemImpedanceOhms: designZe,
		ProtectiveDeviceFamily:      bs7671.DeviceFamily(designDevice),
	}

	normLoad, normCtx, err := calc.Normalize(load, ctx)
	if err != nil {
		return err
	}
	result, err := calc.Calculate(load, ctx)
	if err != nil {
		return err
	}
	logger.Debug("Calculated",
		slog.String("cable", result.RecommendedCable.CrossSectionMm2),
		slog.String("suitability", string(result.Suitability)),
		slog.Bool("compliant", result.IsCompliant()))

	out := cmd.OutOrStdout()
	printDesignReport(out, calc, normLoad, normCtx, result)

	if designBars {
		table, err := calc.TableFor(normCtx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, diagram.DrawCapacityBars(table, result.CorrectedCurrentAmps, result.RecommendedCable.CrossSectionMm2))
	}

	curve := diagram.NewCurveData(result, normLoad, normCtx, calc.Policy.MarginalBand)
	if designChart {
		fmt.Fprintln(out, diagram.DrawVoltageDropChart(curve))
	}
	if designPlotFile != "" {
		path, err := diagram.ExportVoltageDropChart(curve, designPlotFile)
		if err != nil {
			return fmt.Errorf("export chart: %w", err)
		}
		fmt.Fprintf(out, "Chart exported to: %s\n", path)
	}

	if designExport != "" {
		format, err := report.ParseFormat(designExport)
		if err != nil {
			return err
		}
		export := report.NewExport(normLoad, normCtx, result, time.Now())
		data, err := report.Render(format, export)
		if err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}
		path := designExportFile
		if path == "" {
			path = format.Filename(export)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintf(out, "Calculation exported to: %s\n", path)
	}

	return nil
}

// designCalculator applies the command line options over the configured calculator.
func designCalculator() (*circuit.Calculator, error) {
	calc, err := cfg.Calculator()
	if err != nil {
		return nil, err
	}
	if designBasis != "" {
		basis := circuit.CurrentBasis(designBasis)
		if !basis.Valid() {
			return nil, fmt.Errorf("--basis must be real-power or apparent-power, got %q", designBasis)
		}
		calc.Basis = basis
	}
	if designAmbientCorrection {
		calc.Options.ApplyAmbientCorrection = true
	}
	if designCableType != "" {
		return calc.WithReferenceMethodTable(designCableType)
	}
	return calc, nil
}

func printDesignReport(out io.Writer, calc *circuit.Calculator, load circuit.LoadSpecification, ctx circuit.InstallationContext, r *circuit.CalculationResult) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintln(out, "     CABLE SIZING CALCULATION - BS 7671 (SIMPLIFIED)")
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintln(out)

	// Input summary
	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, lightRule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load category:\t%s\n", categoryLabel(load.LoadCategory))
	fmt.Fprintf(w, "  Total load:\t%.0f W\n", load.TotalLoadWatts)
	fmt.Fprintf(w, "  Supply:\t%.0f V %s phase\n", load.Voltage, load.PhaseConfiguration)
	fmt.Fprintf(w, "  Power factor:\t%.2f\n", load.PowerFactor)
	fmt.Fprintf(w, "  Cable length:\t%.1f m\n", ctx.CableLengthMeters)
	fmt.Fprintf(w, "  Installation method:\t%s\n", methodLabel(ctx.InstallationMethod))
	fmt.Fprintf(w, "  Ambient temperature:\t%.0f °C\n", ctx.AmbientTemperatureCelsius)
	fmt.Fprintf(w, "  Grouping factor (Cg):\t%.2f\n", ctx.GroupingFactor)
	fmt.Fprintf(w, "  Thermal derating (Cd):\t%.3f\n", ctx.ThermalDeratingFactor)
	fmt.Fprintf(w, "  Ze:\t%.2f Ω\n", ctx.EarthingSystemImpedanceOhms)
	fmt.Fprintf(w, "  Protective device:\t%s\n", ctx.ProtectiveDeviceFamily)
	w.Flush()
	fmt.Fprintln(out)

	// Currents
	fmt.Fprintln(out, "CURRENTS:")
	fmt.Fprintln(out, lightRule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Design current (Ib):\t%.2f A\t(%s basis)\n", r.DesignCurrentAmps, basisLabel(calc.Basis))
	fmt.Fprintf(w, "  Corrected current (It):\t%.2f A\n", r.CorrectedCurrentAmps)
	w.Flush()
	fmt.Fprintln(out)

	// Cable
	fmt.Fprintln(out, "CABLE SELECTION:")
	fmt.Fprintln(out, lightRule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	table := "simplified table"
	if calc.CableType != "" {
		if info, ok := ctx.InstallationMethod.Lookup(); ok {
			table = fmt.Sprintf("%s, reference method %s", calc.CableType, info.ReferenceMethod)
		}
	}
	fmt.Fprintf(w, "  Table:\t%s\n", table)
	fmt.Fprintf(w, "  Cable:\t%s mm²\n", r.RecommendedCable.CrossSectionMm2)
	fmt.Fprintf(w, "  Rated current:\t%.0f A\t%s\n", r.RecommendedCable.RatedCurrentAmps, checkMark(r.CableAdequate, "≥ It", "< It"))
	w.Flush()
	fmt.Fprintln(out)

	// Voltage drop
	fmt.Fprintln(out, "VOLTAGE DROP:")
	fmt.Fprintln(out, lightRule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  mV/A/m:\t%.2f\n", r.RecommendedCable.MillivoltPerAmpMeter)
	fmt.Fprintf(w, "  Voltage drop:\t%.2f V (%.2f%%)\n", r.VoltageDropVolts, r.VoltageDropPercent)
	fmt.Fprintf(w, "  Limit:\t%.1f%%\n", r.VoltageDropLimitPercent)
	fmt.Fprintf(w, "  Suitability:\t%s\n", r.Suitability)
	w.Flush()
	fmt.Fprintln(out)

	// Earth fault loop impedance
	fmt.Fprintln(out, "EARTH FAULT LOOP IMPEDANCE:")
	fmt.Fprintln(out, lightRule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  R1+R2:\t%.3f Ω\n", r.EarthFaultLoopImpedanceOhms-ctx.EarthingSystemImpedanceOhms)
	fmt.Fprintf(w, "  Zs = Ze + (R1+R2):\t%.3f Ω\n", r.EarthFaultLoopImpedanceOhms)
	fmt.Fprintf(w, "  Max Zs:\t%.2f Ω\t%s\n", r.MaxEarthFaultLoopImpedanceOhms, checkMark(r.LoopImpedanceCompliant, "compliant", "exceeded"))
	w.Flush()
	fmt.Fprintln(out)

	// Protection
	fmt.Fprintln(out, "PROTECTIVE DEVICE:")
	fmt.Fprintln(out, lightRule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Minimum rating (It × %.2f):\t%.0f A\n", calc.Policy.DeviceMargin, r.ProtectiveDeviceRatingAmps)
	fmt.Fprintf(w, "  Standard rating:\t%.0f A %s\n", r.StandardDeviceRatingAmps, ctx.ProtectiveDeviceFamily)
	w.Flush()
	fmt.Fprintln(out)

	status := "DESIGN COMPLIANT"
	if !r.IsCompliant() {
		status = "DESIGN NEEDS ATTENTION"
	}
	fmt.Fprintln(out, "DESIGN RESULT:")
	fmt.Fprintln(out, lightRule)
	fmt.Fprint(out, diagram.DrawSummaryBox(status, []string{
		fmt.Sprintf("Cable: %s mm² (%.0f A)", r.RecommendedCable.CrossSectionMm2, r.RecommendedCable.RatedCurrentAmps),
		fmt.Sprintf("Voltage drop: %.2f%% (%s)", r.VoltageDropPercent, r.Suitability),
		fmt.Sprintf("Zs: %.3f Ω (max %.2f Ω)", r.EarthFaultLoopImpedanceOhms, r.MaxEarthFaultLoopImpedanceOhms),
		fmt.Sprintf("Device: %.0f A %s", r.StandardDeviceRatingAmps, ctx.ProtectiveDeviceFamily),
	}))
	fmt.Fprintln(out)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(out, "WARNINGS:")
		fmt.Fprintln(out, lightRule)
		for _, warning := range r.Warnings {
			fmt.Fprintf(out, "  ⚠ %s\n", warning)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "RECOMMENDATIONS:")
	fmt.Fprintln(out, lightRule)
	for _, rec := range r.Recommendations {
		fmt.Fprintf(out, "  • %s\n", rec)
	}
	fmt.Fprintln(out)
}

func categoryLabel(c bs7671.LoadCategory) string {
	switch {
	case c == "":
		return "(none)"
	case !c.Known():
		return string(c) + " (unrecognised, general defaults)"
	default:
		return string(c)
	}
}

func methodLabel(m bs7671.InstallationMethod) string {
	if info, ok := m.Lookup(); ok {
		return fmt.Sprintf("%s (ref. %s)", info.Name, info.ReferenceMethod)
	}
	return string(m)
}

func basisLabel(b circuit.CurrentBasis) string {
	if b == "" {
		return string(circuit.RealPowerBasis)
	}
	return string(b)
}

func checkMark(ok bool, pass, fail string) string {
	if ok {
		return "✓ " + pass
	}
	return "✗ " + fail
}
