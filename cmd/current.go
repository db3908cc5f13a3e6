package cmd

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/alexiusacademia/gocable/internal/bs7671"
	"github.com/alexiusacademia/gocable/internal/circuit"
	"github.com/spf13/cobra"
)

var (
	currentLoad     float64
	currentVoltage  float64
	currentPhase    string
	currentPF       float64
	currentBasis    string
	currentGrouping float64
	currentDerating float64
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Calculate design and corrected current only",
	Long: `Calculate the design current Ib for a load:

  Single phase:  Ib = P / V
  Three phase:   Ib = P / (√3 × V)

With the apparent-power basis P is first divided by the power factor.
The corrected current It = Ib / (Cg × Cd) is shown when factors are given.

Examples:
  gocable current --load 7200
  gocable current --load 11000 --voltage 400 --phase three
  gocable current --load 7200 --pf 0.8 --basis apparent-power --grouping 0.7`,
	RunE: runCurrent,
}

func init() {
	rootCmd.AddCommand(currentCmd)

	currentCmd.Flags().Float64VarP(&currentLoad, "load", "p", 0, "Total load (W) [required]")
	currentCmd.Flags().Float64VarP(&currentVoltage, "voltage", "v", 230, "Nominal supply voltage (V)")
	currentCmd.Flags().StringVar(&currentPhase, "phase", string(bs7671.PhaseSingle), "Phase configuration: single or three")
	currentCmd.Flags().Float64Var(&currentPF, "pf", 1, "Power factor")
	currentCmd.Flags().StringVar(&currentBasis, "basis", "", "Current basis: real-power or apparent-power (overrides config)")
	currentCmd.Flags().Float64Var(&currentGrouping, "grouping", 1, "Grouping factor Cg")
	currentCmd.Flags().Float64Var(&currentDerating, "derating", 1, "Thermal derating factor")

	currentCmd.MarkFlagRequired("load")
}

func runCurrent(cmd *cobra.Command, args []string) error {
	basis := cfg.Policy.CurrentBasis
	if currentBasis != "" {
		basis = circuit.CurrentBasis(currentBasis)
	}
	if !basis.Valid() {
		return fmt.Errorf("--basis must be real-power or apparent-power, got %q", basis)
	}

	load := circuit.LoadSpecification{
		TotalLoadWatts:     currentLoad,
		Voltage:            currentVoltage,
		PhaseConfiguration: bs7671.Phase(currentPhase),
		PowerFactor:        currentPF,
	}
	ib, err := circuit.DesignCurrent(load, basis)
	if err != nil {
		return err
	}
	for _, f := range []struct {
		name  string
		value float64
	}{{"grouping", currentGrouping}, {"derating", currentDerating}} {
		if !(f.value > 0 && f.value <= 1) {
			return fmt.Errorf("--%s must be in (0, 1], got %g", f.name, f.value)
		}
	}
	it := circuit.CorrectedCurrent(ib, currentGrouping, currentDerating)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "DESIGN CURRENT:")
	fmt.Fprintln(out, lightRule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Formula:\t%s\n", currentFormula(load, basis))
	fmt.Fprintf(w, "  Basis:\t%s\n", basis)
	fmt.Fprintf(w, "  Design current (Ib):\t%.2f A\n", ib)
	fmt.Fprintf(w, "  Corrected current (It):\t%.2f A\n", it)
	w.Flush()
	fmt.Fprintln(out)

	if it > cfg.Policy.LoadSplitThreshold {
		fmt.Fprintf(cmd.ErrOrStderr(), "  ⚠ It exceeds %.0f A - consider load splitting\n", cfg.Policy.LoadSplitThreshold)
	}
	return nil
}

func currentFormula(load circuit.LoadSpecification, basis circuit.CurrentBasis) string {
	apparent := basis == circuit.ApparentPowerBasis
	switch {
	case load.PhaseConfiguration == bs7671.PhaseThree && apparent:
		return fmt.Sprintf("Ib = P / (pf × √3 × V) = %.0f / (%.2f × %.3f × %.0f)",
			load.TotalLoadWatts, load.PowerFactor, math.Sqrt(3), load.Voltage)
	case load.PhaseConfiguration == bs7671.PhaseThree:
		return fmt.Sprintf("Ib = P / (√3 × V) = %.0f / (%.3f × %.0f)", load.TotalLoadWatts, math.Sqrt(3), load.Voltage)
	case apparent:
		return fmt.Sprintf("Ib = P / (pf × V) = %.0f / (%.2f × %.0f)", load.TotalLoadWatts, load.PowerFactor, load.Voltage)
	default:
		return fmt.Sprintf("Ib = P / V = %.0f / %.0f", load.TotalLoadWatts, load.Voltage)
	}
}
