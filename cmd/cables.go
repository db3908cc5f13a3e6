package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gocable/internal/bs7671"
	"github.com/spf13/cobra"
)

var (
	cablesType    string
	cablesMethod  string
	cablesCurrent float64
	cablesSize    float64
	cablesBudget  float64
)

var cablesCmd = &cobra.Command{
	Use:   "cables",
	Short: "List cable capacity tables",
	Long: `List the simplified cable table used for sizing, or with --type the
database ratings and prices for one cable type. --method alone lists the cable
types rated for a BS 7671 reference method; add --current to keep only types
with a size rated for that current. --size with --type lists cheaper cable
types in the same size.

Examples:
  gocable cables
  gocable cables --type swa-xlpe --method D2
  gocable cables --type pvc-twin-earth
  gocable cables --method C --current 100
  gocable cables --type swa-xlpe --size 4 --budget 5`,
	RunE: runCables,
}

func init() {
	rootCmd.AddCommand(cablesCmd)

	cablesCmd.Flags().StringVarP(&cablesType, "type", "t", "", "Cable type from the database, e.g. pvc-twin-earth")
	cablesCmd.Flags().StringVarP(&cablesMethod, "method", "m", "", "Reference method, e.g. C, D2")
	cablesCmd.Flags().Float64Var(&cablesCurrent, "current", 0, "Minimum rating (A) with --method")
	cablesCmd.Flags().Float64Var(&cablesSize, "size", 0, "Cross section (mm²) to find cheaper alternatives for, with --type")
	cablesCmd.Flags().Float64Var(&cablesBudget, "budget", 0, "Maximum retail price per metre (£) with --size (default no limit)")
}

func runCables(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if cablesType == "" && cablesMethod != "" {
		return printCableTypesFor(out, bs7671.ReferenceMethod(strings.ToUpper(cablesMethod)), cablesCurrent)
	}
	if cablesCurrent > 0 {
		return fmt.Errorf("--current needs --method without --type")
	}
	if cablesSize > 0 {
		if cablesType == "" {
			return fmt.Errorf("--size needs --type")
		}
		budget := cablesBudget
		if budget <= 0 {
			budget = math.Inf(1)
		}
		return printAlternatives(out, cablesType, cablesSize, budget)
	}

	if cablesType == "" {
		table := bs7671.DefaultCableTable()
		if len(cfg.Cables) > 0 {
			table = cfg.Cables
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "SIMPLIFIED CABLE TABLE (30 °C, no grouping):")
		fmt.Fprintln(out, lightRule)
		printCableTable(out, table)
		fmt.Fprintln(out)

		fmt.Fprintln(out, "CABLE DATABASE:")
		fmt.Fprintln(out, lightRule)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Type\tName\tMax °C\tReference methods")
		for _, key := range bs7671.CableTypeKeys() {
			ct := bs7671.CableDatabase[key]
			fmt.Fprintf(w, "  %s\t%s\t%d\t%s\n", key, ct.Name, ct.TemperatureC, joinMethods(ct))
		}
		w.Flush()
		fmt.Fprintln(out)
		return nil
	}

	ct, ok := bs7671.CableDatabase[cablesType]
	if !ok {
		return fmt.Errorf("unknown cable type %q (known: %s)", cablesType, strings.Join(bs7671.CableTypeKeys(), ", "))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s - %s\n", strings.ToUpper(ct.Name), ct.Description)
	fmt.Fprintln(out, heavyRule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Conductor temperature:\t%d °C\n", ct.TemperatureC)
	fmt.Fprintf(w, "  Voltage rating:\t%d V\n", ct.VoltageRating)
	fmt.Fprintf(w, "  Practical size limit:\t%s mm²\n", strconv.FormatFloat(ct.MaxPracticalSizeMm2, 'f', -1, 64))
	fmt.Fprintf(w, "  Min bend radius:\t%d × diameter\n", ct.MinBendRadius)
	fmt.Fprintf(w, "  Fire performance:\t%s\n", ct.FirePerformance)
	fmt.Fprintf(w, "  Mechanical protection:\t%s\n", ct.MechanicalProtection)
	fmt.Fprintf(w, "  UV resistant:\t%s\n", yesNo(ct.UVResistant))
	fmt.Fprintf(w, "  Direct burial:\t%s\n", yesNo(ct.DirectBurial))
	fmt.Fprintf(w, "  Reference methods:\t%s\n", joinMethods(ct))
	w.Flush()
	fmt.Fprintln(out)

	methods := ct.Methods
	if cablesMethod != "" {
		methods = []bs7671.ReferenceMethod{bs7671.ReferenceMethod(strings.ToUpper(cablesMethod))}
	}
	for _, m := range methods {
		table, err := bs7671.CableTable(cablesType, m)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "REFERENCE METHOD %s:\n", m)
		fmt.Fprintln(out, lightRule)
		printCableTable(out, table)
		fmt.Fprintln(out)
	}

	if cablesMethod == "" {
		printPrices(out, ct.Prices())
	}
	printList(out, "APPLICATIONS:", ct.Applications)
	printList(out, "LIMITATIONS:", ct.Limitations)
	printList(out, "RECOMMENDATIONS:", ct.Recommendations)
	return nil
}

func printCableTable(out io.Writer, table []bs7671.CableCandidate) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  Size (mm²)\tRating (A)\tmV/A/m\tR1+R2 (Ω/km)\t")
	for _, c := range table {
		fmt.Fprintf(w, "  %s\t%.0f\t%.2f\t%.3f\t\n", c.CrossSectionMm2, c.RatedCurrentAmps, c.MillivoltPerAmpMeter, c.ResistancePerKmOhms)
	}
	w.Flush()
}

func printList(out io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, lightRule)
	for _, item := range items {
		fmt.Fprintf(out, "  • %s\n", item)
	}
	fmt.Fprintln(out)
}

func joinMethods(ct bs7671.CableType) string {
	if ct.Portable {
		return "portable / temporary only"
	}
	names := make([]string, len(ct.Methods))
	for i, m := range ct.Methods {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func printCableTypesFor(out io.Writer, method bs7671.ReferenceMethod, current float64) error {
	keys := bs7671.CableTypesForMethod(method)
	title := fmt.Sprintf("CABLE TYPES FOR REFERENCE METHOD %s:", method)
	if current > 0 {
		keys = bs7671.CableTypesForCurrent(current, method)
		title = fmt.Sprintf("CABLE TYPES RATED FOR %.0f A, REFERENCE METHOD %s:", current, method)
	}
	if len(keys) == 0 {
		return fmt.Errorf("no cable type in the database matches reference method %s", method)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, lightRule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Type\tName\tMax rating (A)")
	for _, key := range keys {
		ct := bs7671.CableDatabase[key]
		fmt.Fprintf(w, "  %s\t%s\t%.0f\n", key, ct.Name, ct.MaxRating(method))
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}

func printPrices(out io.Writer, prices []bs7671.CablePrice) {
	if len(prices) == 0 {
		return
	}
	fmt.Fprintln(out, "PRICING (£/m, January 2025):")
	fmt.Fprintln(out, lightRule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  Size (mm²)\tWholesale\tRetail\tAvailability\tLead (days)\t")
	for _, p := range prices {
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%s\t%d\t\n",
			strconv.FormatFloat(p.SizeMm2, 'f', -1, 64), p.Wholesale, p.Retail, p.Availability, p.LeadTimeDays)
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printAlternatives(out io.Writer, cableType string, size, budget float64) error {
	alternatives, err := bs7671.CostEffectiveAlternatives(cableType, size, budget)
	if err != nil {
		return err
	}
	current, _ := bs7671.CableDatabase[cableType].Price(size)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "CHEAPER ALTERNATIVES TO %s %s mm² (£%.2f/m):\n", cableType, strconv.FormatFloat(size, 'f', -1, 64), current.Retail)
	fmt.Fprintln(out, lightRule)
	if len(alternatives) == 0 {
		fmt.Fprintln(out, "  None within budget")
		fmt.Fprintln(out)
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Type\tRetail (£/m)\tSaving (£/m)")
	for _, a := range alternatives {
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\n", a.CableType, a.Retail, a.Savings)
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Check the alternative's ratings and suitability before substituting.")
	fmt.Fprintln(out)
	return nil
}
