package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gocable/internal/bs7671"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List load category templates",
	Long: `List the default inputs applied for each load category when phase,
power factor, installation method or protective device are not given.
Categories from the config file override the built-in templates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		calc, err := cfg.Calculator()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "LOAD TEMPLATES:")
		fmt.Fprintln(out, lightRule)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Category\tTypical load\tSupply\tPF\tMethod\tDevice\tCable")
		for _, c := range bs7671.LoadCategories {
			tpl, _ := calc.Templates.Lookup(c)
			printTemplate(w, string(c), tpl)
		}
		for c, tpl := range calc.Templates {
			if !c.Known() {
				printTemplate(w, string(c), tpl)
			}
		}
		printTemplate(w, "(other)", bs7671.FallbackTemplate)
		w.Flush()
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func printTemplate(w *tabwriter.Writer, name string, tpl bs7671.LoadTemplate) {
	fmt.Fprintf(w, "  %s\t%s\t%.0f V %s\t%.2f\t%s\t%s\t%s\n",
		name, tpl.TypicalLoad, tpl.Voltage, tpl.Phase, tpl.PowerFactor,
		tpl.InstallationMethod, tpl.ProtectiveDevice, tpl.CableType)
}
