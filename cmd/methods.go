package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gocable/internal/bs7671"
	"github.com/spf13/cobra"
)

var methodsGuidance bool

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List installation methods and their reference methods",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "INSTALLATION METHODS:")
		fmt.Fprintln(out, lightRule)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Method\tName\tReference")
		for _, info := range bs7671.InstallationMethods {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", info.Method, info.Name, info.ReferenceMethod)
		}
		w.Flush()
		fmt.Fprintln(out)

		if !methodsGuidance {
			return
		}
		for _, info := range bs7671.InstallationMethods {
			printList(out, fmt.Sprintf("%s:", info.Name), info.Guidance)
		}
	},
}

func init() {
	rootCmd.AddCommand(methodsCmd)

	methodsCmd.Flags().BoolVarP(&methodsGuidance, "guidance", "g", false, "Show installation guidance for each method")
}
