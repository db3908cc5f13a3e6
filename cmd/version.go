package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocable/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocable",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gocable v%s\n", version.Version)
		fmt.Fprintln(out, "UK Electrical Cable Sizing Tool")
		fmt.Fprintln(out, "Simplified BS 7671 method (IET Wiring Regulations)")
		fmt.Fprintf(out, "Build: %s (%s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
