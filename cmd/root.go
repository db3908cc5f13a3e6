package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gocable/internal/config"
	"github.com/alexiusacademia/gocable/internal/version"
	"github.com/spf13/cobra"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)

var (
	configPath string
	logLevel   string

	// Loaded before any subcommand runs
	cfg    = config.DefaultConfig()
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gocable",
	Short: "UK Electrical Cable Sizing Tool",
	Long: `gocable - Go Cable Sizing Calculator

A CLI tool for sizing low-voltage cables for UK installations
using a simplified BS 7671 method.

This tool helps electrical designers:
  - Calculate design current for single and three phase loads
  - Apply grouping and thermal derating factors
  - Select the smallest adequate cable from a capacity table
  - Check voltage drop and earth fault loop impedance (Zs)
  - Suggest a protective device rating

Results must be verified by a qualified electrician.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gocable v%-47s║\n", version.Version)
		fmt.Fprintf(out, "  ║   %-56s║\n", "Go Cable Sizing Calculator")
		fmt.Fprintf(out, "  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for sizing low-voltage cables for UK installations.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Design current from load, voltage and phase")
		fmt.Fprintln(out, "    • Cable selection with grouping and thermal derating")
		fmt.Fprintln(out, "    • Voltage drop and earth fault loop impedance checks")
		fmt.Fprintln(out, "    • JSON, PDF and XLSX export")
		fmt.Fprintln(out, "    • HTTP calculation service")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gocable --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  "+lightRule)
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $GOCABLE_CONFIG or gocable.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

func loadConfig() error {
	bootLevel := slog.LevelInfo
	if logLevel != "" {
		level, err := config.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		bootLevel = level
	}
	bootLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: bootLevel}))

	loaded, err := config.NewLoader(bootLogger).Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}

	cfg = loaded
	logger = cfg.NewLogger()
	slog.SetDefault(logger)
	return nil
}
