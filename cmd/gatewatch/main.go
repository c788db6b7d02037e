package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev" // set via ldflags

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "gatewatch",
	Short:        "Gated health-check probe",
	Long:         "gatewatch probes a fixed set of endpoints against declared expectations and raises alerts gated on one deliberately anomalous endpoint.",
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().String("config", "", "Path to optional YAML config file (env always wins)")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPreflightCmd())
}
