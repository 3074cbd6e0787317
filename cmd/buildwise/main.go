// Package main provides the buildwise CLI: the estimate HTTP API server and offline estimating commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "buildwise",
	Short: "Residential construction estimator",
	Long: "Buildwise estimates materials, phase-wise workforce, a weekly schedule, cost, " +
		"timeline compression impact and per-floor layouts for residential projects, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
