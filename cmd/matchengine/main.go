// Package main provides the entry point for the matching engine CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matchengine",
	Short: "Explainable matching, relevance and trust scoring engine",
	Long:  "matchengine scores candidate-job relevance with explainable factors, derives employer trust, analyzes salary fairness, and generates saved-search digests and smart alerts for a job marketplace.",
}

// verbose switches scoring commands from JSON output to formatted boxes
var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print human-readable formatted output instead of JSON")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
