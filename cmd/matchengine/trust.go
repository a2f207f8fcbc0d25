package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/openhire/matchengine/internal/db"
	"github.com/openhire/matchengine/internal/observability"
	"github.com/openhire/matchengine/internal/trust"
)

var trustCmd = &cobra.Command{
	Use:   "trust <employer-id>",
	Short: "Derive an employer's verification status and trust score",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrust,
}

func init() {
	rootCmd.AddCommand(trustCmd)
}

func runTrust(_ *cobra.Command, args []string) error {
	employerID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid employer ID: %w", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	employer, err := database.GetEmployer(ctx, employerID)
	if err != nil {
		return err
	}
	if employer == nil {
		return fmt.Errorf("employer not found: %s", employerID)
	}

	status := trust.DeriveVerificationStatus(*employer)
	if verbose {
		observability.NewPrinter(os.Stdout).PrintTrustStatus(&status)
		return nil
	}
	return printJSON(status)
}
