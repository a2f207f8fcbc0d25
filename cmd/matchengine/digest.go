package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/openhire/matchengine/internal/db"
	"github.com/openhire/matchengine/internal/digest"
	"github.com/openhire/matchengine/internal/types"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Generate digests for saved searches",
	Long:  "Generate and persist a digest for one saved search, or for every search whose schedule has elapsed. Intended to be run from cron for scheduled delivery.",
	RunE:  runDigest,
}

var (
	digestSearchID    string
	digestAllDue      bool
	digestConcurrency int
)

func init() {
	digestCmd.Flags().StringVar(&digestSearchID, "search", "", "Saved search ID to generate a digest for")
	digestCmd.Flags().BoolVar(&digestAllDue, "all-due", false, "Generate digests for every search whose schedule has elapsed")
	digestCmd.Flags().IntVar(&digestConcurrency, "concurrency", 4, "Parallel digest generation for --all-due")

	rootCmd.AddCommand(digestCmd)
}

func runDigest(_ *cobra.Command, _ []string) error {
	if digestSearchID == "" && !digestAllDue {
		return fmt.Errorf("either --search or --all-due must be provided")
	}
	if digestSearchID != "" && digestAllDue {
		return fmt.Errorf("--search and --all-due are mutually exclusive; provide only one")
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

	generator := digest.NewGenerator(database)

	if digestSearchID != "" {
		searchID, err := uuid.Parse(digestSearchID)
		if err != nil {
			return fmt.Errorf("invalid search ID: %w", err)
		}

		search, err := database.GetSavedSearch(ctx, searchID)
		if err != nil {
			return err
		}
		if search == nil {
			return fmt.Errorf("saved search not found: %s", searchID)
		}

		d, err := generator.Generate(ctx, *search)
		if err != nil {
			return err
		}
		return printJSON(d)
	}

	searches, err := database.ListSavedSearches(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	due := make([]types.SavedSearch, 0, len(searches))
	for _, search := range searches {
		if digest.Due(search, now) {
			due = append(due, search)
		}
	}

	digests, err := generator.RunAll(ctx, due, digestConcurrency)
	if err != nil {
		return err
	}

	generated := 0
	for _, d := range digests {
		if d != nil {
			generated++
		}
	}
	fmt.Fprintf(os.Stdout, "Generated %d of %d due digests\n", generated, len(due))
	return nil
}
