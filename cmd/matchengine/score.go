package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openhire/matchengine/internal/observability"
	"github.com/openhire/matchengine/internal/relevance"
	"github.com/openhire/matchengine/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate against a job posting",
	Long:  "Score a candidate profile against a job posting with an explainable factor breakdown, optionally ranking within a candidate pool.",
	RunE:  runScore,
}

var (
	scoreCandidateFile string
	scoreJobFile       string
	scorePoolFile      string
)

func init() {
	scoreCmd.Flags().StringVar(&scoreCandidateFile, "candidate", "", "Path to a candidate profile JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreJobFile, "job", "", "Path to a job posting JSON file (required)")
	scoreCmd.Flags().StringVar(&scorePoolFile, "pool", "", "Path to a JSON array of candidate profiles for ranking")

	scoreCmd.MarkFlagRequired("candidate")
	scoreCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	var candidate types.CandidateProfile
	if err := readJSONFile(scoreCandidateFile, &candidate); err != nil {
		return err
	}

	var job types.JobPosting
	if err := readJSONFile(scoreJobFile, &job); err != nil {
		return err
	}

	var pool []types.CandidateProfile
	if scorePoolFile != "" {
		if err := readJSONFile(scorePoolFile, &pool); err != nil {
			return err
		}
	}

	score := relevance.CalculateRelevance(&candidate, &job, pool)
	if verbose {
		observability.NewPrinter(os.Stdout).PrintRelevanceScore(&score)
		return nil
	}
	return printJSON(score)
}

// readJSONFile reads and unmarshals a JSON file into out.
func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
