package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openhire/matchengine/internal/alerts"
	"github.com/openhire/matchengine/internal/observability"
	"github.com/openhire/matchengine/internal/types"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Generate smart alerts for a candidate against a job pool",
	Long:  "Generate proactive job match alerts for a candidate profile against a pool of job postings. Each alert carries at least two independent match reasons.",
	RunE:  runAlerts,
}

var (
	alertsCandidateFile string
	alertsJobsFile      string
)

func init() {
	alertsCmd.Flags().StringVar(&alertsCandidateFile, "candidate", "", "Path to a candidate profile JSON file (required)")
	alertsCmd.Flags().StringVar(&alertsJobsFile, "jobs", "", "Path to a JSON array of job postings (required)")

	alertsCmd.MarkFlagRequired("candidate")
	alertsCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(_ *cobra.Command, _ []string) error {
	var candidate types.CandidateProfile
	if err := readJSONFile(alertsCandidateFile, &candidate); err != nil {
		return err
	}

	var jobs []types.JobPosting
	if err := readJSONFile(alertsJobsFile, &jobs); err != nil {
		return err
	}

	generated := alerts.Generate(&candidate, jobs)
	if verbose {
		observability.NewPrinter(os.Stdout).PrintAlerts(generated)
		return nil
	}
	return printJSON(generated)
}
