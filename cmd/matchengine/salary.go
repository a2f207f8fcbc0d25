package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openhire/matchengine/internal/observability"
	"github.com/openhire/matchengine/internal/salary"
	"github.com/openhire/matchengine/internal/types"
)

var salaryCmd = &cobra.Command{
	Use:   "salary",
	Short: "Analyze a posted salary range against market benchmarks",
	RunE:  runSalary,
}

var (
	salaryTitle    string
	salaryLocation string
	salaryMin      int
	salaryMax      int
	salaryCurrency string
)

func init() {
	salaryCmd.Flags().StringVar(&salaryTitle, "title", "", "Job title (required)")
	salaryCmd.Flags().StringVar(&salaryLocation, "location", "", "Job location (required)")
	salaryCmd.Flags().IntVar(&salaryMin, "min", 0, "Range minimum (required)")
	salaryCmd.Flags().IntVar(&salaryMax, "max", 0, "Range maximum (required)")
	salaryCmd.Flags().StringVar(&salaryCurrency, "currency", "USD", "Range currency")

	salaryCmd.MarkFlagRequired("title")
	salaryCmd.MarkFlagRequired("location")
	salaryCmd.MarkFlagRequired("min")
	salaryCmd.MarkFlagRequired("max")

	rootCmd.AddCommand(salaryCmd)
}

func runSalary(_ *cobra.Command, _ []string) error {
	req := types.AnalyzeSalaryRequest{
		Title:    salaryTitle,
		Location: salaryLocation,
		Min:      salaryMin,
		Max:      salaryMax,
		Currency: salaryCurrency,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	cat, err := loadCatalog("", "")
	if err != nil {
		return err
	}

	analyzer := salary.NewAnalyzer(cat.Benchmarks, cat.LocationFactors)
	insight := analyzer.Analyze(req.Title, req.Location, req.Min, req.Max, req.Currency)
	fairness := salary.FairnessScore(insight)

	if verbose {
		observability.NewPrinter(os.Stdout).PrintSalaryInsight(&insight, fairness)
		return nil
	}
	return printJSON(map[string]any{
		"insight":        insight,
		"fairness_score": fairness,
	})
}
