// Package salary compares posted compensation ranges against market
// benchmark data and flags anomalies.
package salary

import (
	"fmt"
	"strings"

	"github.com/openhire/matchengine/internal/catalog"
	"github.com/openhire/matchengine/internal/types"
)

// wideRangeRatio flags ranges where (max-min)/min exceeds this ratio.
const wideRangeRatio = 0.5

// benefitsRatio estimates benefits value as this share of the range midpoint.
const benefitsRatio = 0.25

// Analyzer evaluates posted salary ranges against benchmark tables.
type Analyzer struct {
	benchmarks []catalog.Benchmark
	factors    []catalog.LocationFactor
}

// NewAnalyzer builds an analyzer over the given benchmark and
// cost-of-living tables.
func NewAnalyzer(benchmarks []catalog.Benchmark, factors []catalog.LocationFactor) *Analyzer {
	return &Analyzer{benchmarks: benchmarks, factors: factors}
}

// Analyze compares a posted range to the benchmark for the role and
// location. Missing benchmarks degrade to a neutral result rather than an
// error.
func (a *Analyzer) Analyze(title, location string, min, max int, currency string) types.SalaryInsight {
	insight := types.SalaryInsight{
		RangeConfidence:       types.ConfidenceMedium,
		BenefitsValueEstimate: int(float64(min+max) / 2 * benefitsRatio),
		Insights:              []string{},
		Warnings:              []string{},
	}

	benchmark := a.findBenchmark(title, location)
	if benchmark == nil {
		insight.Insights = append(insight.Insights,
			fmt.Sprintf("No market benchmark found for %q in %q; range not compared.", title, location))
	} else {
		a.compareToBenchmark(&insight, *benchmark, min, max)
	}

	// Width check applies independently of market comparison.
	if min > 0 && float64(max-min)/float64(min) > wideRangeRatio {
		insight.Warnings = append(insight.Warnings,
			"Salary range is unusually wide; request clarification from the employer.")
	}

	if factor := a.locationFactor(location); factor != nil {
		insight.LocationAdjustment = factor
	}

	return insight
}

func (a *Analyzer) compareToBenchmark(insight *types.SalaryInsight, b catalog.Benchmark, min, max int) {
	switch {
	case max < b.Min:
		insight.RangeConfidence = types.ConfidenceLow
		insight.Warnings = append(insight.Warnings,
			fmt.Sprintf("Posted maximum is below the market minimum of %d %s.", b.Min, b.Currency))
	case min > b.Max:
		insight.RangeConfidence = types.ConfidenceHigh
		insight.Insights = append(insight.Insights,
			"Premium opportunity: the posted range exceeds the market benchmark.")
	case min >= b.Min && max <= b.Max:
		insight.RangeConfidence = types.ConfidenceHigh
		insight.MarketMatch = true
		insight.Insights = append(insight.Insights,
			fmt.Sprintf("Range sits fully within the market benchmark of %d-%d %s.", b.Min, b.Max, b.Currency))
	default:
		insight.RangeConfidence = types.ConfidenceMedium
		insight.MarketMatch = true
		insight.Insights = append(insight.Insights,
			fmt.Sprintf("Range partially overlaps the market benchmark of %d-%d %s.", b.Min, b.Max, b.Currency))
	}
}

// findBenchmark locates the first benchmark whose title and location first
// tokens are contained in the posted title and location.
func (a *Analyzer) findBenchmark(title, location string) *catalog.Benchmark {
	titleLower := strings.ToLower(title)
	locationLower := strings.ToLower(location)

	for i, b := range a.benchmarks {
		if strings.Contains(titleLower, firstToken(b.Title)) &&
			strings.Contains(locationLower, firstToken(b.Location)) {
			return &a.benchmarks[i]
		}
	}
	return nil
}

// locationFactor returns the cost-of-living multiplier for the location,
// or nil when no entry matches or the factor is neutral.
func (a *Analyzer) locationFactor(location string) *float64 {
	locationLower := strings.ToLower(location)
	for _, f := range a.factors {
		if strings.Contains(locationLower, f.Match) {
			if f.Factor == 1.0 {
				return nil
			}
			factor := f.Factor
			return &factor
		}
	}
	return nil
}

func firstToken(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// FairnessScore condenses an insight into a 0-100 score: base 50, adjusted
// for range confidence, market match, and warnings.
func FairnessScore(insight types.SalaryInsight) int {
	score := 50
	switch insight.RangeConfidence {
	case types.ConfidenceHigh:
		score += 20
	case types.ConfidenceLow:
		score -= 20
	}
	if insight.MarketMatch {
		score += 20
	}
	score -= 10 * len(insight.Warnings)

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
