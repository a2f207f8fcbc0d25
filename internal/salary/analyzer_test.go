package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/matchengine/internal/catalog"
	"github.com/openhire/matchengine/internal/types"
)

func testAnalyzer() *Analyzer {
	benchmarks := []catalog.Benchmark{
		{Title: "Frontend Engineer", Location: "San Francisco", Min: 140000, Max: 200000, Currency: "USD"},
		{Title: "Backend Engineer", Location: "Remote", Min: 120000, Max: 180000, Currency: "USD"},
	}
	factors := []catalog.LocationFactor{
		{Match: "san francisco", Factor: 1.4},
		{Match: "remote", Factor: 1.0},
	}
	return NewAnalyzer(benchmarks, factors)
}

func TestAnalyze_FullOverlapIsHighConfidence(t *testing.T) {
	a := testAnalyzer()

	insight := a.Analyze("Senior Frontend Engineer", "San Francisco, CA", 145000, 155000, "USD")

	assert.Equal(t, types.ConfidenceHigh, insight.RangeConfidence)
	assert.True(t, insight.MarketMatch)
	assert.Empty(t, insight.Warnings)
	assert.NotEmpty(t, insight.Insights)
}

func TestAnalyze_PartialOverlapIsMediumConfidence(t *testing.T) {
	a := testAnalyzer()

	insight := a.Analyze("Frontend Engineer", "San Francisco", 120000, 150000, "USD")

	assert.Equal(t, types.ConfidenceMedium, insight.RangeConfidence)
	assert.True(t, insight.MarketMatch)
	assert.Empty(t, insight.Warnings)
}

func TestAnalyze_BelowMarketMinimumWarns(t *testing.T) {
	a := testAnalyzer()

	insight := a.Analyze("Frontend Engineer", "San Francisco", 90000, 110000, "USD")

	assert.Equal(t, types.ConfidenceLow, insight.RangeConfidence)
	assert.False(t, insight.MarketMatch)
	require.Len(t, insight.Warnings, 1)
	assert.Contains(t, insight.Warnings[0], "below the market minimum")
}

func TestAnalyze_PremiumOpportunityIsNotAWarning(t *testing.T) {
	a := testAnalyzer()

	insight := a.Analyze("Frontend Engineer", "San Francisco", 210000, 240000, "USD")

	assert.Equal(t, types.ConfidenceHigh, insight.RangeConfidence)
	assert.Empty(t, insight.Warnings)
	require.NotEmpty(t, insight.Insights)
	assert.Contains(t, insight.Insights[0], "Premium opportunity")
}

func TestAnalyze_WideRangeWarnsRegardlessOfMarketMatch(t *testing.T) {
	a := testAnalyzer()

	// 140000 -> 215000 is ~54% wide but overlaps the benchmark
	insight := a.Analyze("Frontend Engineer", "San Francisco", 140000, 215000, "USD")

	require.Len(t, insight.Warnings, 1)
	assert.Contains(t, insight.Warnings[0], "unusually wide")
}

func TestAnalyze_NoBenchmarkIsNeutral(t *testing.T) {
	a := testAnalyzer()

	insight := a.Analyze("Marine Biologist", "Reykjavik", 60000, 80000, "USD")

	assert.Equal(t, types.ConfidenceMedium, insight.RangeConfidence)
	assert.False(t, insight.MarketMatch)
	assert.Empty(t, insight.Warnings)
	require.NotEmpty(t, insight.Insights)
	assert.Contains(t, insight.Insights[0], "No market benchmark")
}

func TestAnalyze_LocationAdjustment(t *testing.T) {
	a := testAnalyzer()

	insight := a.Analyze("Frontend Engineer", "San Francisco", 145000, 155000, "USD")
	require.NotNil(t, insight.LocationAdjustment)
	assert.InDelta(t, 1.4, *insight.LocationAdjustment, 0.001)

	// Neutral factor is omitted entirely
	insight = a.Analyze("Backend Engineer", "Remote", 130000, 150000, "USD")
	assert.Nil(t, insight.LocationAdjustment)
}

func TestAnalyze_BenefitsEstimateIsQuarterOfMidpoint(t *testing.T) {
	a := testAnalyzer()

	insight := a.Analyze("Backend Engineer", "Remote", 120000, 160000, "USD")

	assert.Equal(t, 35000, insight.BenefitsValueEstimate)
}

func TestFairnessScore(t *testing.T) {
	// high confidence + market match: 50+20+20
	assert.Equal(t, 90, FairnessScore(types.SalaryInsight{
		RangeConfidence: types.ConfidenceHigh,
		MarketMatch:     true,
	}))

	// low confidence + one warning: 50-20-10
	assert.Equal(t, 20, FairnessScore(types.SalaryInsight{
		RangeConfidence: types.ConfidenceLow,
		Warnings:        []string{"below market"},
	}))

	// neutral medium result
	assert.Equal(t, 50, FairnessScore(types.SalaryInsight{
		RangeConfidence: types.ConfidenceMedium,
	}))
}

func TestFairnessScore_Clamped(t *testing.T) {
	score := FairnessScore(types.SalaryInsight{
		RangeConfidence: types.ConfidenceLow,
		Warnings:        []string{"a", "b", "c", "d", "e"},
	})
	assert.Equal(t, 0, score)
}
