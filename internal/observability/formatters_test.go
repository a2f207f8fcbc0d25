package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openhire/matchengine/internal/types"
)

func TestPrintRelevanceScore(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintRelevanceScore(&types.RelevanceScore{
		Overall: 72,
		Rank:    3,
		Factors: []types.Factor{
			{Name: types.FactorSkillsMatch, Score: 67, Weight: 0.30},
			{Name: types.FactorLocationFit, Score: 100, Weight: 0.15},
		},
		Explanation: "Strongest signals: Skills Match.",
	})

	out := buf.String()
	assert.Contains(t, out, "RELEVANCE SCORE")
	assert.Contains(t, out, "72/100")
	assert.Contains(t, out, "Skills Match")
	assert.Contains(t, out, "Rank: #3")
}

func TestPrintRelevanceScore_NilIsNoop(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintRelevanceScore(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSalaryInsight(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	factor := 1.4
	p.PrintSalaryInsight(&types.SalaryInsight{
		RangeConfidence:       "high",
		MarketMatch:           true,
		LocationAdjustment:    &factor,
		BenefitsValueEstimate: 40000,
		Warnings:              []string{"range is unusually wide"},
	}, 80)

	out := buf.String()
	assert.Contains(t, out, "SALARY ANALYSIS")
	assert.Contains(t, out, "80/100")
	assert.Contains(t, out, "1.40")
	assert.Contains(t, out, "unusually wide")
}

func TestPrintTrustStatus(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintTrustStatus(&types.TrustStatus{
		Tier:           types.TierDomain,
		DomainVerified: true,
		NextSteps:      []string{"Verify your business registration"},
		Score:          55,
	})

	out := buf.String()
	assert.Contains(t, out, "EMPLOYER TRUST")
	assert.Contains(t, out, "domain")
	assert.Contains(t, out, "Verify your business registration")
}

func TestPrintAlerts_Empty(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintAlerts(nil)
	assert.Empty(t, buf.String())
}

func TestPrintAlerts_CapsList(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	alerts := make([]types.Alert, 7)
	for i := range alerts {
		alerts[i] = types.Alert{
			JobTitle:   "Frontend Engineer",
			Confidence: types.ConfidenceMedium,
			Reasons:    []string{"3 skills match", "Remote role"},
		}
	}
	p.PrintAlerts(alerts)

	out := buf.String()
	assert.Contains(t, out, "Generated 7 alerts")
	assert.Contains(t, out, "and 2 more alerts")
}
