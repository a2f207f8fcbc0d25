// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/openhire/matchengine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRelevanceScore outputs a human-readable factor breakdown of a
// relevance score.
func (p *Printer) PrintRelevanceScore(score *types.RelevanceScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %d/100   Rank: #%d\n\n", score.Overall, score.Rank))

	for _, factor := range score.Factors {
		sb.WriteString(fmt.Sprintf("%-18s %3d  (weight %.2f)\n", factor.Name, factor.Score, factor.Weight))
	}

	if score.Explanation != "" {
		sb.WriteString("\n")
		sb.WriteString(score.Explanation)
	}

	p.printBox("RELEVANCE SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSalaryInsight outputs a human-readable market comparison.
func (p *Printer) PrintSalaryInsight(insight *types.SalaryInsight, fairnessScore int) {
	if insight == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Confidence:    %s\n", insight.RangeConfidence))
	sb.WriteString(fmt.Sprintf("Market match:  %t\n", insight.MarketMatch))
	sb.WriteString(fmt.Sprintf("Fairness:      %d/100\n", fairnessScore))
	sb.WriteString(fmt.Sprintf("Est. benefits: %d\n", insight.BenefitsValueEstimate))
	if insight.LocationAdjustment != nil {
		sb.WriteString(fmt.Sprintf("COL factor:    %.2f\n", *insight.LocationAdjustment))
	}

	writeCapped := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString("\n" + label + ":\n")
		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
	}
	writeCapped("Insights", insight.Insights)
	writeCapped("Warnings", insight.Warnings)

	p.printBox("SALARY ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrustStatus outputs an employer's verification state and the steps
// remaining to full verification.
func (p *Printer) PrintTrustStatus(status *types.TrustStatus) {
	if status == nil {
		return
	}

	check := func(ok bool) string {
		if ok {
			return "✓"
		}
		return "✗"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tier:  %s   Score: %d/100\n\n", status.Tier, status.Score))
	sb.WriteString(fmt.Sprintf("%s domain   %s business   %s payment   %s identity\n",
		check(status.DomainVerified), check(status.BusinessVerified),
		check(status.PaymentVerified), check(status.IdentityVerified)))

	if len(status.NextSteps) > 0 {
		sb.WriteString("\nNext steps:\n")
		for _, step := range status.NextSteps {
			sb.WriteString(fmt.Sprintf("  • %s\n", step))
		}
	}

	p.printBox("EMPLOYER TRUST", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAlerts outputs generated alerts with their reasons.
func (p *Printer) PrintAlerts(alerts []types.Alert) {
	if len(alerts) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d alerts:\n\n", len(alerts)))

	count := min(len(alerts), maxItemsToShow)
	for i := 0; i < count; i++ {
		alert := alerts[i]
		title := alert.JobTitle
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s [%s]\n", i+1, title, alert.Confidence))
		for _, reason := range alert.Reasons {
			if len(reason) > 48 {
				reason = reason[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("    • %s\n", reason))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(alerts) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more alerts", len(alerts)-maxItemsToShow))
	}

	p.printBox("SMART ALERTS", sb.String())
}
