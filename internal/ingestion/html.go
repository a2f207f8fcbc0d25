// Package ingestion prepares raw job description content for the engine:
// HTML from scraping collaborators is reduced to clean plain text before
// skill extraction.
package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText parses HTML and returns the visible text content, cleaned
// and normalized. Script, style, and navigation chrome are dropped.
func ExtractText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer").Remove()

	var b strings.Builder
	doc.Find("h1, h2, h3, h4, p, li, td, span, div").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes: skip containers whose children are walked separately
		if s.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	})

	text := b.String()
	if strings.TrimSpace(text) == "" {
		// Fallback for documents without recognizable structure
		text = doc.Text()
	}

	return CleanText(text), nil
}
