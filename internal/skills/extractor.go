// Package skills maps free text to the canonical skill vocabulary.
package skills

import (
	"sort"
	"strings"

	"github.com/openhire/matchengine/internal/catalog"
)

// Extractor matches text against a fixed canonical-skill alias table.
// It is pure and safe for concurrent use after construction.
type Extractor struct {
	entries []catalog.SkillEntry
}

// NewExtractor builds an extractor over the given vocabulary.
// Aliases are matched by case-insensitive containment; no stemming or
// fuzzy matching.
func NewExtractor(vocabulary []catalog.SkillEntry) *Extractor {
	entries := make([]catalog.SkillEntry, len(vocabulary))
	for i, entry := range vocabulary {
		aliases := make([]string, len(entry.Aliases))
		for j, alias := range entry.Aliases {
			aliases[j] = strings.ToLower(alias)
		}
		entries[i] = catalog.SkillEntry{Canonical: entry.Canonical, Aliases: aliases}
	}
	return &Extractor{entries: entries}
}

// Extract returns the canonical skill names found in text, each at most
// once, sorted alphabetically. Empty input yields an empty result.
func (e *Extractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	lower := strings.ToLower(text)
	found := make([]string, 0)
	seen := make(map[string]bool)

	for _, entry := range e.entries {
		if seen[entry.Canonical] {
			continue
		}
		for _, alias := range entry.Aliases {
			if strings.Contains(lower, alias) {
				found = append(found, entry.Canonical)
				seen[entry.Canonical] = true
				break
			}
		}
	}

	sort.Strings(found)
	return found
}
