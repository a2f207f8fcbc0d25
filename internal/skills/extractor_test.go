package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openhire/matchengine/internal/catalog"
)

func testVocabulary() []catalog.SkillEntry {
	return []catalog.SkillEntry{
		{Canonical: "React", Aliases: []string{"react", "reactjs", "react.js"}},
		{Canonical: "TypeScript", Aliases: []string{"typescript"}},
		{Canonical: "Go", Aliases: []string{"golang"}},
		{Canonical: "Kubernetes", Aliases: []string{"kubernetes", "k8s"}},
	}
}

func TestExtract_SingleAlias(t *testing.T) {
	e := NewExtractor(testVocabulary())

	result := e.Extract("We are looking for a ReactJS developer")

	assert.Equal(t, []string{"React"}, result)
}

func TestExtract_MultipleAliasesEmitOnce(t *testing.T) {
	e := NewExtractor(testVocabulary())

	result := e.Extract("react, reactjs and react.js experience all welcome")

	assert.Equal(t, []string{"React"}, result)
}

func TestExtract_SortedAlphabetically(t *testing.T) {
	e := NewExtractor(testVocabulary())

	result := e.Extract("typescript, golang and k8s on a react stack")

	assert.Equal(t, []string{"Go", "Kubernetes", "React", "TypeScript"}, result)
}

func TestExtract_CaseInsensitive(t *testing.T) {
	e := NewExtractor(testVocabulary())

	result := e.Extract("TYPESCRIPT and GoLang")

	assert.Equal(t, []string{"Go", "TypeScript"}, result)
}

func TestExtract_EmptyInput(t *testing.T) {
	e := NewExtractor(testVocabulary())

	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   \n\t"))
}

func TestExtract_NoMatches(t *testing.T) {
	e := NewExtractor(testVocabulary())

	assert.Empty(t, e.Extract("seasoned COBOL programmer"))
}

func TestExtract_NoFuzzyMatching(t *testing.T) {
	e := NewExtractor(testVocabulary())

	// "reac" is not an alias and must not match
	assert.Empty(t, e.Extract("reac developer"))
}
