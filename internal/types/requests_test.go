package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkillsRequest_Validate_RequiresInput(t *testing.T) {
	r := &ExtractSkillsRequest{}
	assert.Error(t, r.Validate())
}

func TestExtractSkillsRequest_Validate_MutuallyExclusive(t *testing.T) {
	r := &ExtractSkillsRequest{Text: "React", HTML: "<p>React</p>"}
	assert.Error(t, r.Validate())
}

func TestExtractSkillsRequest_Validate_TextOnly(t *testing.T) {
	r := &ExtractSkillsRequest{Text: "React and Go"}
	assert.NoError(t, r.Validate())
}

func TestAnalyzeSalaryRequest_Validate_Valid(t *testing.T) {
	r := &AnalyzeSalaryRequest{
		Title:    "Senior Frontend Engineer",
		Location: "San Francisco, CA",
		Min:      145000,
		Max:      155000,
		Currency: "USD",
	}
	assert.NoError(t, r.Validate())
}

func TestAnalyzeSalaryRequest_Validate_MaxBelowMin(t *testing.T) {
	r := &AnalyzeSalaryRequest{
		Title:    "Engineer",
		Location: "Remote",
		Min:      150000,
		Max:      100000,
	}
	assert.Error(t, r.Validate())
}

func TestAnalyzeSalaryRequest_Validate_MissingTitle(t *testing.T) {
	r := &AnalyzeSalaryRequest{Location: "Remote", Min: 100, Max: 200}
	assert.Error(t, r.Validate())
}

func TestScoreTaskRequest_Validate_EmptyAnswers(t *testing.T) {
	r := &ScoreTaskRequest{}
	assert.Error(t, r.Validate())
}

func TestScoreTaskRequest_Validate_Valid(t *testing.T) {
	r := &ScoreTaskRequest{Answers: []string{"b", "a"}}
	assert.NoError(t, r.Validate())
}
