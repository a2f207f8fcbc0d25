package prooftask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/matchengine/internal/catalog"
	"github.com/openhire/matchengine/internal/types"
)

func sampleTemplate() types.TaskTemplate {
	return types.TaskTemplate{
		Type:         types.TaskBackend,
		PassingScore: 70,
		Questions: []types.Question{
			{ID: "q1", Kind: types.QuestionChoice, CorrectAnswer: "read committed"},
			{ID: "q2", Kind: types.QuestionScenario, CorrectAnswer: "recent changes"},
			{ID: "q3", Kind: types.QuestionCode},
			{ID: "q4", Kind: types.QuestionDesign},
		},
	}
}

func TestScoreSubmission_ExactMatchesAndPartialCredit(t *testing.T) {
	result := ScoreSubmission([]string{"read committed", "recent changes", "func dedupe() {}", "token bucket"}, sampleTemplate())

	// 10 + 10 + 5 + 5 out of 40
	assert.Equal(t, 30, result.Score)
	assert.Equal(t, 40, result.MaxScore)
	assert.True(t, result.Passed) // 30/40 = 75% >= 70%
}

func TestScoreSubmission_ChoiceMatchIsCaseInsensitive(t *testing.T) {
	result := ScoreSubmission([]string{"Read Committed"}, sampleTemplate())
	assert.Equal(t, 10, result.Score)
}

func TestScoreSubmission_WrongChoiceScoresZero(t *testing.T) {
	result := ScoreSubmission([]string{"serializable", "", "", ""}, sampleTemplate())
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
}

func TestScoreSubmission_EmptyCodeAnswerScoresZero(t *testing.T) {
	result := ScoreSubmission([]string{"", "", "   ", ""}, sampleTemplate())
	assert.Equal(t, 0, result.Score)
}

func TestScoreSubmission_MissingAnswersScoreZero(t *testing.T) {
	result := ScoreSubmission([]string{"read committed"}, sampleTemplate())
	assert.Equal(t, 10, result.Score)
	assert.Equal(t, 40, result.MaxScore)
	assert.False(t, result.Passed)
}

func TestScoreSubmission_ExtraAnswersIgnored(t *testing.T) {
	answers := []string{"read committed", "recent changes", "code", "design", "extra", "extra"}
	result := ScoreSubmission(answers, sampleTemplate())
	assert.Equal(t, 30, result.Score)
}

func TestScoreSubmission_PassBoundary(t *testing.T) {
	template := types.TaskTemplate{
		PassingScore: 50,
		Questions: []types.Question{
			{ID: "q1", Kind: types.QuestionChoice, CorrectAnswer: "a"},
			{ID: "q2", Kind: types.QuestionChoice, CorrectAnswer: "b"},
		},
	}

	// Exactly at the threshold passes.
	result := ScoreSubmission([]string{"a", "wrong"}, template)
	assert.Equal(t, 10, result.Score)
	assert.True(t, result.Passed)

	result = ScoreSubmission([]string{"wrong", "wrong"}, template)
	assert.False(t, result.Passed)
}

func TestScoreSubmission_AgainstEmbeddedBanks(t *testing.T) {
	c, err := catalog.LoadDefault()
	require.NoError(t, err)

	frontend := c.ProofTasks[types.TaskFrontend]
	answers := []string{"useMemo", "profile", "function debounce(fn, ms) {}", "z-index", "list + detail components"}

	result := ScoreSubmission(answers, frontend)

	assert.Equal(t, 40, result.Score)
	assert.Equal(t, 50, result.MaxScore)
	assert.True(t, result.Passed)
}
