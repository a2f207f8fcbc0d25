// Package prooftask grades fixed-rubric skills assessments into pass/fail
// proof card results.
package prooftask

import (
	"strings"

	"github.com/openhire/matchengine/internal/types"
)

// Points per question; code and design answers earn partial credit since
// there is no code execution or design review.
const (
	fullCredit    = 10
	partialCredit = 5
)

// ScoreSubmission grades ordered answers against a task template. Choice
// and scenario questions require an exact (case-insensitive) match; code
// and design questions earn partial credit for any non-empty answer.
// Missing answers score zero.
func ScoreSubmission(answers []string, template types.TaskTemplate) types.TaskResult {
	maxScore := len(template.Questions) * fullCredit
	score := 0

	for i, question := range template.Questions {
		if i >= len(answers) {
			break
		}
		score += gradeAnswer(answers[i], question)
	}

	return types.TaskResult{
		Score:    score,
		MaxScore: maxScore,
		Passed:   score*100 >= maxScore*template.PassingScore,
	}
}

func gradeAnswer(answer string, question types.Question) int {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return 0
	}

	switch question.Kind {
	case types.QuestionCode, types.QuestionDesign:
		return partialCredit
	default:
		if strings.EqualFold(answer, question.CorrectAnswer) {
			return fullCredit
		}
		return 0
	}
}
