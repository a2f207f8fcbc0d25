package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ExtractSkillsRequest asks the engine to normalize free text (or raw HTML)
// into canonical skill names. Exactly one of Text or HTML should be set.
type ExtractSkillsRequest struct {
	Text string `json:"text,omitempty"`
	HTML string `json:"html,omitempty"`
}

// Validate validates the ExtractSkillsRequest.
func (r *ExtractSkillsRequest) Validate() error {
	if r.Text == "" && r.HTML == "" {
		return fmt.Errorf("one of 'text' or 'html' is required")
	}
	if r.Text != "" && r.HTML != "" {
		return fmt.Errorf("'text' and 'html' are mutually exclusive")
	}
	return nil
}

// AnalyzeSalaryRequest asks for a market-fairness analysis of a posted range.
type AnalyzeSalaryRequest struct {
	Title    string `json:"title" validate:"required"`
	Location string `json:"location" validate:"required"`
	Min      int    `json:"min" validate:"required,gt=0"`
	Max      int    `json:"max" validate:"required,gtefield=Min"`
	Currency string `json:"currency,omitempty"`
}

// Validate validates the AnalyzeSalaryRequest using the validator.
func (r *AnalyzeSalaryRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// RelevanceRequest asks for an explainable candidate-job relevance score.
// Pool is the candidate pool used for relative ranking; it may be empty.
type RelevanceRequest struct {
	Candidate CandidateProfile   `json:"candidate" validate:"required"`
	Job       JobPosting         `json:"job" validate:"required"`
	Pool      []CandidateProfile `json:"pool,omitempty"`
}

// Validate validates the RelevanceRequest using the validator.
func (r *RelevanceRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AlertsRequest asks for smart alerts for a candidate against the active job pool.
type AlertsRequest struct {
	Candidate CandidateProfile `json:"candidate" validate:"required"`
}

// Validate validates the AlertsRequest using the validator.
func (r *AlertsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ScoreTaskRequest carries a candidate's ordered answers to a proof task.
type ScoreTaskRequest struct {
	Answers []string `json:"answers" validate:"required,min=1"`
}

// Validate validates the ScoreTaskRequest using the validator.
func (r *ScoreTaskRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
