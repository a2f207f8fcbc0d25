package types

// Question kind constants
const (
	QuestionChoice   = "choice"
	QuestionScenario = "scenario"
	QuestionCode     = "code"
	QuestionDesign   = "design"
)

// Proof task type constants
const (
	TaskFrontend        = "frontend"
	TaskProductDesign   = "product_design"
	TaskCustomerSupport = "customer_support"
	TaskBackend         = "backend"
	TaskProductManager  = "product_manager"
	TaskDataAnalyst     = "data_analyst"
)

// Question is one entry in a proof task's fixed rubric
type Question struct {
	ID            string `json:"id"`
	Prompt        string `json:"prompt"`
	Kind          string `json:"kind"`
	CorrectAnswer string `json:"correct_answer,omitempty"` // for choice/scenario questions
}

// TaskTemplate is a fixed-rubric skills assessment for one task type
type TaskTemplate struct {
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Questions    []Question `json:"questions"`
	PassingScore int        `json:"passing_score"` // percentage threshold, e.g. 70
}

// TaskResult is the graded outcome of a proof task submission
type TaskResult struct {
	Score    int  `json:"score"`
	MaxScore int  `json:"max_score"`
	Passed   bool `json:"passed"`
}
