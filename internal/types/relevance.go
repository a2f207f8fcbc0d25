package types

// Canonical relevance factor names
const (
	FactorSkillsMatch     = "Skills Match"
	FactorLocationFit     = "Location Fit"
	FactorSalaryFit       = "Salary Fit"
	FactorProofCompleted  = "Proof Completed"
	FactorResponseRate    = "Response Rate"
	FactorExperienceLevel = "Experience Level"
)

// Factor is one named, weighted, independently explainable component of an
// overall candidate-job relevance score.
type Factor struct {
	Name        string  `json:"name"`
	Score       int     `json:"score"`  // 0-100
	Weight      float64 `json:"weight"` // 0-1, all factor weights sum to 1.0
	Explanation string  `json:"explanation"`
	Improvement string  `json:"improvement,omitempty"`
}

// Contribution returns the factor's weighted contribution to the overall score.
func (f Factor) Contribution() float64 {
	return float64(f.Score) * f.Weight
}

// RelevanceScore is the explainable result of scoring a candidate against a job
type RelevanceScore struct {
	Overall     int      `json:"overall"` // 0-100
	Factors     []Factor `json:"factors"`
	Rank        int      `json:"rank"` // 1-based rank within the candidate pool
	Explanation string   `json:"explanation"`
}
