package types

import "github.com/google/uuid"

// ProofCard kind constants
const (
	ProofKindPortfolio  = "portfolio"
	ProofKindCredential = "credential"
	ProofKindReference  = "reference"
	ProofKindAssessment = "assessment_result"
)

// ExperienceEntry represents one entry in a candidate's work history
type ExperienceEntry struct {
	Title     string `json:"title,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	Current   bool   `json:"current,omitempty"`
}

// PortfolioItem represents a portfolio entry attached to a candidate profile
type PortfolioItem struct {
	Title string   `json:"title"`
	URL   string   `json:"url,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// ProofCard is a verifiable artifact attached to a candidate profile
type ProofCard struct {
	Kind     string `json:"kind"`
	Title    string `json:"title,omitempty"`
	Verified bool   `json:"verified"`
}

// CandidateProfile represents a candidate as read from the marketplace store
type CandidateProfile struct {
	ID                uuid.UUID         `json:"id"`
	Skills            []string          `json:"skills"`
	Location          string            `json:"location,omitempty"`
	Experience        []ExperienceEntry `json:"experience,omitempty"`
	Portfolio         []PortfolioItem   `json:"portfolio,omitempty"`
	ProofCards        []ProofCard       `json:"proof_cards,omitempty"`
	Completeness      int               `json:"completeness"` // profile completeness, 0-100
	SalaryExpectation *int              `json:"salary_expectation,omitempty"`
}

// YearsOfExperience derives a coarse years-of-experience figure from the
// number of history entries. This is intentionally entryCount*2 rather than
// date-range math; changing it would shift Experience factor scores and ranks.
func (c *CandidateProfile) YearsOfExperience() int {
	return len(c.Experience) * 2
}

// VerifiedReferences returns the candidate's verified reference proof cards.
func (c *CandidateProfile) VerifiedReferences() []ProofCard {
	var refs []ProofCard
	for _, card := range c.ProofCards {
		if card.Kind == ProofKindReference && card.Verified {
			refs = append(refs, card)
		}
	}
	return refs
}
