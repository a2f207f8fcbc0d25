package types

import (
	"time"

	"github.com/google/uuid"
)

// Confidence tier constants
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// ConfidenceRank returns the ordinal position of a confidence tier for
// sorting, with high ranked above medium above low.
func ConfidenceRank(confidence string) int {
	switch confidence {
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 1
	default:
		return 0
	}
}

// Alert is a proactive job match suggestion supported by at least two
// independent match reasons.
type Alert struct {
	JobID      uuid.UUID `json:"job_id"`
	JobTitle   string    `json:"job_title"`
	Reasons    []string  `json:"reasons"`
	Confidence string    `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}
