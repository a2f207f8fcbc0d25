// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// EmploymentType constants
const (
	EmploymentFullTime = "full_time"
	EmploymentPartTime = "part_time"
	EmploymentContract = "contract"
	EmploymentIntern   = "internship"
)

// CompensationRange represents a published salary range on a job posting
type CompensationRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// JobPosting represents a job posting as read from the marketplace store.
// The engine treats postings as immutable input.
type JobPosting struct {
	ID             uuid.UUID          `json:"id"`
	Title          string             `json:"title"`
	Company        string             `json:"company"`
	URL            string             `json:"url,omitempty"`
	Description    string             `json:"description"`
	Tags           []string           `json:"tags"` // required skills
	Locations      []string           `json:"locations"`
	Remote         bool               `json:"remote"`
	EmploymentType string             `json:"employment_type"`
	Compensation   *CompensationRange `json:"compensation,omitempty"`
	EmployerID     uuid.UUID          `json:"employer_id"`
	Active         bool               `json:"active"`
	CreatedAt      time.Time          `json:"created_at"`
}

// HasPublishedRange reports whether the posting publishes a usable salary range.
func (j *JobPosting) HasPublishedRange() bool {
	return j.Compensation != nil && j.Compensation.Min > 0 && j.Compensation.Max > 0
}
