package types

import (
	"time"

	"github.com/google/uuid"
)

// SearchFilters holds the structured filters of a saved search.
// Nil pointer fields mean the filter is not set.
type SearchFilters struct {
	Location       *string  `json:"location,omitempty"`
	Remote         *bool    `json:"remote,omitempty"`
	EmploymentType *string  `json:"employment_type,omitempty"`
	SalaryMin      *int     `json:"salary_min,omitempty"`
	SalaryMax      *int     `json:"salary_max,omitempty"`
	Seniority      *string  `json:"seniority,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// SavedSearch represents a stored search owned by a candidate
type SavedSearch struct {
	ID        uuid.UUID     `json:"id"`
	Query     string        `json:"query"`
	Filters   SearchFilters `json:"filters"`
	Schedule  string        `json:"schedule"` // e.g. "daily", "weekly"
	OwnerID   uuid.UUID     `json:"owner_id"`
	LastRunAt *time.Time    `json:"last_run_at,omitempty"`
}

// DigestRow is one ranked job entry inside a digest
type DigestRow struct {
	JobID         uuid.UUID `json:"job_id"`
	Title         string    `json:"title"`
	Company       string    `json:"company"`
	Location      string    `json:"location"`
	URL           string    `json:"url,omitempty"`
	MatchedSkills []string  `json:"matched_skills"`
	MatchScore    int       `json:"match_score"`
}

// Digest is a persisted, ranked snapshot of jobs matching a saved search
// at a point in time.
type Digest struct {
	ID          uuid.UUID   `json:"id"`
	SearchID    uuid.UUID   `json:"search_id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Rows        []DigestRow `json:"rows"`
}
