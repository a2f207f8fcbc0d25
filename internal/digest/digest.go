// Package digest turns a saved search into a ranked, persisted summary of
// matching jobs from the active pool.
package digest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openhire/matchengine/internal/types"
)

// Match score constants: a base score plus a per-keyword bonus, capped, and
// a flat score when the search has no usable keywords.
const (
	maxKeywords     = 10
	baseMatchScore  = 40
	perKeywordBonus = 12
	maxMatchScore   = 95
	flatMatchScore  = 50
)

// Store is the persistence collaborator for digest generation. SaveDigest
// must persist the digest and update the saved search's last-run timestamp
// in the same transaction; on failure nothing is written.
type Store interface {
	ListActiveJobs(ctx context.Context) ([]types.JobPosting, error)
	SaveDigest(ctx context.Context, digest *types.Digest) error
}

// Generator produces digests for saved searches.
type Generator struct {
	store Store
}

// NewGenerator creates a digest generator over the given store.
func NewGenerator(store Store) *Generator {
	return &Generator{store: store}
}

// Generate reads the active job pool, builds the digest rows for the saved
// search, and persists the result. When the store cannot supply the pool or
// the write fails, no digest is returned and no partial write happens.
func (g *Generator) Generate(ctx context.Context, search types.SavedSearch) (*types.Digest, error) {
	jobs, err := g.store.ListActiveJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active job pool: %w", err)
	}

	d := &types.Digest{
		ID:          uuid.New(),
		SearchID:    search.ID,
		GeneratedAt: time.Now().UTC(),
		Rows:        BuildRows(search, jobs),
	}

	if err := g.store.SaveDigest(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to save digest: %w", err)
	}
	return d, nil
}

// BuildRows applies the saved search's filters and keywords to the job pool
// and returns scored rows, highest match first. Rows are a deterministic
// function of the search and the pool.
func BuildRows(search types.SavedSearch, jobs []types.JobPosting) []types.DigestRow {
	keywords := Keywords(search.Query)
	rows := make([]types.DigestRow, 0)

	for i := range jobs {
		job := &jobs[i]
		if !matchesSearch(search, keywords, job) {
			continue
		}

		row := types.DigestRow{
			JobID:    job.ID,
			Title:    job.Title,
			Company:  job.Company,
			Location: locationLabel(job),
			URL:      job.URL,
		}

		if len(keywords) == 0 {
			row.MatchedSkills = []string{}
			row.MatchScore = flatMatchScore
		} else {
			row.MatchedSkills = matchedKeywords(keywords, job)
			row.MatchScore = baseMatchScore + perKeywordBonus*len(row.MatchedSkills)
			if row.MatchScore > maxMatchScore {
				row.MatchScore = maxMatchScore
			}
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MatchScore > rows[j].MatchScore
	})
	return rows
}

// Keywords extracts up to 10 lowercase keyword tokens from a free-text
// query: split on commas, then whitespace, trimmed, dropping tokens
// shorter than 2 characters.
func Keywords(query string) []string {
	tokens := make([]string, 0, maxKeywords)
	for _, part := range strings.Split(query, ",") {
		for _, token := range strings.Fields(part) {
			token = strings.ToLower(strings.TrimSpace(token))
			if len(token) < 2 {
				continue
			}
			tokens = append(tokens, token)
			if len(tokens) == maxKeywords {
				return tokens
			}
		}
	}
	return tokens
}

// matchesSearch applies the query and structured filters to one job.
func matchesSearch(search types.SavedSearch, keywords []string, job *types.JobPosting) bool {
	query := strings.ToLower(strings.TrimSpace(search.Query))
	if query != "" {
		text := strings.ToLower(job.Title + " " + job.Description)
		if !strings.Contains(text, query) && !anyKeywordIn(keywords, text) {
			return false
		}
	}

	if search.Filters.Location != nil && !jobInLocation(job, *search.Filters.Location) {
		return false
	}
	if search.Filters.Remote != nil && job.Remote != *search.Filters.Remote {
		return false
	}
	if search.Filters.EmploymentType != nil && job.EmploymentType != *search.Filters.EmploymentType {
		return false
	}
	return true
}

func anyKeywordIn(keywords []string, text string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func jobInLocation(job *types.JobPosting, filter string) bool {
	filterLower := strings.ToLower(filter)
	for _, loc := range job.Locations {
		locLower := strings.ToLower(loc)
		if strings.Contains(locLower, filterLower) || strings.Contains(filterLower, locLower) {
			return true
		}
	}
	return false
}

// matchedKeywords lists the keyword tokens found in the job's title and
// description, preserving token order.
func matchedKeywords(keywords []string, job *types.JobPosting) []string {
	text := strings.ToLower(job.Title + " " + job.Description)
	matched := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

func locationLabel(job *types.JobPosting) string {
	if len(job.Locations) > 0 {
		return strings.Join(job.Locations, ", ")
	}
	if job.Remote {
		return "Remote"
	}
	return ""
}
