// Package alerts cross-references a candidate against the active job pool
// and surfaces matches supported by multiple independent signals.
package alerts

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/openhire/matchengine/internal/types"
)

// Signal thresholds for skill overlap
const (
	overlapMedium = 2
	overlapHigh   = 3
)

// minReasons is the minimum number of independent match reasons required
// before an alert is emitted; single-signal matches are noise.
const minReasons = 2

// Generate evaluates every job in the pool against the candidate and
// returns alerts ordered by confidence, most confident first. Ordering is
// stable within a confidence tier.
func Generate(candidate *types.CandidateProfile, jobPool []types.JobPosting) []types.Alert {
	now := time.Now().UTC()
	result := make([]types.Alert, 0)

	for i := range jobPool {
		if alert := evaluate(candidate, &jobPool[i], now); alert != nil {
			result = append(result, *alert)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return types.ConfidenceRank(result[i].Confidence) > types.ConfidenceRank(result[j].Confidence)
	})
	return result
}

// evaluate collects match reasons for one job; nil when fewer than two
// independent reasons fire.
func evaluate(candidate *types.CandidateProfile, job *types.JobPosting, now time.Time) *types.Alert {
	var reasons []string
	confidence := types.ConfidenceLow

	if overlap := skillOverlap(candidate.Skills, job.Tags); overlap >= overlapMedium {
		reasons = append(reasons, fmt.Sprintf("%d of your skills match this role", overlap))
		confidence = types.ConfidenceMedium
		if overlap >= overlapHigh {
			confidence = types.ConfidenceHigh
		}
	}

	if portfolioOverlaps(candidate.Portfolio, job.Tags) {
		reasons = append(reasons, "Your portfolio covers this role's stack")
		confidence = bump(confidence)
	}

	if seniorityAligned(candidate, job) {
		reasons = append(reasons, "Your experience level fits this role")
	}

	if locationMatches(candidate.Location, job) {
		reasons = append(reasons, "The role matches your location")
	}

	if len(reasons) < minReasons {
		return nil
	}

	return &types.Alert{
		JobID:      job.ID,
		JobTitle:   job.Title,
		Reasons:    reasons,
		Confidence: confidence,
		CreatedAt:  now,
	}
}

// skillOverlap counts job tags covered by the candidate's skills, using
// case-insensitive containment in either direction.
func skillOverlap(skills, tags []string) int {
	count := 0
	for _, tag := range tags {
		tagLower := strings.ToLower(tag)
		for _, skill := range skills {
			skillLower := strings.ToLower(skill)
			if strings.Contains(skillLower, tagLower) || strings.Contains(tagLower, skillLower) {
				count++
				break
			}
		}
	}
	return count
}

// portfolioOverlaps reports whether any portfolio item shares a tag with the job.
func portfolioOverlaps(portfolio []types.PortfolioItem, tags []string) bool {
	for _, item := range portfolio {
		if skillOverlap(item.Tags, tags) > 0 {
			return true
		}
	}
	return false
}

// seniorityAligned applies the same experience thresholds as the relevance
// scorer's Experience Level factor.
func seniorityAligned(candidate *types.CandidateProfile, job *types.JobPosting) bool {
	years := candidate.YearsOfExperience()
	if strings.Contains(strings.ToLower(job.Title), "senior") {
		return years >= 5
	}
	return years >= 2
}

func locationMatches(location string, job *types.JobPosting) bool {
	if job.Remote {
		return true
	}
	if location == "" {
		return false
	}
	locationLower := strings.ToLower(location)
	for _, loc := range job.Locations {
		locLower := strings.ToLower(loc)
		if strings.Contains(locLower, "remote") || strings.Contains(locLower, "anywhere") {
			return true
		}
		if strings.Contains(locationLower, locLower) || strings.Contains(locLower, locationLower) {
			return true
		}
	}
	return false
}

func bump(confidence string) string {
	switch confidence {
	case types.ConfidenceLow:
		return types.ConfidenceMedium
	case types.ConfidenceMedium:
		return types.ConfidenceHigh
	default:
		return confidence
	}
}
