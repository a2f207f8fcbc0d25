package relevance

import (
	"math"

	"github.com/openhire/matchengine/internal/types"
)

// CalculateRelevance scores a candidate against a job and ranks the result
// within the provided candidate pool. The pool may be empty, in which case
// the rank is 1. Same inputs always produce the same output.
func CalculateRelevance(candidate *types.CandidateProfile, job *types.JobPosting, pool []types.CandidateProfile) types.RelevanceScore {
	factors := computeFactors(candidate, job)
	overall := overallScore(factors)

	return types.RelevanceScore{
		Overall:     overall,
		Factors:     factors,
		Rank:        rankInPool(overall, job, pool),
		Explanation: explain(factors),
	}
}

// computeFactors evaluates all six weighted factors for a candidate-job pair.
func computeFactors(candidate *types.CandidateProfile, job *types.JobPosting) []types.Factor {
	return []types.Factor{
		skillsFactor(candidate, job),
		locationFactor(candidate, job),
		salaryFactor(candidate, job),
		proofFactor(candidate, job),
		responseRateFactor(candidate, job),
		experienceFactor(candidate, job),
	}
}

// overallScore sums weighted factor contributions and rounds to the nearest
// integer, clamped to [0, 100].
func overallScore(factors []types.Factor) int {
	total := 0.0
	for _, f := range factors {
		total += f.Contribution()
	}

	score := int(math.Round(total))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// rankInPool computes a 1-based rank by scoring every pool member once and
// counting strictly higher scores. Two passes, no re-entry into ranking:
// pool members are scored with the same pure factor computation only.
func rankInPool(overall int, job *types.JobPosting, pool []types.CandidateProfile) int {
	higher := 0
	for i := range pool {
		poolScore := overallScore(computeFactors(&pool[i], job))
		if poolScore > overall {
			higher++
		}
	}
	return higher + 1
}
