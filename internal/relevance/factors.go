// Package relevance combines skill, location, compensation, proof,
// responsiveness, and seniority signals into one explainable
// candidate-job score with relative ranking across a candidate pool.
package relevance

import (
	"fmt"
	"math"
	"strings"

	"github.com/openhire/matchengine/internal/types"
)

// Factor weights; they sum to 1.0.
const (
	weightSkills       = 0.30
	weightLocation     = 0.15
	weightSalary       = 0.15
	weightProof        = 0.20
	weightResponseRate = 0.10
	weightExperience   = 0.10
)

// skillsFactor scores matched required tags over total required tags.
// Matching is case-insensitive substring containment in either direction.
func skillsFactor(candidate *types.CandidateProfile, job *types.JobPosting) types.Factor {
	factor := types.Factor{Name: types.FactorSkillsMatch, Weight: weightSkills}

	if len(job.Tags) == 0 {
		factor.Explanation = "Job lists no required skills to match against."
		return factor
	}

	var matched, missing []string
	for _, tag := range job.Tags {
		if candidateHasSkill(candidate.Skills, tag) {
			matched = append(matched, tag)
		} else {
			missing = append(missing, tag)
		}
	}

	factor.Score = int(math.Round(100 * float64(len(matched)) / float64(len(job.Tags))))
	if len(matched) > 0 {
		factor.Explanation = fmt.Sprintf("Matched %d of %d required skills: %s.",
			len(matched), len(job.Tags), strings.Join(matched, ", "))
	} else {
		factor.Explanation = fmt.Sprintf("None of the %d required skills matched.", len(job.Tags))
	}
	if len(missing) > 0 {
		factor.Improvement = fmt.Sprintf("Add skills: %s", strings.Join(missing, ", "))
	}
	return factor
}

func candidateHasSkill(skills []string, tag string) bool {
	tagLower := strings.ToLower(tag)
	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		if strings.Contains(skillLower, tagLower) || strings.Contains(tagLower, skillLower) {
			return true
		}
	}
	return false
}

// locationFactor scores geographic compatibility. Remote jobs always fit;
// an unknown candidate location is neutral rather than penalized.
func locationFactor(candidate *types.CandidateProfile, job *types.JobPosting) types.Factor {
	factor := types.Factor{Name: types.FactorLocationFit, Weight: weightLocation}

	if jobIsRemote(job) {
		factor.Score = 100
		factor.Explanation = "Job is remote-friendly, so location is not a constraint."
		return factor
	}

	if candidate.Location == "" {
		factor.Score = 50
		factor.Explanation = "Candidate location is unknown."
		factor.Improvement = "Add your location to improve location matching"
		return factor
	}

	candidateLower := strings.ToLower(candidate.Location)
	for _, loc := range job.Locations {
		locLower := strings.ToLower(loc)
		if strings.Contains(candidateLower, locLower) || strings.Contains(locLower, candidateLower) {
			factor.Score = 100
			factor.Explanation = fmt.Sprintf("Candidate location matches the job location %q.", loc)
			return factor
		}
	}

	factor.Score = 30
	factor.Explanation = fmt.Sprintf("Candidate location %q does not match any job location.", candidate.Location)
	factor.Improvement = "Consider remote roles or update your location preferences"
	return factor
}

func jobIsRemote(job *types.JobPosting) bool {
	if job.Remote {
		return true
	}
	for _, loc := range job.Locations {
		locLower := strings.ToLower(loc)
		if strings.Contains(locLower, "remote") || strings.Contains(locLower, "anywhere") {
			return true
		}
	}
	return false
}

// salaryFactor rewards postings that publish a full range. Matching against
// the candidate's declared expectation is not wired in yet; the published
// range is the best available transparency signal.
func salaryFactor(_ *types.CandidateProfile, job *types.JobPosting) types.Factor {
	factor := types.Factor{Name: types.FactorSalaryFit, Weight: weightSalary}

	if job.HasPublishedRange() {
		factor.Score = 80
		factor.Explanation = "Employer publishes a full salary range."
	} else {
		factor.Score = 50
		factor.Explanation = "No published salary range to compare against."
	}
	factor.Improvement = "Add a salary expectation to your profile for precise comparison"
	return factor
}

// proofFactor rewards verifiable evidence: portfolio items, proof cards,
// and verified references. Capped at 100.
func proofFactor(candidate *types.CandidateProfile, _ *types.JobPosting) types.Factor {
	factor := types.Factor{Name: types.FactorProofCompleted, Weight: weightProof}

	var present, missing []string
	if len(candidate.Portfolio) > 0 {
		factor.Score += 40
		present = append(present, "portfolio")
	} else {
		missing = append(missing, "add portfolio items")
	}
	if len(candidate.ProofCards) > 0 {
		factor.Score += 30
		present = append(present, "proof cards")
	} else {
		missing = append(missing, "complete a proof task")
	}
	if len(candidate.VerifiedReferences()) > 0 {
		factor.Score += 30
		present = append(present, "verified references")
	} else {
		missing = append(missing, "collect a verified reference")
	}
	if factor.Score > 100 {
		factor.Score = 100
	}

	if len(present) > 0 {
		factor.Explanation = fmt.Sprintf("Profile includes %s.", strings.Join(present, ", "))
	} else {
		factor.Explanation = "Profile has no verifiable proof attached."
	}
	if len(missing) > 0 {
		factor.Improvement = strings.Join(missing, "; ")
	}
	return factor
}

// responseRateFactor uses profile completeness as a responsiveness proxy.
func responseRateFactor(candidate *types.CandidateProfile, _ *types.JobPosting) types.Factor {
	factor := types.Factor{Name: types.FactorResponseRate, Weight: weightResponseRate}

	completeness := candidate.Completeness
	if completeness < 0 {
		completeness = 0
	}
	if completeness > 100 {
		completeness = 100
	}
	factor.Score = completeness
	factor.Explanation = fmt.Sprintf("Profile is %d%% complete (responsiveness proxy).", completeness)
	if completeness < 100 {
		factor.Improvement = "Complete your profile to signal responsiveness"
	}
	return factor
}

// experienceFactor compares derived years of experience against the
// seniority implied by the job title.
func experienceFactor(candidate *types.CandidateProfile, job *types.JobPosting) types.Factor {
	factor := types.Factor{Name: types.FactorExperienceLevel, Weight: weightExperience}

	years := candidate.YearsOfExperience()
	senior := strings.Contains(strings.ToLower(job.Title), "senior")

	switch {
	case senior && years >= 5:
		factor.Score = 100
		factor.Explanation = fmt.Sprintf("About %d years of experience fits this senior role.", years)
	case senior:
		factor.Score = 60
		factor.Explanation = fmt.Sprintf("About %d years of experience is light for a senior role.", years)
		factor.Improvement = "Document more of your work history"
	case years >= 2:
		factor.Score = 90
		factor.Explanation = fmt.Sprintf("About %d years of experience fits this role.", years)
	default:
		factor.Score = 50
		factor.Explanation = fmt.Sprintf("About %d years of experience recorded.", years)
		factor.Improvement = "Add your work history to strengthen this match"
	}
	return factor
}
