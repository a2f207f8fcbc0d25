package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYearsOfExperience_Empty(t *testing.T) {
	c := &CandidateProfile{}
	assert.Equal(t, 0, c.YearsOfExperience())
}

func TestYearsOfExperience_ThreeEntries(t *testing.T) {
	c := &CandidateProfile{
		Experience: []ExperienceEntry{
			{StartDate: "2018-01", EndDate: "2020-06"},
			{StartDate: "2020-07", EndDate: "2022-12"},
			{StartDate: "2023-01", Current: true},
		},
	}
	assert.Equal(t, 6, c.YearsOfExperience())
}

func TestVerifiedReferences_FiltersByKindAndVerification(t *testing.T) {
	c := &CandidateProfile{
		ProofCards: []ProofCard{
			{Kind: ProofKindReference, Verified: true, Title: "Manager at Acme"},
			{Kind: ProofKindReference, Verified: false},
			{Kind: ProofKindCredential, Verified: true},
		},
	}

	refs := c.VerifiedReferences()

	assert.Len(t, refs, 1)
	assert.Equal(t, "Manager at Acme", refs[0].Title)
}

func TestVerifiedReferences_NoneReturnsEmpty(t *testing.T) {
	c := &CandidateProfile{
		ProofCards: []ProofCard{{Kind: ProofKindPortfolio, Verified: true}},
	}
	assert.Empty(t, c.VerifiedReferences())
}

func TestHasPublishedRange(t *testing.T) {
	job := &JobPosting{}
	assert.False(t, job.HasPublishedRange())

	job.Compensation = &CompensationRange{Min: 90000, Max: 0}
	assert.False(t, job.HasPublishedRange())

	job.Compensation = &CompensationRange{Min: 90000, Max: 120000, Currency: "USD"}
	assert.True(t, job.HasPublishedRange())
}
