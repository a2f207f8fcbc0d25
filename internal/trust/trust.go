// Package trust derives employer verification status and trust scores
// from verification state and responsiveness signals.
package trust

import (
	"github.com/openhire/matchengine/internal/types"
)

// Score component caps
const (
	maxScore = 100

	tierPointsVerified = 40
	tierPointsPayment  = 30
	tierPointsBusiness = 20
	tierPointsDomain   = 10
)

// Next-step labels, in canonical order
const (
	stepDomain   = "Verify your company domain"
	stepBusiness = "Complete business verification"
	stepPayment  = "Add a verified payment method"
	stepIdentity = "Verify your identity"
)

// DeriveVerificationStatus maps an employer's verification tier to the
// concrete verification dimensions and the next steps toward full
// verification. The score field is filled from Score.
func DeriveVerificationStatus(employer types.EmployerAccount) types.TrustStatus {
	status := types.TrustStatus{Tier: employer.VerificationTier}

	switch employer.VerificationTier {
	case types.TierVerified:
		status.DomainVerified = true
		status.BusinessVerified = true
		status.PaymentVerified = true
		status.IdentityVerified = true
	case types.TierPayment:
		status.DomainVerified = true
		status.BusinessVerified = true
		status.PaymentVerified = true
	case types.TierBusiness:
		status.DomainVerified = true
		status.BusinessVerified = true
	case types.TierDomain:
		status.DomainVerified = true
	default:
		status.Tier = types.TierNone
	}

	status.NextSteps = nextSteps(status)
	status.Score = Score(employer, status)
	return status
}

// nextSteps lists the unmet verification dimensions in canonical order.
func nextSteps(status types.TrustStatus) []string {
	steps := make([]string, 0, 4)
	if !status.DomainVerified {
		steps = append(steps, stepDomain)
	}
	if !status.BusinessVerified {
		steps = append(steps, stepBusiness)
	}
	if !status.PaymentVerified {
		steps = append(steps, stepPayment)
	}
	if !status.IdentityVerified {
		steps = append(steps, stepIdentity)
	}
	return steps
}

// Score composes the employer trust score from four bounded, additive
// contributions: verification tier, response rate, response time, and a
// carry-over from the raw trust input. The total is clamped to [0, 100].
func Score(employer types.EmployerAccount, status types.TrustStatus) int {
	score := tierPoints(status.Tier)
	score += responseRatePoints(employer.ResponseRate)
	score += responseTimePoints(ParseResponseDays(employer.AvgResponseTime))

	if employer.RawTrust > 0 {
		score += employer.RawTrust / 10
	}

	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

func tierPoints(tier string) int {
	switch tier {
	case types.TierVerified:
		return tierPointsVerified
	case types.TierPayment:
		return tierPointsPayment
	case types.TierBusiness:
		return tierPointsBusiness
	case types.TierDomain:
		return tierPointsDomain
	default:
		return 0
	}
}

func responseRatePoints(rate int) int {
	switch {
	case rate >= 90:
		return 30
	case rate >= 75:
		return 20
	case rate >= 50:
		return 10
	default:
		return 0
	}
}

func responseTimePoints(days float64) int {
	switch {
	case days <= 2:
		return 20
	case days <= 5:
		return 15
	case days <= 7:
		return 10
	default:
		return 0
	}
}
