package types

import "github.com/google/uuid"

// Verification tier constants, ordered from least to most trusted
const (
	TierNone     = "none"
	TierDomain   = "domain"
	TierBusiness = "business"
	TierPayment  = "payment"
	TierVerified = "verified"
)

// tierOrder maps tiers to their position in the trust ordering
var tierOrder = map[string]int{
	TierNone:     0,
	TierDomain:   1,
	TierBusiness: 2,
	TierPayment:  3,
	TierVerified: 4,
}

// TierRank returns the ordinal position of a verification tier.
// Unknown tiers rank below none.
func TierRank(tier string) int {
	if rank, ok := tierOrder[tier]; ok {
		return rank
	}
	return -1
}

// EmployerAccount represents an employer as read from the marketplace store
type EmployerAccount struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name,omitempty"`
	VerificationTier string    `json:"verification_tier"`
	ResponseRate     int       `json:"response_rate"`      // percentage, 0-100
	AvgResponseTime  string    `json:"avg_response_time"`  // free text, e.g. "2.3 days"
	RawTrust         int       `json:"raw_trust"`          // carry-over trust input
}

// TrustStatus describes an employer's verification state, the remaining
// steps to full verification, and the derived trust score.
type TrustStatus struct {
	Tier             string   `json:"tier"`
	DomainVerified   bool     `json:"domain_verified"`
	BusinessVerified bool     `json:"business_verified"`
	PaymentVerified  bool     `json:"payment_verified"`
	IdentityVerified bool     `json:"identity_verified"`
	NextSteps        []string `json:"next_steps"`
	Score            int      `json:"score"`
}
