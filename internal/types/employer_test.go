package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierRank_Ordering(t *testing.T) {
	assert.Less(t, TierRank(TierNone), TierRank(TierDomain))
	assert.Less(t, TierRank(TierDomain), TierRank(TierBusiness))
	assert.Less(t, TierRank(TierBusiness), TierRank(TierPayment))
	assert.Less(t, TierRank(TierPayment), TierRank(TierVerified))
}

func TestTierRank_UnknownTier(t *testing.T) {
	assert.Equal(t, -1, TierRank("platinum"))
}

func TestConfidenceRank_Ordering(t *testing.T) {
	assert.Greater(t, ConfidenceRank(ConfidenceHigh), ConfidenceRank(ConfidenceMedium))
	assert.Greater(t, ConfidenceRank(ConfidenceMedium), ConfidenceRank(ConfidenceLow))
	assert.Equal(t, 0, ConfidenceRank("unknown"))
}
