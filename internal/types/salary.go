package types

// SalaryInsight is the result of comparing a posted range to market benchmarks
type SalaryInsight struct {
	RangeConfidence       string   `json:"range_confidence"` // high, medium, or low
	MarketMatch           bool     `json:"market_match"`
	LocationAdjustment    *float64 `json:"location_adjustment,omitempty"` // omitted when neutral
	BenefitsValueEstimate int      `json:"benefits_value_estimate"`
	Insights              []string `json:"insights"`
	Warnings              []string `json:"warnings"`
}
