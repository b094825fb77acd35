package types

import "fmt"

// CostTier is a qualitative cost band
type CostTier string

const (
	CostLow      CostTier = "Low"
	CostLowMid   CostTier = "Low-Mid"
	CostMid      CostTier = "Mid"
	CostMidHigh  CostTier = "Mid-High"
	CostHigh     CostTier = "High"
	CostVeryHigh CostTier = "Very High"
)

// AllCostTiers returns all valid cost tiers, cheapest first
func AllCostTiers() []CostTier {
	return []CostTier{
		CostLow,
		CostLowMid,
		CostMid,
		CostMidHigh,
		CostHigh,
		CostVeryHigh,
	}
}

// IsValid checks if the cost tier is valid
func (c CostTier) IsValid() bool {
	switch c {
	case CostLow,
		CostLowMid,
		CostMid,
		CostMidHigh,
		CostHigh,
		CostVeryHigh:
		return true
	default:
		return false
	}
}

// IsLow reports whether the tier touches the low end of the scale
// ("Low" or "Low-Mid").
func (c CostTier) IsLow() bool {
	return c == CostLow || c == CostLowMid
}

// String returns the string representation of the cost tier
func (c CostTier) String() string {
	return string(c)
}

// ParseCostTier parses a string into a CostTier
func ParseCostTier(s string) (CostTier, error) {
	tier := CostTier(s)
	if !tier.IsValid() {
		return "", fmt.Errorf("invalid cost tier: %s", s)
	}
	return tier, nil
}
