package rankings

import (
	"fmt"

	domainrankings "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
)

// Value tiers for the aggregate z-score, best first.
const (
	TierElite    = "elite"
	TierStrong   = "strong"
	TierPositive = "positive"
	TierNeutral  = "neutral"
	TierWeak     = "weak"
	TierPoor     = "poor"
)

// ValueTier buckets an aggregate z-score for highlighting.
func ValueTier(z float64) string {
	switch {
	case z >= 2.0:
		return TierElite
	case z >= 1.0:
		return TierStrong
	case z > 0:
		return TierPositive
	case z > -1.0:
		return TierNeutral
	case z > -2.0:
		return TierWeak
	default:
		return TierPoor
	}
}

// FormatStat renders a category value: ratios as a percentage, everything else with one decimal.
func FormatStat(key domainrankings.Key, v float64) string {
	if key.IsPercentage() {
		return fmt.Sprintf("%.1f%%", v*100)
	}
	return fmt.Sprintf("%.1f", v)
}

// FormatValue renders the aggregate value score with two decimals.
func FormatValue(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
