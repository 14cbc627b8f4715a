package plan

import "agri_planner/pkg/core/refdata"

// Confidence below this threshold earns an irrigation suggestion: the
// biggest controllable driver of yield certainty.
const lowConfidenceThreshold = 80

// aggregateRecommendations assembles the prioritized guidance list:
// cash-flow tier first (most actionable), then prediction-quality
// caveats, then the always-applicable practices.
func aggregateRecommendations(b *Bundle) []string {
	recs := make([]string, 0, len(b.CashFlow.Recommendations)+4)
	recs = append(recs, b.CashFlow.Recommendations...)

	if b.Yield.Confidence < lowConfidenceThreshold {
		recs = append(recs, "Yield estimate carries uncertainty; improving irrigation would raise both yield and predictability")
	}
	if b.Price.Volatility == refdata.VolatilityVeryHigh {
		recs = append(recs, "This crop's prices are highly volatile; diversify acreage or lock part of the produce into contract farming")
	}

	recs = append(recs,
		"Get a Soil Health Card and follow its fertilizer dosage; it pays for itself in one season",
		"Evaluate drip irrigation; the subsidy covers a large share of installation and water savings compound yearly",
	)
	return recs
}
