// Package risk scores weather, market, input-cost and policy risk from
// static thresholds over the reference data. Fully deterministic: the
// same state and crop always produce the same assessment.
package risk

import "agri_planner/pkg/core/refdata"

// Risk types.
const (
	TypeWeather   = "weather"
	TypeMarket    = "market"
	TypeInputCost = "input_cost"
	TypePolicy    = "policy"
)

// Severity and overall tiers.
const (
	SeverityMedium = "Medium"
	SeverityHigh   = "High"

	OverallLow    = "Low"
	OverallMedium = "Medium"
	OverallHigh   = "High"
)

// Score weights and cutoffs. The additive scale is calibrated so that two
// high factors push a plan into the High tier.
const (
	droughtRainfallMM  = 400
	excessRainfallMM   = 1000
	costlyInputPerAcre = 40000

	weightDrought      = 30
	weightExcessRain   = 20
	weightVeryVolatile = 25
	weightVolatile     = 15
	weightCostlyInputs = 20
	weightWeakSupport  = 15

	cutoffHigh   = 50
	cutoffMedium = 25
)

// Factor is one triggered risk with its fixed description.
type Factor struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// Assessment is the scored result.
type Assessment struct {
	OverallRisk string   `json:"overall_risk"`
	Score       int      `json:"score"`
	Factors     []Factor `json:"factors"`
	Mitigations []string `json:"mitigations"`
}

var mitigations = map[string]string{
	TypeWeather:   "Enroll in PMFBY crop insurance and invest in water harvesting or drainage appropriate to the rainfall pattern",
	TypeMarket:    "Stagger sales across months and consider forward contracts through FPOs to smooth price swings",
	TypeInputCost: "Buy inputs through cooperatives and adopt soil-test-based fertilizer dosing to contain the high working-capital need",
	TypePolicy:    "Diversify part of the holding into MSP-procured crops to reduce exposure to weak government support",
}

// Assess scores the state/crop combination. No randomness; unknown keys
// resolve through the reference store's defaults.
func Assess(ref *refdata.Store, state, crop string) Assessment {
	stateProfile := ref.State(state)
	cropProfile := ref.Crop(crop)

	score := 0
	var factors []Factor

	add := func(riskType, severity, description string, weight int) {
		score += weight
		factors = append(factors, Factor{Type: riskType, Severity: severity, Description: description})
	}

	switch {
	case stateProfile.AvgRainfallMM < droughtRainfallMM:
		add(TypeWeather, SeverityHigh, "Low average rainfall; drought years will hit rain-fed yields hard", weightDrought)
	case stateProfile.AvgRainfallMM > excessRainfallMM:
		add(TypeWeather, SeverityMedium, "High average rainfall; waterlogging and flood damage are recurring risks", weightExcessRain)
	}

	switch cropProfile.MarketVolatility {
	case refdata.VolatilityVeryHigh:
		add(TypeMarket, SeverityHigh, "Prices for this crop swing sharply between glut and scarcity years", weightVeryVolatile)
	case refdata.VolatilityHigh:
		add(TypeMarket, SeverityMedium, "This crop sees significant price variability across seasons", weightVolatile)
	}

	if cropProfile.StandardInputCostPerAcre > costlyInputPerAcre {
		add(TypeInputCost, SeverityHigh, "Per-acre input costs are high; a failed season leaves substantial sunk cost", weightCostlyInputs)
	}

	if cropProfile.GovtSupport == refdata.SupportLow {
		add(TypePolicy, SeverityMedium, "Weak procurement support; no effective price floor if the market falls", weightWeakSupport)
	}

	overall := OverallLow
	switch {
	case score > cutoffHigh:
		overall = OverallHigh
	case score > cutoffMedium:
		overall = OverallMedium
	}

	seen := make(map[string]bool)
	var mitigation []string
	for _, f := range factors {
		if !seen[f.Type] {
			seen[f.Type] = true
			mitigation = append(mitigation, mitigations[f.Type])
		}
	}

	return Assessment{
		OverallRisk: overall,
		Score:       score,
		Factors:     factors,
		Mitigations: mitigation,
	}
}
