// Package predict implements the yield and price predictors. Both are
// rule tables over the reference data plus a bounded uniform variance
// draw; the caller supplies the random source so tests can pin seeds.
package predict

import (
	"fmt"
	"math"
	"math/rand"

	"agri_planner/pkg/core/refdata"
)

// YieldPrediction is the output of PredictYield. Ephemeral: built fresh
// per request and owned by the caller.
type YieldPrediction struct {
	ExpectedYield float64  `json:"expected_yield"` // Total quintals, rounded
	YieldPerAcre  float64  `json:"yield_per_acre"` // Quintals/acre, rounded
	Confidence    int      `json:"confidence"`     // 70..95
	Factors       []string `json:"factors"`
}

// Yield variance band: actual seasons land within +/-10% of the modeled
// base often enough that a wider band would just add noise.
const (
	yieldVarianceMin = 0.90
	yieldVarianceMax = 1.10

	confidenceBase        = 70
	confidenceSuitability = 15
	confidenceIrrigation  = 10
	confidenceCap         = 95
)

// PredictYield estimates total and per-acre yield for a holding.
// Unknown states, crops and irrigation methods fall back per the
// reference store; there are no error paths.
func PredictYield(ref *refdata.Store, rng *rand.Rand, state, crop string, landSize float64, irrigation string) YieldPrediction {
	stateProfile := ref.State(state)
	cropProfile := ref.Crop(crop)

	base := cropProfile.AvgYieldPerAcre
	factors := make([]string, 0, 4)

	suitable := stateProfile.HasMajorCrop(cropProfile.Name)
	if suitable {
		base *= 1.15
		factors = append(factors, fmt.Sprintf("%s is a major crop in %s (+15%% yield)", cropProfile.Name, stateProfile.Name))
	} else {
		factors = append(factors, fmt.Sprintf("%s is not a traditional crop in %s", cropProfile.Name, stateProfile.Name))
	}

	irrMult := ref.IrrigationMultiplier(irrigation)
	base *= irrMult
	factors = append(factors, fmt.Sprintf("%s irrigation factor: %.2fx", irrigation, irrMult))

	// Small holdings get more attention per acre; very large ones lose a
	// little to management overhead.
	switch {
	case landSize < 2:
		base *= 1.10
		factors = append(factors, "Small holding intensive management (+10%)")
	case landSize > 10:
		base *= 0.95
		factors = append(factors, "Large holding management overhead (-5%)")
	}

	variance := yieldVarianceMin + rng.Float64()*(yieldVarianceMax-yieldVarianceMin)

	confidence := confidenceBase
	if suitable {
		confidence += confidenceSuitability
	}
	if irrigation == "Drip Irrigation" || irrigation == "Sprinkler Irrigation" {
		confidence += confidenceIrrigation
	}
	if confidence > confidenceCap {
		confidence = confidenceCap
	}

	return YieldPrediction{
		ExpectedYield: math.Round(base * landSize * variance),
		YieldPerAcre:  math.Round(base * variance),
		Confidence:    confidence,
		Factors:       factors,
	}
}
