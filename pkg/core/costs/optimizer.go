// Package costs compares user-entered input spend against the standard
// per-acre cost model for a crop and produces the normative breakdown.
package costs

import "agri_planner/pkg/core/refdata"

// Standard input cost shares, as fractions of the crop's standard total.
// They always sum to 1; the breakdown is a normative target, not a
// rescaling of the user's figures.
const (
	shareSeeds      = 0.10
	shareFertilizer = 0.40
	sharePesticide  = 0.15
	shareLabor      = 0.30
	shareOther      = 0.05
)

// Deviation thresholds that trigger advisories.
const (
	highCostRatio       = 1.2
	lowCostRatio        = 0.8
	seedOverspendRatio  = 1.5
	fertOverspendRatio  = 1.3
)

// Breakdown is the recommended allocation of the standard total.
type Breakdown struct {
	Seeds      float64 `json:"seeds"`
	Fertilizer float64 `json:"fertilizer"`
	Pesticide  float64 `json:"pesticide"`
	Labor      float64 `json:"labor"`
	Other      float64 `json:"other"`
}

// Total sums the breakdown categories.
func (b Breakdown) Total() float64 {
	return b.Seeds + b.Fertilizer + b.Pesticide + b.Labor + b.Other
}

// Inputs are the user-entered costs. Absent categories are zero.
type Inputs struct {
	Seed       float64 `json:"seed"`
	Fertilizer float64 `json:"fertilizer"`
	Pesticide  float64 `json:"pesticide"`
	Labor      float64 `json:"labor"`
}

// Optimization reports how the user's spend compares to the standard
// model and what the standard allocation would look like.
type Optimization struct {
	StandardTotal      float64   `json:"standard_total"`
	CurrentTotal       float64   `json:"current_total"`
	VariancePercent    float64   `json:"variance_percent"`
	Advisories         []string  `json:"advisories"`
	OptimizedBreakdown Breakdown `json:"optimized_breakdown"`
}

// Optimize evaluates input spend for a crop on a holding of landSize
// acres. Advisory flags are non-exclusive.
func Optimize(ref *refdata.Store, crop string, landSize float64, in Inputs) Optimization {
	profile := ref.Crop(crop)
	standardTotal := profile.StandardInputCostPerAcre * landSize
	currentTotal := in.Seed + in.Fertilizer + in.Pesticide + in.Labor

	variancePct := 0.0
	if standardTotal > 0 {
		variancePct = (currentTotal - standardTotal) / standardTotal * 100
	}

	var advisories []string
	if currentTotal > standardTotal*highCostRatio {
		advisories = append(advisories, "Input costs are well above the standard for this crop; audit supplier rates and dosage")
	}
	if currentTotal < standardTotal*lowCostRatio {
		advisories = append(advisories, "Input spend is below the standard model; under-application of inputs may cap yield")
	}
	if in.Seed > standardTotal*shareSeeds*seedOverspendRatio {
		advisories = append(advisories, "Seed spend is high; certified seed from cooperative outlets is usually cheaper than open market")
	}
	if in.Fertilizer > standardTotal*shareFertilizer*fertOverspendRatio {
		advisories = append(advisories, "Fertilizer spend is high; soil testing can cut fertilizer use without yield loss")
	}

	return Optimization{
		StandardTotal:   standardTotal,
		CurrentTotal:    currentTotal,
		VariancePercent: variancePct,
		Advisories:      advisories,
		OptimizedBreakdown: Breakdown{
			Seeds:      standardTotal * shareSeeds,
			Fertilizer: standardTotal * shareFertilizer,
			Pesticide:  standardTotal * sharePesticide,
			Labor:      standardTotal * shareLabor,
			Other:      standardTotal * shareOther,
		},
	}
}
