package refdata

// Market access tiers assigned per state. Drives the price multiplier.
const (
	MarketAccessExcellent = "excellent"
	MarketAccessGood      = "good"
	MarketAccessFair      = "fair"
	MarketAccessPoor      = "poor"
)

// Volatility tiers assigned per crop. Drives the width of the random
// price band.
const (
	VolatilityLow      = "low"
	VolatilityMedium   = "medium"
	VolatilityHigh     = "high"
	VolatilityVeryHigh = "very_high"
)

// Support tiers (MSP procurement strength / government backing).
const (
	SupportLow    = "low"
	SupportMedium = "medium"
	SupportHigh   = "high"
)

// StateProfile describes the agronomic and market context of a state.
type StateProfile struct {
	Name          string   `json:"name" yaml:"name"`
	MajorCrops    []string `json:"major_crops" yaml:"major_crops"`
	AvgRainfallMM float64  `json:"avg_rainfall_mm" yaml:"avg_rainfall_mm"`
	SoilType      string   `json:"soil_type" yaml:"soil_type"`
	MarketAccess  string   `json:"market_access" yaml:"market_access"`
	MSPSupport    string   `json:"msp_support" yaml:"msp_support"`
}

// HasMajorCrop reports whether the crop is among the state's major crops.
func (s StateProfile) HasMajorCrop(crop string) bool {
	for _, c := range s.MajorCrops {
		if normalize(c) == normalize(crop) {
			return true
		}
	}
	return false
}

// CropProfile describes the economics of a crop.
// Yields are quintals per acre; costs and MSP are rupees.
type CropProfile struct {
	Name                     string   `json:"name" yaml:"name"`
	AvgYieldPerAcre          float64  `json:"avg_yield_per_acre" yaml:"avg_yield_per_acre"`
	StandardInputCostPerAcre float64  `json:"standard_input_cost_per_acre" yaml:"standard_input_cost_per_acre"`
	LaborIntensive           bool     `json:"labor_intensive" yaml:"labor_intensive"`
	WaterRequirement         string   `json:"water_requirement" yaml:"water_requirement"` // low / medium / high
	Seasons                  []string `json:"seasons" yaml:"seasons"`                     // Kharif / Rabi / Zaid
	MSPRate                  float64  `json:"msp_rate" yaml:"msp_rate"`                   // Rupees per quintal
	MarketVolatility         string   `json:"market_volatility" yaml:"market_volatility"`
	GovtSupport              string   `json:"govt_support" yaml:"govt_support"`
}

// Scheme parameters used by the benefit calculator. These are policy
// constants, not per-user data.
const (
	PMKisanAnnualAmount = 6000.0 // Rupees per year, three installments

	MGNREGAGuaranteedDays = 100
	MGNREGADailyWage      = 250.0
)
