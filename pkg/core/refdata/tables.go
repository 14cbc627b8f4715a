package refdata

// Static reference tables. Values are seasonal-average figures for major
// Indian states and MSP-notified crops; they are deliberately coarse. The
// model prefers a plausible estimate over a hard failure, so every table
// has a designated default row.

// DefaultStateName and DefaultCropName are the fallback rows used when a
// lookup misses. Unknown crops resolve to Rice: it is the most widely
// grown crop and its economics are the safest neutral assumption.
const (
	DefaultStateName = "Default"
	DefaultCropName  = "Rice"
)

func builtinStates() []StateProfile {
	return []StateProfile{
		{Name: "Punjab", MajorCrops: []string{"Rice", "Wheat", "Maize"}, AvgRainfallMM: 650, SoilType: "Alluvial", MarketAccess: MarketAccessExcellent, MSPSupport: SupportHigh},
		{Name: "Haryana", MajorCrops: []string{"Rice", "Wheat", "Bajra", "Mustard"}, AvgRainfallMM: 550, SoilType: "Alluvial", MarketAccess: MarketAccessExcellent, MSPSupport: SupportHigh},
		{Name: "Uttar Pradesh", MajorCrops: []string{"Wheat", "Rice", "Sugarcane", "Potato"}, AvgRainfallMM: 950, SoilType: "Alluvial", MarketAccess: MarketAccessGood, MSPSupport: SupportHigh},
		{Name: "Madhya Pradesh", MajorCrops: []string{"Soybean", "Wheat", "Gram"}, AvgRainfallMM: 1050, SoilType: "Black", MarketAccess: MarketAccessGood, MSPSupport: SupportMedium},
		{Name: "Maharashtra", MajorCrops: []string{"Cotton", "Soybean", "Sugarcane", "Onion"}, AvgRainfallMM: 1100, SoilType: "Black", MarketAccess: MarketAccessGood, MSPSupport: SupportMedium},
		{Name: "Rajasthan", MajorCrops: []string{"Bajra", "Mustard", "Gram"}, AvgRainfallMM: 350, SoilType: "Desert", MarketAccess: MarketAccessFair, MSPSupport: SupportMedium},
		{Name: "Gujarat", MajorCrops: []string{"Cotton", "Groundnut"}, AvgRainfallMM: 800, SoilType: "Black", MarketAccess: MarketAccessGood, MSPSupport: SupportMedium},
		{Name: "West Bengal", MajorCrops: []string{"Rice", "Jute", "Potato"}, AvgRainfallMM: 1750, SoilType: "Alluvial", MarketAccess: MarketAccessGood, MSPSupport: SupportMedium},
		{Name: "Bihar", MajorCrops: []string{"Rice", "Wheat", "Maize"}, AvgRainfallMM: 1100, SoilType: "Alluvial", MarketAccess: MarketAccessFair, MSPSupport: SupportMedium},
		{Name: "Tamil Nadu", MajorCrops: []string{"Rice", "Sugarcane", "Groundnut"}, AvgRainfallMM: 950, SoilType: "Red", MarketAccess: MarketAccessGood, MSPSupport: SupportMedium},
		{Name: "Karnataka", MajorCrops: []string{"Maize", "Cotton", "Sugarcane"}, AvgRainfallMM: 900, SoilType: "Red", MarketAccess: MarketAccessGood, MSPSupport: SupportMedium},
		{Name: "Andhra Pradesh", MajorCrops: []string{"Rice", "Cotton", "Groundnut"}, AvgRainfallMM: 900, SoilType: "Red", MarketAccess: MarketAccessGood, MSPSupport: SupportMedium},
		{Name: "Telangana", MajorCrops: []string{"Rice", "Cotton", "Maize"}, AvgRainfallMM: 900, SoilType: "Red", MarketAccess: MarketAccessGood, MSPSupport: SupportMedium},
		{Name: "Odisha", MajorCrops: []string{"Rice", "Jute"}, AvgRainfallMM: 1450, SoilType: "Red", MarketAccess: MarketAccessFair, MSPSupport: SupportMedium},
		{Name: DefaultStateName, MajorCrops: []string{"Rice", "Wheat"}, AvgRainfallMM: 800, SoilType: "Mixed", MarketAccess: MarketAccessFair, MSPSupport: SupportMedium},
	}
}

func builtinCrops() []CropProfile {
	return []CropProfile{
		{Name: "Rice", AvgYieldPerAcre: 25, StandardInputCostPerAcre: 22000, LaborIntensive: true, WaterRequirement: "high", Seasons: []string{"Kharif"}, MSPRate: 2203, MarketVolatility: VolatilityLow, GovtSupport: SupportHigh},
		{Name: "Wheat", AvgYieldPerAcre: 18, StandardInputCostPerAcre: 18000, LaborIntensive: false, WaterRequirement: "medium", Seasons: []string{"Rabi"}, MSPRate: 2250, MarketVolatility: VolatilityLow, GovtSupport: SupportHigh},
		{Name: "Maize", AvgYieldPerAcre: 20, StandardInputCostPerAcre: 15000, LaborIntensive: false, WaterRequirement: "medium", Seasons: []string{"Kharif", "Rabi"}, MSPRate: 2090, MarketVolatility: VolatilityMedium, GovtSupport: SupportMedium},
		{Name: "Cotton", AvgYieldPerAcre: 8, StandardInputCostPerAcre: 28000, LaborIntensive: true, WaterRequirement: "medium", Seasons: []string{"Kharif"}, MSPRate: 6620, MarketVolatility: VolatilityHigh, GovtSupport: SupportMedium},
		{Name: "Sugarcane", AvgYieldPerAcre: 280, StandardInputCostPerAcre: 45000, LaborIntensive: true, WaterRequirement: "high", Seasons: []string{"Annual"}, MSPRate: 315, MarketVolatility: VolatilityLow, GovtSupport: SupportHigh},
		{Name: "Soybean", AvgYieldPerAcre: 10, StandardInputCostPerAcre: 14000, LaborIntensive: false, WaterRequirement: "medium", Seasons: []string{"Kharif"}, MSPRate: 4600, MarketVolatility: VolatilityMedium, GovtSupport: SupportMedium},
		{Name: "Groundnut", AvgYieldPerAcre: 9, StandardInputCostPerAcre: 16000, LaborIntensive: true, WaterRequirement: "low", Seasons: []string{"Kharif"}, MSPRate: 6377, MarketVolatility: VolatilityMedium, GovtSupport: SupportMedium},
		{Name: "Mustard", AvgYieldPerAcre: 6, StandardInputCostPerAcre: 12000, LaborIntensive: false, WaterRequirement: "low", Seasons: []string{"Rabi"}, MSPRate: 5650, MarketVolatility: VolatilityMedium, GovtSupport: SupportMedium},
		{Name: "Bajra", AvgYieldPerAcre: 9, StandardInputCostPerAcre: 8000, LaborIntensive: false, WaterRequirement: "low", Seasons: []string{"Kharif"}, MSPRate: 2500, MarketVolatility: VolatilityMedium, GovtSupport: SupportMedium},
		{Name: "Gram", AvgYieldPerAcre: 8, StandardInputCostPerAcre: 11000, LaborIntensive: false, WaterRequirement: "low", Seasons: []string{"Rabi"}, MSPRate: 5440, MarketVolatility: VolatilityMedium, GovtSupport: SupportMedium},
		{Name: "Tur", AvgYieldPerAcre: 4, StandardInputCostPerAcre: 13000, LaborIntensive: false, WaterRequirement: "low", Seasons: []string{"Kharif"}, MSPRate: 7000, MarketVolatility: VolatilityHigh, GovtSupport: SupportMedium},
		{Name: "Jute", AvgYieldPerAcre: 10, StandardInputCostPerAcre: 15000, LaborIntensive: true, WaterRequirement: "high", Seasons: []string{"Kharif"}, MSPRate: 5050, MarketVolatility: VolatilityLow, GovtSupport: SupportMedium},
		// Horticulture rows carry a notional reference floor price in MSPRate;
		// there is no official MSP for these, but the floor invariant still
		// needs a positive base.
		{Name: "Onion", AvgYieldPerAcre: 80, StandardInputCostPerAcre: 35000, LaborIntensive: true, WaterRequirement: "medium", Seasons: []string{"Kharif", "Rabi"}, MSPRate: 1200, MarketVolatility: VolatilityVeryHigh, GovtSupport: SupportLow},
		{Name: "Potato", AvgYieldPerAcre: 90, StandardInputCostPerAcre: 30000, LaborIntensive: true, WaterRequirement: "medium", Seasons: []string{"Rabi"}, MSPRate: 1000, MarketVolatility: VolatilityVeryHigh, GovtSupport: SupportLow},
	}
}

// Seasonal price multipliers, January..December. Troughs sit on harvest
// arrivals, peaks on the lean months before the next crop lands.
func builtinSeasonalCurves() map[string][12]float64 {
	return map[string][12]float64{
		"Rice":      {1.00, 1.02, 1.00, 0.95, 0.98, 1.02, 1.05, 1.08, 1.06, 0.92, 0.90, 0.96},
		"Wheat":     {1.05, 1.02, 0.95, 0.90, 0.92, 0.96, 1.00, 1.04, 1.06, 1.08, 1.08, 1.06},
		"Maize":     {1.04, 1.05, 1.06, 1.05, 1.04, 1.02, 1.00, 0.96, 0.90, 0.92, 0.98, 1.02},
		"Cotton":    {1.02, 1.04, 1.05, 1.06, 1.06, 1.05, 1.02, 1.00, 0.98, 0.92, 0.90, 0.95},
		"Sugarcane": {1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00},
		"Soybean":   {1.04, 1.05, 1.06, 1.06, 1.05, 1.04, 1.02, 0.98, 0.94, 0.90, 0.95, 1.00},
		"Mustard":   {1.04, 1.00, 0.92, 0.90, 0.95, 1.00, 1.04, 1.06, 1.08, 1.08, 1.06, 1.05},
		"Onion":     {0.95, 0.90, 0.85, 0.90, 1.00, 1.10, 1.20, 1.30, 1.35, 1.25, 1.00, 0.90},
		"Potato":    {0.90, 0.85, 0.88, 0.95, 1.05, 1.10, 1.15, 1.20, 1.20, 1.15, 1.05, 0.95},
	}
}

// defaultSeasonalCurve is a mild generic cycle used for crops without a
// dedicated curve.
var defaultSeasonalCurve = [12]float64{1.00, 1.00, 0.98, 0.96, 0.98, 1.00, 1.02, 1.04, 1.04, 1.00, 0.98, 1.00}

// Harvest calendar: calendar months (1..12) in which sale-ready produce
// arrives. Dual-season crops list both windows.
func builtinHarvestCalendar() map[string][]int {
	return map[string][]int{
		"Rice":      {4, 10},
		"Wheat":     {4},
		"Maize":     {9},
		"Cotton":    {11},
		"Sugarcane": {1, 2},
		"Soybean":   {10},
		"Groundnut": {10},
		"Mustard":   {3},
		"Bajra":     {9},
		"Gram":      {3},
		"Tur":       {12},
		"Jute":      {8},
		"Onion":     {3, 11},
		"Potato":    {2},
	}
}

// defaultHarvestMonths is used when the crop has no calendar entry.
var defaultHarvestMonths = []int{6, 12}

// Irrigation yield multipliers. Unrecognized methods are treated as
// canal-equivalent (1.00).
func builtinIrrigationMultipliers() map[string]float64 {
	return map[string]float64{
		"Rain-fed":             0.80,
		"Canal Irrigation":     1.00,
		"Tube Well":            1.10,
		"Drip Irrigation":      1.25,
		"Sprinkler Irrigation": 1.15,
	}
}
