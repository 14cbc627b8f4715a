package predict

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"agri_planner/pkg/core/refdata"
)

// MonthlyPrice is one month of the price forecast.
type MonthlyPrice struct {
	Month     int      `json:"month"` // Calendar month, 1..12
	MonthName string   `json:"month_name"`
	Price     float64  `json:"price"` // Rupees/quintal, rounded
	Factors   []string `json:"factors"`
}

// PricePrediction carries the 12-month forecast plus summary statistics.
type PricePrediction struct {
	Monthly        []MonthlyPrice `json:"monthly"`
	AveragePrice   float64        `json:"average_price"`
	MSPRate        float64        `json:"msp_rate"`
	Volatility     string         `json:"volatility"`
	Recommendation string         `json:"recommendation"`
	Location       string         `json:"location,omitempty"` // Provenance only, unpriced
}

// mspFloorRatio: mandi prices for procured crops rarely clear below 85%
// of MSP; the floor keeps random draws inside that reality.
const mspFloorRatio = 0.85

var marketAccessMultipliers = map[string]float64{
	refdata.MarketAccessExcellent: 1.10,
	refdata.MarketAccessGood:      1.00,
	refdata.MarketAccessFair:      0.95,
	refdata.MarketAccessPoor:      0.90,
}

// volatilityBands keys the width of the uniform price draw by the crop's
// volatility tier.
var volatilityBands = map[string][2]float64{
	refdata.VolatilityLow:      {0.95, 1.05},
	refdata.VolatilityMedium:   {0.90, 1.10},
	refdata.VolatilityHigh:     {0.85, 1.15},
	refdata.VolatilityVeryHigh: {0.80, 1.20},
}

// PredictPrice forecasts 12 monthly prices for a crop in a state.
// location is an optional geocoded address carried through for
// provenance; the current rule set does not price on it.
func PredictPrice(ref *refdata.Store, rng *rand.Rand, crop, state, location string) PricePrediction {
	cropProfile := ref.Crop(crop)
	stateProfile := ref.State(state)
	curve := ref.SeasonalCurve(crop)

	accessMult, ok := marketAccessMultipliers[stateProfile.MarketAccess]
	if !ok {
		accessMult = 1.00
	}
	band, ok := volatilityBands[cropProfile.MarketVolatility]
	if !ok {
		band = volatilityBands[refdata.VolatilityMedium]
	}

	monthly := make([]MonthlyPrice, 0, 12)
	total := 0.0
	for m := 1; m <= 12; m++ {
		seasonal := curve[m-1]
		draw := band[0] + rng.Float64()*(band[1]-band[0])

		price := cropProfile.MSPRate * seasonal * accessMult * draw
		price = math.Max(price, cropProfile.MSPRate*mspFloorRatio)
		price = math.Round(price)
		total += price

		monthly = append(monthly, MonthlyPrice{
			Month:     m,
			MonthName: time.Month(m).String(),
			Price:     price,
			Factors: []string{
				seasonalDemandLabel(seasonal),
				fmt.Sprintf("Market access: %s", stateProfile.MarketAccess),
				fmt.Sprintf("Government support: %s", cropProfile.GovtSupport),
			},
		})
	}

	return PricePrediction{
		Monthly:        monthly,
		AveragePrice:   math.Round(total / 12),
		MSPRate:        cropProfile.MSPRate,
		Volatility:     cropProfile.MarketVolatility,
		Recommendation: priceRecommendation(monthly),
		Location:       location,
	}
}

func seasonalDemandLabel(multiplier float64) string {
	switch {
	case multiplier > 1.05:
		return "High seasonal demand"
	case multiplier < 0.95:
		return "Harvest-season arrivals depress prices"
	default:
		return "Normal seasonal demand"
	}
}

// priceRecommendation flags high spread forecasts and names the best
// month to sell; stable forecasts defer to cash-flow needs.
func priceRecommendation(monthly []MonthlyPrice) string {
	minPrice, maxPrice := monthly[0].Price, monthly[0].Price
	bestMonth := monthly[0].MonthName
	for _, mp := range monthly[1:] {
		if mp.Price > maxPrice {
			maxPrice = mp.Price
			bestMonth = mp.MonthName
		}
		if mp.Price < minPrice {
			minPrice = mp.Price
		}
	}
	if minPrice > 0 && (maxPrice-minPrice)/minPrice > 0.30 {
		return fmt.Sprintf("Prices swing widely across the year; holding stock for %s (projected peak ₹%.0f/quintal) can materially improve realization", bestMonth, maxPrice)
	}
	return "Prices are stable across the year; sell as cash-flow needs dictate rather than waiting for a peak"
}
