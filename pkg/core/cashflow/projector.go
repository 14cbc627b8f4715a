// Package cashflow builds the 12-month forward cash-flow ledger and the
// loan amortization schedule. It is the single projector used by every
// caller; the legacy screen-side fallback math lives here too, so the
// harvest-schedule and EMI logic exists exactly once.
package cashflow

import (
	"fmt"
	"math"
	"time"

	"agri_planner/pkg/core/predict"
	"agri_planner/pkg/core/refdata"
	"agri_planner/pkg/models"
)

// MonthRow is one month of the projection ledger.
type MonthRow struct {
	Index      int     `json:"index"` // 1..12 from the anchor month
	Month      int     `json:"month"` // Calendar month, 1..12
	MonthName  string  `json:"month_name"`
	Year       int     `json:"year"`
	Income     float64 `json:"income"`
	Expenses   float64 `json:"expenses"`
	Net        float64 `json:"net"`
	Cumulative float64 `json:"cumulative"`
	Harvest    bool    `json:"harvest"`
}

// Projection is the full 12-month ledger with annual totals, the
// viability verdict and tiered recommendations.
type Projection struct {
	Rows            []MonthRow `json:"rows"`
	AnnualIncome    float64    `json:"annual_income"`
	AnnualExpenses  float64    `json:"annual_expenses"`
	AnnualNet       float64    `json:"annual_net"`
	CropIncome      float64    `json:"crop_income"`
	Viable          bool       `json:"viable"`
	Recommendations []string   `json:"recommendations"`
}

// Project builds the ledger starting from the month containing anchor.
//
// Crop income takes the larger of the model estimate (expected yield x
// average price) and the declared annual farm income: self-reported
// income consistently understates true output, so the model never plans
// below it. Crop income lands evenly across the crop's harvest months;
// non-farm income is spread across all 12.
func Project(ref *refdata.Store, p *models.FarmProfile, yield predict.YieldPrediction, price predict.PricePrediction, anchor time.Time) Projection {
	aiCropIncome := yield.ExpectedYield * price.AveragePrice
	cropIncome := math.Max(aiCropIncome, p.AnnualFarmIncome)

	harvestMonths := ref.HarvestMonths(p.PrimaryCrop)
	harvestSet := make(map[int]bool, len(harvestMonths))
	for _, m := range harvestMonths {
		harvestSet[m] = true
	}

	cropShare := cropIncome / float64(len(harvestMonths))
	nonFarmMonthly := p.NonFarmIncome / 12

	start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())

	rows := make([]MonthRow, 0, 12)
	cumulative := 0.0
	for i := 0; i < 12; i++ {
		current := start.AddDate(0, i, 0)
		month := int(current.Month())

		income := nonFarmMonthly
		harvest := harvestSet[month]
		if harvest {
			income += cropShare
		}

		net := income - p.MonthlyExpenses
		cumulative += net

		rows = append(rows, MonthRow{
			Index:      i + 1,
			Month:      month,
			MonthName:  current.Month().String(),
			Year:       current.Year(),
			Income:     income,
			Expenses:   p.MonthlyExpenses,
			Net:        net,
			Cumulative: cumulative,
			Harvest:    harvest,
		})
	}

	annualIncome := cropIncome + p.NonFarmIncome
	annualExpenses := p.MonthlyExpenses * 12

	return Projection{
		Rows:            rows,
		AnnualIncome:    annualIncome,
		AnnualExpenses:  annualExpenses,
		AnnualNet:       annualIncome - annualExpenses,
		CropIncome:      cropIncome,
		Viable:          annualIncome >= annualExpenses,
		Recommendations: tieredRecommendations(annualIncome, annualExpenses),
	}
}

// Deficit tier cutoffs, as a fraction of annual income.
const (
	urgentDeficitRatio   = 0.30
	moderateDeficitRatio = 0.10
)

// tieredRecommendations maps the annual balance to guidance scaled by
// how bad (or good) the gap is.
func tieredRecommendations(annualIncome, annualExpenses float64) []string {
	deficit := annualExpenses - annualIncome
	if deficit <= 0 {
		surplus := -deficit
		return []string{
			fmt.Sprintf("Projected surplus of ₹%.0f; build an emergency fund of 6 months' expenses (₹%.0f) first", surplus, annualExpenses/2),
			"Reinvest part of the surplus in farm improvement: irrigation, storage or soil health",
			"Park the remainder in recurring deposits or PPF rather than idle cash",
		}
	}

	ratio := 1.0 // No income at all is automatically the urgent tier.
	if annualIncome > 0 {
		ratio = deficit / annualIncome
	}

	switch {
	case ratio > urgentDeficitRatio:
		return []string{
			"Urgent: household expenses need to come down by at least 25% to avoid debt spiral",
			"Add a dairy or poultry unit; animal husbandry gives monthly income between harvests",
			"Diversify into a second crop to spread income across the year",
			"Explore value addition (cleaning, grading, local processing) before sale",
			"Use MGNREGA work days during the lean season for guaranteed wages",
			"Register for PM-KISAN if not already enrolled",
			"Route credit needs through a Kisan Credit Card instead of informal lenders",
		}
	case ratio > moderateDeficitRatio:
		return []string{
			"Trim household expenses by 10-15% to close the gap",
			"Develop a secondary income source for the lean months",
		}
	default:
		return []string{
			"Small adjustments to expenses will balance the year",
			"Try direct marketing to nearby consumers to lift margins slightly",
		}
	}
}
