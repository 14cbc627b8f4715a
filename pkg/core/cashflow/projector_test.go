package cashflow

import (
	"math"
	"testing"
	"time"

	"agri_planner/pkg/core/predict"
	"agri_planner/pkg/core/refdata"
	"agri_planner/pkg/models"
)

func janAnchor() time.Time {
	return time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC)
}

func TestLedgerShape(t *testing.T) {
	ref := refdata.NewStore()
	p := &models.FarmProfile{
		PrimaryCrop:      "Rice",
		LandSize:         2,
		AnnualFarmIncome: 300000,
		NonFarmIncome:    60000,
		MonthlyExpenses:  10000,
	}
	proj := Project(ref, p, predict.YieldPrediction{ExpectedYield: 60}, predict.PricePrediction{AveragePrice: 2200}, janAnchor())

	if len(proj.Rows) != 12 {
		t.Fatalf("Expected 12 rows, got %d", len(proj.Rows))
	}
	for i, row := range proj.Rows {
		if row.Index != i+1 {
			t.Errorf("Row %d: index %d", i, row.Index)
		}
		if row.Month != i+1 || row.Year != 2025 {
			t.Errorf("Anchored in January, row %d should be month %d of 2025, got %d/%d", i, i+1, row.Month, row.Year)
		}
	}

	// Rice lands in April and October.
	for _, row := range proj.Rows {
		wantHarvest := row.Month == 4 || row.Month == 10
		if row.Harvest != wantHarvest {
			t.Errorf("Month %d: harvest flag %v", row.Month, row.Harvest)
		}
	}
}

func TestCumulativeIsRunningSum(t *testing.T) {
	ref := refdata.NewStore()
	p := &models.FarmProfile{
		PrimaryCrop:      "Wheat",
		LandSize:         3,
		AnnualFarmIncome: 150000,
		NonFarmIncome:    24000,
		MonthlyExpenses:  9000,
	}
	proj := Project(ref, p, predict.YieldPrediction{ExpectedYield: 50}, predict.PricePrediction{AveragePrice: 2000}, janAnchor())

	sum := 0.0
	for _, row := range proj.Rows {
		sum += row.Net
		if math.Abs(row.Cumulative-sum) > 0.01 {
			t.Errorf("Month %d: cumulative %f, running sum %f", row.Month, row.Cumulative, sum)
		}
		if math.Abs(row.Net-(row.Income-row.Expenses)) > 0.01 {
			t.Errorf("Month %d: net %f != income - expenses", row.Month, row.Net)
		}
	}
}

func TestCropIncomeTakesTheLargerEstimate(t *testing.T) {
	ref := refdata.NewStore()
	p := &models.FarmProfile{PrimaryCrop: "Rice", LandSize: 2, AnnualFarmIncome: 100000, MonthlyExpenses: 5000}

	// Model estimate 50 x 3000 = 150000 beats the declared 100000.
	proj := Project(ref, p, predict.YieldPrediction{ExpectedYield: 50}, predict.PricePrediction{AveragePrice: 3000}, janAnchor())
	if proj.CropIncome != 150000 {
		t.Errorf("Expected model estimate 150000, got %f", proj.CropIncome)
	}

	// Declared income wins when the model comes in lower.
	proj = Project(ref, p, predict.YieldPrediction{ExpectedYield: 20}, predict.PricePrediction{AveragePrice: 2000}, janAnchor())
	if proj.CropIncome != 100000 {
		t.Errorf("Expected declared income 100000, got %f", proj.CropIncome)
	}
}

func TestCropIncomeSplitsAcrossHarvests(t *testing.T) {
	ref := refdata.NewStore()
	p := &models.FarmProfile{PrimaryCrop: "Rice", LandSize: 2, AnnualFarmIncome: 200000, MonthlyExpenses: 5000}
	proj := Project(ref, p, predict.YieldPrediction{}, predict.PricePrediction{}, janAnchor())

	// Two harvest months share the crop income equally: 100000 each.
	for _, row := range proj.Rows {
		if row.Harvest && math.Abs(row.Income-100000) > 0.01 {
			t.Errorf("Harvest month %d income %f, want 100000", row.Month, row.Income)
		}
		if !row.Harvest && row.Income != 0 {
			t.Errorf("Lean month %d should have no income, got %f", row.Month, row.Income)
		}
	}
}

func TestUnknownCropUsesGenericHarvestWindows(t *testing.T) {
	// An unlisted crop borrows Rice's economics but not its calendar:
	// income lands in the generic June and December windows.
	ref := refdata.NewStore()
	p := &models.FarmProfile{PrimaryCrop: "Quinoa", LandSize: 2, AnnualFarmIncome: 200000, MonthlyExpenses: 5000}
	proj := Project(ref, p, predict.YieldPrediction{}, predict.PricePrediction{}, janAnchor())

	for _, row := range proj.Rows {
		wantHarvest := row.Month == 6 || row.Month == 12
		if row.Harvest != wantHarvest {
			t.Errorf("Month %d: harvest flag %v", row.Month, row.Harvest)
		}
		if row.Harvest && math.Abs(row.Income-100000) > 0.01 {
			t.Errorf("Harvest month %d income %f, want 100000", row.Month, row.Income)
		}
	}
}

func TestViabilityBoundary(t *testing.T) {
	ref := refdata.NewStore()
	// Income exactly equal to expenses is viable, not a deficit.
	p := &models.FarmProfile{PrimaryCrop: "Rice", LandSize: 1, AnnualFarmIncome: 120000, MonthlyExpenses: 10000}
	proj := Project(ref, p, predict.YieldPrediction{}, predict.PricePrediction{}, janAnchor())

	if !proj.Viable {
		t.Error("Break-even year should count as viable")
	}
	if proj.AnnualNet != 0 {
		t.Errorf("Expected zero annual net, got %f", proj.AnnualNet)
	}
	// Break-even gets the surplus-tier guidance.
	if len(proj.Recommendations) != 3 {
		t.Errorf("Expected surplus-tier advice, got %v", proj.Recommendations)
	}
}

func TestDeficitTiers(t *testing.T) {
	// Deficit ratio relative to annual income picks the tier.
	cases := []struct {
		name     string
		income   float64
		expenses float64
		wantLen  int
	}{
		{"urgent", 100000, 140000, 7},   // 40% deficit
		{"moderate", 100000, 120000, 2}, // 20% deficit
		{"minor", 100000, 105000, 2},    // 5% deficit
		{"zero income", 0, 60000, 7},
	}
	for _, c := range cases {
		recs := tieredRecommendations(c.income, c.expenses)
		if len(recs) != c.wantLen {
			t.Errorf("%s: expected %d recommendations, got %d", c.name, c.wantLen, len(recs))
		}
	}
}

func TestAnchorMidYearWrapsTheCalendar(t *testing.T) {
	ref := refdata.NewStore()
	p := &models.FarmProfile{PrimaryCrop: "Wheat", LandSize: 1, AnnualFarmIncome: 90000, MonthlyExpenses: 6000}
	anchor := time.Date(2025, time.August, 3, 0, 0, 0, 0, time.UTC)
	proj := Project(ref, p, predict.YieldPrediction{}, predict.PricePrediction{}, anchor)

	first, last := proj.Rows[0], proj.Rows[11]
	if first.Month != 8 || first.Year != 2025 {
		t.Errorf("First row should be August 2025, got %d/%d", first.Month, first.Year)
	}
	if last.Month != 7 || last.Year != 2026 {
		t.Errorf("Last row should be July 2026, got %d/%d", last.Month, last.Year)
	}
	// Wheat's April harvest still lands, in the following calendar year.
	sawHarvest := false
	for _, row := range proj.Rows {
		if row.Harvest {
			sawHarvest = true
			if row.Month != 4 || row.Year != 2026 {
				t.Errorf("Wheat harvest expected in April 2026, got %d/%d", row.Month, row.Year)
			}
		}
	}
	if !sawHarvest {
		t.Error("Harvest month missing from wrapped projection")
	}
}
