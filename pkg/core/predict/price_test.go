package predict

import (
	"math/rand"
	"strings"
	"testing"

	"agri_planner/pkg/core/refdata"
)

func TestPriceMSPFloor(t *testing.T) {
	// Wheat MSP 2250 => floor = 2250 * 0.85 = 1912.5, rounds to 1913.
	// Must hold for every month under any draw.
	ref := refdata.NewStore()
	for seed := int64(0); seed < 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		pred := PredictPrice(ref, rng, "Wheat", "Bihar", "")
		if len(pred.Monthly) != 12 {
			t.Fatalf("expected 12 monthly prices, got %d", len(pred.Monthly))
		}
		for _, mp := range pred.Monthly {
			if mp.Price < 1913 {
				t.Fatalf("seed %d month %d: price %f below MSP floor 1913", seed, mp.Month, mp.Price)
			}
		}
	}
}

func TestPriceFloorHoldsForAllCrops(t *testing.T) {
	ref := refdata.NewStore()
	rng := rand.New(rand.NewSource(11))
	for _, crop := range ref.Crops() {
		pred := PredictPrice(ref, rng, crop, "Maharashtra", "")
		floor := pred.MSPRate * 0.85
		for _, mp := range pred.Monthly {
			// Rounded price can sit at most half a rupee under the floor.
			if mp.Price < floor-0.5 {
				t.Errorf("%s month %d: price %f below floor %f", crop, mp.Month, mp.Price, floor)
			}
		}
	}
}

func TestPriceMonthsOrderedAndNamed(t *testing.T) {
	ref := refdata.NewStore()
	rng := rand.New(rand.NewSource(3))
	pred := PredictPrice(ref, rng, "Rice", "Punjab", "Ludhiana, Punjab")

	for i, mp := range pred.Monthly {
		if mp.Month != i+1 {
			t.Errorf("month at index %d should be %d, got %d", i, i+1, mp.Month)
		}
		if len(mp.Factors) != 3 {
			t.Errorf("month %d: expected 3 factor strings, got %d", mp.Month, len(mp.Factors))
		}
	}
	if pred.Monthly[0].MonthName != "January" || pred.Monthly[11].MonthName != "December" {
		t.Error("month names should follow the calendar")
	}
	if pred.Location != "Ludhiana, Punjab" {
		t.Error("location should pass through untouched")
	}
}

func TestPriceAverageIsMeanOfMonths(t *testing.T) {
	ref := refdata.NewStore()
	rng := rand.New(rand.NewSource(4))
	pred := PredictPrice(ref, rng, "Cotton", "Gujarat", "")

	sum := 0.0
	for _, mp := range pred.Monthly {
		sum += mp.Price
	}
	want := sum / 12
	// AveragePrice is the rounded mean.
	if diff := pred.AveragePrice - want; diff > 0.5 || diff < -0.5 {
		t.Errorf("average %f not the mean of monthly prices (%f)", pred.AveragePrice, want)
	}
}

func TestPriceRecommendationTiers(t *testing.T) {
	// Spread > 30% of the minimum names the best month.
	volatile := []MonthlyPrice{
		{Month: 1, MonthName: "January", Price: 1000},
		{Month: 2, MonthName: "February", Price: 1400},
	}
	rec := priceRecommendation(volatile)
	if rec == "" || rec == priceRecommendation([]MonthlyPrice{{Month: 1, MonthName: "January", Price: 1000}, {Month: 2, MonthName: "February", Price: 1050}}) {
		t.Error("volatile and stable forecasts should get different advice")
	}
	if !strings.Contains(rec, "February") {
		t.Errorf("volatile advice should name the peak month, got %q", rec)
	}
}
