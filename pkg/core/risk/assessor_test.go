package risk

import (
	"reflect"
	"testing"

	"agri_planner/pkg/core/refdata"
)

func TestDroughtStateScoresMedium(t *testing.T) {
	// Rajasthan averages 350mm, under the 400mm drought line: +30.
	// Rice carries no market, input or policy risk, so 30 lands in the
	// Medium band (25 < 30 <= 50).
	ref := refdata.NewStore()
	a := Assess(ref, "Rajasthan", "Rice")

	if a.Score != 30 {
		t.Errorf("Expected score 30, got %d", a.Score)
	}
	if a.OverallRisk != OverallMedium {
		t.Errorf("Expected Medium, got %s", a.OverallRisk)
	}
	if len(a.Factors) != 1 || a.Factors[0].Type != TypeWeather || a.Factors[0].Severity != SeverityHigh {
		t.Errorf("Expected a single high-severity weather factor, got %+v", a.Factors)
	}
}

func TestVolatileCropInDroughtStateScoresHigh(t *testing.T) {
	// Rajasthan + Onion: drought 30 + very-high volatility 25 + weak
	// support 15 = 70 > 50.
	ref := refdata.NewStore()
	a := Assess(ref, "Rajasthan", "Onion")

	if a.Score != 70 {
		t.Errorf("Expected score 70, got %d", a.Score)
	}
	if a.OverallRisk != OverallHigh {
		t.Errorf("Expected High, got %s", a.OverallRisk)
	}
	if len(a.Mitigations) != 3 {
		t.Errorf("Expected one mitigation per factor type, got %v", a.Mitigations)
	}
}

func TestStableCombinationScoresLow(t *testing.T) {
	// Punjab rainfall 650mm sits inside [400,1000]; Rice is low
	// volatility, moderate input cost, high support. Nothing triggers.
	ref := refdata.NewStore()
	a := Assess(ref, "Punjab", "Rice")

	if a.Score != 0 || a.OverallRisk != OverallLow {
		t.Errorf("Expected a clean Low assessment, got score %d / %s", a.Score, a.OverallRisk)
	}
	if len(a.Factors) != 0 || len(a.Mitigations) != 0 {
		t.Errorf("No factors should trigger: %+v", a)
	}
}

func TestExcessRainAndCostlyInputs(t *testing.T) {
	// Maharashtra 1100mm > 1000: +20. Sugarcane inputs 45000 > 40000: +20.
	// Total 40 is Medium.
	ref := refdata.NewStore()
	a := Assess(ref, "Maharashtra", "Sugarcane")

	if a.Score != 40 {
		t.Errorf("Expected score 40, got %d", a.Score)
	}
	if a.OverallRisk != OverallMedium {
		t.Errorf("Expected Medium, got %s", a.OverallRisk)
	}

	types := map[string]bool{}
	for _, f := range a.Factors {
		types[f.Type] = true
	}
	if !types[TypeWeather] || !types[TypeInputCost] {
		t.Errorf("Expected weather and input-cost factors, got %+v", a.Factors)
	}
}

func TestAssessmentIsDeterministic(t *testing.T) {
	ref := refdata.NewStore()
	first := Assess(ref, "West Bengal", "Potato")
	second := Assess(ref, "West Bengal", "Potato")
	if !reflect.DeepEqual(first, second) {
		t.Error("Assessment must be a pure function of state and crop")
	}
}
