package schemes

import (
	"testing"

	"agri_planner/pkg/models"
)

func TestFullyEnrolledFarmer(t *testing.T) {
	// PM-KISAN 6000 + MGNREGA 100 days x 250 = 25000 => 31000 cash.
	// KCC and PMFBY are in-kind lines with no cash amount.
	p := &models.FarmProfile{
		PrimaryCrop:        "Rice",
		LandSize:           2,
		PMKisanBeneficiary: true,
		KCCHolder:          true,
		HasCropInsurance:   true,
	}
	s := Calculate(p)

	if s.TotalCashBenefit != 31000 {
		t.Errorf("Expected total cash benefit 31000, got %f", s.TotalCashBenefit)
	}
	if len(s.Benefits) != 4 {
		t.Errorf("Expected 4 benefit lines, got %d", len(s.Benefits))
	}
	if len(s.Recommendations) != 0 {
		t.Errorf("Fully enrolled farmer should get no enrollment advice, got %v", s.Recommendations)
	}
}

func TestUnenrolledFarmerGetsAdviceAndMGNREGA(t *testing.T) {
	p := &models.FarmProfile{PrimaryCrop: "Wheat", LandSize: 1}
	s := Calculate(p)

	// MGNREGA is unconditional.
	if s.TotalCashBenefit != 25000 {
		t.Errorf("Expected MGNREGA-only cash benefit 25000, got %f", s.TotalCashBenefit)
	}
	if len(s.Benefits) != 1 || s.Benefits[0].Scheme != "MGNREGA" {
		t.Errorf("Expected only the MGNREGA line, got %+v", s.Benefits)
	}
	if len(s.Recommendations) != 3 {
		t.Errorf("Expected advice for all three unset schemes, got %v", s.Recommendations)
	}
}

func TestInKindBenefitsCarryNoAmount(t *testing.T) {
	p := &models.FarmProfile{PrimaryCrop: "Rice", LandSize: 1, KCCHolder: true}
	s := Calculate(p)
	for _, b := range s.Benefits {
		if !b.Cash && b.Amount != 0 {
			t.Errorf("In-kind benefit %s should have no amount, got %f", b.Scheme, b.Amount)
		}
		if !b.Cash && b.Descriptor == "" {
			t.Errorf("In-kind benefit %s should carry a descriptor", b.Scheme)
		}
	}
}
