package models

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors returned by FarmProfile.Validate.
// These are contract violations: the form layer is expected to catch them
// before the engine is ever invoked.
var (
	ErrNilProfile      = errors.New("farm profile is required")
	ErrEmptyCrop       = errors.New("primary crop is required")
	ErrInvalidLandSize = errors.New("land size must be greater than zero")
)

// FarmProfile is the flat input record for a financial plan request.
// It mirrors what the intake form collects: identity, holding, crop choice,
// input spend, household economics and scheme enrollment flags.
type FarmProfile struct {
	State          string `json:"state"`
	District       string `json:"district"`
	FarmerCategory string `json:"farmer_category"` // 'Marginal', 'Small', 'Medium', 'Large'

	PrimaryCrop      string  `json:"primary_crop"`
	LandSize         float64 `json:"land_size"` // Acres
	IrrigationMethod string  `json:"irrigation_method"`

	// Input costs for the current season (total, not per acre)
	SeedCost       float64 `json:"seed_cost"`
	FertilizerCost float64 `json:"fertilizer_cost"`
	PesticideCost  float64 `json:"pesticide_cost"`
	LaborCost      float64 `json:"labor_cost"`

	// Household economics (annual unless noted)
	AnnualFarmIncome float64 `json:"annual_farm_income"`
	NonFarmIncome    float64 `json:"non_farm_income"`
	MonthlyExpenses  float64 `json:"monthly_expenses"`
	CurrentSavings   float64 `json:"current_savings"`

	// Scheme enrollment
	PMKisanBeneficiary bool `json:"pm_kisan_beneficiary"`
	KCCHolder          bool `json:"kcc_holder"`
	HasCropInsurance   bool `json:"has_crop_insurance"`

	// Optional loan being considered or serviced
	LoanAmount  float64 `json:"loan_amount,omitempty"`
	LoanPurpose string  `json:"loan_purpose,omitempty"`

	// Optional geocoded address. Carried through to prediction provenance
	// only; the current rule set does not price on it.
	Location string `json:"location,omitempty"`
}

// Normalize applies the documented input defaults exactly once, at the
// boundary. After Normalize the engine never needs inline fallbacks:
// names are trimmed, absent costs are zero, and an unset irrigation
// method defaults to rain-fed.
func (p *FarmProfile) Normalize() {
	p.State = strings.TrimSpace(p.State)
	p.District = strings.TrimSpace(p.District)
	p.PrimaryCrop = strings.TrimSpace(p.PrimaryCrop)
	p.IrrigationMethod = strings.TrimSpace(p.IrrigationMethod)

	if p.IrrigationMethod == "" {
		p.IrrigationMethod = "Rain-fed"
	}

	// Costs may arrive negative from partially filled forms; treat as absent.
	if p.SeedCost < 0 {
		p.SeedCost = 0
	}
	if p.FertilizerCost < 0 {
		p.FertilizerCost = 0
	}
	if p.PesticideCost < 0 {
		p.PesticideCost = 0
	}
	if p.LaborCost < 0 {
		p.LaborCost = 0
	}
	if p.NonFarmIncome < 0 {
		p.NonFarmIncome = 0
	}
	if p.AnnualFarmIncome < 0 {
		p.AnnualFarmIncome = 0
	}
}

// Validate enforces the prediction contract: a crop must be named and the
// holding must have positive area. Reference-data misses are NOT errors;
// unknown states and crops resolve to defaults downstream.
func (p *FarmProfile) Validate() error {
	if p == nil {
		return ErrNilProfile
	}
	if strings.TrimSpace(p.PrimaryCrop) == "" {
		return ErrEmptyCrop
	}
	if p.LandSize <= 0 {
		return fmt.Errorf("%w (got %.2f)", ErrInvalidLandSize, p.LandSize)
	}
	return nil
}

// TotalInputCost sums the user-entered input costs.
func (p *FarmProfile) TotalInputCost() float64 {
	return p.SeedCost + p.FertilizerCost + p.PesticideCost + p.LaborCost
}
