// Package schemes computes the government benefit summary: a pure
// summation over the profile's enrollment flags plus the unconditional
// employment-guarantee allowance.
package schemes

import (
	"agri_planner/pkg/core/refdata"
	"agri_planner/pkg/models"
)

// Benefit is one scheme line item. Cash entries carry an Amount; in-kind
// entries carry a Descriptor instead.
type Benefit struct {
	Scheme      string  `json:"scheme"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount,omitempty"`
	Descriptor  string  `json:"descriptor,omitempty"`
	Cash        bool    `json:"cash"`
}

// Summary aggregates benefits and names the schemes the farmer is
// missing out on.
type Summary struct {
	Benefits         []Benefit `json:"benefits"`
	TotalCashBenefit float64   `json:"total_cash_benefit"`
	Recommendations  []string  `json:"recommendations"`
}

// Calculate sums scheme benefits for a profile. MGNREGA is included
// unconditionally: every rural household is entitled to the guaranteed
// days regardless of enrollment paperwork.
func Calculate(p *models.FarmProfile) Summary {
	var benefits []Benefit
	var recommendations []string

	if p.PMKisanBeneficiary {
		benefits = append(benefits, Benefit{
			Scheme:      "PM-KISAN",
			Description: "Direct income support, three equal installments per year",
			Amount:      refdata.PMKisanAnnualAmount,
			Cash:        true,
		})
	} else {
		recommendations = append(recommendations, "Register for PM-KISAN: ₹6,000/year direct transfer for landholding farmers")
	}

	if p.KCCHolder {
		benefits = append(benefits, Benefit{
			Scheme:      "Kisan Credit Card",
			Description: "Working-capital credit line at subsidized interest",
			Descriptor:  "Crop loans at 4% effective interest with prompt-repayment incentive",
		})
	} else {
		recommendations = append(recommendations, "Apply for a Kisan Credit Card to replace informal borrowing with 4% institutional credit")
	}

	if p.HasCropInsurance {
		benefits = append(benefits, Benefit{
			Scheme:      "PMFBY",
			Description: "Crop insurance against yield loss from natural causes",
			Descriptor:  "Sum insured covers cost of cultivation at nominal farmer premium",
		})
	} else {
		recommendations = append(recommendations, "Enroll in PMFBY crop insurance; premium is capped at 2% for Kharif and 1.5% for Rabi crops")
	}

	mgnregaAmount := float64(refdata.MGNREGAGuaranteedDays) * refdata.MGNREGADailyWage
	benefits = append(benefits, Benefit{
		Scheme:      "MGNREGA",
		Description: "Guaranteed rural employment during the lean season",
		Amount:      mgnregaAmount,
		Cash:        true,
	})

	total := 0.0
	for _, b := range benefits {
		if b.Cash {
			total += b.Amount
		}
	}

	return Summary{
		Benefits:         benefits,
		TotalCashBenefit: total,
		Recommendations:  recommendations,
	}
}
