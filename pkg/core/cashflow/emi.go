package cashflow

import "math"

// LoanMonth is one row of an amortization schedule.
type LoanMonth struct {
	Index     int     `json:"index"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"` // Remaining after this payment
}

// LoanSchedule is a full amortization run for a loan.
type LoanSchedule struct {
	MonthlyPayment float64     `json:"monthly_payment"`
	TotalInterest  float64     `json:"total_interest"`
	TotalPaid      float64     `json:"total_paid"`
	Months         []LoanMonth `json:"months"`
}

// MonthlyInstallment computes the standard EMI. Degenerate inputs (zero
// principal, rate or tenure) short-circuit to a zero payment instead of
// dividing by zero.
func MonthlyInstallment(principal, annualRate float64, months int) float64 {
	if principal <= 0 || annualRate <= 0 || months <= 0 {
		return 0
	}
	r := annualRate / 12
	factor := math.Pow(1+r, float64(months))
	return principal * r * factor / (factor - 1)
}

// Amortize produces the month-by-month schedule for a loan. Each month
// interest accrues on the running balance and the principal portion is
// capped at the remaining balance, so the final payment never overshoots.
func Amortize(principal, annualRate float64, months int) LoanSchedule {
	payment := MonthlyInstallment(principal, annualRate, months)
	schedule := LoanSchedule{MonthlyPayment: payment}
	if payment == 0 {
		return schedule
	}

	balance := principal
	monthlyRate := annualRate / 12
	for i := 1; i <= months && balance > 0; i++ {
		interest := balance * monthlyRate
		principalPart := payment - interest
		if principalPart > balance {
			principalPart = balance
		}
		balance -= principalPart

		schedule.Months = append(schedule.Months, LoanMonth{
			Index:     i,
			Payment:   interest + principalPart,
			Interest:  interest,
			Principal: principalPart,
			Balance:   balance,
		})
		schedule.TotalInterest += interest
		schedule.TotalPaid += interest + principalPart
	}
	return schedule
}
