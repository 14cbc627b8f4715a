package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"agri_planner/pkg/core/plan"
)

const (
	sheetCashFlow = "Cash_Flow"
	sheetCosts    = "Cost_Breakdown"
	sheetBenefits = "Benefits_Risk"
)

// WriteWorkbook writes the plan bundle to an xlsx workbook at path: one
// sheet for the monthly ledger, one for the cost model, one for benefits
// and risk.
func WriteWorkbook(path string, b *plan.Bundle) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetCashFlow)

	headers := []string{"#", "Month", "Year", "Harvest", "Income", "Expenses", "Net", "Cumulative", "Price (₹/q)"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetCashFlow, cell, header)
	}
	for i, row := range b.CashFlow.Rows {
		r := i + 2
		harvest := ""
		if row.Harvest {
			harvest = "Yes"
		}
		f.SetCellValue(sheetCashFlow, fmt.Sprintf("A%d", r), row.Index)
		f.SetCellValue(sheetCashFlow, fmt.Sprintf("B%d", r), row.MonthName)
		f.SetCellValue(sheetCashFlow, fmt.Sprintf("C%d", r), row.Year)
		f.SetCellValue(sheetCashFlow, fmt.Sprintf("D%d", r), harvest)
		f.SetCellValue(sheetCashFlow, fmt.Sprintf("E%d", r), row.Income)
		f.SetCellValue(sheetCashFlow, fmt.Sprintf("F%d", r), row.Expenses)
		f.SetCellValue(sheetCashFlow, fmt.Sprintf("G%d", r), row.Net)
		f.SetCellValue(sheetCashFlow, fmt.Sprintf("H%d", r), row.Cumulative)
		f.SetCellValue(sheetCashFlow, fmt.Sprintf("I%d", r), b.Price.Monthly[row.Month-1].Price)
	}
	summaryRow := len(b.CashFlow.Rows) + 3
	verdict := "NOT VIABLE"
	if b.CashFlow.Viable {
		verdict = "VIABLE"
	}
	f.SetCellValue(sheetCashFlow, fmt.Sprintf("A%d", summaryRow), "Annual")
	f.SetCellValue(sheetCashFlow, fmt.Sprintf("E%d", summaryRow), b.CashFlow.AnnualIncome)
	f.SetCellValue(sheetCashFlow, fmt.Sprintf("F%d", summaryRow), b.CashFlow.AnnualExpenses)
	f.SetCellValue(sheetCashFlow, fmt.Sprintf("G%d", summaryRow), b.CashFlow.AnnualNet)
	f.SetCellValue(sheetCashFlow, fmt.Sprintf("H%d", summaryRow), verdict)

	f.NewSheet(sheetCosts)
	f.SetCellValue(sheetCosts, "A1", "Category")
	f.SetCellValue(sheetCosts, "B1", "Recommended (₹)")
	bd := b.Costs.OptimizedBreakdown
	costRows := []struct {
		label string
		value float64
	}{
		{"Seeds", bd.Seeds},
		{"Fertilizer", bd.Fertilizer},
		{"Pesticide", bd.Pesticide},
		{"Labor", bd.Labor},
		{"Other", bd.Other},
	}
	for i, cr := range costRows {
		f.SetCellValue(sheetCosts, fmt.Sprintf("A%d", i+2), cr.label)
		f.SetCellValue(sheetCosts, fmt.Sprintf("B%d", i+2), cr.value)
	}
	f.SetCellValue(sheetCosts, "A8", "Standard total")
	f.SetCellValue(sheetCosts, "B8", b.Costs.StandardTotal)
	f.SetCellValue(sheetCosts, "A9", "Current total")
	f.SetCellValue(sheetCosts, "B9", b.Costs.CurrentTotal)
	f.SetCellValue(sheetCosts, "A10", "Variance %")
	f.SetCellValue(sheetCosts, "B10", b.Costs.VariancePercent)

	f.NewSheet(sheetBenefits)
	f.SetCellValue(sheetBenefits, "A1", "Scheme")
	f.SetCellValue(sheetBenefits, "B1", "Benefit")
	for i, ben := range b.Benefits.Benefits {
		f.SetCellValue(sheetBenefits, fmt.Sprintf("A%d", i+2), ben.Scheme)
		if ben.Cash {
			f.SetCellValue(sheetBenefits, fmt.Sprintf("B%d", i+2), ben.Amount)
		} else {
			f.SetCellValue(sheetBenefits, fmt.Sprintf("B%d", i+2), ben.Descriptor)
		}
	}
	riskRow := len(b.Benefits.Benefits) + 3
	f.SetCellValue(sheetBenefits, fmt.Sprintf("A%d", riskRow), "Overall risk")
	f.SetCellValue(sheetBenefits, fmt.Sprintf("B%d", riskRow), fmt.Sprintf("%s (score %d)", b.Risk.OverallRisk, b.Risk.Score))
	f.SetCellValue(sheetBenefits, fmt.Sprintf("A%d", riskRow+1), "Mitigations")
	f.SetCellValue(sheetBenefits, fmt.Sprintf("B%d", riskRow+1), strings.Join(b.Risk.Mitigations, "; "))

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
