// Package report renders a plan bundle for humans: a markdown summary,
// an xlsx workbook and a cash-flow chart.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"agri_planner/pkg/core/plan"
)

// RenderMarkdown builds the plan summary as Markdown.
func RenderMarkdown(b *plan.Bundle) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Financial Plan: %s, %s\n\n", b.Profile.PrimaryCrop, b.Profile.State)
	fmt.Fprintf(&sb, "Generated %s for %.1f acres (%s).\n\n", b.GeneratedAt.Format("02 Jan 2006"), b.Profile.LandSize, b.Profile.IrrigationMethod)

	fmt.Fprintf(&sb, "## Yield\n\n")
	fmt.Fprintf(&sb, "Expected **%.0f quintals** (%.0f/acre), confidence %d%%.\n\n", b.Yield.ExpectedYield, b.Yield.YieldPerAcre, b.Yield.Confidence)
	for _, f := range b.Yield.Factors {
		fmt.Fprintf(&sb, "- %s\n", f)
	}

	fmt.Fprintf(&sb, "\n## Price Outlook\n\n")
	fmt.Fprintf(&sb, "Average ₹%.0f/quintal against MSP ₹%.0f (volatility: %s).\n\n", b.Price.AveragePrice, b.Price.MSPRate, b.Price.Volatility)
	fmt.Fprintf(&sb, "%s\n\n", b.Price.Recommendation)
	fmt.Fprintf(&sb, "| Month | Price (₹/q) |\n|---|---|\n")
	for _, mp := range b.Price.Monthly {
		fmt.Fprintf(&sb, "| %s | %.0f |\n", mp.MonthName, mp.Price)
	}

	fmt.Fprintf(&sb, "\n## Input Costs\n\n")
	fmt.Fprintf(&sb, "Current spend ₹%.0f vs standard ₹%.0f (%+.1f%%).\n\n", b.Costs.CurrentTotal, b.Costs.StandardTotal, b.Costs.VariancePercent)
	for _, a := range b.Costs.Advisories {
		fmt.Fprintf(&sb, "- %s\n", a)
	}
	bd := b.Costs.OptimizedBreakdown
	fmt.Fprintf(&sb, "\nRecommended allocation: seeds ₹%.0f, fertilizer ₹%.0f, pesticide ₹%.0f, labor ₹%.0f, other ₹%.0f.\n", bd.Seeds, bd.Fertilizer, bd.Pesticide, bd.Labor, bd.Other)

	fmt.Fprintf(&sb, "\n## Risk: %s (score %d)\n\n", b.Risk.OverallRisk, b.Risk.Score)
	for _, f := range b.Risk.Factors {
		fmt.Fprintf(&sb, "- **%s** (%s): %s\n", f.Type, f.Severity, f.Description)
	}
	for _, m := range b.Risk.Mitigations {
		fmt.Fprintf(&sb, "- Mitigation: %s\n", m)
	}

	fmt.Fprintf(&sb, "\n## Government Benefits\n\n")
	fmt.Fprintf(&sb, "Total cash benefit: **₹%.0f/year**.\n\n", b.Benefits.TotalCashBenefit)
	for _, ben := range b.Benefits.Benefits {
		if ben.Cash {
			fmt.Fprintf(&sb, "- %s: ₹%.0f. %s\n", ben.Scheme, ben.Amount, ben.Description)
		} else {
			fmt.Fprintf(&sb, "- %s: %s. %s\n", ben.Scheme, ben.Descriptor, ben.Description)
		}
	}

	verdict := "NOT viable"
	if b.CashFlow.Viable {
		verdict = "viable"
	}
	fmt.Fprintf(&sb, "\n## Cash Flow (12 months)\n\n")
	fmt.Fprintf(&sb, "Annual income ₹%.0f, expenses ₹%.0f, net ₹%.0f: plan is **%s**.\n\n", b.CashFlow.AnnualIncome, b.CashFlow.AnnualExpenses, b.CashFlow.AnnualNet, verdict)
	fmt.Fprintf(&sb, "| # | Month | Income | Expenses | Net | Cumulative |\n|---|---|---|---|---|---|\n")
	for _, row := range b.CashFlow.Rows {
		marker := ""
		if row.Harvest {
			marker = " (harvest)"
		}
		fmt.Fprintf(&sb, "| %d | %s %d%s | %.0f | %.0f | %.0f | %.0f |\n", row.Index, row.MonthName, row.Year, marker, row.Income, row.Expenses, row.Net, row.Cumulative)
	}

	if b.Loan != nil {
		fmt.Fprintf(&sb, "\n## Loan Repayment\n\n")
		fmt.Fprintf(&sb, "For a loan of ₹%.0f (%s): monthly installment ₹%.0f, total interest ₹%.0f over %d months.\n",
			b.Profile.LoanAmount, b.Profile.LoanPurpose, b.Loan.MonthlyPayment, b.Loan.TotalInterest, len(b.Loan.Months))
	}

	fmt.Fprintf(&sb, "\n## Recommendations\n\n")
	for i, r := range b.Recommendations {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, r)
	}

	return sb.String()
}

// RenderHTML converts the markdown summary to HTML for web delivery.
func RenderHTML(b *plan.Bundle) (string, error) {
	md := RenderMarkdown(b)
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}

// ValidateMarkdown checks the rendered summary parses as Markdown.
// Goldmark is permissive, so this is a sanity check, not a linter.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	doc := parser.Parse(text.NewReader([]byte(input)))
	return doc != nil
}
