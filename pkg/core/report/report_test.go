package report_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"agri_planner/pkg/core/plan"
	"agri_planner/pkg/core/refdata"
	"agri_planner/pkg/core/report"
	"agri_planner/pkg/models"
)

func testBundle(t *testing.T) *plan.Bundle {
	t.Helper()
	engine := plan.NewEngine(refdata.NewStore(),
		plan.WithRand(rand.New(rand.NewSource(21))),
		plan.WithClock(func() time.Time { return time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC) }),
	)
	bundle, err := engine.GenerateFinancialPlan(&models.FarmProfile{
		State:            "Rajasthan",
		PrimaryCrop:      "Mustard",
		LandSize:         3,
		IrrigationMethod: "Sprinkler Irrigation",
		AnnualFarmIncome: 90000,
		NonFarmIncome:    36000,
		MonthlyExpenses:  12000,
		LoanAmount:       50000,
		LoanPurpose:      "Seed and fertilizer purchase",
	})
	if err != nil {
		t.Fatalf("Bundle setup failed: %v", err)
	}
	return bundle
}

func TestRenderMarkdownSections(t *testing.T) {
	bundle := testBundle(t)
	md := report.RenderMarkdown(bundle)

	for _, section := range []string{
		"# Financial Plan: Mustard, Rajasthan",
		"## Yield",
		"## Price Outlook",
		"## Input Costs",
		"## Risk",
		"## Government Benefits",
		"## Cash Flow (12 months)",
		"## Loan Repayment",
		"## Recommendations",
	} {
		if !strings.Contains(md, section) {
			t.Errorf("Summary missing section %q", section)
		}
	}
	// 12 monthly price rows plus 12 ledger rows.
	if got := strings.Count(md, "| January"); got == 0 {
		t.Error("Summary tables should include January rows")
	}
	if !report.ValidateMarkdown(md) {
		t.Error("Rendered summary should parse as Markdown")
	}
}

func TestRenderHTML(t *testing.T) {
	bundle := testBundle(t)
	html, err := report.RenderHTML(bundle)
	if err != nil {
		t.Fatalf("HTML rendering failed: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "Mustard") {
		t.Error("HTML output should carry the rendered headings")
	}
}

func TestWriteWorkbook(t *testing.T) {
	bundle := testBundle(t)
	path := filepath.Join(t.TempDir(), "plan.xlsx")

	if err := report.WriteWorkbook(path, bundle); err != nil {
		t.Fatalf("Workbook write failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Workbook not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Workbook file is empty")
	}
}

func TestWriteCashFlowChart(t *testing.T) {
	bundle := testBundle(t)
	path := filepath.Join(t.TempDir(), "cashflow.png")

	if err := report.WriteCashFlowChart(path, bundle.CashFlow); err != nil {
		t.Fatalf("Chart write failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("Chart not written: %v", err)
	}
}
