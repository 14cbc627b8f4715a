// export_plan runs the engine for a profile file and writes shareable
// artifacts: an xlsx workbook, a cash-flow chart and a markdown summary.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"agri_planner/pkg/core/plan"
	"agri_planner/pkg/core/refdata"
	"agri_planner/pkg/core/report"
	"agri_planner/pkg/core/utils"
	"agri_planner/pkg/models"
)

func main() {
	filePath := flag.String("file", "", "Path to a farm profile (JSON or Hjson)")
	outDir := flag.String("out", ".", "Output directory")
	flag.Parse()

	if *filePath == "" {
		fmt.Println("Error: -file is required")
		os.Exit(1)
	}

	raw, err := os.ReadFile(*filePath)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", *filePath, err)
		os.Exit(1)
	}

	var profile models.FarmProfile
	if err := utils.SmartParse(string(raw), &profile); err != nil {
		fmt.Printf("Error parsing profile: %v\n", err)
		os.Exit(1)
	}

	engine := plan.NewEngine(refdata.NewStore())
	bundle, err := engine.GenerateFinancialPlan(&profile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	workbookPath := filepath.Join(*outDir, "plan.xlsx")
	if err := report.WriteWorkbook(workbookPath, bundle); err != nil {
		fmt.Printf("Error writing workbook: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[EXPORT] Wrote %s\n", workbookPath)

	chartPath := filepath.Join(*outDir, "cashflow.png")
	if err := report.WriteCashFlowChart(chartPath, bundle.CashFlow); err != nil {
		fmt.Printf("Error writing chart: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[EXPORT] Wrote %s\n", chartPath)

	mdPath := filepath.Join(*outDir, "plan.md")
	if err := os.WriteFile(mdPath, []byte(report.RenderMarkdown(bundle)), 0o644); err != nil {
		fmt.Printf("Error writing summary: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[EXPORT] Wrote %s\n", mdPath)
}
