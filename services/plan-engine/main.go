// plan-engine is a headless front end to the planning engine: feed it a
// farm profile as JSON (strict or hand-authored Hjson) and it prints the
// plan bundle. Used for batch runs and for checking profiles exported
// from field spreadsheets.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"agri_planner/pkg/core/plan"
	"agri_planner/pkg/core/refdata"
	"agri_planner/pkg/core/utils"
	"agri_planner/pkg/models"
)

func main() {
	mode := flag.String("mode", "plan", "Mode: check or plan")
	dataStr := flag.String("data", "", "Profile payload (JSON or Hjson)")
	filePath := flag.String("file", "", "Path to a profile file (alternative to -data)")
	flag.Parse()

	payload := *dataStr
	if payload == "" && *filePath != "" {
		raw, err := os.ReadFile(*filePath)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", *filePath, err)
			os.Exit(1)
		}
		payload = string(raw)
	}
	if payload == "" {
		fmt.Println("Error: no profile provided (use -data or -file)")
		os.Exit(1)
	}

	var profile models.FarmProfile
	if err := utils.SmartParse(payload, &profile); err != nil {
		fmt.Printf("Error parsing profile: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case "check":
		runCheck(&profile)
	case "plan":
		runPlan(&profile)
	default:
		fmt.Printf("Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}

func runCheck(profile *models.FarmProfile) {
	if err := profile.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	profile.Normalize()
	fmt.Println("Success: profile is valid")
	out, _ := json.MarshalIndent(profile, "", "  ")
	fmt.Println(string(out))
}

func runPlan(profile *models.FarmProfile) {
	engine := plan.NewEngine(refdata.NewStore())
	bundle, err := engine.GenerateFinancialPlan(profile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	out, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling bundle: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
