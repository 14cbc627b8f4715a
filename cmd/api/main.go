package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	apiplan "agri_planner/pkg/api/plan"
	coreplan "agri_planner/pkg/core/plan"
	"agri_planner/pkg/core/refdata"
	"agri_planner/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Reference data: built-in tables plus optional deployment overrides
	// (the annual MSP notification lands here, not in a rebuild).
	overridesPath := os.Getenv("REFDATA_OVERRIDES")
	if overridesPath == "" {
		overridesPath = "config/refdata.yaml"
	}

	var ref *refdata.Store
	if ov, err := refdata.LoadOverrides(overridesPath); err != nil {
		fmt.Printf("[WARNING] No reference data overrides loaded: %v\n", err)
		fmt.Println("  Using built-in tables")
		ref = refdata.NewStore()
	} else {
		fmt.Printf("[REFDATA] Applied overrides from %s\n", overridesPath)
		ref = refdata.NewStore(ov)
	}

	engine := coreplan.NewEngine(ref)

	// Database is optional: without it the generate/report endpoints
	// still work, only save/history fail per request.
	if err := store.InitDB(context.Background()); err != nil {
		fmt.Printf("[WARNING] Database unavailable (%v). Plan persistence disabled.\n", err)
	} else {
		fmt.Println("[STORE] Connected to Postgres")
		defer store.Close()
	}

	apiplan.InitHandler(engine)
	http.HandleFunc("/api/plan/generate", apiplan.HandleGeneratePlan)
	http.HandleFunc("/api/plan/save", apiplan.HandleSavePlan)
	http.HandleFunc("/api/plan/history", apiplan.HandleHistory)
	http.HandleFunc("/api/plan/get", apiplan.HandleGetPlan)
	http.HandleFunc("/api/plan/report", apiplan.HandleReport)
	http.HandleFunc("/api/profile/latest", apiplan.HandleLatestProfile)
	http.HandleFunc("/api/refdata", apiplan.HandleReferenceData)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - POST /api/plan/generate")
	fmt.Println("  - POST /api/plan/save")
	fmt.Println("  - GET  /api/plan/history?phone=")
	fmt.Println("  - GET  /api/plan/get?id=")
	fmt.Println("  - POST /api/plan/report  (HTML)")
	fmt.Println("  - GET  /api/profile/latest?phone=")
	fmt.Println("  - GET  /api/refdata")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
