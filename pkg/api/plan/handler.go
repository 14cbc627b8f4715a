// Package plan exposes the planning engine over HTTP for the mobile
// client.
package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	coreplan "agri_planner/pkg/core/plan"
	"agri_planner/pkg/core/report"
	"agri_planner/pkg/core/store"
	"agri_planner/pkg/models"
)

var (
	engine      *coreplan.Engine
	planRepo    *store.PlanRepo
	profileRepo *store.ProfileRepo
)

// InitHandler wires the handlers to an engine instance. Must be called
// before registering routes.
func InitHandler(e *coreplan.Engine) {
	engine = e
	planRepo = store.NewPlanRepo()
	profileRepo = store.NewProfileRepo()
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// HandleGeneratePlan runs the engine for a posted FarmProfile and returns
// the full bundle. Pure computation; nothing is persisted.
func HandleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var profile models.FarmProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	bundle, err := engine.GenerateFinancialPlan(&profile)
	if err != nil {
		// Contract violations from the form layer; the client shows the
		// message and keeps the user on the form.
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	fmt.Printf("[PLAN] Generated plan: %s / %s, %.1f acres, viable=%v\n",
		bundle.Profile.State, bundle.Profile.PrimaryCrop, bundle.Profile.LandSize, bundle.CashFlow.Viable)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bundle)
}

// SaveRequest asks for a plan to be generated and persisted against the
// farmer's phone number.
type SaveRequest struct {
	FarmerPhone string             `json:"farmer_phone"`
	Profile     models.FarmProfile `json:"profile"`
}

// SaveResponse returns the stored plan id alongside the bundle.
type SaveResponse struct {
	ID     string           `json:"id"`
	Bundle *coreplan.Bundle `json:"bundle"`
}

// HandleSavePlan generates a plan and persists both the profile and the
// bundle. Requires a configured database.
func HandleSavePlan(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.FarmerPhone == "" {
		http.Error(w, "farmer_phone is required", http.StatusBadRequest)
		return
	}

	bundle, err := engine.GenerateFinancialPlan(&req.Profile)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := planRepo.Save(ctx, req.FarmerPhone, bundle)
	if err != nil {
		fmt.Printf("[PLAN] Save failed: %v\n", err)
		http.Error(w, fmt.Sprintf("failed to save plan: %v", err), http.StatusInternalServerError)
		return
	}
	if err := profileRepo.Save(ctx, req.FarmerPhone, &bundle.Profile); err != nil {
		// Profile prefill is best effort; the plan itself is stored.
		fmt.Printf("[WARNING] Failed to save profile history: %v\n", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SaveResponse{ID: id, Bundle: bundle})
}

// HandleHistory lists a farmer's recent saved plans.
func HandleHistory(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	phone := r.URL.Query().Get("phone")
	if phone == "" {
		http.Error(w, "phone query parameter is required", http.StatusBadRequest)
		return
	}

	records, err := planRepo.History(r.Context(), phone, 20)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to load history: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// HandleGetPlan returns a previously saved plan bundle by id.
func HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id query parameter is required", http.StatusBadRequest)
		return
	}

	bundle, err := planRepo.Load(r.Context(), id)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to load plan: %v", err), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bundle)
}

// HandleLatestProfile returns the farmer's most recent saved profile, so
// the client can prefill the planning form.
func HandleLatestProfile(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	phone := r.URL.Query().Get("phone")
	if phone == "" {
		http.Error(w, "phone query parameter is required", http.StatusBadRequest)
		return
	}

	profile, err := profileRepo.Latest(r.Context(), phone)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to load profile: %v", err), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleReport generates a plan and returns it as rendered HTML, for
// sharing outside the app.
func HandleReport(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var profile models.FarmProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	bundle, err := engine.GenerateFinancialPlan(&profile)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	html, err := report.RenderHTML(bundle)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to render report: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

// HandleReferenceData returns the known crops and states for form
// population.
func HandleReferenceData(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	ref := engine.ReferenceData()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"crops":  ref.Crops(),
		"states": ref.States(),
	})
}
