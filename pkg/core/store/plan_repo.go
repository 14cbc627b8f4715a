package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"agri_planner/pkg/core/plan"
)

// PlanRepo stores generated plan bundles keyed by a server-assigned id.
// A single JSONB blob keeps the schema stable while the bundle shape
// evolves.
//
// Schema assumption (managed by migrations):
//
//	CREATE TABLE IF NOT EXISTS financial_plans (
//	  id UUID PRIMARY KEY,
//	  farmer_phone TEXT,
//	  state TEXT,
//	  crop TEXT,
//	  bundle_json JSONB,
//	  created_at TIMESTAMPTZ
//	);
type PlanRepo struct{}

// NewPlanRepo creates a repository instance.
func NewPlanRepo() *PlanRepo {
	return &PlanRepo{}
}

// Save persists a bundle and returns its assigned id.
func (r *PlanRepo) Save(ctx context.Context, farmerPhone string, bundle *plan.Bundle) (string, error) {
	p := GetPool()
	if p == nil {
		return "", fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(bundle)
	if err != nil {
		return "", fmt.Errorf("failed to marshal bundle: %w", err)
	}

	id := uuid.NewString()
	query := `
		INSERT INTO financial_plans (id, farmer_phone, state, crop, bundle_json, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = p.Exec(ctx, query, id, farmerPhone, bundle.Profile.State, bundle.Profile.PrimaryCrop, jsonData, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to save plan: %w", err)
	}
	return id, nil
}

// Load retrieves a saved bundle by id.
func (r *PlanRepo) Load(ctx context.Context, id string) (*plan.Bundle, error) {
	p := GetPool()
	if p == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var jsonData []byte
	err := p.QueryRow(ctx, `SELECT bundle_json FROM financial_plans WHERE id = $1`, id).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no plan found for id %s", id)
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	var bundle plan.Bundle
	if err := json.Unmarshal(jsonData, &bundle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}
	return &bundle, nil
}

// History lists recent plan ids with their crop and creation time for a
// farmer, newest first.
func (r *PlanRepo) History(ctx context.Context, farmerPhone string, limit int) ([]PlanRecord, error) {
	p := GetPool()
	if p == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := p.Query(ctx,
		`SELECT id, state, crop, created_at FROM financial_plans WHERE farmer_phone = $1 ORDER BY created_at DESC LIMIT $2`,
		farmerPhone, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []PlanRecord
	for rows.Next() {
		var rec PlanRecord
		if err := rows.Scan(&rec.ID, &rec.State, &rec.Crop, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// PlanRecord is one history listing entry.
type PlanRecord struct {
	ID        string    `json:"id"`
	State     string    `json:"state"`
	Crop      string    `json:"crop"`
	CreatedAt time.Time `json:"created_at"`
}
