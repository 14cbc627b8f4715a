package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"agri_planner/pkg/models"
)

// ProfileRepo stores farm profile history per farmer, so a returning user
// can prefill the planning form with their latest submission.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS farm_profiles (
//	  farmer_phone TEXT,
//	  profile_json JSONB,
//	  updated_at TIMESTAMPTZ,
//	  PRIMARY KEY (farmer_phone)
//	);
type ProfileRepo struct{}

// NewProfileRepo creates a repository instance.
func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{}
}

// Save upserts the farmer's latest profile.
func (r *ProfileRepo) Save(ctx context.Context, farmerPhone string, profile *models.FarmProfile) error {
	p := GetPool()
	if p == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	query := `
		INSERT INTO farm_profiles (farmer_phone, profile_json, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (farmer_phone)
		DO UPDATE SET
			profile_json = EXCLUDED.profile_json,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := p.Exec(ctx, query, farmerPhone, jsonData, time.Now()); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Latest returns the farmer's most recent profile.
func (r *ProfileRepo) Latest(ctx context.Context, farmerPhone string) (*models.FarmProfile, error) {
	p := GetPool()
	if p == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var jsonData []byte
	err := p.QueryRow(ctx, `SELECT profile_json FROM farm_profiles WHERE farmer_phone = $1`, farmerPhone).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no profile found for %s", farmerPhone)
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile models.FarmProfile
	if err := json.Unmarshal(jsonData, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}
