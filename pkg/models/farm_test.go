package models

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	var nilProfile *FarmProfile
	if err := nilProfile.Validate(); !errors.Is(err, ErrNilProfile) {
		t.Errorf("Nil profile: expected ErrNilProfile, got %v", err)
	}

	if err := (&FarmProfile{LandSize: 2}).Validate(); !errors.Is(err, ErrEmptyCrop) {
		t.Errorf("Missing crop: expected ErrEmptyCrop, got %v", err)
	}

	if err := (&FarmProfile{PrimaryCrop: "Rice"}).Validate(); !errors.Is(err, ErrInvalidLandSize) {
		t.Errorf("Zero land: expected ErrInvalidLandSize, got %v", err)
	}

	if err := (&FarmProfile{PrimaryCrop: "Rice", LandSize: 0.5}).Validate(); err != nil {
		t.Errorf("Valid profile should pass, got %v", err)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	p := &FarmProfile{
		State:       "  Punjab ",
		PrimaryCrop: " Rice",
		LandSize:    2,
		SeedCost:    -500,
	}
	p.Normalize()

	if p.State != "Punjab" || p.PrimaryCrop != "Rice" {
		t.Errorf("Names should be trimmed: %q / %q", p.State, p.PrimaryCrop)
	}
	if p.IrrigationMethod != "Rain-fed" {
		t.Errorf("Unset irrigation should default to Rain-fed, got %q", p.IrrigationMethod)
	}
	if p.SeedCost != 0 {
		t.Errorf("Negative costs should clamp to zero, got %f", p.SeedCost)
	}
}

func TestTotalInputCost(t *testing.T) {
	p := &FarmProfile{SeedCost: 1000, FertilizerCost: 2000, PesticideCost: 500, LaborCost: 1500}
	if got := p.TotalInputCost(); got != 5000 {
		t.Errorf("Expected 5000, got %f", got)
	}
}
