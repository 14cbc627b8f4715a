package utils

import "testing"

type probe struct {
	PrimaryCrop string  `json:"primary_crop"`
	LandSize    float64 `json:"land_size"`
}

func TestSmartParseStrictJSON(t *testing.T) {
	var p probe
	if err := SmartParse(`{"primary_crop": "Rice", "land_size": 2.5}`, &p); err != nil {
		t.Fatalf("Strict JSON should parse directly: %v", err)
	}
	if p.PrimaryCrop != "Rice" || p.LandSize != 2.5 {
		t.Errorf("Unexpected parse result: %+v", p)
	}
}

func TestSmartParseRepairsSloppyJSON(t *testing.T) {
	// Trailing comma and single quotes, typical of spreadsheet exports.
	var p probe
	if err := SmartParse(`{'primary_crop': 'Wheat', 'land_size': 3,}`, &p); err != nil {
		t.Fatalf("Repairable JSON should parse: %v", err)
	}
	if p.PrimaryCrop != "Wheat" || p.LandSize != 3 {
		t.Errorf("Unexpected parse result: %+v", p)
	}
}

func TestSmartParseHjson(t *testing.T) {
	input := `{
  # hand-authored profile
  primary_crop: Cotton
  land_size: 4
}`
	var p probe
	if err := SmartParse(input, &p); err != nil {
		t.Fatalf("Hjson should parse: %v", err)
	}
	if p.PrimaryCrop != "Cotton" || p.LandSize != 4 {
		t.Errorf("Unexpected parse result: %+v", p)
	}
}

func TestSmartParseRejectsGarbage(t *testing.T) {
	var p probe
	if err := SmartParse("<<not structured data>>", &p); err == nil {
		t.Error("Unparseable input should return an error")
	}
}
