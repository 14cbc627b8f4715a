// Package utils holds small parsing helpers shared by the CLI surfaces.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// Profiles arrive from three places with very different hygiene: the
// mobile client (strict JSON), extension-officer spreadsheet exports
// (mostly-valid JSON with trailing commas and stray quotes) and
// hand-authored files (comments, unquoted keys). SmartParse accepts all
// three.

// RepairJSON fixes common mechanical JSON defects: single quotes,
// trailing commas, unclosed brackets, uppercase literals.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// ParseHJSON parses Hjson (comments, unquoted keys, optional commas)
// into a struct.
func ParseHJSON(input string, out interface{}) error {
	if err := hjson.Unmarshal([]byte(input), out); err != nil {
		return fmt.Errorf("hjson parse failed: %w", err)
	}
	return nil
}

// SmartParse tries strict JSON, then repaired JSON, then Hjson, in that
// order of strictness. Returns an error only when all three fail.
func SmartParse(input string, out interface{}) error {
	if err := json.Unmarshal([]byte(input), out); err == nil {
		return nil
	}

	if repaired, err := RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), out); err == nil {
			return nil
		}
	}

	if err := ParseHJSON(input, out); err == nil {
		return nil
	}

	return fmt.Errorf("input is not parseable as JSON, repairable JSON, or Hjson")
}
