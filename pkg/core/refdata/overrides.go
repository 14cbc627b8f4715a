package refdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Overrides lets deployments patch individual reference values from a YAML
// file (typically config/refdata.yaml) without a rebuild. The common case
// is the annual MSP notification. Overrides are applied at construction
// time only; the store stays immutable afterwards.
type Overrides struct {
	Crops  []CropOverride  `yaml:"crops"`
	States []StateOverride `yaml:"states"`
}

// CropOverride patches selected fields of a crop row. Zero values leave
// the built-in value untouched.
type CropOverride struct {
	Name                     string  `yaml:"name"`
	MSPRate                  float64 `yaml:"msp_rate"`
	AvgYieldPerAcre          float64 `yaml:"avg_yield_per_acre"`
	StandardInputCostPerAcre float64 `yaml:"standard_input_cost_per_acre"`
	MarketVolatility         string  `yaml:"market_volatility"`
	GovtSupport              string  `yaml:"govt_support"`
}

// StateOverride patches selected fields of a state row.
type StateOverride struct {
	Name          string  `yaml:"name"`
	MarketAccess  string  `yaml:"market_access"`
	MSPSupport    string  `yaml:"msp_support"`
	AvgRainfallMM float64 `yaml:"avg_rainfall_mm"`
}

// LoadOverrides reads an Overrides document from a YAML file.
func LoadOverrides(path string) (Overrides, error) {
	var ov Overrides
	data, err := os.ReadFile(path)
	if err != nil {
		return ov, fmt.Errorf("failed to read overrides file: %w", err)
	}
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return ov, fmt.Errorf("failed to parse overrides yaml: %w", err)
	}
	return ov, nil
}

func (s *Store) apply(ov Overrides) {
	for _, c := range ov.Crops {
		key := normalize(c.Name)
		cp, ok := s.crops[key]
		if !ok {
			continue // Overrides cannot introduce new crops; rows need full economics.
		}
		if c.MSPRate > 0 {
			cp.MSPRate = c.MSPRate
		}
		if c.AvgYieldPerAcre > 0 {
			cp.AvgYieldPerAcre = c.AvgYieldPerAcre
		}
		if c.StandardInputCostPerAcre > 0 {
			cp.StandardInputCostPerAcre = c.StandardInputCostPerAcre
		}
		if c.MarketVolatility != "" {
			cp.MarketVolatility = c.MarketVolatility
		}
		if c.GovtSupport != "" {
			cp.GovtSupport = c.GovtSupport
		}
		s.crops[key] = cp
	}
	for _, st := range ov.States {
		key := normalize(st.Name)
		sp, ok := s.states[key]
		if !ok {
			continue
		}
		if st.MarketAccess != "" {
			sp.MarketAccess = st.MarketAccess
		}
		if st.MSPSupport != "" {
			sp.MSPSupport = st.MSPSupport
		}
		if st.AvgRainfallMM > 0 {
			sp.AvgRainfallMM = st.AvgRainfallMM
		}
		s.states[key] = sp
	}
}
