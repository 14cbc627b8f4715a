// Package refdata owns the static agronomic and economic reference tables
// the planning engine reads: per-state profiles, per-crop economics,
// seasonal price curves, the harvest calendar and irrigation multipliers.
//
// The store is immutable after construction. Lookups never fail: unknown
// keys resolve to documented default rows so downstream components never
// branch on missing data.
package refdata

import "strings"

// Store exposes lookup-by-key accessors over the reference tables.
// Construct once at process start and share by reference; all methods are
// read-only and safe for concurrent use.
type Store struct {
	states       map[string]StateProfile
	crops        map[string]CropProfile
	curves       map[string][12]float64
	harvest      map[string][]int
	irrigation   map[string]float64
	defaultCurve [12]float64
}

// NewStore builds a store from the built-in tables, optionally adjusted by
// overrides (e.g. an MSP revision shipped in config without a rebuild).
func NewStore(overrides ...Overrides) *Store {
	s := &Store{
		states:       make(map[string]StateProfile),
		crops:        make(map[string]CropProfile),
		curves:       builtinSeasonalCurves(),
		harvest:      builtinHarvestCalendar(),
		irrigation:   builtinIrrigationMultipliers(),
		defaultCurve: defaultSeasonalCurve,
	}
	for _, sp := range builtinStates() {
		s.states[normalize(sp.Name)] = sp
	}
	for _, cp := range builtinCrops() {
		s.crops[normalize(cp.Name)] = cp
	}
	for _, ov := range overrides {
		s.apply(ov)
	}
	return s
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// State returns the profile for the named state, or the default profile
// when the state is unknown.
func (s *Store) State(name string) StateProfile {
	if sp, ok := s.states[normalize(name)]; ok {
		return sp
	}
	return s.states[normalize(DefaultStateName)]
}

// Crop returns the profile for the named crop, falling back to the
// default crop ("Rice") when unknown.
func (s *Store) Crop(name string) CropProfile {
	if cp, ok := s.crops[normalize(name)]; ok {
		return cp
	}
	return s.crops[normalize(DefaultCropName)]
}

// SeasonalCurve returns the 12 monthly price multipliers for a crop
// (index = calendar month - 1).
func (s *Store) SeasonalCurve(crop string) [12]float64 {
	// Curve keys follow the crop table spelling; resolve through the crop
	// lookup first so unknown crops pick up the default crop's curve.
	resolved := s.Crop(crop).Name
	if curve, ok := s.curves[resolved]; ok {
		return curve
	}
	return s.defaultCurve
}

// HarvestMonths returns the calendar months in which the crop is sold.
// Unlike the economics lookups, this one does not resolve through the
// default crop: an unknown crop gets the generic mid-year/year-end
// windows rather than Rice's calendar.
func (s *Store) HarvestMonths(crop string) []int {
	for name, months := range s.harvest {
		if normalize(name) == normalize(crop) {
			out := make([]int, len(months))
			copy(out, months)
			return out
		}
	}
	out := make([]int, len(defaultHarvestMonths))
	copy(out, defaultHarvestMonths)
	return out
}

// IrrigationMultiplier returns the yield multiplier for an irrigation
// method; unrecognized methods are canal-equivalent (1.00).
func (s *Store) IrrigationMultiplier(method string) float64 {
	for name, mult := range s.irrigation {
		if normalize(name) == normalize(method) {
			return mult
		}
	}
	return 1.00
}

// Crops lists all known crop names. Used by the API layer for form
// population; order is unspecified.
func (s *Store) Crops() []string {
	names := make([]string, 0, len(s.crops))
	for _, cp := range s.crops {
		names = append(names, cp.Name)
	}
	return names
}

// States lists all known state names, excluding the default row.
func (s *Store) States() []string {
	names := make([]string, 0, len(s.states))
	for _, sp := range s.states {
		if sp.Name == DefaultStateName {
			continue
		}
		names = append(names, sp.Name)
	}
	return names
}
