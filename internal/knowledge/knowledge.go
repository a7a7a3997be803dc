// Package knowledge holds the static agronomic tables: per-crop growth
// constants, per-soil-type hydraulic behavior, regional weather bias, and
// the STCR fertilizer-recommendation coefficients.
// Tables are built once and shared read-only across engine instances.
package knowledge

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownType is returned when a crop, soil, or region key is absent
// from the tables. It is the only hard failure in the simulation: callers
// must be able to tell a bad key from a simulation outcome.
var ErrUnknownType = errors.New("unknown type")

// CropType identifies a crop in the catalog.
type CropType string

// SoilType identifies a soil texture class in the catalog.
type SoilType string

// Region identifies a regional weather bias profile.
type Region string

const (
	CropRice   CropType = "RICE"
	CropWheat  CropType = "WHEAT"
	CropMaize  CropType = "MAIZE"
	CropCotton CropType = "COTTON"

	SoilSandy SoilType = "SANDY"
	SoilLoamy SoilType = "LOAMY"
	SoilClay  SoilType = "CLAY"
	SoilBlack SoilType = "BLACK"

	RegionDry       Region = "DRY"
	RegionTemperate Region = "TEMPERATE"
	RegionHumid     Region = "HUMID"
)

// STCRLine is one soil-test-crop-response regression: dose = A·targetYield − B·soilTest.
// Target yield is in t/ha, soil test and dose in kg/ha.
type STCRLine struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// Recommend evaluates the regression. The output is deliberately not
// clamped: a negative dose means the soil already carries more than the
// target yield removes, and display-level flooring is the caller's call.
func (l STCRLine) Recommend(targetYield, soilTest float64) float64 {
	return l.A*targetYield - l.B*soilTest
}

// STCRSet bundles the three nutrient regressions for one crop.
type STCRSet struct {
	N STCRLine `yaml:"n"`
	P STCRLine `yaml:"p"`
	K STCRLine `yaml:"k"`
}

// CropProfile holds the static constants driving one crop's season.
type CropProfile struct {
	Name           string  `yaml:"name"`
	SeasonDays     int     `yaml:"season_days"`
	MaxLAI         float64 `yaml:"max_lai"`
	WaterNeedMM    float64 `yaml:"water_need_mm"`
	BaseTempC      float64 `yaml:"base_temp_c"`
	PotentialYield float64 `yaml:"potential_yield"` // kg/ha
	STCR           STCRSet `yaml:"stcr"`
}

// SoilTypeProfile holds per-texture hydraulic and leaching behavior.
type SoilTypeProfile struct {
	DrainageRate   float64 `yaml:"drainage_rate"`   // daily fraction of moisture lost to drainage
	NutrientLeak   float64 `yaml:"nutrient_leak"`   // kg N/ha lost per day
	WaterRetention float64 `yaml:"water_retention"` // multiplier on the daily water balance
}

// RegimeOdds is the discrete weather-regime probability table for a region.
// The four entries must sum to 1.0.
type RegimeOdds struct {
	Sun     float64 `yaml:"sun"`
	Rain    float64 `yaml:"rain"`
	Storm   float64 `yaml:"storm"`
	Drought float64 `yaml:"drought"`
}

// RegionProfile biases the weather generator for a growing region.
type RegionProfile struct {
	TempBiasC float64    `yaml:"temp_bias_c"`
	Odds      RegimeOdds `yaml:"odds"`
}

// SoilHealthCard is the immutable soil test the engine is constructed
// from. Concentrations are kg/ha available nutrient; it seeds the initial
// soil pools and is never mutated.
type SoilHealthCard struct {
	N             float64
	P             float64
	K             float64
	S             float64
	Zn            float64
	Fe            float64
	Cu            float64
	Mn            float64
	B             float64
	PH            float64
	EC            float64
	OrganicCarbon float64
}

// Catalog is one immutable set of tables. The default catalog is shared;
// LoadOverrides builds a fresh one so nothing global ever mutates.
type Catalog struct {
	crops   map[CropType]CropProfile
	soils   map[SoilType]SoilTypeProfile
	regions map[Region]RegionProfile
}

// Crop returns the profile for a crop type, or ErrUnknownType.
func (c *Catalog) Crop(t CropType) (CropProfile, error) {
	p, ok := c.crops[t]
	if !ok {
		return CropProfile{}, unknownErr("crop", string(t), cropNames(c.crops))
	}
	return p, nil
}

// Soil returns the profile for a soil type, or ErrUnknownType.
func (c *Catalog) Soil(t SoilType) (SoilTypeProfile, error) {
	p, ok := c.soils[t]
	if !ok {
		return SoilTypeProfile{}, unknownErr("soil", string(t), soilNames(c.soils))
	}
	return p, nil
}

// Region returns the weather bias profile for a region, or ErrUnknownType.
func (c *Catalog) Region(r Region) (RegionProfile, error) {
	p, ok := c.regions[r]
	if !ok {
		return RegionProfile{}, unknownErr("region", string(r), regionNames(c.regions))
	}
	return p, nil
}

// Crops lists the crop types in the catalog (unordered).
func (c *Catalog) Crops() []CropType {
	out := make([]CropType, 0, len(c.crops))
	for t := range c.crops {
		out = append(out, t)
	}
	return out
}

// unknownErr wraps ErrUnknownType with a nearest-name suggestion when one
// is close enough to plausibly be a typo.
func unknownErr(kind, got string, known []string) error {
	best, bestDist := "", 4
	for _, k := range known {
		if d := levenshtein.ComputeDistance(got, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	if best != "" {
		return fmt.Errorf("%w: %s %q (did you mean %q?)", ErrUnknownType, kind, got, best)
	}
	return fmt.Errorf("%w: %s %q", ErrUnknownType, kind, got)
}

func cropNames(m map[CropType]CropProfile) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, string(k))
	}
	return out
}

func soilNames(m map[SoilType]SoilTypeProfile) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, string(k))
	}
	return out
}

func regionNames(m map[Region]RegionProfile) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, string(k))
	}
	return out
}
