package knowledge

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCatalogLookups(t *testing.T) {
	c := Default()

	for _, crop := range []CropType{CropRice, CropWheat, CropMaize, CropCotton} {
		p, err := c.Crop(crop)
		if err != nil {
			t.Fatalf("crop %s: %v", crop, err)
		}
		if p.SeasonDays <= 0 || p.MaxLAI <= 0 || p.BaseTempC < 0 {
			t.Fatalf("crop %s has implausible constants: %+v", crop, p)
		}
	}

	for _, soil := range []SoilType{SoilSandy, SoilLoamy, SoilClay, SoilBlack} {
		p, err := c.Soil(soil)
		if err != nil {
			t.Fatalf("soil %s: %v", soil, err)
		}
		if p.WaterRetention <= 0 || p.DrainageRate < 0 {
			t.Fatalf("soil %s has implausible constants: %+v", soil, p)
		}
	}

	for _, region := range []Region{RegionDry, RegionTemperate, RegionHumid} {
		p, err := c.Region(region)
		if err != nil {
			t.Fatalf("region %s: %v", region, err)
		}
		sum := p.Odds.Sun + p.Odds.Rain + p.Odds.Storm + p.Odds.Drought
		if sum < 0.999 || sum > 1.001 {
			t.Fatalf("region %s regime odds sum to %f, want 1.0", region, sum)
		}
	}
}

func TestUnknownTypeFailsFast(t *testing.T) {
	c := Default()

	if _, err := c.Crop("BANANA"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType for unknown crop, got %v", err)
	}
	if _, err := c.Soil("PEAT"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType for unknown soil, got %v", err)
	}
	if _, err := c.Region("ARCTIC"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType for unknown region, got %v", err)
	}
}

func TestUnknownTypeSuggestsNearMiss(t *testing.T) {
	_, err := Default().Crop("WHAET")
	if err == nil {
		t.Fatal("expected error for misspelled crop")
	}
	if !strings.Contains(err.Error(), "WHEAT") {
		t.Fatalf("expected a WHEAT suggestion in error, got: %v", err)
	}
}

func TestSTCRRecommendIsLinearAndUnclamped(t *testing.T) {
	line := STCRLine{A: 5.0, B: 0.4}

	if got := line.Recommend(10, 0); got != 50 {
		t.Fatalf("Recommend(10, 0) = %f, want 50", got)
	}

	// High soil test values legitimately produce negative doses; the
	// formula must surface them as-is.
	if got := line.Recommend(2, 100); got != -30 {
		t.Fatalf("Recommend(2, 100) = %f, want -30", got)
	}
}

func TestLoadOverridesMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	yaml := `
crops:
  BARLEY:
    name: Barley
    season_days: 100
    max_lai: 4.0
    water_need_mm: 400
    base_temp_c: 3
    potential_yield: 4000
    stcr:
      n: {a: 4.5, b: 0.4}
      p: {a: 2.1, b: 3.2}
      k: {a: 1.8, b: 0.2}
soils:
  LOAMY:
    drainage_rate: 0.09
    nutrient_leak: 1.0
    water_retention: 0.95
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}

	c, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("load overrides: %v", err)
	}

	// New crop is added.
	barley, err := c.Crop("BARLEY")
	if err != nil {
		t.Fatalf("barley lookup: %v", err)
	}
	if barley.SeasonDays != 100 || barley.STCR.N.A != 4.5 {
		t.Fatalf("barley profile not loaded: %+v", barley)
	}

	// Existing soil is replaced.
	loamy, err := c.Soil(SoilLoamy)
	if err != nil {
		t.Fatalf("loamy lookup: %v", err)
	}
	if loamy.DrainageRate != 0.09 {
		t.Fatalf("loamy override not applied: %+v", loamy)
	}

	// Untouched defaults survive.
	if _, err := c.Crop(CropRice); err != nil {
		t.Fatalf("rice lost after override: %v", err)
	}

	// The shared default catalog is untouched.
	orig, err := Default().Soil(SoilLoamy)
	if err != nil {
		t.Fatalf("default loamy lookup: %v", err)
	}
	if orig.DrainageRate == 0.09 {
		t.Fatal("default catalog mutated by LoadOverrides")
	}
}
