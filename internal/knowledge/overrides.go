package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile is the YAML shape accepted by LoadOverrides. Every section
// is optional; entries merge over (or add to) the built-in tables.
type overrideFile struct {
	Crops   map[CropType]CropProfile     `yaml:"crops"`
	Soils   map[SoilType]SoilTypeProfile `yaml:"soils"`
	Regions map[Region]RegionProfile     `yaml:"regions"`
}

// LoadOverrides reads a YAML table file and returns a new Catalog with the
// file's entries merged over the defaults. The default catalog is never
// touched.
func LoadOverrides(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	var f overrideFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}

	c := &Catalog{
		crops:   make(map[CropType]CropProfile, len(defaultCrops)+len(f.Crops)),
		soils:   make(map[SoilType]SoilTypeProfile, len(defaultSoils)+len(f.Soils)),
		regions: make(map[Region]RegionProfile, len(defaultRegions)+len(f.Regions)),
	}
	for k, v := range defaultCrops {
		c.crops[k] = v
	}
	for k, v := range defaultSoils {
		c.soils[k] = v
	}
	for k, v := range defaultRegions {
		c.regions[k] = v
	}
	for k, v := range f.Crops {
		c.crops[k] = v
	}
	for k, v := range f.Soils {
		c.soils[k] = v
	}
	for k, v := range f.Regions {
		c.regions[k] = v
	}
	return c, nil
}
