package knowledge

// Built-in tables. STCR coefficients follow the published targeted-yield
// regressions (kg nutrient per t target yield, minus per-kg soil test).

var defaultCrops = map[CropType]CropProfile{
	CropRice: {
		Name:           "Rice",
		SeasonDays:     120,
		MaxLAI:         6.5,
		WaterNeedMM:    1200,
		BaseTempC:      10,
		PotentialYield: 6000,
		STCR: STCRSet{
			N: STCRLine{A: 4.64, B: 0.37},
			P: STCRLine{A: 2.24, B: 2.87},
			K: STCRLine{A: 2.47, B: 0.17},
		},
	},
	CropWheat: {
		Name:           "Wheat",
		SeasonDays:     140,
		MaxLAI:         5.0,
		WaterNeedMM:    450,
		BaseTempC:      4,
		PotentialYield: 5500,
		STCR: STCRSet{
			N: STCRLine{A: 5.04, B: 0.42},
			P: STCRLine{A: 2.60, B: 3.90},
			K: STCRLine{A: 2.00, B: 0.12},
		},
	},
	CropMaize: {
		Name:           "Maize",
		SeasonDays:     110,
		MaxLAI:         5.5,
		WaterNeedMM:    600,
		BaseTempC:      8,
		PotentialYield: 8000,
		STCR: STCRSet{
			N: STCRLine{A: 4.93, B: 0.42},
			P: STCRLine{A: 2.34, B: 3.50},
			K: STCRLine{A: 1.71, B: 0.30},
		},
	},
	CropCotton: {
		Name:           "Cotton",
		SeasonDays:     160,
		MaxLAI:         4.5,
		WaterNeedMM:    700,
		BaseTempC:      12,
		PotentialYield: 2500,
		STCR: STCRSet{
			N: STCRLine{A: 7.90, B: 0.55},
			P: STCRLine{A: 3.40, B: 4.30},
			K: STCRLine{A: 4.10, B: 0.25},
		},
	},
}

var defaultSoils = map[SoilType]SoilTypeProfile{
	SoilSandy: {DrainageRate: 0.12, NutrientLeak: 1.5, WaterRetention: 0.70},
	SoilLoamy: {DrainageRate: 0.06, NutrientLeak: 0.8, WaterRetention: 1.00},
	SoilClay:  {DrainageRate: 0.03, NutrientLeak: 0.5, WaterRetention: 1.25},
	SoilBlack: {DrainageRate: 0.04, NutrientLeak: 0.6, WaterRetention: 1.15},
}

var defaultRegions = map[Region]RegionProfile{
	RegionDry: {
		TempBiasC: 4,
		Odds:      RegimeOdds{Sun: 0.55, Rain: 0.12, Storm: 0.03, Drought: 0.30},
	},
	RegionTemperate: {
		TempBiasC: 0,
		Odds:      RegimeOdds{Sun: 0.50, Rain: 0.30, Storm: 0.10, Drought: 0.10},
	},
	RegionHumid: {
		TempBiasC: 1,
		Odds:      RegimeOdds{Sun: 0.30, Rain: 0.45, Storm: 0.15, Drought: 0.10},
	},
}

var defaultCatalog = &Catalog{
	crops:   defaultCrops,
	soils:   defaultSoils,
	regions: defaultRegions,
}

// Default returns the shared built-in catalog. It must be treated as
// read-only; use LoadOverrides for a customized copy.
func Default() *Catalog {
	return defaultCatalog
}
