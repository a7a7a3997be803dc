// Package nutrient maintains the single soil-nitrogen pool: constant
// mineralization in, canopy-driven uptake and soil-type leaching out.
// Unmet uptake demand is simply unmet; the pool never goes negative.
package nutrient

import (
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/hydrology"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/knowledge"
)

const (
	// MaxFertilizerKg caps one application of nitrogen.
	MaxFertilizerKg = 500.0

	mineralizationKg = 0.8 // kg N/ha released per day from organic matter
	uptakePerLAI     = 1.2 // kg N/ha demanded per unit LAI per day
	weedLeakKg       = 0.5 // extra daily loss once weeds compete

	// Below this pool size nitrogen stress ramps up linearly.
	StressThresholdKg = 40.0
)

// Inputs is the slice of simulation state the nitrogen balance reads.
type Inputs struct {
	PoolKg       float64
	FertilizerKg float64
	LAI          float64
	WeedDensity  float64
	Soil         knowledge.SoilTypeProfile
}

// Result is the updated pool plus the stress index derived from it.
type Result struct {
	PoolKg         float64
	NitrogenStress float64
}

// Step advances the nitrogen pool by one day.
func Step(in Inputs) Result {
	fert := in.FertilizerKg
	if fert < 0 {
		fert = 0
	}
	if fert > MaxFertilizerKg {
		fert = MaxFertilizerKg
	}

	leak := in.Soil.NutrientLeak
	if in.WeedDensity > hydrology.WeedCompetitionThreshold {
		leak += weedLeakKg
	}

	pool := in.PoolKg + mineralizationKg + fert - uptakePerLAI*in.LAI - leak
	if pool < 0 {
		pool = 0
	}

	return Result{
		PoolKg:         pool,
		NitrogenStress: stressFor(pool),
	}
}

func stressFor(poolKg float64) float64 {
	if poolKg >= StressThresholdKg {
		return 0
	}
	return (StressThresholdKg - poolKg) / StressThresholdKg
}
