// Package hydrology maintains the single soil-moisture bucket. Moisture
// is a percentage of field capacity; the daily balance adds rainfall and
// irrigation and removes canopy-scaled evapotranspiration and drainage.
package hydrology

import (
	"math"

	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/knowledge"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/weather"
)

const (
	// MaxIrrigationMM caps one day's irrigation. Larger requests are
	// clamped, never rejected.
	MaxIrrigationMM = 1000.0

	// Crop coefficient rises with canopy size up to a cap.
	kcBase   = 0.30
	kcPerLAI = 0.25
	kcMax    = 1.20

	// Below this moisture percentage water stress ramps up linearly.
	StressThresholdPct = 35.0

	// WeedCompetitionThreshold is the density past which weeds start
	// drawing down soil resources. Shared with the nutrient model.
	WeedCompetitionThreshold = 0.30
	weedDrainMM              = 1.5
)

// Inputs is the slice of simulation state the water balance reads.
type Inputs struct {
	MoisturePct  float64
	IrrigationMM float64
	LAI          float64
	WeedDensity  float64
	Weather      weather.Daily
	Soil         knowledge.SoilTypeProfile
}

// Result is the updated pool plus the stress index derived from it.
type Result struct {
	MoisturePct float64
	WaterStress float64
	ETcMM       float64
}

// Step advances the moisture pool by one day.
func Step(in Inputs) Result {
	irrigation := in.IrrigationMM
	if irrigation < 0 {
		irrigation = 0
	}
	if irrigation > MaxIrrigationMM {
		irrigation = MaxIrrigationMM
	}

	kc := kcBase + kcPerLAI*in.LAI
	if kc > kcMax {
		kc = kcMax
	}
	etc := referenceET(in.Weather) * kc

	balance := in.Weather.RainMM + irrigation - etc
	if in.WeedDensity > WeedCompetitionThreshold {
		balance -= weedDrainMM
	}

	// Free drainage empties a fraction of the pool each day; retention
	// scales how much of the balance the profile actually holds.
	m := in.MoisturePct
	m -= m * in.Soil.DrainageRate
	m += balance * in.Soil.WaterRetention
	m = clampPct(m)

	return Result{
		MoisturePct: m,
		WaterStress: stressFor(m),
		ETcMM:       etc,
	}
}

// referenceET is a Hargreaves-style reference evapotranspiration in mm.
func referenceET(d weather.Daily) float64 {
	spread := d.TmaxC - d.TminC
	if spread < 0 {
		spread = 0
	}
	et := 0.0023 * (d.AvgTempC() + 17.8) * math.Sqrt(spread) * d.RadiationMJ * 0.408
	if et < 0 {
		return 0
	}
	return et
}

// stressFor ramps linearly from 0 at the threshold to 1 at zero moisture.
// Excess moisture carries no penalty beyond the clamp at 100.
func stressFor(moisturePct float64) float64 {
	if moisturePct >= StressThresholdPct {
		return 0
	}
	return (StressThresholdPct - moisturePct) / StressThresholdPct
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
