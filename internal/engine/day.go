package engine

import (
	"log/slog"

	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/growth"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/hydrology"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/knowledge"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/nutrient"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/weed"
)

// Actions is the payload carried by one day-advance call. Zero values
// mean "do nothing"; out-of-range amounts are clamped at the subsystem
// boundary, never rejected.
type Actions struct {
	IrrigateMM   float64
	FertilizeNKg float64
	Weed         bool
	Harvest      bool
	NewCrop      knowledge.CropType // used with Harvest; empty keeps the same crop
}

const (
	disturbanceChance = 0.02
	pestShockDamage   = 0.25 // pest pressure added by an outbreak
	hailShockPenalty  = 15.0 // direct health penalty from a hailstorm
	pestDecay         = 0.95
	shockRecovery     = 3.0  // health penalty shed per day
	pestHealthWeight  = 40.0 // health points lost at full pest pressure
	deadLAIDecay      = 0.97
)

// NextDay advances the simulation by one day, running the subsystems in
// fixed order: weather, disturbance, weeds, water, nitrogen, growth,
// stage. A harvest flag short-circuits into the harvest transition.
func (e *Engine) NextDay(a Actions) (SimulationState, error) {
	if a.Harvest {
		return e.harvestAndReplant(a.NewCrop)
	}

	st := &e.state
	st.Day++
	st.Date = st.Date.AddDate(0, 0, 1)

	// Weather first: every other subsystem reads today's observation.
	st.Weather = e.gen.Generate(st.Day)

	e.rollDisturbance()

	// Operator weeding lands before the day's weed growth.
	if a.Weed {
		e.deweed()
	}
	st.Crop.WeedDensity = weed.Step(weed.Inputs{
		Density: st.Crop.WeedDensity,
		LAI:     st.Crop.LAI,
		SoilNKg: st.Soil.NitrogenKg,
		RainDay: st.Weather.RainMM > 0,
	})

	hres := hydrology.Step(hydrology.Inputs{
		MoisturePct:  st.Soil.MoisturePct,
		IrrigationMM: a.IrrigateMM,
		LAI:          st.Crop.LAI,
		WeedDensity:  st.Crop.WeedDensity,
		Weather:      st.Weather,
		Soil:         e.soil,
	})
	st.Soil.MoisturePct = hres.MoisturePct
	st.Stress.Water = hres.WaterStress

	nres := nutrient.Step(nutrient.Inputs{
		PoolKg:       st.Soil.NitrogenKg,
		FertilizerKg: a.FertilizeNKg,
		LAI:          st.Crop.LAI,
		WeedDensity:  st.Crop.WeedDensity,
		Soil:         e.soil,
	})
	st.Soil.NitrogenKg = nres.PoolKg
	st.Stress.Nitrogen = nres.NitrogenStress

	if e.dead {
		// A dead stand no longer grows, but the field keeps ticking.
		st.Crop.LAI *= deadLAIDecay
		st.Crop.Health = 0
	} else {
		gres := growth.Step(growth.Inputs{
			Crop:           e.crop,
			DVS:            st.Crop.DVS,
			LeafKg:         st.Crop.LeafKg,
			StemKg:         st.Crop.StemKg,
			StorageKg:      st.Crop.StorageKg,
			RootKg:         st.Crop.RootKg,
			LAI:            st.Crop.LAI,
			HeightCM:       st.Crop.HeightCM,
			RootDepthCM:    st.Crop.RootDepthCM,
			WaterStress:    st.Stress.Water,
			NitrogenStress: st.Stress.Nitrogen,
			Weather:        st.Weather,
		})
		st.Crop.DVS = gres.DVS
		st.Crop.LeafKg = gres.LeafKg
		st.Crop.StemKg = gres.StemKg
		st.Crop.StorageKg = gres.StorageKg
		st.Crop.RootKg = gres.RootKg
		st.Crop.BiomassKg = gres.BiomassKg
		st.Crop.LAI = gres.LAI
		st.Crop.HeightCM = gres.HeightCM
		st.Crop.RootDepthCM = gres.RootDepthCM
		st.Stress.Heat = gres.HeatStress

		health := gres.Health - e.shockPenalty - pestHealthWeight*st.PestPressure
		if health < 0 {
			health = 0
		}
		st.Crop.Health = health

		if st.Crop.Health <= 0 {
			e.dead = true
			e.pushEvent("death", "the %s stand has died", e.crop.Name)
			slog.Warn("crop died", "day", st.Day, "crop", st.Crop.Type)
		}
	}

	st.Crop.Stage = growth.DeriveStage(st.Crop.DVS, st.Crop.Health)
	st.YieldForecast = st.Crop.StorageKg

	// Shocks and pest pressure fade with time.
	st.PestPressure *= pestDecay
	e.shockPenalty -= shockRecovery
	if e.shockPenalty < 0 {
		e.shockPenalty = 0
	}

	e.pushEvent("weather", "day %d: %s, %.1f mm rain, %.0f–%.0f °C",
		st.Day, st.Weather.Regime.Name(), st.Weather.RainMM, st.Weather.TminC, st.Weather.TmaxC)

	slog.Debug("day advanced",
		"day", st.Day,
		"stage", st.Crop.Stage.Name(),
		"dvs", st.Crop.DVS,
		"moisture", st.Soil.MoisturePct,
		"soil_n", st.Soil.NitrogenKg,
		"biomass", st.Crop.BiomassKg,
		"health", st.Crop.Health,
	)

	return e.State(), nil
}

// rollDisturbance applies a rare discrete shock: a pest outbreak or a
// hailstorm.
func (e *Engine) rollDisturbance() {
	if e.dead || e.rng.Float64() >= disturbanceChance {
		return
	}
	if e.rng.Float64() < 0.5 {
		e.state.PestPressure += pestShockDamage
		if e.state.PestPressure > 1 {
			e.state.PestPressure = 1
		}
		e.pushEvent("disturbance", "pest outbreak sighted in the field")
		slog.Info("disturbance", "kind", "pests", "day", e.state.Day)
	} else {
		e.shockPenalty += hailShockPenalty
		e.state.Crop.LAI *= 0.85
		e.pushEvent("disturbance", "hailstorm battered the canopy")
		slog.Info("disturbance", "kind", "hail", "day", e.state.Day)
	}
}
