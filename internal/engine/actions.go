package engine

import (
	"fmt"
	"log/slog"

	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/growth"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/knowledge"
)

// Action is one of the fixed-cost operator interventions.
type Action uint8

const (
	ActionWater Action = iota
	ActionFertilize
	ActionPesticide
	ActionDeweed
	ActionHarvest
	ActionNextDay
)

// Fixed action costs and effect sizes.
const (
	waterCost     = 10.0
	fertilizeCost = 25.0
	pesticideCost = 30.0

	waterActionMM     = 50.0
	fertilizeActionKg = 50.0
	deweedAmount      = 0.30
	weedCarryoverCap  = 0.05

	salePricePerKg = 0.25
)

// Name returns a human-readable action name.
func (a Action) Name() string {
	switch a {
	case ActionWater:
		return "WATER"
	case ActionFertilize:
		return "FERTILIZE"
	case ActionPesticide:
		return "PESTICIDE"
	case ActionDeweed:
		return "DEWEED"
	case ActionHarvest:
		return "HARVEST"
	case ActionNextDay:
		return "NEXT_DAY"
	default:
		return "UNKNOWN"
	}
}

// Perform executes a fixed-cost action. Insufficient funds or a harvest
// attempt before the crop is ready are logged no-ops, never errors; the
// only error is an unknown action or an unknown replant crop.
func (e *Engine) Perform(a Action) (SimulationState, error) {
	switch a {
	case ActionWater:
		if !e.spend(waterCost, a) {
			return e.State(), nil
		}
		st := &e.state
		st.Soil.MoisturePct += waterActionMM * e.soil.WaterRetention
		if st.Soil.MoisturePct > 100 {
			st.Soil.MoisturePct = 100
		}
		e.pushEvent("action", "irrigated %.0f mm", waterActionMM)

	case ActionFertilize:
		if !e.spend(fertilizeCost, a) {
			return e.State(), nil
		}
		e.state.Soil.NitrogenKg += fertilizeActionKg
		e.pushEvent("action", "applied %.0f kg/ha nitrogen", fertilizeActionKg)

	case ActionPesticide:
		if !e.spend(pesticideCost, a) {
			return e.State(), nil
		}
		e.state.PestPressure = 0
		e.pushEvent("action", "sprayed pesticide, pest pressure cleared")

	case ActionDeweed:
		e.deweed()

	case ActionHarvest:
		return e.harvestAndReplant("")

	case ActionNextDay:
		return e.NextDay(Actions{})

	default:
		return e.State(), fmt.Errorf("unknown action %d", a)
	}

	return e.State(), nil
}

// spend deducts an action's cost, or refuses the whole action when funds
// fall short. Refusal has zero side effects beyond the log entry.
func (e *Engine) spend(cost float64, a Action) bool {
	if e.state.Funds < cost {
		e.pushEvent("action", "%s refused: funds %.0f below cost %.0f", a.Name(), e.state.Funds, cost)
		slog.Info("action refused", "action", a.Name(), "funds", e.state.Funds, "cost", cost)
		return false
	}
	e.state.Funds -= cost
	return true
}

// deweed is free and unconditional.
func (e *Engine) deweed() {
	d := e.state.Crop.WeedDensity - deweedAmount
	if d < 0 {
		d = 0
	}
	e.state.Crop.WeedDensity = d
	e.pushEvent("action", "weeded the field, density now %.2f", d)
}

// harvestAndReplant grades and sells the standing crop, then starts a
// fresh season for the chosen next crop. Soil pools persist across the
// transition; crop state resets with a small weed carryover. Outside
// stage HARVEST (or DEAD, which only harvest can leave) it is a logged
// no-op.
func (e *Engine) harvestAndReplant(next knowledge.CropType) (SimulationState, error) {
	st := &e.state

	if st.Crop.Stage != growth.StageHarvest && st.Crop.Stage != growth.StageDead {
		e.pushEvent("action", "HARVEST refused: crop at stage %s", st.Crop.Stage.Name())
		return e.State(), nil
	}

	if next == "" {
		next = st.Crop.Type
	}
	profile, err := e.catalog.Crop(next)
	if err != nil {
		return e.State(), fmt.Errorf("replant: %w", err)
	}

	yieldKg := st.Crop.StorageKg
	grade := gradeFor(st.Crop.Health)
	proceeds := yieldKg * salePricePerKg

	st.LastHarvest = &HarvestResult{
		Crop:     st.Crop.Type,
		YieldKg:  yieldKg,
		Grade:    grade,
		Proceeds: proceeds,
	}
	st.Funds += proceeds
	e.pushEvent("harvest", "harvested %.0f kg/ha of %s, grade %s, sold for %.0f",
		yieldKg, e.crop.Name, grade, proceeds)
	slog.Info("harvest",
		"crop", st.Crop.Type,
		"yield_kg", yieldKg,
		"grade", grade,
		"proceeds", proceeds,
		"next_crop", next,
	)

	weedCarry := st.Crop.WeedDensity
	if weedCarry > weedCarryoverCap {
		weedCarry = weedCarryoverCap
	}

	e.crop = profile
	e.dead = false
	e.shockPenalty = 0

	st.Day = 1
	st.Crop = freshCrop(next, weedCarry)
	st.Stress = StressState{}
	st.PestPressure = 0
	st.YieldForecast = 0
	e.pushEvent("action", "sowed %s for the new season", profile.Name)

	return e.State(), nil
}

// gradeFor maps final health to a produce grade.
func gradeFor(health float64) string {
	switch {
	case health >= 75:
		return "A"
	case health >= 45:
		return "B"
	default:
		return "C"
	}
}
