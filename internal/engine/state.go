package engine

import (
	"time"

	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/growth"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/knowledge"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/weather"
)

// EventCap bounds the event log; the oldest entry is evicted past it.
const EventCap = 50

// Event is a notable occurrence in the simulation, most-recent-first in
// the log.
type Event struct {
	Day         int    `json:"day" db:"day"`
	Category    string `json:"category" db:"category"` // "action", "weather", "disturbance", "harvest", "death"
	Description string `json:"description" db:"description"`
}

// CropState is the living crop stand.
type CropState struct {
	Type    knowledge.CropType `json:"type"`
	Variety string             `json:"variety"`
	Stage   growth.Stage       `json:"stage"`
	DVS     float64            `json:"dvs"`

	BiomassKg float64 `json:"biomass_kg"` // always the sum of the four pools
	LeafKg    float64 `json:"leaf_kg"`
	StemKg    float64 `json:"stem_kg"`
	StorageKg float64 `json:"storage_kg"`
	RootKg    float64 `json:"root_kg"`

	LAI         float64 `json:"lai"`
	HeightCM    float64 `json:"height_cm"`
	RootDepthCM float64 `json:"root_depth_cm"`
	Health      float64 `json:"health"`       // 0–100
	WeedDensity float64 `json:"weed_density"` // 0–1
}

// SoilState is the depletable resource pools, persisted across seasons.
type SoilState struct {
	MoisturePct  float64 `json:"moisture_pct"` // % of field capacity
	NitrogenKg   float64 `json:"nitrogen_kg"`
	PhosphorusKg float64 `json:"phosphorus_kg"`
	PotassiumKg  float64 `json:"potassium_kg"`
}

// StressState holds the three daily stress indices in [0, 1]. They are
// recomputed every day and never set from outside.
type StressState struct {
	Water    float64 `json:"water"`
	Nitrogen float64 `json:"nitrogen"`
	Heat     float64 `json:"heat"`
}

// HarvestResult records the outcome of the most recent harvest.
type HarvestResult struct {
	Crop     knowledge.CropType `json:"crop"`
	YieldKg  float64            `json:"yield_kg"`
	Grade    string             `json:"grade"` // "A", "B", or "C"
	Proceeds float64            `json:"proceeds"`
}

// SimulationState is the one mutable record, exclusively owned by the
// Engine. Callers only ever see defensive copies of it.
type SimulationState struct {
	Day  int       `json:"day"`
	Date time.Time `json:"date"`

	Crop    CropState     `json:"crop"`
	Soil    SoilState     `json:"soil"`
	Weather weather.Daily `json:"weather"` // most recent day only
	Stress  StressState   `json:"stress"`

	YieldForecast float64 `json:"yield_forecast"` // mirrors the storage pool
	Funds         float64 `json:"funds"`
	PestPressure  float64 `json:"pest_pressure"`

	LastHarvest *HarvestResult `json:"last_harvest,omitempty"`
	Events      []Event        `json:"events"`
}

// clone returns a deep copy safe to hand outside the engine.
func (s *SimulationState) clone() SimulationState {
	out := *s
	out.Events = make([]Event, len(s.Events))
	copy(out.Events, s.Events)
	if s.LastHarvest != nil {
		h := *s.LastHarvest
		out.LastHarvest = &h
	}
	return out
}
