// Package engine owns the mutable simulation state and sequences the
// subsystems — weather, weeds, water, nitrogen, growth — in fixed daily
// order. One Engine drives one crop stand for one session.
// See design doc Section 4.7.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/entropy"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/growth"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/knowledge"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/weather"
)

const (
	defaultFunds    = 1000.0
	initialLAI      = 0.05
	initialLeafKg   = 5.0
	initialStemKg   = 3.0
	initialRootKg   = 7.0
	initialRootCM   = 5.0
	initialMoisture = 50.0
)

// Engine is one simulation session. It is not safe for concurrent use;
// confine each session to a single caller or guard it with a mutex.
type Engine struct {
	catalog *knowledge.Catalog
	crop    knowledge.CropProfile
	soil    knowledge.SoilTypeProfile
	region  knowledge.RegionProfile

	soilType   knowledge.SoilType
	regionName knowledge.Region
	seed       int64

	gen weather.Generator
	rng entropy.Source

	state SimulationState

	dead         bool
	shockPenalty float64
}

// Option customizes engine construction.
type Option func(*Engine)

// WithSeed makes weather and disturbance rolls reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
		e.rng = entropy.Seeded(seed)
	}
}

// WithFunds overrides the starting funds.
func WithFunds(funds float64) Option {
	return func(e *Engine) { e.state.Funds = funds }
}

// WithCatalog swaps in a customized knowledge catalog (YAML overrides).
func WithCatalog(c *knowledge.Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// WithGenerator replaces the stochastic weather generator, e.g. with a
// recorded or forecast feed.
func WithGenerator(g weather.Generator) Option {
	return func(e *Engine) { e.gen = g }
}

// New constructs an engine from a soil health card and a crop choice.
// It fails fast on an unknown crop, soil, or region key; that is the only
// hard failure a session can produce.
func New(card knowledge.SoilHealthCard, cropType knowledge.CropType, soilType knowledge.SoilType, region knowledge.Region, start time.Time, opts ...Option) (*Engine, error) {
	e := &Engine{
		catalog:    knowledge.Default(),
		soilType:   soilType,
		regionName: region,
		seed:       1,
		rng:        entropy.Seeded(1),
	}
	e.state.Funds = defaultFunds

	for _, opt := range opts {
		opt(e)
	}

	var err error
	if e.crop, err = e.catalog.Crop(cropType); err != nil {
		return nil, fmt.Errorf("construct engine: %w", err)
	}
	if e.soil, err = e.catalog.Soil(soilType); err != nil {
		return nil, fmt.Errorf("construct engine: %w", err)
	}
	if e.region, err = e.catalog.Region(region); err != nil {
		return nil, fmt.Errorf("construct engine: %w", err)
	}

	if e.gen == nil {
		e.gen = weather.New(e.region, e.crop.SeasonDays, e.seed, e.rng)
	}

	e.state.Day = 1
	e.state.Date = start
	e.state.Crop = freshCrop(cropType, 0)
	e.state.Soil = SoilState{
		MoisturePct:  initialMoisture,
		NitrogenKg:   card.N,
		PhosphorusKg: card.P,
		PotassiumKg:  card.K,
	}

	slog.Info("simulation constructed",
		"crop", cropType,
		"soil", soilType,
		"region", region,
		"seed", e.seed,
		"soil_n", card.N,
	)
	return e, nil
}

// freshCrop returns the day-one crop state for a newly sown stand.
func freshCrop(t knowledge.CropType, weedCarryover float64) CropState {
	c := CropState{
		Type:        t,
		Variety:     "local",
		Stage:       growth.StageSeed,
		LeafKg:      initialLeafKg,
		StemKg:      initialStemKg,
		RootKg:      initialRootKg,
		LAI:         initialLAI,
		RootDepthCM: initialRootCM,
		Health:      100,
		WeedDensity: weedCarryover,
	}
	c.BiomassKg = c.LeafKg + c.StemKg + c.StorageKg + c.RootKg
	return c
}

// State returns a defensive copy of the current simulation state.
// Mutating the return value never affects the engine.
func (e *Engine) State() SimulationState {
	return e.state.clone()
}

// Crop returns the active crop profile.
func (e *Engine) Crop() knowledge.CropProfile {
	return e.crop
}

// pushEvent prepends to the bounded most-recent-first event log.
func (e *Engine) pushEvent(category, format string, args ...any) {
	ev := Event{
		Day:         e.state.Day,
		Category:    category,
		Description: fmt.Sprintf(format, args...),
	}
	e.state.Events = append([]Event{ev}, e.state.Events...)
	if len(e.state.Events) > EventCap {
		e.state.Events = e.state.Events[:EventCap]
	}
}
