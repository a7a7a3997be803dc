// Package weather generates one stochastic daily observation per
// simulated day: max/min temperature, rainfall, and solar radiation.
// A sine phase of day-of-season sets the seasonal baseline, simplex noise
// adds day-to-day texture, and a regional regime table decides sun, rain,
// storm, or drought.
package weather

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/entropy"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/knowledge"
)

// Regime is the discrete weather class drawn for a day.
type Regime uint8

const (
	RegimeSun Regime = iota
	RegimeRain
	RegimeStorm
	RegimeDrought
)

// Name returns a human-readable regime name.
func (r Regime) Name() string {
	switch r {
	case RegimeSun:
		return "sunny"
	case RegimeRain:
		return "rainy"
	case RegimeStorm:
		return "stormy"
	case RegimeDrought:
		return "dry"
	default:
		return "unknown"
	}
}

// Daily is one day's observation. The engine keeps only the most recent
// one; weather is never accumulated.
type Daily struct {
	Day         int
	TmaxC       float64
	TminC       float64
	RainMM      float64
	RadiationMJ float64 // MJ/m²
	Regime      Regime
}

// AvgTempC returns the daily mean temperature.
func (d Daily) AvgTempC() float64 {
	return (d.TmaxC + d.TminC) / 2
}

// Generator produces the day's weather. The boundary is deliberate: a
// real forecast feed can replace SimGenerator without touching any
// downstream subsystem.
type Generator interface {
	Generate(day int) Daily
}

// Baseline climate constants shared by all regions.
const (
	baseTmaxC     = 30.0
	baseTminC     = 18.0
	seasonalSwing = 5.0 // amplitude of the sine-phase bias, °C
	noiseSwing    = 2.5 // amplitude of the simplex perturbation, °C
)

// SimGenerator draws stochastic weather biased by a region profile.
type SimGenerator struct {
	region     knowledge.RegionProfile
	seasonDays int
	noise      opensimplex.Noise
	rng        entropy.Source
}

// New creates a generator for a region. The noise field is keyed by seed
// so two generators with equal seeds produce the same temperature track;
// the regime draws come from rng.
func New(region knowledge.RegionProfile, seasonDays int, seed int64, rng entropy.Source) *SimGenerator {
	if seasonDays <= 0 {
		seasonDays = 120
	}
	return &SimGenerator{
		region:     region,
		seasonDays: seasonDays,
		noise:      opensimplex.NewNormalized(seed),
		rng:        rng,
	}
}

// Generate produces the observation for a day-of-season. Stateless beyond
// the day argument.
func (g *SimGenerator) Generate(day int) Daily {
	// Seasonal phase: peaks mid-season.
	phase := math.Sin(math.Pi * float64(day) / float64(g.seasonDays))

	// Two independent noise tracks for max and min temperature.
	nMax := g.noise.Eval2(float64(day)*0.15, 0.0)*2 - 1
	nMin := g.noise.Eval2(float64(day)*0.15, 7.3)*2 - 1

	d := Daily{
		Day:    day,
		TmaxC:  baseTmaxC + g.region.TempBiasC + seasonalSwing*phase + noiseSwing*nMax,
		TminC:  baseTminC + g.region.TempBiasC*0.5 + seasonalSwing*0.6*phase + noiseSwing*nMin,
		Regime: g.drawRegime(),
	}
	switch d.Regime {
	case RegimeRain:
		d.RainMM = 5 + g.rng.Float64()*20
		d.RadiationMJ = 13 + g.rng.Float64()*3 // cloud cover
		d.TmaxC -= 2
	case RegimeStorm:
		d.RainMM = 20 + g.rng.Float64()*40
		d.RadiationMJ = 9 + g.rng.Float64()*3
		d.TmaxC -= 4
	case RegimeDrought:
		d.RainMM = 0
		d.RadiationMJ = 24 + g.rng.Float64()*3
		d.TmaxC += 2
	default: // sun
		d.RainMM = 0
		d.RadiationMJ = 20 + g.rng.Float64()*4
	}

	// Regime adjustments can pull Tmax down; keep a sane spread.
	if d.TminC > d.TmaxC-1 {
		d.TminC = d.TmaxC - 1
	}

	return d
}

// drawRegime samples the region's discrete regime table.
func (g *SimGenerator) drawRegime() Regime {
	r := g.rng.Float64()
	odds := g.region.Odds

	r -= odds.Sun
	if r < 0 {
		return RegimeSun
	}
	r -= odds.Rain
	if r < 0 {
		return RegimeRain
	}
	r -= odds.Storm
	if r < 0 {
		return RegimeStorm
	}
	return RegimeDrought
}
