// Package weed grows the competing weed stand. A closed canopy can stop
// the day's weed growth but never reverses it; only explicit weeding
// reduces accumulated density.
package weed

const (
	baseGrowth       = 0.010
	rainBonus        = 0.010
	lushBonus        = 0.010
	lushNThresholdKg = 80.0
	suppressPerLAI   = 0.006
)

// Inputs is the slice of simulation state weed growth reads.
type Inputs struct {
	Density float64
	LAI     float64
	SoilNKg float64
	RainDay bool
}

// Step returns the new weed density in [0, 1].
func Step(in Inputs) float64 {
	growth := baseGrowth
	if in.RainDay {
		growth += rainBonus
	}
	if in.SoilNKg > lushNThresholdKg {
		growth += lushBonus
	}

	growth -= suppressPerLAI * in.LAI
	if growth < 0 {
		growth = 0 // canopy shading stops growth, never un-grows weeds
	}

	d := in.Density + growth
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	return d
}
