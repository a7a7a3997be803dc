// Package growth advances the crop itself: phenological clock, canopy
// photosynthesis, dry-matter partitioning, and morphology/senescence.
// All partition and stage logic is pure so it can be tested in isolation.
package growth

import (
	"math"

	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/knowledge"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/weather"
)

const (
	parFraction  = 0.5   // photosynthetically active fraction of radiation
	extinctionK  = 0.6   // Beer's law canopy extinction coefficient
	rue          = 3.0   // g dry matter per MJ intercepted PAR
	dmScale      = 10.0  // g/m² to kg/ha
	specificLA   = 0.002 // LAI units per kg/ha of leaf dry matter
	laiDecayFrac = 0.03  // daily senescence once leaf allocation stops

	heightPerStemKg = 0.02 // cm per kg/ha allocated to stem
	heightStopDVS   = 1.2
	rootPerRootKg   = 0.01 // cm per kg/ha allocated to root
	maxRootDepthCM  = 120.0

	// Thermal time to advance dvs by 1.0 is derived from season length:
	// a nominal 7 °C·d per calendar day puts flowering mid-season and
	// maturity near its end.
	thermalPerDay = 7.0

	heatOnsetC = 35.0
	heatMaxC   = 45.0
)

// Inputs is the crop state the daily growth step reads.
type Inputs struct {
	Crop knowledge.CropProfile

	DVS         float64
	LeafKg      float64
	StemKg      float64
	StorageKg   float64
	RootKg      float64
	LAI         float64
	HeightCM    float64
	RootDepthCM float64

	WaterStress    float64
	NitrogenStress float64
	Weather        weather.Daily
}

// Result is the advanced crop state. BiomassKg is always the sum of the
// four pools, never tracked independently.
type Result struct {
	DVS         float64
	LeafKg      float64
	StemKg      float64
	StorageKg   float64
	RootKg      float64
	BiomassKg   float64
	LAI         float64
	HeightCM    float64
	RootDepthCM float64

	HeatStress float64
	Health     float64
}

// Step runs one day of growth in fixed order: phenology, photosynthesis,
// partitioning, morphology.
func Step(in Inputs) Result {
	out := Result{
		DVS:         in.DVS,
		LeafKg:      in.LeafKg,
		StemKg:      in.StemKg,
		StorageKg:   in.StorageKg,
		RootKg:      in.RootKg,
		LAI:         in.LAI,
		HeightCM:    in.HeightCM,
		RootDepthCM: in.RootDepthCM,
	}

	// 1. Phenology: thermal time accumulates, dvs never decreases.
	tt := in.Weather.AvgTempC() - in.Crop.BaseTempC
	if tt < 0 {
		tt = 0
	}
	total := thermalPerDay * float64(in.Crop.SeasonDays)
	out.DVS += tt / total

	// 2. Photosynthesis: Beer's law interception, growth limited by the
	// scarcer resource rather than an average of the two.
	par := parFraction * in.Weather.RadiationMJ
	fInt := 1 - math.Exp(-extinctionK*in.LAI)
	limit := math.Min(1-in.WaterStress, 1-in.NitrogenStress)
	if limit < 0 {
		limit = 0
	}
	dm := rue * par * fInt * dmScale * limit

	// 3. Partitioning: a pure function of dvs alone.
	fRoot, fStem, fLeaf, fStorage := Partition(out.DVS)
	leafDM := dm * fLeaf
	out.RootKg += dm * fRoot
	out.StemKg += dm * fStem
	out.LeafKg += leafDM
	out.StorageKg += dm * fStorage
	out.BiomassKg = out.RootKg + out.StemKg + out.LeafKg + out.StorageKg

	// 4. Morphology and senescence.
	if out.DVS < 1.0 && leafDM > 0 {
		out.LAI += leafDM * specificLA
		if out.LAI > in.Crop.MaxLAI {
			out.LAI = in.Crop.MaxLAI
		}
	} else {
		out.LAI *= 1 - laiDecayFrac
	}
	if out.DVS < heightStopDVS {
		out.HeightCM += dm * fStem * heightPerStemKg
	}
	out.RootDepthCM += dm * fRoot * rootPerRootKg
	if out.RootDepthCM > maxRootDepthCM {
		out.RootDepthCM = maxRootDepthCM
	}

	out.HeatStress = heatStress(in.Weather.TmaxC)
	worst := math.Max(in.WaterStress, math.Max(in.NitrogenStress, out.HeatStress))
	out.Health = 100 * (1 - worst)
	if out.Health < 0 {
		out.Health = 0
	}

	return out
}

// Partition returns the root/stem/leaf/storage dry-matter fractions for a
// development stage. The fractions sum to 1 in both phases; the switch to
// the reproductive split at dvs 1.0 is deliberately discontinuous.
func Partition(dvs float64) (root, stem, leaf, storage float64) {
	if dvs < 1.0 {
		root = 0.4 - 0.2*dvs
		leaf = 0.4 - 0.1*dvs
		stem = 1 - root - leaf
		return root, stem, leaf, 0
	}
	return 0.1, 0.1, 0.0, 0.8
}

// heatStress ramps linearly from 0 at the onset temperature to 1 at the
// saturation temperature.
func heatStress(tmaxC float64) float64 {
	if tmaxC <= heatOnsetC {
		return 0
	}
	s := (tmaxC - heatOnsetC) / (heatMaxC - heatOnsetC)
	if s > 1 {
		return 1
	}
	return s
}
