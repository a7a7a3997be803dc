package growth

import (
	"math"
	"testing"

	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/knowledge"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/weather"
)

func rice(t *testing.T) knowledge.CropProfile {
	t.Helper()
	p, err := knowledge.Default().Crop(knowledge.CropRice)
	if err != nil {
		t.Fatalf("rice: %v", err)
	}
	return p
}

func sunnyDay() weather.Daily {
	return weather.Daily{TmaxC: 32, TminC: 22, RadiationMJ: 22, Regime: weather.RegimeSun}
}

func TestPartitionFractionsSumToOne(t *testing.T) {
	for dvs := 0.0; dvs <= 3.0; dvs += 0.01 {
		root, stem, leaf, storage := Partition(dvs)

		sum := root + stem + leaf + storage
		if math.Abs(sum-1.0) > 1e-9 {
			t.Fatalf("dvs %.2f: fractions sum to %f", dvs, sum)
		}
		for _, f := range []float64{root, stem, leaf, storage} {
			if f < 0 {
				t.Fatalf("dvs %.2f: negative fraction %f", dvs, f)
			}
		}
	}
}

func TestPartitionSwitchesToStorageAtFlowering(t *testing.T) {
	_, _, leaf, storage := Partition(0.99)
	if storage != 0 {
		t.Fatalf("vegetative phase allocated %.2f to storage", storage)
	}
	if leaf <= 0 {
		t.Fatalf("vegetative phase allocated nothing to leaf")
	}

	root, stem, leaf, storage := Partition(1.0)
	if root != 0.1 || stem != 0.1 || leaf != 0 || storage != 0.8 {
		t.Fatalf("reproductive split = %.2f/%.2f/%.2f/%.2f, want 0.1/0.1/0.0/0.8", root, stem, leaf, storage)
	}
}

func TestStepConservesMass(t *testing.T) {
	in := Inputs{
		Crop:    rice(t),
		LeafKg:  120,
		StemKg:  90,
		RootKg:  110,
		LAI:     1.5,
		Weather: sunnyDay(),
	}

	for day := 0; day < 50; day++ {
		out := Step(in)

		sum := out.RootKg + out.StemKg + out.LeafKg + out.StorageKg
		if math.Abs(out.BiomassKg-sum) > 1e-6 {
			t.Fatalf("day %d: biomass %f != pool sum %f", day, out.BiomassKg, sum)
		}

		in.DVS = out.DVS
		in.LeafKg = out.LeafKg
		in.StemKg = out.StemKg
		in.StorageKg = out.StorageKg
		in.RootKg = out.RootKg
		in.LAI = out.LAI
		in.HeightCM = out.HeightCM
		in.RootDepthCM = out.RootDepthCM
	}
}

func TestDVSNeverDecreasesAndColdDaysStall(t *testing.T) {
	crop := rice(t)

	cold := Step(Inputs{Crop: crop, DVS: 0.5, Weather: weather.Daily{TmaxC: 12, TminC: 4, RadiationMJ: 8}})
	if cold.DVS != 0.5 {
		t.Fatalf("day below base temperature moved dvs: %.4f", cold.DVS)
	}

	warm := Step(Inputs{Crop: crop, DVS: 0.5, Weather: sunnyDay()})
	if warm.DVS <= 0.5 {
		t.Fatalf("warm day did not advance dvs: %.4f", warm.DVS)
	}
}

func TestStressLimitsGrowthByScarcerResource(t *testing.T) {
	base := Inputs{Crop: rice(t), LeafKg: 100, StemKg: 80, RootKg: 90, LAI: 2, Weather: sunnyDay()}

	free := Step(base)

	stressed := base
	stressed.WaterStress = 0.6
	stressed.NitrogenStress = 0.1
	limited := Step(stressed)

	freeGain := free.BiomassKg - 270
	limitedGain := limited.BiomassKg - 270
	// min(1-0.6, 1-0.1) = 0.4 of the potential.
	if math.Abs(limitedGain-freeGain*0.4) > 1e-6 {
		t.Fatalf("expected growth scaled by the scarcer resource: free %.2f, limited %.2f", freeGain, limitedGain)
	}
}

func TestLAICappedAtCropMaximum(t *testing.T) {
	crop := rice(t)
	in := Inputs{
		Crop:    crop,
		LeafKg:  2000,
		StemKg:  1500,
		RootKg:  1000,
		LAI:     crop.MaxLAI - 0.01,
		DVS:     0.5,
		Weather: sunnyDay(),
	}

	out := Step(in)
	if out.LAI > crop.MaxLAI {
		t.Fatalf("LAI %.3f exceeded crop maximum %.3f", out.LAI, crop.MaxLAI)
	}
}

func TestLAIDecaysAfterFlowering(t *testing.T) {
	in := Inputs{Crop: rice(t), DVS: 1.2, LAI: 5, LeafKg: 800, StemKg: 700, RootKg: 500, Weather: sunnyDay()}
	out := Step(in)
	if out.LAI >= 5 {
		t.Fatalf("senescing canopy did not shrink: %.3f", out.LAI)
	}
}

func TestHeightFreezesLate(t *testing.T) {
	early := Step(Inputs{Crop: rice(t), DVS: 0.5, LAI: 3, HeightCM: 40, Weather: sunnyDay()})
	if early.HeightCM <= 40 {
		t.Fatalf("vegetative stand stopped growing taller: %.2f", early.HeightCM)
	}

	late := Step(Inputs{Crop: rice(t), DVS: 1.5, LAI: 3, HeightCM: 90, Weather: sunnyDay()})
	if late.HeightCM != 90 {
		t.Fatalf("late-stage height changed: %.2f", late.HeightCM)
	}
}

func TestHeatStressRamp(t *testing.T) {
	cases := []struct {
		tmax float64
		want float64
	}{
		{30, 0},
		{35, 0},
		{40, 0.5},
		{45, 1},
		{50, 1},
	}
	for _, c := range cases {
		if got := heatStress(c.tmax); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("heatStress(%.0f) = %f, want %f", c.tmax, got, c.want)
		}
	}
}

func TestHealthTracksWorstStress(t *testing.T) {
	in := Inputs{Crop: rice(t), LAI: 2, Weather: sunnyDay()}
	in.WaterStress = 0.3
	in.NitrogenStress = 0.7

	out := Step(in)
	if math.Abs(out.Health-30) > 1e-9 {
		t.Fatalf("health = %f, want 30 (worst stress 0.7)", out.Health)
	}
}

func TestDeriveStage(t *testing.T) {
	cases := []struct {
		dvs    float64
		health float64
		want   Stage
	}{
		{0.0, 100, StageSeed},
		{0.14, 100, StageSeed},
		{0.15, 100, StageSeedling},
		{0.39, 100, StageSeedling},
		{0.40, 100, StageVegetative},
		{0.99, 100, StageVegetative},
		{1.0, 100, StageFlowering},
		{1.79, 100, StageFlowering},
		{1.8, 100, StageHarvest},
		{3.0, 100, StageHarvest},
		{0.5, 0, StageDead},
		{2.5, 0, StageDead},
		{1.0, -5, StageDead},
	}

	for _, c := range cases {
		if got := DeriveStage(c.dvs, c.health); got != c.want {
			t.Fatalf("DeriveStage(%.2f, %.0f) = %s, want %s", c.dvs, c.health, got.Name(), c.want.Name())
		}
	}
}
