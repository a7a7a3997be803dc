package weather

import (
	"testing"

	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/entropy"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/knowledge"
)

func testRegion(t *testing.T, r knowledge.Region) knowledge.RegionProfile {
	t.Helper()
	p, err := knowledge.Default().Region(r)
	if err != nil {
		t.Fatalf("region %s: %v", r, err)
	}
	return p
}

func TestGenerateIsDeterministicForEqualSeeds(t *testing.T) {
	region := testRegion(t, knowledge.RegionTemperate)

	a := New(region, 120, 9, entropy.Seeded(9))
	b := New(region, 120, 9, entropy.Seeded(9))

	for day := 1; day <= 30; day++ {
		da, db := a.Generate(day), b.Generate(day)
		if da != db {
			t.Fatalf("day %d diverged:\n%+v\n%+v", day, da, db)
		}
	}
}

func TestGenerateObservationsArePlausible(t *testing.T) {
	for _, name := range []knowledge.Region{knowledge.RegionDry, knowledge.RegionTemperate, knowledge.RegionHumid} {
		region := testRegion(t, name)
		g := New(region, 120, 3, entropy.Seeded(3))

		for day := 1; day <= 120; day++ {
			d := g.Generate(day)

			if d.TminC >= d.TmaxC {
				t.Fatalf("%s day %d: Tmin %.1f >= Tmax %.1f", name, day, d.TminC, d.TmaxC)
			}
			if d.RadiationMJ <= 0 {
				t.Fatalf("%s day %d: non-positive radiation %.1f", name, day, d.RadiationMJ)
			}

			switch d.Regime {
			case RegimeSun, RegimeDrought:
				if d.RainMM != 0 {
					t.Fatalf("%s day %d: %s day with %.1f mm rain", name, day, d.Regime.Name(), d.RainMM)
				}
			case RegimeRain, RegimeStorm:
				if d.RainMM <= 0 {
					t.Fatalf("%s day %d: %s day with no rain", name, day, d.Regime.Name())
				}
			default:
				t.Fatalf("%s day %d: unknown regime %d", name, day, d.Regime)
			}
		}
	}
}

func TestWetDaysCarryLessRadiationThanDryDays(t *testing.T) {
	region := testRegion(t, knowledge.RegionHumid)
	g := New(region, 120, 11, entropy.Seeded(11))

	var wetMax, dryMin float64
	dryMin = 1e9
	for day := 1; day <= 200; day++ {
		d := g.Generate(day)
		switch d.Regime {
		case RegimeRain, RegimeStorm:
			if d.RadiationMJ > wetMax {
				wetMax = d.RadiationMJ
			}
		default:
			if d.RadiationMJ < dryMin {
				dryMin = d.RadiationMJ
			}
		}
	}

	if wetMax >= dryMin {
		t.Fatalf("expected cloud cover to cap wet-day radiation below dry days: wet max %.1f, dry min %.1f", wetMax, dryMin)
	}
}
