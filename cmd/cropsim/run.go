package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/engine"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/knowledge"
	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/persistence"
)

type runFlags struct {
	crop      string
	soil      string
	region    string
	seed      int64
	days      int
	dbPath    string
	overrides string

	// Simple daily management policy.
	irrigateBelow  float64
	irrigateMM     float64
	fertilizeBelow float64
	fertilizeKg    float64
	weedAbove      float64
}

func runCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a season with a simple management policy",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSeason(f)
		},
	}

	cmd.Flags().StringVar(&f.crop, "crop", "RICE", "crop type")
	cmd.Flags().StringVar(&f.soil, "soil", "LOAMY", "soil type")
	cmd.Flags().StringVar(&f.region, "region", "TEMPERATE", "weather region")
	cmd.Flags().Int64Var(&f.seed, "seed", 42, "random seed")
	cmd.Flags().IntVar(&f.days, "days", 0, "days to simulate (0 = full season)")
	cmd.Flags().StringVar(&f.dbPath, "db", "", "optional SQLite season log path")
	cmd.Flags().StringVar(&f.overrides, "tables", "", "optional YAML table overrides")
	cmd.Flags().Float64Var(&f.irrigateBelow, "irrigate-below", 40, "irrigate when moisture %% falls below")
	cmd.Flags().Float64Var(&f.irrigateMM, "irrigate-mm", 30, "irrigation per application, mm")
	cmd.Flags().Float64Var(&f.fertilizeBelow, "fertilize-below", 50, "fertilize when soil N kg/ha falls below")
	cmd.Flags().Float64Var(&f.fertilizeKg, "fertilize-kg", 40, "nitrogen per application, kg/ha")
	cmd.Flags().Float64Var(&f.weedAbove, "weed-above", 0.35, "weed when density exceeds")

	return cmd
}

func runSeason(f runFlags) error {
	opts := []engine.Option{engine.WithSeed(f.seed)}
	if f.overrides != "" {
		catalog, err := knowledge.LoadOverrides(f.overrides)
		if err != nil {
			return err
		}
		opts = append(opts, engine.WithCatalog(catalog))
	}

	card := knowledge.SoilHealthCard{
		N: 250, P: 22, K: 180, S: 12,
		Zn: 0.8, Fe: 6.5, Cu: 0.4, Mn: 4.0, B: 0.5,
		PH: 6.8, EC: 0.4, OrganicCarbon: 0.6,
	}

	eng, err := engine.New(card,
		knowledge.CropType(f.crop),
		knowledge.SoilType(f.soil),
		knowledge.Region(f.region),
		time.Now(), opts...)
	if err != nil {
		return err
	}

	var db *persistence.DB
	runID := uuid.New().String()
	if f.dbPath != "" {
		if db, err = persistence.Open(f.dbPath); err != nil {
			return err
		}
		defer db.Close()
		slog.Info("season log enabled", "path", f.dbPath, "run_id", runID)
	}

	days := f.days
	if days <= 0 {
		days = eng.Crop().SeasonDays
	}

	for i := 0; i < days; i++ {
		st := eng.State()

		var a engine.Actions
		if st.Soil.MoisturePct < f.irrigateBelow {
			a.IrrigateMM = f.irrigateMM
		}
		if st.Soil.NitrogenKg < f.fertilizeBelow {
			a.FertilizeNKg = f.fertilizeKg
		}
		if st.Crop.WeedDensity > f.weedAbove {
			a.Weed = true
		}

		if st, err = eng.NextDay(a); err != nil {
			return err
		}

		slog.Info("day",
			"day", st.Day,
			"stage", st.Crop.Stage.Name(),
			"weather", st.Weather.Regime.Name(),
			"moisture", fmt.Sprintf("%.1f", st.Soil.MoisturePct),
			"soil_n", fmt.Sprintf("%.1f", st.Soil.NitrogenKg),
			"biomass", fmt.Sprintf("%.0f", st.Crop.BiomassKg),
			"health", fmt.Sprintf("%.0f", st.Crop.Health),
		)

		if db != nil {
			if err := db.RecordDay(runID, st); err != nil {
				return err
			}
		}
	}

	final := eng.State()
	if db != nil {
		if err := db.RecordEvents(runID, final.Events); err != nil {
			return err
		}
	}

	fmt.Printf("\nSeason finished after %d days at stage %s.\n", final.Day, final.Crop.Stage.Name())
	fmt.Printf("Biomass %s kg/ha, forecast yield %s kg/ha, health %.0f, funds %.0f.\n",
		humanize.CommafWithDigits(final.Crop.BiomassKg, 0),
		humanize.CommafWithDigits(final.YieldForecast, 0),
		final.Crop.Health,
		final.Funds,
	)
	return nil
}
