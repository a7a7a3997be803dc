package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/HVVSATHWIK/AgriResolve-AI-App-sub000/internal/knowledge"
)

func profilesCmd() *cobra.Command {
	var targetYield, soilN, soilP, soilK float64

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Print crop tables and STCR fertilizer recommendations",
		RunE: func(_ *cobra.Command, _ []string) error {
			return printProfiles(targetYield, soilN, soilP, soilK)
		},
	}

	cmd.Flags().Float64Var(&targetYield, "target-yield", 5.0, "target yield, t/ha")
	cmd.Flags().Float64Var(&soilN, "soil-n", 250, "soil test N, kg/ha")
	cmd.Flags().Float64Var(&soilP, "soil-p", 22, "soil test P, kg/ha")
	cmd.Flags().Float64Var(&soilK, "soil-k", 180, "soil test K, kg/ha")

	return cmd
}

func printProfiles(targetYield, soilN, soilP, soilK float64) error {
	catalog := knowledge.Default()

	crops := catalog.Crops()
	sort.Slice(crops, func(i, j int) bool { return crops[i] < crops[j] })

	for _, t := range crops {
		p, err := catalog.Crop(t)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d day season, max LAI %.1f, water need %.0f mm, base temp %.0f °C\n",
			p.Name, p.SeasonDays, p.MaxLAI, p.WaterNeedMM, p.BaseTempC)

		// STCR doses can be negative when the soil already carries
		// enough; print them as computed.
		fmt.Printf("  STCR doses for %.1f t/ha: N %.1f, P %.1f, K %.1f kg/ha\n",
			targetYield,
			p.STCR.N.Recommend(targetYield, soilN),
			p.STCR.P.Recommend(targetYield, soilP),
			p.STCR.K.Recommend(targetYield, soilK),
		)
	}
	return nil
}
