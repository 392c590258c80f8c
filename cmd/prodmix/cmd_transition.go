package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prodmix/internal"
	"prodmix/tables"
)

var (
	transitionRegion string
	transitionClass  string
	transitionFrom   int
	transitionTo     int
)

// transitionCmd computes the pace of transition for one region and class
var transitionCmd = &cobra.Command{
	Use:   "transition",
	Short: "Market-share change between two reference years",
	Long: `Aggregates the input workbook for one region and reports how a
powertrain class's market share moved between two years.

Example:
  prodmix transition -i forecast.xlsx --region Europe --class EV --from 2023 --to 2037`,
	RunE: runTransition,
}

func init() {
	transitionCmd.Flags().StringVar(&transitionRegion, "region", "", "region to analyze")
	transitionCmd.Flags().StringVar(&transitionClass, "class", tables.ClassEV, "powertrain class (EV, HEV, ICE, UNCLASSIFIED)")
	transitionCmd.Flags().IntVar(&transitionFrom, "from", 2023, "start year")
	transitionCmd.Flags().IntVar(&transitionTo, "to", 2037, "end year")
	_ = transitionCmd.MarkFlagRequired("region")
}

func runTransition(cmd *cobra.Command, args []string) error {
	// Shares must come from the region's own universe, so the pipeline is
	// filtered to it rather than sliced afterwards.
	result, err := runPipeline(tables.AggregateConfigSpec{
		Regions: []string{transitionRegion},
		Years:   []int{transitionFrom, transitionTo},
	})
	if err != nil {
		return err
	}

	metric, err := internal.TransitionSpeed(result.Rows, transitionRegion, transitionClass, transitionFrom, transitionTo)
	if err != nil {
		return err
	}

	fmt.Printf("%s in %s: %d share %.2f%% -> %d share %.2f%% (%+.2fpp)\n",
		metric.Class, metric.Region,
		metric.YearStart, metric.StartShare*100,
		metric.YearEnd, metric.EndShare*100,
		metric.DeltaShare*100)
	fmt.Printf("volume: %s -> %s (change %s)\n",
		metric.StartVolume, metric.EndVolume, metric.VolumeChange)
	return nil
}
