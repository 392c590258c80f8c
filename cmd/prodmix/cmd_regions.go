package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prodmix/internal"
	"prodmix/tables"
)

var (
	regionsClass string
	regionsYear  int
	regionsTop   int
)

// regionsCmd ranks regions by a class's market share in a target year
var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Rank regions by a class's market share",
	Long: `Aggregates the input workbook and ranks regions by one powertrain
class's market share in the target year.

Example:
  prodmix regions -i forecast.xlsx --class EV --year 2030 --top 5`,
	RunE: runRegionRanking,
}

func init() {
	regionsCmd.Flags().StringVar(&regionsClass, "class", tables.ClassEV, "powertrain class (EV, HEV, ICE, UNCLASSIFIED)")
	regionsCmd.Flags().IntVar(&regionsYear, "year", 2030, "target year")
	regionsCmd.Flags().IntVar(&regionsTop, "top", 5, "number of regions to show (0 for all)")
}

func runRegionRanking(cmd *cobra.Command, args []string) error {
	result, err := runPipeline(tables.AggregateConfigSpec{})
	if err != nil {
		return err
	}

	ranked, err := internal.TopRegionsByShare(result.Rows, regionsClass, regionsYear, regionsTop)
	if err != nil {
		return err
	}

	fmt.Printf("%s share by region, %d\n", regionsClass, regionsYear)
	for i, entry := range ranked {
		fmt.Printf("%2d. %-24s %6.2f%%  (%s)\n", i+1, entry.Region, entry.Share*100, entry.Volume)
	}
	return nil
}
