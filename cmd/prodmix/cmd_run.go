package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"prodmix/internal"
	"prodmix/tables"
)

var (
	runRegions  []string
	runYears    []int
	runOutDir   string
	runFromYear int
	runToYear   int
)

// runCmd executes the full analysis pipeline and exports the aggregate
// table
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full analysis pipeline",
	Long: `Runs normalize, classify, melt and aggregate over the input workbook
and writes aggregates.csv and aggregates.json to the output directory.

Filters restrict the aggregation universe before grouping, so market
shares are always relative to the filtered data.

Example:
  prodmix run -i forecast.xlsx --out outputs
  prodmix run -i forecast.xlsx --regions Europe --years 2023,2030,2037`,
	RunE: runAnalysis,
}

func init() {
	runCmd.Flags().StringSliceVar(&runRegions, "regions", nil, "regions to include (default: all)")
	runCmd.Flags().IntSliceVar(&runYears, "years", nil, "years to include (default: all)")
	runCmd.Flags().StringVar(&runOutDir, "out", "outputs", "output directory for exported tables")
	runCmd.Flags().IntVar(&runFromYear, "from", 2023, "transition start year for the summary")
	runCmd.Flags().IntVar(&runToYear, "to", 2037, "transition end year for the summary")
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	config := tables.AggregateConfigSpec{
		Years:   runYears,
		Regions: runRegions,
	}

	result, err := runPipeline(config)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(runOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	csvPath := filepath.Join(runOutDir, "aggregates.csv")
	if err := exportCSV(csvPath, result.Rows); err != nil {
		return err
	}
	jsonPath := filepath.Join(runOutDir, "aggregates.json")
	if err := exportJSON(jsonPath, result); err != nil {
		return err
	}
	logger.Info("aggregate tables exported",
		zap.String("csv", csvPath),
		zap.String("json", jsonPath))

	// The summary transition tracks one region's universe when exactly one
	// region is requested; otherwise it uses the all-regions rollup.
	transitionRows := result.Rows
	transitionRegion := tables.RegionAll
	if len(runRegions) == 1 {
		transitionRegion = runRegions[0]
	} else {
		rollup := config
		rollup.RollupRegions = true
		rollupResult, err := runPipeline(rollup)
		if err != nil {
			return err
		}
		transitionRows = rollupResult.Rows
	}

	var transition *tables.TransitionMetricSpec
	metric, err := internal.TransitionSpeed(transitionRows, transitionRegion, tables.ClassEV, runFromYear, runToYear)
	var notFound *internal.NotFoundError
	switch {
	case err == nil:
		transition = &metric
	case errors.As(err, &notFound):
		logger.Warn("transition years not in aggregated data", zap.Error(err))
	default:
		return err
	}

	for _, line := range internal.Summary(result, transition) {
		fmt.Println(line)
	}
	return nil
}
