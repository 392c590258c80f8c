package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"prodmix/internal"
	"prodmix/internal/infra"
	"prodmix/tables"
)

var (
	inputPath string
	sheetName string
	rulesPath string
	verbose   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "prodmix",
	Short: "Powertrain production mix analysis",
	Long: `Loads a multi-year light-vehicle production forecast workbook,
classifies every row into EV/HEV/ICE, and aggregates production volumes
and market shares per year, region and powertrain class.

The aggregate tables are written as CSV/JSON for the dashboard layer;
transition metrics compare a class's share between two reference years.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "forecast workbook (.xlsx)")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "worksheet name (default: first sheet)")
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "classification rule table (YAML, default: built-in rules)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	_ = rootCmd.MarkPersistentFlagRequired("input")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(transitionCmd)
	rootCmd.AddCommand(regionsCmd)
}

// newStageBus wires pipeline stage events to the logger. The library stays
// silent; all operator-facing logging happens here.
func newStageBus() *infra.Bus {
	bus := infra.NewBus()
	bus.Subscribe(infra.TableNormalized, func(e infra.Event) {
		ev := e.(internal.TableNormalizedEvent)
		logger.Info("table normalized",
			zap.Int("rows", ev.RowCount),
			zap.Int("skipped", ev.SkippedRows),
			zap.Int("yearColumns", len(ev.Years)))
		if ev.SkippedRows > 0 {
			logger.Warn("rows without region skipped", zap.Int("skipped", ev.SkippedRows))
		}
	})
	bus.Subscribe(infra.RecordsClassified, func(e infra.Event) {
		ev := e.(internal.RecordsClassifiedEvent)
		fields := make([]zap.Field, 0, len(ev.Distribution.Counts))
		for _, class := range tables.Classes {
			fields = append(fields, zap.Int(class, ev.Distribution.Counts[class]))
		}
		logger.Info("records classified", fields...)
	})
	bus.Subscribe(infra.RecordsMelted, func(e infra.Event) {
		ev := e.(internal.RecordsMeltedEvent)
		logger.Info("records melted", zap.Int("longRecords", ev.RecordCount))
	})
	bus.Subscribe(infra.AggregateComputed, func(e infra.Event) {
		ev := e.(internal.AggregateComputedEvent)
		logger.Info("aggregate computed", zap.Int("rows", ev.RowCount))
	})
	bus.Subscribe(infra.ResultReused, func(e infra.Event) {
		ev := e.(internal.ResultReusedEvent)
		logger.Debug("cached result reused", zap.String("digest", ev.Digest))
	})
	return bus
}

// runPipeline loads the workbook and rule table and produces the aggregate
// result for the given filters.
func runPipeline(config tables.AggregateConfigSpec) (tables.ResultSpec, error) {
	table, err := internal.LoadWorkbook(inputPath, sheetName)
	if err != nil {
		return tables.ResultSpec{}, err
	}
	logger.Info("workbook loaded",
		zap.String("path", inputPath),
		zap.Int("rows", len(table.Rows)),
		zap.Int("columns", len(table.Headers)))

	var rules []tables.RuleSpec
	if rulesPath != "" {
		rules, err = internal.LoadRuleConfig(rulesPath)
		if err != nil {
			return tables.ResultSpec{}, err
		}
		logger.Info("rule table loaded", zap.String("path", rulesPath), zap.Int("rules", len(rules)))
	}

	pipeline, err := internal.NewPipeline(rules, newStageBus())
	if err != nil {
		return tables.ResultSpec{}, err
	}
	return pipeline.Run(table, config)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
