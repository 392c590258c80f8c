package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"prodmix/internal/infra"
	"prodmix/tables"
)

// Stage events published while a pipeline run progresses. The library
// itself never logs; subscribers (the CLI) decide what to do with these.

type TableNormalizedEvent struct {
	RowCount    int
	SkippedRows int
	Years       []int
}

func (TableNormalizedEvent) EventType() infra.EventType { return infra.TableNormalized }

type RecordsClassifiedEvent struct {
	Distribution tables.ClassDistributionSpec
}

func (RecordsClassifiedEvent) EventType() infra.EventType { return infra.RecordsClassified }

type RecordsMeltedEvent struct {
	RecordCount int
}

func (RecordsMeltedEvent) EventType() infra.EventType { return infra.RecordsMelted }

type AggregateComputedEvent struct {
	RowCount int
}

func (AggregateComputedEvent) EventType() infra.EventType { return infra.AggregateComputed }

type ResultReusedEvent struct {
	Digest string
}

func (ResultReusedEvent) EventType() infra.EventType { return infra.ResultReused }

// Pipeline runs normalize → classify → melt → aggregate as one synchronous
// pass and memoizes results by source digest.
//
// Every stage is pure, so a result is fully determined by the source
// table, the rule set and the aggregation config; a long-lived dashboard
// process can re-render from the cache instead of recomputing on every
// interaction. Pipelines are not safe for concurrent use — runs are
// short-lived and sequential by design.
type Pipeline struct {
	rules []tables.RuleSpec
	bus   *infra.Bus
	cache map[string]tables.ResultSpec
}

// NewPipeline validates the rule table up front (empty rules selects the
// default set). bus may be nil when no stage observation is wanted.
func NewPipeline(rules []tables.RuleSpec, bus *infra.Bus) (*Pipeline, error) {
	if _, err := NewClassifier(rules); err != nil {
		return nil, fmt.Errorf("invalid rule table: %w", err)
	}
	return &Pipeline{
		rules: rules,
		bus:   bus,
		cache: make(map[string]tables.ResultSpec),
	}, nil
}

// Run produces the aggregate table for one source table. A repeated call
// with an identical table and config returns the memoized result.
func (p *Pipeline) Run(table tables.SourceTableSpec, config tables.AggregateConfigSpec) (tables.ResultSpec, error) {
	digest := p.digestOf(table, config)
	if cached, ok := p.cache[digest]; ok {
		p.publish(ResultReusedEvent{Digest: digest})
		return copyResult(cached), nil
	}

	records, report, err := Normalize(table)
	if err != nil {
		return tables.ResultSpec{}, err
	}
	p.publish(TableNormalizedEvent{
		RowCount:    report.RowCount,
		SkippedRows: report.SkippedRows,
		Years:       report.YearColumns,
	})

	classified, err := Classify(records, p.rules)
	if err != nil {
		return tables.ResultSpec{}, err
	}
	distribution := Distribution(classified)
	p.publish(RecordsClassifiedEvent{Distribution: distribution})

	long, err := Melt(classified)
	if err != nil {
		return tables.ResultSpec{}, err
	}
	p.publish(RecordsMeltedEvent{RecordCount: len(long)})

	rows, err := Aggregate(long, config)
	if err != nil {
		return tables.ResultSpec{}, err
	}
	p.publish(AggregateComputedEvent{RowCount: len(rows)})

	result := tables.ResultSpec{
		Report:       report,
		Distribution: distribution,
		Rows:         rows,
	}
	p.cache[digest] = copyResult(result)
	return result, nil
}

func (p *Pipeline) publish(event infra.Event) {
	if p.bus != nil {
		p.bus.Publish(event)
	}
}

// digestOf derives a deterministic identity for (table, rules, config).
// Field separators keep adjacent cells from colliding.
func (p *Pipeline) digestOf(table tables.SourceTableSpec, config tables.AggregateConfigSpec) string {
	h := sha256.New()

	writeFields := func(fields ...string) {
		for _, field := range fields {
			h.Write([]byte(field))
			h.Write([]byte{0x1f})
		}
		h.Write([]byte{0x1e})
	}

	writeFields(table.Headers...)
	for _, row := range table.Rows {
		writeFields(row...)
	}

	for _, rule := range p.rules {
		writeFields(rule.Class)
		writeFields(rule.FuelEquals...)
		writeFields(rule.FuelContains...)
		writeFields(rule.CategoryContains...)
	}

	years := append([]int(nil), config.Years...)
	sort.Ints(years)
	for _, year := range years {
		writeFields(fmt.Sprintf("%d", year))
	}

	regions := append([]string(nil), config.Regions...)
	sort.Strings(regions)
	writeFields(regions...)

	writeFields(fmt.Sprintf("%t", config.RollupRegions))

	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:16])
}

// copyResult returns a value-independent copy so cached results stay
// immutable regardless of what callers do with theirs.
func copyResult(result tables.ResultSpec) tables.ResultSpec {
	copied := result
	copied.Report.YearColumns = append([]int(nil), result.Report.YearColumns...)
	copied.Rows = append([]tables.AggregateRowSpec(nil), result.Rows...)
	counts := make(map[string]int, len(result.Distribution.Counts))
	for class, count := range result.Distribution.Counts {
		counts[class] = count
	}
	copied.Distribution = tables.ClassDistributionSpec{Counts: counts}
	return copied
}

// Summary renders the run outcome as display lines for the CLI, mirroring
// the printed report analysts see after a full analysis.
func Summary(result tables.ResultSpec, transition *tables.TransitionMetricSpec) []string {
	lines := []string{
		fmt.Sprintf("rows loaded: %d (skipped: %d)", result.Report.RowCount, result.Report.SkippedRows),
	}
	if len(result.Report.YearColumns) > 0 {
		first := result.Report.YearColumns[0]
		last := result.Report.YearColumns[len(result.Report.YearColumns)-1]
		lines = append(lines, fmt.Sprintf("forecast years: %d-%d (%d columns)", first, last, len(result.Report.YearColumns)))
	}

	parts := make([]string, 0, len(tables.Classes))
	for _, class := range tables.Classes {
		parts = append(parts, fmt.Sprintf("%s=%d", class, result.Distribution.Counts[class]))
	}
	lines = append(lines, "classification: "+strings.Join(parts, " "))

	if transition != nil {
		lines = append(lines,
			fmt.Sprintf("%s share in %s: %.1f%% (%d) -> %.1f%% (%d), change %+.1fpp",
				transition.Class, transition.Region,
				transition.StartShare*100, transition.YearStart,
				transition.EndShare*100, transition.YearEnd,
				transition.DeltaShare*100),
			fmt.Sprintf("volume change: %s -> %s (%s)",
				transition.StartVolume, transition.EndVolume, transition.VolumeChange),
		)
	}
	return lines
}
