package internal

import (
	"fmt"
	"sort"
	"strings"

	"prodmix/tables"
)

// aggregateFilter restricts which long records enter grouping. Filtering
// happens before any totals are formed, so shares come out relative to the
// filtered universe rather than the global one.
type aggregateFilter struct {
	years   map[Year]bool
	regions map[string]bool
}

func newAggregateFilter(config tables.AggregateConfigSpec) (aggregateFilter, error) {
	filter := aggregateFilter{}

	if len(config.Years) > 0 {
		filter.years = make(map[Year]bool, len(config.Years))
		for _, yearValue := range config.Years {
			year, err := NewYear(yearValue)
			if err != nil {
				return aggregateFilter{}, fmt.Errorf("invalid filter year: %w", err)
			}
			filter.years[year] = true
		}
	}

	if len(config.Regions) > 0 {
		filter.regions = make(map[string]bool, len(config.Regions))
		for _, region := range config.Regions {
			trimmed := strings.TrimSpace(region)
			if trimmed == "" {
				return aggregateFilter{}, fmt.Errorf("empty filter region")
			}
			filter.regions[trimmed] = true
		}
	}

	return filter, nil
}

func (f aggregateFilter) Matches(record LongRecord) bool {
	if f.years != nil && !f.years[record.Year] {
		return false
	}
	if f.regions != nil && !f.regions[record.Region.ToString()] {
		return false
	}
	return true
}

type classGroupKey struct {
	year   Year
	region string
	class  PowertrainClass
}

type regionGroupKey struct {
	year   Year
	region string
}

// Aggregate implements tables.Aggregate.
// Filters long records, groups them by (year, region, class) with exact
// decimal sums, and computes each class's market share against its
// (year, region) group's grand total. A group whose grand total is zero
// gets a share of exactly 0 for every class in it.
//
// With RollupRegions set, every record lands in the single RegionAll
// group per year, so shares are relative to the whole filtered universe.
func Aggregate(records []tables.LongRecordSpec, config tables.AggregateConfigSpec) ([]tables.AggregateRowSpec, error) {
	filter, err := newAggregateFilter(config)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	classTotals := make(map[classGroupKey]Decimal)
	grandTotals := make(map[regionGroupKey]Decimal)

	for i, spec := range records {
		record, err := NewLongRecord(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid record at index %d: %w", i, err)
		}
		if !filter.Matches(record) {
			continue
		}

		region := record.Region.ToString()
		if config.RollupRegions {
			region = tables.RegionAll
		}
		classKey := classGroupKey{
			year:   record.Year,
			region: region,
			class:  record.Class,
		}
		classTotals[classKey] = classTotals[classKey].Add(record.Volume)

		regionKey := regionGroupKey{year: record.Year, region: classKey.region}
		grandTotals[regionKey] = grandTotals[regionKey].Add(record.Volume)
	}

	rows := make([]tables.AggregateRowSpec, 0, len(classTotals))
	for key, total := range classTotals {
		grand := grandTotals[regionGroupKey{year: key.year, region: key.region}]
		rows = append(rows, tables.AggregateRowSpec{
			Year:        key.year.ToInt(),
			Region:      key.region,
			Class:       key.class.ToString(),
			TotalVolume: total.String(),
			MarketShare: total.ShareOf(grand),
		})
	}

	sortAggregateRows(rows)
	return rows, nil
}

// sortAggregateRows orders rows by year, region, then class presentation
// order (EV, HEV, ICE, UNCLASSIFIED) so output tables are stable across
// runs.
func sortAggregateRows(rows []tables.AggregateRowSpec) {
	sort.Slice(rows, func(a, b int) bool {
		if rows[a].Year != rows[b].Year {
			return rows[a].Year < rows[b].Year
		}
		if rows[a].Region != rows[b].Region {
			return rows[a].Region < rows[b].Region
		}
		return classRank(rows[a].Class) < classRank(rows[b].Class)
	})
}

func classRank(class string) int {
	parsed, err := NewPowertrainClass(class)
	if err != nil {
		return len(tables.Classes)
	}
	return parsed.Rank()
}
