package internal

import (
	"fmt"
	"sort"

	"prodmix/tables"
)

// Distribution counts classified records per powertrain class. Every class
// appears in the result, zero or not, so downstream views need no
// missing-key handling.
func Distribution(records []tables.ClassifiedRecordSpec) tables.ClassDistributionSpec {
	counts := make(map[string]int, len(tables.Classes))
	for _, class := range tables.Classes {
		counts[class] = 0
	}
	for _, record := range records {
		counts[record.Class]++
	}
	return tables.ClassDistributionSpec{Counts: counts}
}

// TopRegionsByShare ranks regions by one class's market share in a target
// year, highest first, ties broken by region name. n restricts the result
// length; n <= 0 returns all ranked regions. Returns a NotFoundError when
// no region has a row for (year, class) at all — for example a year
// outside the aggregated range.
func TopRegionsByShare(rows []tables.AggregateRowSpec, class string, year, n int) ([]tables.RegionShareSpec, error) {
	if _, err := NewPowertrainClass(class); err != nil {
		return nil, fmt.Errorf("invalid class: %w", err)
	}
	if _, err := NewYear(year); err != nil {
		return nil, fmt.Errorf("invalid year: %w", err)
	}

	ranked := make([]tables.RegionShareSpec, 0)
	for _, row := range rows {
		if row.Year != year || row.Class != class {
			continue
		}
		ranked = append(ranked, tables.RegionShareSpec{
			Region: row.Region,
			Share:  row.MarketShare,
			Volume: row.TotalVolume,
		})
	}

	if len(ranked) == 0 {
		return nil, &NotFoundError{Region: "any", Class: class, Year: year}
	}

	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].Share != ranked[b].Share {
			return ranked[a].Share > ranked[b].Share
		}
		return ranked[a].Region < ranked[b].Region
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}
