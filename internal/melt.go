package internal

import (
	"fmt"
	"sort"

	"prodmix/tables"
)

// Melt implements tables.Melt.
// Explodes each classified record's year-volume map into one long record
// per (record, year). Zero-volume years are emitted too, keeping every
// (year, region, class) group complete for aggregation. No filtering, no
// summing: the total volume per (region, year) is conserved exactly.
func Melt(records []tables.ClassifiedRecordSpec) ([]tables.LongRecordSpec, error) {
	long := make([]tables.LongRecordSpec, 0, len(records))

	for i, spec := range records {
		record, err := NewClassifiedRecord(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid record at index %d: %w", i, err)
		}

		years := make([]Year, 0, len(record.Volumes))
		for year := range record.Volumes {
			years = append(years, year)
		}
		sort.Slice(years, func(a, b int) bool { return years[a] < years[b] })

		for _, year := range years {
			entry := LongRecord{
				Region: record.Region,
				Class:  record.Class,
				Year:   year,
				Volume: record.Volumes[year],
			}
			long = append(long, entry.ToSpec())
		}
	}

	return long, nil
}
