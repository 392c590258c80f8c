package internal

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"prodmix/tables"
)

// Header aliases for the identifying columns. The source workbook prefixes
// its labels ("S: Region"); matching happens on folded headers so bare and
// prefixed forms both resolve.
var (
	regionHeaders   = []string{"s region", "region"}
	fuelHeaders     = []string{"s fuel type", "fuel type"}
	categoryHeaders = []string{"s powertrain main category", "powertrain main category", "powertrain category"}
)

// Year columns are labeled "CY 2023" in the source workbook; bare 4-digit
// years are accepted too.
var yearHeaderPattern = regexp.MustCompile(`^(?:cy\s*)?(\d{4})$`)

// Normalize implements tables.Normalize.
// Locates the identifying and year columns, coerces cells, and drops
// (counting) rows without a region.
func Normalize(table tables.SourceTableSpec) ([]tables.RawRecordSpec, tables.LoadReportSpec, error) {
	layout, err := locateColumns(table.Headers)
	if err != nil {
		return nil, tables.LoadReportSpec{}, err
	}

	records := make([]tables.RawRecordSpec, 0, len(table.Rows))
	skipped := 0

	for _, row := range table.Rows {
		region := strings.TrimSpace(cellAt(row, layout.region))
		if region == "" {
			skipped++
			continue
		}

		volumes := make(map[int]string, len(layout.years))
		for _, yc := range layout.years {
			volume := NewDecimalFromCell(cellAt(row, yc.index))
			if volume.IsNegative() {
				// A negative forecast volume is a malformed cell,
				// coerced to zero like any other unparseable value.
				volume = Decimal{}
			}
			volumes[yc.year] = volume.String()
		}

		record, err := NewRawRecord(tables.RawRecordSpec{
			Region:   region,
			FuelType: cellAt(row, layout.fuelType),
			Category: cellAt(row, layout.category),
			Volumes:  volumes,
		})
		if err != nil {
			// Coercion above makes this unreachable for real tables, but a
			// malformed row is never fatal either way.
			skipped++
			continue
		}

		records = append(records, record.ToSpec())
	}

	report := tables.LoadReportSpec{
		RowCount:    len(records),
		SkippedRows: skipped,
		YearColumns: layout.yearList(),
	}
	return records, report, nil
}

type yearColumn struct {
	year  int
	index int
}

type tableLayout struct {
	region   int
	fuelType int
	category int
	years    []yearColumn
}

func (l tableLayout) yearList() []int {
	years := make([]int, 0, len(l.years))
	for _, yc := range l.years {
		years = append(years, yc.year)
	}
	return years
}

func locateColumns(headers []string) (tableLayout, error) {
	layout := tableLayout{region: -1, fuelType: -1, category: -1}

	for i, header := range headers {
		folded := foldHeader(header)

		switch {
		case layout.region < 0 && matchesAny(folded, regionHeaders):
			layout.region = i
		case layout.fuelType < 0 && matchesAny(folded, fuelHeaders):
			layout.fuelType = i
		case layout.category < 0 && matchesAny(folded, categoryHeaders):
			layout.category = i
		default:
			if year, ok := parseYearHeader(folded); ok {
				layout.years = append(layout.years, yearColumn{year: year, index: i})
			}
		}
	}

	if layout.region < 0 {
		return tableLayout{}, &SchemaError{Missing: "region column"}
	}
	if len(layout.years) == 0 {
		return tableLayout{}, &SchemaError{Missing: "year columns"}
	}
	if layout.fuelType < 0 && layout.category < 0 {
		return tableLayout{}, &SchemaError{Missing: "fuel type and powertrain category columns"}
	}

	sort.Slice(layout.years, func(a, b int) bool {
		return layout.years[a].year < layout.years[b].year
	})
	return layout, nil
}

// foldHeader lowercases a header and collapses punctuation to single
// spaces, so "S: Fuel Type", "fuel_type" and "Fuel Type" fold identically.
func foldHeader(header string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(strings.TrimSpace(header)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

func matchesAny(folded string, candidates []string) bool {
	for _, candidate := range candidates {
		if folded == candidate {
			return true
		}
	}
	return false
}

func parseYearHeader(folded string) (int, bool) {
	match := yearHeaderPattern.FindStringSubmatch(folded)
	if match == nil {
		return 0, false
	}
	year, err := strconv.Atoi(match[1])
	if err != nil || year < MinYear || year > MaxYear {
		return 0, false
	}
	return year, true
}

// cellAt returns the cell at index, or "" when the row is short or the
// column was not located.
func cellAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}
