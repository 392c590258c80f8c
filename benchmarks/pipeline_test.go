package benchmarks

import (
	"encoding/json"
	"fmt"
	"testing"

	"prodmix/internal"
	"prodmix/tables"
)

var benchmarkRegions = []string{
	"Europe", "North America", "South America", "Greater China", "Japan/Korea",
	"South Asia", "Middle East/Africa",
}

var benchmarkFuels = []struct {
	fuelType string
	category string
}{
	{"BEV", "Battery Electric Vehicle"},
	{"Gasoline", "Full Hybrid"},
	{"Gasoline", "Mild Hybrid"},
	{"Gasoline", ""},
	{"Diesel", ""},
	{"CNG", ""},
	{"Hydrogen Fuel Cell", "Fuel Cell"},
}

// newBenchmarkTable builds a synthetic forecast table with the given number
// of data rows and one volume column per year of the full forecast range.
func newBenchmarkTable(rows int) tables.SourceTableSpec {
	headers := []string{"S: Region", "S: Fuel Type", "S: Powertrain Main Category"}
	for year := 2023; year <= 2037; year++ {
		headers = append(headers, fmt.Sprintf("CY %d", year))
	}

	table := tables.SourceTableSpec{Headers: headers}
	for i := 0; i < rows; i++ {
		fuel := benchmarkFuels[i%len(benchmarkFuels)]
		row := []string{benchmarkRegions[i%len(benchmarkRegions)], fuel.fuelType, fuel.category}
		for year := 2023; year <= 2037; year++ {
			row = append(row, fmt.Sprintf("%d.%d", (i+1)*(year-2020), i%10))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func classifiedBenchmarkRecords(b *testing.B, rows int) []tables.ClassifiedRecordSpec {
	b.Helper()
	records, _, err := internal.Normalize(newBenchmarkTable(rows))
	if err != nil {
		b.Fatal(err)
	}
	classified, err := internal.Classify(records, nil)
	if err != nil {
		b.Fatal(err)
	}
	return classified
}

func longBenchmarkRecords(b *testing.B, rows int) []tables.LongRecordSpec {
	b.Helper()
	long, err := internal.Melt(classifiedBenchmarkRecords(b, rows))
	if err != nil {
		b.Fatal(err)
	}
	return long
}

// Benchmark Normalize over a realistic workbook-sized table
func BenchmarkNormalize_500Rows(b *testing.B) {
	table := newBenchmarkTable(500)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := internal.Normalize(table); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark Classify with the default rule table
func BenchmarkClassify_500Rows(b *testing.B) {
	records, _, err := internal.Normalize(newBenchmarkTable(500))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := internal.Classify(records, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark Melt exploding 15 year columns per record
func BenchmarkMelt_500Rows(b *testing.B) {
	classified := classifiedBenchmarkRecords(b, 500)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := internal.Melt(classified); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark Aggregate with exact decimal group sums
func BenchmarkAggregate_7500LongRecords(b *testing.B) {
	long := longBenchmarkRecords(b, 500)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := internal.Aggregate(long, tables.AggregateConfigSpec{}); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark Aggregate with a region filter applied before grouping
func BenchmarkAggregate_Filtered(b *testing.B) {
	long := longBenchmarkRecords(b, 500)
	config := tables.AggregateConfigSpec{
		Regions: []string{"Europe"},
		Years:   []int{2023, 2030, 2037},
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := internal.Aggregate(long, config); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark a cold full pipeline run
func BenchmarkPipeline_ColdRun(b *testing.B) {
	table := newBenchmarkTable(500)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		pipeline, err := internal.NewPipeline(nil, nil)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := pipeline.Run(table, tables.AggregateConfigSpec{}); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark a memoized rerun, dominated by the digest computation
func BenchmarkPipeline_CachedRun(b *testing.B) {
	table := newBenchmarkTable(500)
	pipeline, err := internal.NewPipeline(nil, nil)
	if err != nil {
		b.Fatal(err)
	}
	if _, err := pipeline.Run(table, tables.AggregateConfigSpec{}); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := pipeline.Run(table, tables.AggregateConfigSpec{}); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark JSON serialization of the exported aggregate table
func BenchmarkAggregateRows_JSONMarshal(b *testing.B) {
	long := longBenchmarkRecords(b, 500)
	rows, err := internal.Aggregate(long, tables.AggregateConfigSpec{})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := json.Marshal(rows); err != nil {
			b.Fatal(err)
		}
	}
}
