package tables

// SourceTableSpec is the parsed worksheet as a rectangular string table.
//
// It is the format-agnostic handoff between whatever read the spreadsheet
// (xlsx loader, test fixture, future CSV reader) and the schema normalizer.
// No typing has happened yet: every cell is the raw string the reader saw,
// and Headers carries the first row's column labels verbatim.
type SourceTableSpec struct {
	// Column labels exactly as they appear in the source sheet.
	//
	// The normalizer matches these case-insensitively after trimming and
	// collapsing punctuation, so "S: Fuel Type", "Fuel Type" and
	// "fuel_type" all locate the same column.
	Headers []string `json:"headers"`

	// Data rows, one slice of cells per row.
	//
	// Rows shorter than Headers are padded with empty cells during
	// normalization; rows longer than Headers have their extra cells
	// ignored.
	Rows [][]string `json:"rows"`
}

// RawRecordSpec represents one vehicle-production line item from the source
// table after schema normalization.
//
// Raw records are immutable inputs to classification: nothing downstream
// writes back into them. Volumes are decimal strings to preserve the source
// workbook's declared values exactly across aggregation.
type RawRecordSpec struct {
	// Geographic region the production is attributed to. Always non-empty;
	// rows without a region are dropped (and counted) during normalization.
	Region string `json:"region"`

	// Fuel type label from the source data, e.g. "Gasoline", "BEV",
	// "Diesel". May be empty when the source cell was blank.
	FuelType string `json:"fuelType"`

	// Powertrain main category label from the source data, e.g.
	// "Battery Electric Vehicle", "Mild Hybrid". May be empty.
	Category string `json:"category"`

	// Forecast production volume per calendar year.
	//
	// Keys are 4-digit years within [2000, 2037]. Values are non-negative
	// decimal strings; years the normalizer saw as blank or non-numeric
	// are present with value "0" so downstream grouping stays complete.
	Volumes map[int]string `json:"volumes"`
}

// LoadReportSpec summarizes what normalization kept and what it dropped.
//
// Row-level problems never abort a load; they are absorbed here so silent
// data loss stays observable to the caller.
type LoadReportSpec struct {
	// Number of raw records produced.
	RowCount int `json:"rowCount"`

	// Number of source rows dropped for lacking a region value.
	SkippedRows int `json:"skippedRows"`

	// Years for which a volume column was recognized, ascending.
	YearColumns []int `json:"yearColumns"`
}

// Normalize parses a source table into typed raw records.
//
// Process:
//  1. Locate the region, fuel-type and category columns by tolerant header
//     matching
//  2. Locate year columns: headers matching "CY <year>" or a bare 4-digit
//     year within [2000, 2037]
//  3. Coerce volume cells to decimals, treating blank or non-numeric cells
//     as zero volume (not an error)
//  4. Drop rows without a region, counting them in the report
//
// Returns a SchemaError when the region column or all year columns are
// missing, or when neither a fuel-type nor a category column exists —
// structural mismatches that no row-level recovery can fix.
//
// This is the contract-level interface using only primitive types.
// See internal.Normalize for the reference implementation.
type Normalize func(table SourceTableSpec) ([]RawRecordSpec, LoadReportSpec, error)
