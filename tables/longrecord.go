package tables

// LongRecordSpec is one (region, class, year, volume) observation in long
// form.
//
// Long records are produced by exploding each classified record's per-year
// volume map: one long record per (record, year). Zero-volume years are
// emitted too — omitting them would silently bias market-share denominators
// once groups are formed downstream.
type LongRecordSpec struct {
	Region string `json:"region"`

	// Powertrain class: one of the Class* constants.
	Class string `json:"class"`

	// Calendar year within [2000, 2037].
	Year int `json:"year"`

	// Production volume as a non-negative decimal string.
	Volume string `json:"volume"`
}

// Melt reshapes classified records from wide to long form.
//
// Process:
//  1. For each classified record, emit one LongRecordSpec per year in its
//     volume map, carrying region, class, year and volume
//  2. No aggregation, no filtering: a pure cardinality expansion
//
// Melt is volume-conserving: for any (region, year), the sum of emitted
// volumes equals the sum of the corresponding source record volumes.
//
// This is the contract-level interface using only primitive types.
// See internal.Melt for the reference implementation.
type Melt func(records []ClassifiedRecordSpec) ([]LongRecordSpec, error)
