package tables

// RegionAll is the synthetic region label carried by rollup aggregate
// rows, where all regions collapse into one group per year.
const RegionAll = "ALL"

// AggregateRowSpec is the total production volume and market share for one
// (year, region, powertrain class) group.
//
// The aggregate row sequence is the sole contract surface the
// visualization/dashboard layer depends on; it must not reach back into raw
// or classified records.
type AggregateRowSpec struct {
	// Calendar year within [2000, 2037].
	Year int `json:"year"`

	Region string `json:"region"`

	// Powertrain class: one of the Class* constants.
	Class string `json:"class"`

	// Summed production volume as a decimal string.
	//
	// Stored as string to preserve the exact decimal sum; the source
	// workbook's declared values pass through aggregation without
	// floating-point drift.
	TotalVolume string `json:"totalVolume"`

	// This class's fraction of total production within the same
	// (year, region) group, in [0, 1].
	//
	// Shares across all classes of a group sum to 1 when the group has any
	// volume. When the group's grand total is zero, every share in the
	// group is exactly 0 — never NaN or infinity.
	MarketShare float64 `json:"marketShare"`
}

// AggregateConfigSpec restricts which long records participate in
// aggregation.
//
// Filters apply to long records before grouping, so market shares are
// always relative to the filtered universe: requesting a single region
// yields shares within that region, not slices of the global shares.
// Nil or empty slices mean "no restriction".
type AggregateConfigSpec struct {
	// Calendar years to include.
	Years []int `json:"years,omitempty"`

	// Regions to include, matched exactly.
	Regions []string `json:"regions,omitempty"`

	// RollupRegions collapses all (filtered) regions into one RegionAll
	// group per year, so shares come out against the whole filtered
	// universe rather than per region. This is where filter-then-group
	// is visible: a region filter changes the rollup's denominators,
	// which discarding rows from a global rollup never would.
	RollupRegions bool `json:"rollupRegions,omitempty"`
}

// TransitionMetricSpec captures how one powertrain class's market share
// moved between two reference years in one region.
//
// Computed on demand from two aggregate rows; it has no persistent
// identity of its own.
type TransitionMetricSpec struct {
	Region string `json:"region"`

	// Powertrain class: one of the Class* constants.
	Class string `json:"class"`

	YearStart int `json:"yearStart"`
	YearEnd   int `json:"yearEnd"`

	// Market share in the start and end year, in [0, 1].
	StartShare float64 `json:"startShare"`
	EndShare   float64 `json:"endShare"`

	// EndShare − StartShare. The "pace of transition": positive when the
	// class is gaining share.
	DeltaShare float64 `json:"deltaShare"`

	// Total volume in the start and end year, as decimal strings.
	StartVolume string `json:"startVolume"`
	EndVolume   string `json:"endVolume"`

	// EndVolume − StartVolume as a decimal string. Can be negative.
	VolumeChange string `json:"volumeChange"`
}

// Aggregate groups long records and computes totals and market shares.
//
// Process:
//  1. Apply the config's year/region filters to the long records
//  2. Group by (year, region, class), summing volumes exactly
//  3. Compute each class's share of its (year, region) group's grand
//     total; a zero grand total makes every share in the group 0
//  4. Sort rows by year, region, then class presentation order
//
// Aggregation never fails on data content; the only errors are malformed
// volume strings from callers that bypassed normalization.
//
// This is the contract-level interface using only primitive types.
// See internal.Aggregate for the reference implementation.
type Aggregate func(records []LongRecordSpec, config AggregateConfigSpec) ([]AggregateRowSpec, error)

// TransitionSpeed computes the market-share delta for one region and class
// between two years of an aggregate row set.
//
// Returns a NotFoundError when either (year, region, class) combination is
// absent from the rows — a region missing from the data, or a year outside
// the loaded range. The caller decides whether absence means zero or is an
// error; this function never silently substitutes zero.
//
// This is the contract-level interface using only primitive types.
// See internal.TransitionSpeed for the reference implementation.
type TransitionSpeed func(rows []AggregateRowSpec, region, class string, yearStart, yearEnd int) (TransitionMetricSpec, error)
