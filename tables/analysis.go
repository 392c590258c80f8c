package tables

// RegionShareSpec is one region's market share and volume for a single
// powertrain class and year, used for ranking regions against each other.
type RegionShareSpec struct {
	Region string `json:"region"`

	// The class's share of the region's total production in the target
	// year, in [0, 1].
	Share float64 `json:"share"`

	// The class's production volume in the target year, as a decimal
	// string.
	Volume string `json:"volume"`
}

// ResultSpec is the complete output of one pipeline run.
//
// Everything the presentation layer needs in one value: the aggregate
// table, the load report (so skipped rows stay visible) and the
// classification distribution. Results are immutable by convention and
// safe to cache per loaded table.
type ResultSpec struct {
	// Load accounting from normalization.
	Report LoadReportSpec `json:"report"`

	// Classified record counts per powertrain class.
	Distribution ClassDistributionSpec `json:"distribution"`

	// The aggregate table, sorted by year, region, class.
	Rows []AggregateRowSpec `json:"rows"`
}
