package tables

// Powertrain class labels assigned by classification.
//
// Every classified record carries exactly one of these. UNCLASSIFIED marks
// rows that matched no rule; they stay in the data so market-share
// denominators remain complete.
const (
	ClassEV           = "EV"
	ClassHEV          = "HEV"
	ClassICE          = "ICE"
	ClassUnclassified = "UNCLASSIFIED"
)

// Classes lists all powertrain class labels in presentation order.
var Classes = []string{ClassEV, ClassHEV, ClassICE, ClassUnclassified}

// ClassifiedRecordSpec is a raw record plus its assigned powertrain class.
//
// Classification is a pure function of FuelType and Category: identical
// inputs always yield the identical class, regardless of surrounding rows.
type ClassifiedRecordSpec struct {
	Region   string `json:"region"`
	FuelType string `json:"fuelType"`
	Category string `json:"category"`

	// Assigned powertrain class: one of the Class* constants.
	Class string `json:"class"`

	// Forecast production volume per calendar year, carried through
	// unchanged from the raw record.
	Volumes map[int]string `json:"volumes"`
}

// RuleSpec is one entry in the ordered classification rule table.
//
// A rule matches when any of its predicates matches; all matching is
// case-insensitive after trimming. Rules are evaluated in slice order and
// the first match wins, so more specific signals (battery-electric,
// hybrid) must precede the broad combustion-fuel match. A record matching
// no rule is assigned UNCLASSIFIED.
//
// The rule table is data rather than control flow: new fuel synonyms or
// powertrain categories are added as entries, not branches, and each rule
// can be exercised in isolation.
type RuleSpec struct {
	// Class to assign when this rule matches. Must be one of the Class*
	// constants.
	Class string `json:"class" yaml:"class"`

	// Fuel-type labels that match by exact (case-insensitive) equality,
	// e.g. the closed combustion-fuel set for ICE.
	FuelEquals []string `json:"fuelEquals,omitempty" yaml:"fuelEquals,omitempty"`

	// Substrings that match anywhere in the fuel-type label.
	FuelContains []string `json:"fuelContains,omitempty" yaml:"fuelContains,omitempty"`

	// Substrings that match anywhere in the powertrain category label.
	CategoryContains []string `json:"categoryContains,omitempty" yaml:"categoryContains,omitempty"`
}

// ClassDistributionSpec counts classified records per powertrain class.
//
// Record counts, not volumes: this is the classification sanity check the
// analyst sees before any aggregation.
type ClassDistributionSpec struct {
	Counts map[string]int `json:"counts"`
}

// Classify assigns exactly one powertrain class to every raw record.
//
// Process:
//  1. Compile the rule table (empty rules selects the default rule set)
//  2. For each record, evaluate rules in order against (FuelType, Category)
//  3. Assign the first matching rule's class, or UNCLASSIFIED
//
// Classification is total over records: it never fails on data content.
// The only error is an invalid rule table (unknown class, rule with no
// predicates), rejected before any record is examined.
//
// This is the contract-level interface using only primitive types.
// See internal.Classify for the reference implementation.
type Classify func(records []RawRecordSpec, rules []RuleSpec) ([]ClassifiedRecordSpec, error)
