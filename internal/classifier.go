package internal

import (
	"fmt"
	"strings"

	"prodmix/tables"
)

// DefaultRuleSet returns the standard ordered classification rule table.
//
// EV and HEV signals are more specific than the broad combustion-fuel
// match and come first, so a hybrid with a mislabeled fuel type is never
// counted as pure ICE. The combustion fuel set is a closed list confirmed
// against the source data; extend it through a rule config file rather
// than here.
func DefaultRuleSet() []tables.RuleSpec {
	return []tables.RuleSpec{
		{
			Class:            tables.ClassEV,
			FuelEquals:       []string{"BEV"},
			FuelContains:     []string{"Electric"},
			CategoryContains: []string{"Battery Electric"},
		},
		{
			Class:            tables.ClassHEV,
			FuelContains:     []string{"PHEV", "HEV"},
			CategoryContains: []string{"Hybrid", "PHEV", "Mild Hybrid"},
		},
		{
			Class: tables.ClassICE,
			FuelEquals: []string{
				"Gasoline", "Petrol", "Diesel", "CNG", "LPG", "LNG",
				"Ethanol", "E85", "Flex Fuel", "Biodiesel",
			},
		},
	}
}

// classificationRule is one compiled rule table entry. All matching is
// case-insensitive; equality matches on the whole trimmed label, contains
// matches anywhere within it.
type classificationRule struct {
	class            PowertrainClass
	fuelEquals       map[string]bool
	fuelContains     []string
	categoryContains []string
}

func newClassificationRule(spec tables.RuleSpec) (classificationRule, error) {
	class, err := NewPowertrainClass(spec.Class)
	if err != nil {
		return classificationRule{}, fmt.Errorf("invalid class: %w", err)
	}

	if len(spec.FuelEquals)+len(spec.FuelContains)+len(spec.CategoryContains) == 0 {
		return classificationRule{}, fmt.Errorf("rule for class %s has no predicates", spec.Class)
	}

	fuelEquals := make(map[string]bool, len(spec.FuelEquals))
	for _, fuel := range spec.FuelEquals {
		fuelEquals[foldLabel(fuel)] = true
	}

	return classificationRule{
		class:            class,
		fuelEquals:       fuelEquals,
		fuelContains:     foldLabels(spec.FuelContains),
		categoryContains: foldLabels(spec.CategoryContains),
	}, nil
}

// Matches reports whether any of the rule's predicates matches the
// record's fuel type or category label.
func (r classificationRule) Matches(fuelType, category string) bool {
	fuel := foldLabel(fuelType)
	if fuel != "" && r.fuelEquals[fuel] {
		return true
	}
	for _, needle := range r.fuelContains {
		if fuel != "" && strings.Contains(fuel, needle) {
			return true
		}
	}
	cat := foldLabel(category)
	for _, needle := range r.categoryContains {
		if cat != "" && strings.Contains(cat, needle) {
			return true
		}
	}
	return false
}

// Classifier evaluates an ordered rule table, first match wins.
type Classifier struct {
	rules []classificationRule
}

// NewClassifier compiles a rule table. Empty specs selects DefaultRuleSet.
// Rule problems are rejected here, before any record is examined;
// classification itself never fails.
func NewClassifier(specs []tables.RuleSpec) (Classifier, error) {
	if len(specs) == 0 {
		specs = DefaultRuleSet()
	}

	rules := make([]classificationRule, 0, len(specs))
	for i, spec := range specs {
		rule, err := newClassificationRule(spec)
		if err != nil {
			return Classifier{}, fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return Classifier{rules: rules}, nil
}

// ClassOf assigns a class to one (fuelType, category) pair. Total: records
// matching no rule get UNCLASSIFIED. Pure in its inputs, so identical
// labels always classify identically.
func (c Classifier) ClassOf(fuelType, category string) PowertrainClass {
	for _, rule := range c.rules {
		if rule.Matches(fuelType, category) {
			return rule.class
		}
	}
	return ClassUnclassified
}

// Classify implements tables.Classify.
// Converts specs to domain objects, assigns classes, and converts back.
func Classify(records []tables.RawRecordSpec, rules []tables.RuleSpec) ([]tables.ClassifiedRecordSpec, error) {
	classifier, err := NewClassifier(rules)
	if err != nil {
		return nil, fmt.Errorf("invalid rule table: %w", err)
	}

	classified := make([]tables.ClassifiedRecordSpec, 0, len(records))
	for i, spec := range records {
		record, err := NewRawRecord(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid record at index %d: %w", i, err)
		}

		result := ClassifiedRecord{
			Region:   record.Region,
			FuelType: record.FuelType,
			Category: record.Category,
			Class:    classifier.ClassOf(record.FuelType, record.Category),
			Volumes:  record.Volumes,
		}
		classified = append(classified, result.ToSpec())
	}
	return classified, nil
}

func foldLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

func foldLabels(labels []string) []string {
	folded := make([]string, 0, len(labels))
	for _, label := range labels {
		folded = append(folded, foldLabel(label))
	}
	return folded
}
