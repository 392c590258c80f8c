package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"prodmix/tables"
)

// ruleFile is the on-disk YAML shape of a classification rule table.
//
// Example:
//
//	rules:
//	  - class: EV
//	    fuelEquals: [BEV]
//	    categoryContains: ["Battery Electric"]
//	  - class: ICE
//	    fuelEquals: [Gasoline, Diesel, CNG, LPG]
type ruleFile struct {
	Rules []tables.RuleSpec `yaml:"rules"`
}

// LoadRuleConfig reads an ordered rule table from a YAML file, replacing
// the default rule set. The file's rule order is the evaluation order.
// Returns an error when the file is unreadable, not valid YAML, empty, or
// contains a rule the classifier rejects.
func LoadRuleConfig(path string) ([]tables.RuleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule config: %w", err)
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rule config %s: %w", path, err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("rule config %s defines no rules", path)
	}

	// Compile once up front so a bad file fails at load time, not at the
	// first classification.
	if _, err := NewClassifier(file.Rules); err != nil {
		return nil, fmt.Errorf("rule config %s: %w", path, err)
	}

	return file.Rules, nil
}
