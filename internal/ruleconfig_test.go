package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prodmix/tables"
)

func writeRuleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRuleConfig(t *testing.T) {
	t.Run("loads an ordered rule table", func(t *testing.T) {
		path := writeRuleFile(t, `
rules:
  - class: EV
    fuelEquals: [BEV]
    categoryContains: ["Battery Electric"]
  - class: HEV
    categoryContains: [Hybrid, PHEV]
  - class: ICE
    fuelEquals: [Gasoline, Diesel, CNG, LPG]
`)

		rules, err := LoadRuleConfig(path)
		require.NoError(t, err)

		require.Len(t, rules, 3)
		assert.Equal(t, tables.ClassEV, rules[0].Class)
		assert.Equal(t, []string{"BEV"}, rules[0].FuelEquals)
		assert.Equal(t, []string{"Battery Electric"}, rules[0].CategoryContains)
		assert.Equal(t, tables.ClassHEV, rules[1].Class)
		assert.Equal(t, tables.ClassICE, rules[2].Class)
	})

	t.Run("loaded rules drive classification", func(t *testing.T) {
		path := writeRuleFile(t, `
rules:
  - class: EV
    fuelEquals: [Hydrogen]
`)

		rules, err := LoadRuleConfig(path)
		require.NoError(t, err)

		classified, err := Classify([]tables.RawRecordSpec{
			newTestRawRecord(withFuelType("Hydrogen")),
			newTestRawRecord(withFuelType("BEV")),
		}, rules)
		require.NoError(t, err)

		assert.Equal(t, tables.ClassEV, classified[0].Class)
		assert.Equal(t, tables.ClassUnclassified, classified[1].Class)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadRuleConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read rule config")
	})

	t.Run("invalid YAML is an error", func(t *testing.T) {
		path := writeRuleFile(t, "rules: [not: {closed")

		_, err := LoadRuleConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse rule config")
	})

	t.Run("empty rule table is an error", func(t *testing.T) {
		path := writeRuleFile(t, "rules: []\n")

		_, err := LoadRuleConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "defines no rules")
	})

	t.Run("rules fail at load time, not first use", func(t *testing.T) {
		path := writeRuleFile(t, `
rules:
  - class: FUSION
    fuelEquals: [Plasma]
`)

		_, err := LoadRuleConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown powertrain class")
	})
}
