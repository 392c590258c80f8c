package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"prodmix/tables"
)

// exportCSV writes the aggregate table as one flat CSV, the shape chart
// tooling ingests directly.
func exportCSV(path string, rows []tables.AggregateRowSpec) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"year", "region", "class", "total_volume", "market_share"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Year),
			row.Region,
			row.Class,
			row.TotalVolume,
			strconv.FormatFloat(row.MarketShare, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// exportJSON writes the full result (report, distribution, rows) for
// dashboard widgets that want the load accounting alongside the table.
func exportJSON(path string, result tables.ResultSpec) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
