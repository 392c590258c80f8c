package internal

import (
	"fmt"

	"prodmix/tables"
)

// TransitionSpeed implements tables.TransitionSpeed.
// Looks up the two aggregate rows for (yearStart, region, class) and
// (yearEnd, region, class) and reports how the class's market share and
// volume moved between them. Either row being absent yields a
// NotFoundError; absence is the caller's decision to interpret, never a
// silent zero.
func TransitionSpeed(rows []tables.AggregateRowSpec, region, class string, yearStart, yearEnd int) (tables.TransitionMetricSpec, error) {
	start, err := findAggregateRow(rows, region, class, yearStart)
	if err != nil {
		return tables.TransitionMetricSpec{}, err
	}

	end, err := findAggregateRow(rows, region, class, yearEnd)
	if err != nil {
		return tables.TransitionMetricSpec{}, err
	}

	startVolume, err := NewDecimal(start.TotalVolume)
	if err != nil {
		return tables.TransitionMetricSpec{}, fmt.Errorf("invalid start volume: %w", err)
	}

	endVolume, err := NewDecimal(end.TotalVolume)
	if err != nil {
		return tables.TransitionMetricSpec{}, fmt.Errorf("invalid end volume: %w", err)
	}

	return tables.TransitionMetricSpec{
		Region:       region,
		Class:        class,
		YearStart:    yearStart,
		YearEnd:      yearEnd,
		StartShare:   start.MarketShare,
		EndShare:     end.MarketShare,
		DeltaShare:   end.MarketShare - start.MarketShare,
		StartVolume:  startVolume.String(),
		EndVolume:    endVolume.String(),
		VolumeChange: endVolume.Sub(startVolume).String(),
	}, nil
}

func findAggregateRow(rows []tables.AggregateRowSpec, region, class string, year int) (tables.AggregateRowSpec, error) {
	for _, row := range rows {
		if row.Year == year && row.Region == region && row.Class == class {
			return row, nil
		}
	}
	return tables.AggregateRowSpec{}, &NotFoundError{Region: region, Class: class, Year: year}
}
