package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prodmix/tables"
)

func TestTransitionSpeed(t *testing.T) {
	t.Run("reports share and volume movement between two years", func(t *testing.T) {
		rows := []tables.AggregateRowSpec{
			{Year: 2023, Region: "Europe", Class: tables.ClassEV, TotalVolume: "30", MarketShare: 0.3},
			{Year: 2023, Region: "Europe", Class: tables.ClassICE, TotalVolume: "70", MarketShare: 0.7},
			{Year: 2037, Region: "Europe", Class: tables.ClassEV, TotalVolume: "80", MarketShare: 0.8},
			{Year: 2037, Region: "Europe", Class: tables.ClassICE, TotalVolume: "20", MarketShare: 0.2},
		}

		metric, err := TransitionSpeed(rows, "Europe", tables.ClassEV, 2023, 2037)
		require.NoError(t, err)

		assert.Equal(t, "Europe", metric.Region)
		assert.Equal(t, tables.ClassEV, metric.Class)
		assert.Equal(t, 2023, metric.YearStart)
		assert.Equal(t, 2037, metric.YearEnd)
		assert.Equal(t, 0.3, metric.StartShare)
		assert.Equal(t, 0.8, metric.EndShare)
		assert.InDelta(t, 0.5, metric.DeltaShare, 1e-12)
		assert.Equal(t, "30", metric.StartVolume)
		assert.Equal(t, "80", metric.EndVolume)
		assert.Equal(t, "50", metric.VolumeChange)
	})

	t.Run("negative delta when a class loses share", func(t *testing.T) {
		rows := []tables.AggregateRowSpec{
			{Year: 2023, Region: "Europe", Class: tables.ClassICE, TotalVolume: "70", MarketShare: 0.7},
			{Year: 2037, Region: "Europe", Class: tables.ClassICE, TotalVolume: "20", MarketShare: 0.2},
		}

		metric, err := TransitionSpeed(rows, "Europe", tables.ClassICE, 2023, 2037)
		require.NoError(t, err)
		assert.InDelta(t, -0.5, metric.DeltaShare, 1e-12)
		assert.Equal(t, "-50", metric.VolumeChange)
	})

	t.Run("a sole record keeps full share while volume grows", func(t *testing.T) {
		// One BEV row pushed through the whole chain: the share stays at
		// 1.0 in both years because nothing else exists in the region, so
		// the transition is pure volume growth.
		classified, err := Classify([]tables.RawRecordSpec{{
			Region:   "Europe",
			FuelType: "BEV",
			Volumes:  map[int]string{2023: "100", 2037: "500"},
		}}, nil)
		require.NoError(t, err)

		long, err := Melt(classified)
		require.NoError(t, err)

		rows, err := Aggregate(long, tables.AggregateConfigSpec{})
		require.NoError(t, err)

		metric, err := TransitionSpeed(rows, "Europe", tables.ClassEV, 2023, 2037)
		require.NoError(t, err)

		assert.Equal(t, 1.0, metric.StartShare)
		assert.Equal(t, 1.0, metric.EndShare)
		assert.Equal(t, 0.0, metric.DeltaShare)
		assert.Equal(t, "100", metric.StartVolume)
		assert.Equal(t, "500", metric.EndVolume)
		assert.Equal(t, "400", metric.VolumeChange)
	})
}

func TestTransitionSpeedNotFound(t *testing.T) {
	rows := []tables.AggregateRowSpec{
		{Year: 2023, Region: "Europe", Class: tables.ClassEV, TotalVolume: "30", MarketShare: 1.0},
		{Year: 2037, Region: "Europe", Class: tables.ClassEV, TotalVolume: "80", MarketShare: 1.0},
	}

	t.Run("absent region is an error, not a zero", func(t *testing.T) {
		_, err := TransitionSpeed(rows, "Atlantis", tables.ClassEV, 2023, 2037)

		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Atlantis", notFound.Region)
		assert.Equal(t, 2023, notFound.Year)
	})

	t.Run("absent start year is an error", func(t *testing.T) {
		_, err := TransitionSpeed(rows, "Europe", tables.ClassEV, 2025, 2037)

		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, 2025, notFound.Year)
	})

	t.Run("absent end year is an error", func(t *testing.T) {
		_, err := TransitionSpeed(rows, "Europe", tables.ClassEV, 2023, 2036)

		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, 2036, notFound.Year)
	})

	t.Run("absent class is an error", func(t *testing.T) {
		_, err := TransitionSpeed(rows, "Europe", tables.ClassHEV, 2023, 2037)

		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, tables.ClassHEV, notFound.Class)
	})
}
