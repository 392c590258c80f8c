package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prodmix/tables"
)

func TestDistribution(t *testing.T) {
	t.Run("counts records per class", func(t *testing.T) {
		distribution := Distribution([]tables.ClassifiedRecordSpec{
			newTestClassifiedRecord(),
			newTestClassifiedRecord(),
			newTestClassifiedRecord(withClass(tables.ClassICE)),
			newTestClassifiedRecord(withClass(tables.ClassUnclassified)),
		})

		assert.Equal(t, 2, distribution.Counts[tables.ClassEV])
		assert.Equal(t, 0, distribution.Counts[tables.ClassHEV])
		assert.Equal(t, 1, distribution.Counts[tables.ClassICE])
		assert.Equal(t, 1, distribution.Counts[tables.ClassUnclassified])
	})

	t.Run("every class is present even with no records", func(t *testing.T) {
		distribution := Distribution(nil)

		require.Len(t, distribution.Counts, len(tables.Classes))
		for _, class := range tables.Classes {
			count, ok := distribution.Counts[class]
			assert.True(t, ok, "class %s", class)
			assert.Zero(t, count)
		}
	})
}

func TestTopRegionsByShare(t *testing.T) {
	rows := []tables.AggregateRowSpec{
		{Year: 2030, Region: "Europe", Class: tables.ClassEV, TotalVolume: "40", MarketShare: 0.4},
		{Year: 2030, Region: "Asia", Class: tables.ClassEV, TotalVolume: "550", MarketShare: 0.55},
		{Year: 2030, Region: "North America", Class: tables.ClassEV, TotalVolume: "90", MarketShare: 0.3},
		{Year: 2030, Region: "South America", Class: tables.ClassEV, TotalVolume: "12", MarketShare: 0.3},
		{Year: 2030, Region: "Europe", Class: tables.ClassICE, TotalVolume: "60", MarketShare: 0.6},
		{Year: 2037, Region: "Europe", Class: tables.ClassEV, TotalVolume: "80", MarketShare: 0.8},
	}

	t.Run("ranks regions by share, highest first", func(t *testing.T) {
		ranked, err := TopRegionsByShare(rows, tables.ClassEV, 2030, 0)
		require.NoError(t, err)

		require.Len(t, ranked, 4)
		assert.Equal(t, "Asia", ranked[0].Region)
		assert.Equal(t, 0.55, ranked[0].Share)
		assert.Equal(t, "550", ranked[0].Volume)
		assert.Equal(t, "Europe", ranked[1].Region)
	})

	t.Run("ties break on region name", func(t *testing.T) {
		ranked, err := TopRegionsByShare(rows, tables.ClassEV, 2030, 0)
		require.NoError(t, err)

		assert.Equal(t, "North America", ranked[2].Region)
		assert.Equal(t, "South America", ranked[3].Region)
	})

	t.Run("n limits the result", func(t *testing.T) {
		ranked, err := TopRegionsByShare(rows, tables.ClassEV, 2030, 2)
		require.NoError(t, err)

		require.Len(t, ranked, 2)
		assert.Equal(t, "Asia", ranked[0].Region)
		assert.Equal(t, "Europe", ranked[1].Region)
	})

	t.Run("only the requested class and year participate", func(t *testing.T) {
		ranked, err := TopRegionsByShare(rows, tables.ClassICE, 2030, 0)
		require.NoError(t, err)

		require.Len(t, ranked, 1)
		assert.Equal(t, "Europe", ranked[0].Region)
		assert.Equal(t, 0.6, ranked[0].Share)
	})

	t.Run("year with no rows for the class is a lookup failure", func(t *testing.T) {
		_, err := TopRegionsByShare(rows, tables.ClassHEV, 2030, 5)

		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, tables.ClassHEV, notFound.Class)
		assert.Equal(t, 2030, notFound.Year)
	})

	t.Run("rejects invalid class and year arguments", func(t *testing.T) {
		_, err := TopRegionsByShare(rows, "WARP", 2030, 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid class")

		_, err = TopRegionsByShare(rows, tables.ClassEV, 1990, 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid year")
	})
}
