package pipeline

import (
	"testing"

	"github.com/strewnlab/meteorscope/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []model.Record {
	return []model.Record{
		{Name: "Aachen", Year: 1880, MassKg: 0.021, FallStatus: "Fell", NameType: "Valid", Classification: "L5"},
		{Name: "Hoba", Year: 1920, MassKg: 60000, FallStatus: "Found", NameType: "Valid", Classification: "Iron, IVB"},
		{Name: "Zag", Year: 1998, MassKg: 1750, FallStatus: "Fell", NameType: "Valid", Classification: "H3-6"},
		{Name: "Dronino", Year: 2000, MassKg: 40, FallStatus: "Found", NameType: "Valid", Classification: "Iron, ungrouped"},
		{Name: "Itqiy", Year: 1990, MassKg: 4.31, FallStatus: "Fell", NameType: "Valid", Classification: "EH7-an"},
		{Name: "Gheturia", Year: 1990, MassKg: 0.83, FallStatus: "Fell", NameType: "Relict", Classification: "L5"},
	}
}

func TestSummarize(t *testing.T) {
	stats, err := Summarize(sampleRecords())
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalRecords)
	assert.Equal(t, 1880, stats.MinYear)
	assert.Equal(t, 2000, stats.MaxYear)
	assert.Equal(t, 60000.0, stats.MaxMassKg)
	assert.Equal(t, "Hoba", stats.HeaviestName)
	assert.Equal(t, 4, stats.FellCount)
	assert.Equal(t, 2, stats.FoundCount)
	assert.Equal(t, 5, stats.ValidCount)
	assert.Equal(t, 1, stats.RelictCount)
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(nil)
	var empty *model.EmptyResultError
	require.ErrorAs(t, err, &empty)
}

func TestTopHeaviest(t *testing.T) {
	records := sampleRecords()

	top := TopHeaviest(records, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "Hoba", top[0].Name)
	assert.Equal(t, "Zag", top[1].Name)
	assert.Equal(t, "Dronino", top[2].Name)

	// Descending by mass throughout.
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].MassKg, top[i].MassKg)
	}

	// N larger than the table clamps, never panics.
	assert.Len(t, TopHeaviest(records, 100), len(records))
	assert.Empty(t, TopHeaviest(records, 0))

	// Input order untouched.
	assert.Equal(t, "Aachen", records[0].Name)
}

func TestTopHeaviest_StableTies(t *testing.T) {
	records := []model.Record{
		{Name: "First", MassKg: 5},
		{Name: "Second", MassKg: 5},
		{Name: "Third", MassKg: 5},
	}
	top := TopHeaviest(records, 3)
	assert.Equal(t, "First", top[0].Name)
	assert.Equal(t, "Second", top[1].Name)
	assert.Equal(t, "Third", top[2].Name)
}

func TestYearlyCounts(t *testing.T) {
	counts := YearlyCounts(sampleRecords())

	// Each year once, ascending, counts summing to the table size.
	seen := make(map[int]bool)
	total := 0
	for i, yc := range counts {
		assert.False(t, seen[yc.Year], "year %d appears twice", yc.Year)
		seen[yc.Year] = true
		assert.GreaterOrEqual(t, yc.Count, 1)
		total += yc.Count
		if i > 0 {
			assert.Greater(t, yc.Year, counts[i-1].Year)
		}
	}
	assert.Equal(t, len(sampleRecords()), total)

	// 1990 has two landings in the sample.
	var y1990 model.YearCount
	for _, yc := range counts {
		if yc.Year == 1990 {
			y1990 = yc
		}
	}
	assert.Equal(t, 2, y1990.Count)
}

func TestClassCounts(t *testing.T) {
	counts := ClassCounts(sampleRecords())
	require.NotEmpty(t, counts)

	assert.Equal(t, "L5", counts[0].Classification)
	assert.Equal(t, 2, counts[0].Count)
	assert.InDelta(t, 100.0/3, counts[0].SharePercent, 0.01)

	total := 0.0
	for _, cc := range counts {
		total += cc.SharePercent
	}
	assert.InDelta(t, 100.0, total, 0.01)
}

func TestDescribe(t *testing.T) {
	stats := Describe([]model.Record{
		{Year: 1900, Latitude: 0, Longitude: 10, MassKg: 1},
		{Year: 1950, Latitude: 10, Longitude: 20, MassKg: 2},
		{Year: 2000, Latitude: 20, Longitude: 30, MassKg: 9},
	})
	require.Len(t, stats, 4)

	byCol := make(map[string]model.ColumnStats)
	for _, cs := range stats {
		byCol[cs.Column] = cs
	}

	year := byCol["Year"]
	assert.Equal(t, 3, year.Count)
	assert.Equal(t, 1900.0, year.Min)
	assert.Equal(t, 2000.0, year.Max)
	assert.Equal(t, 1950.0, year.Mean)
	assert.Equal(t, 1950.0, year.Median)
	assert.InDelta(t, 50.0, year.Std, 1e-9)

	mass := byCol["Mass (kg)"]
	assert.Equal(t, 2.0, mass.Median)
	assert.InDelta(t, 4.0, mass.Mean, 1e-9)
}

func TestDescribe_EvenMedian(t *testing.T) {
	stats := Describe([]model.Record{
		{MassKg: 1}, {MassKg: 2}, {MassKg: 3}, {MassKg: 10},
	})
	byCol := make(map[string]model.ColumnStats)
	for _, cs := range stats {
		byCol[cs.Column] = cs
	}
	assert.Equal(t, 2.5, byCol["Mass (kg)"].Median)
}
