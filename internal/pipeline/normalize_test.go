package pipeline

import (
	"testing"
	"time"

	"github.com/strewnlab/meteorscope/internal/model"
	"github.com/strewnlab/meteorscope/internal/source"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freezeYear pins the temporal filter to a known calendar year.
func freezeYear(t *testing.T, year int) {
	t.Helper()
	SetClock(clockwork.NewFakeClockAt(time.Date(year, 6, 15, 12, 0, 0, 0, time.UTC)))
	t.Cleanup(func() { SetClock(nil) })
}

// completeRow returns a row that passes every filter.
func completeRow() source.Row {
	return source.Row{
		Name:           "Zag",
		ID:             24009,
		NameType:       "Valid",
		Classification: "H3-6",
		FallStatus:     "Fell",
		Year:           1998,
		HasYear:        true,
		Latitude:       27.2,
		HasLat:         true,
		Longitude:      -3.4,
		HasLong:        true,
		MassGrams:      1750000,
		HasMass:        true,
	}
}

func TestNormalize_DerivesMassKg(t *testing.T) {
	freezeYear(t, 2026)

	records, err := Normalize([]source.Row{completeRow()})
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "Zag", got.Name)
	assert.Equal(t, 1998, got.Year)
	assert.Equal(t, 27.2, got.Latitude)
	assert.Equal(t, -3.4, got.Longitude)
	assert.Equal(t, 1750.0, got.MassKg)
}

func TestNormalize_CanonicalizesCategoricalCase(t *testing.T) {
	freezeYear(t, 2026)

	row := completeRow()
	row.NameType = "valid"
	row.FallStatus = "fell"

	records, err := Normalize([]source.Row{row})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, model.NameTypeValid, records[0].NameType)
	assert.Equal(t, model.FallStatusFell, records[0].FallStatus)
	assert.True(t, records[0].Fell())
}

func TestNormalize_ExactDivision(t *testing.T) {
	freezeYear(t, 2026)

	row := completeRow()
	row.MassGrams = 123.456
	records, err := Normalize([]source.Row{row})
	require.NoError(t, err)

	// Exact, not approximate: the derivation is a single division.
	assert.Equal(t, 123.456/1000, records[0].MassKg)
}

func TestNormalize_DropsNullFields(t *testing.T) {
	freezeYear(t, 2026)

	missing := []func(*source.Row){
		func(r *source.Row) { r.HasLat = false },
		func(r *source.Row) { r.HasLong = false },
		func(r *source.Row) { r.HasMass = false },
		func(r *source.Row) { r.HasYear = false },
	}

	for _, drop := range missing {
		bad := completeRow()
		drop(&bad)

		records, err := Normalize([]source.Row{completeRow(), bad})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	}
}

func TestNormalize_DropsFutureYears(t *testing.T) {
	freezeYear(t, 2026)

	future := completeRow()
	future.Year = 2999
	boundary := completeRow()
	boundary.Name = "Boundary"
	boundary.Year = 2026

	records, err := Normalize([]source.Row{future, boundary})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Boundary", records[0].Name)
}

func TestNormalize_EmptyInput(t *testing.T) {
	freezeYear(t, 2026)

	_, err := Normalize(nil)
	var empty *model.EmptyResultError
	require.ErrorAs(t, err, &empty)
}

func TestNormalize_AllRowsFiltered(t *testing.T) {
	freezeYear(t, 2026)

	row := completeRow()
	row.Year = 2999

	_, err := Normalize([]source.Row{row})
	var empty *model.EmptyResultError
	require.ErrorAs(t, err, &empty)
}

func TestNormalize_Idempotent(t *testing.T) {
	freezeYear(t, 2026)

	input := []source.Row{completeRow()}
	second := completeRow()
	second.Name = "Hoba"
	second.Year = 1920
	second.MassGrams = 60_000_000
	input = append(input, second)

	first, err := Normalize(input)
	require.NoError(t, err)

	// Feed the output back through as rows: nothing further drops and
	// the table is unchanged.
	again := make([]source.Row, len(first))
	for i, r := range first {
		again[i] = source.Row{
			Name:           r.Name,
			ID:             r.ID,
			NameType:       r.NameType,
			Classification: r.Classification,
			FallStatus:     r.FallStatus,
			GeoLocation:    r.GeoLocation,
			Year:           r.Year,
			HasYear:        true,
			Latitude:       r.Latitude,
			HasLat:         true,
			Longitude:      r.Longitude,
			HasLong:        true,
			MassGrams:      r.MassKg * 1000,
			HasMass:        true,
		}
	}

	rerun, err := Normalize(again)
	require.NoError(t, err)
	require.Len(t, rerun, len(first))
	for i := range first {
		assert.Equal(t, first[i].Name, rerun[i].Name)
		assert.InDelta(t, first[i].MassKg, rerun[i].MassKg, 1e-12)
	}
}
