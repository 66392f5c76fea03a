package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/strewnlab/meteorscope/internal/model"
	"github.com/strewnlab/meteorscope/internal/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedDB creates a landings database with a few representative rows,
// including nulls and a placeholder future year.
func seedDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "landings.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE meteorite_landings (
		name TEXT, id INTEGER, nametype TEXT, recclass TEXT,
		mass_g REAL, fall TEXT, year INTEGER, reclat REAL, reclong REAL
	)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO meteorite_landings VALUES
		('Zag', 24009, 'valid', 'H3-6', 1750000, 'Fell', 1998, 27.2, -3.4),
		('Hoba', 11890, 'valid', 'Iron, IVB', 60000000, 'Found', 1920, -19.58, 17.92),
		('Nullmass', 1, 'valid', 'L6', NULL, 'Found', 1975, 10.0, 10.0),
		('Relict', 2, 'relict', 'Fusion crust', 100, 'Found', 1950, 5.0, 5.0),
		('Future', 3, 'valid', 'H5', 100, 'Found', 2999, 1.0, 1.0)`)
	require.NoError(t, err)

	return path
}

func TestQueryLandings(t *testing.T) {
	path := seedDB(t)

	rows, schema, err := QueryLandings(path, "", 2026)
	require.NoError(t, err)

	assert.Equal(t, source.SQLSchemaV1, schema.Variant)
	assert.Equal(t, "mass_g", schema.MassColumn)

	// Relict and future rows are excluded by the query itself; the null
	// mass row comes through with its presence flag unset.
	require.Len(t, rows, 3)

	// ORDER BY year DESC.
	assert.Equal(t, "Zag", rows[0].Name)
	assert.Equal(t, "Nullmass", rows[1].Name)
	assert.Equal(t, "Hoba", rows[2].Name)

	assert.True(t, rows[0].HasMass)
	assert.Equal(t, 1750000.0, rows[0].MassGrams)
	assert.False(t, rows[1].HasMass)
}

func TestQueryLandings_MissingFile(t *testing.T) {
	_, _, err := QueryLandings(filepath.Join(t.TempDir(), "nope.db"), "", 2026)

	var connErr *model.ConnectionError
	require.ErrorAs(t, err, &connErr)
}

func TestQueryLandings_MissingTable(t *testing.T) {
	path := seedDB(t)

	_, _, err := QueryLandings(path, "wrong_table", 2026)
	var connErr *model.ConnectionError
	require.ErrorAs(t, err, &connErr)
}

func TestQueryLandings_BadTableName(t *testing.T) {
	_, _, err := QueryLandings(seedDB(t), "landings; DROP TABLE x", 2026)
	require.Error(t, err)

	// Rejected before any connection is made, so not a ConnectionError.
	var connErr *model.ConnectionError
	assert.False(t, errors.As(err, &connErr))
}
