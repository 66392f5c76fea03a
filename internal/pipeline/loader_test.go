package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/strewnlab/meteorscope/internal/model"
	"github.com/strewnlab/meteorscope/internal/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `name,id,nametype,recclass,Mass (g),fall,year,reclat,reclong,GeoLocation
Zag,24009,Valid,H3-6,1750000,Fell,1998,27.2,-3.4,"(27.2, -3.4)"
Aachen,1,Valid,L5,21,Fell,1880,50.775,6.08333,"(50.775, 6.08333)"
Nullmass,2,Valid,L6,,Found,1975,10.0,10.0,
Future,3,Valid,H5,100,Found,2999,1.0,1.0,
`

func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "landings.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_CSV(t *testing.T) {
	freezeYear(t, 2026)

	res, err := Load(Spec{Kind: SourceCSV, Path: writeCSV(t, testCSV)}, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, res.SourceRows)
	assert.Equal(t, 2, res.Dropped) // null mass + future year
	assert.False(t, res.FromCache)
	assert.Equal(t, source.CSVSchemaV1, res.Schema.Variant)

	require.Len(t, res.Records, 2)
	assert.Equal(t, "Zag", res.Records[0].Name)
	assert.Equal(t, 1750.0, res.Records[0].MassKg)
	assert.Equal(t, "(27.2, -3.4)", res.Records[0].GeoLocation)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(Spec{Kind: SourceCSV, Path: "/does/not/exist.csv"}, nil)
	require.Error(t, err)
}

func TestLoad_CacheHit(t *testing.T) {
	freezeYear(t, 2026)

	path := writeCSV(t, testCSV)
	cache := NewCache()
	spec := Spec{Kind: SourceCSV, Path: path}

	first, err := Load(spec, cache)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Equal(t, 1, cache.Len())

	// Even deleting the file does not miss: identity unchanged.
	require.NoError(t, os.Remove(path))
	second, err := Load(spec, cache)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Records, second.Records)
}

func TestLoad_CacheInvalidation(t *testing.T) {
	freezeYear(t, 2026)

	cache := NewCache()
	spec := Spec{Kind: SourceCSV, Path: writeCSV(t, testCSV)}

	_, err := Load(spec, cache)
	require.NoError(t, err)

	cache.Invalidate(spec.Identity())
	res, err := Load(spec, cache)
	require.NoError(t, err)
	assert.False(t, res.FromCache)
}

func TestLoad_DistinctIdentities(t *testing.T) {
	freezeYear(t, 2026)

	cache := NewCache()
	specA := Spec{Kind: SourceCSV, Path: writeCSV(t, testCSV)}
	specB := Spec{Kind: SourceCSV, Path: writeCSV(t, testCSV)}
	require.NotEqual(t, specA.Identity(), specB.Identity())

	_, err := Load(specA, cache)
	require.NoError(t, err)
	resB, err := Load(specB, cache)
	require.NoError(t, err)
	assert.False(t, resB.FromCache)
	assert.Equal(t, 2, cache.Len())
}

func TestLoad_SchemaError(t *testing.T) {
	freezeYear(t, 2026)

	noMass := "name,id,nametype,recclass,fall,year,reclat,reclong\nZag,1,Valid,H3-6,Fell,1998,27.2,-3.4\n"
	_, err := Load(Spec{Kind: SourceCSV, Path: writeCSV(t, noMass)}, nil)

	var schemaErr *model.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Mass (g)", schemaErr.Column)
}
