// Package source reads raw meteorite landing tables from their two
// ingestion paths (CSV export, SQLite query) into pre-normalization rows.
package source

import (
	"strings"

	"github.com/strewnlab/meteorscope/internal/model"
)

// Variant identifies which known source schema a table uses. It is
// resolved exactly once at load time; everything downstream works on the
// canonical field set.
type Variant int

const (
	// CSVSchemaV1 is the Meteoritical Society CSV export: lowercase
	// column names plus a mass column spelled "Mass (g)" or "mass (g)".
	CSVSchemaV1 Variant = iota
	// SQLSchemaV1 is the relational layout with a mass_g column.
	SQLSchemaV1
)

func (v Variant) String() string {
	switch v {
	case CSVSchemaV1:
		return "csv-v1"
	case SQLSchemaV1:
		return "sql-v1"
	default:
		return "unknown"
	}
}

// Canonical display names keyed by source column name. Only columns
// actually present in a given source get renamed; unknown source columns
// are ignored rather than treated as an error.
var canonicalNames = map[string]string{
	"name":        "Name",
	"id":          "ID",
	"nametype":    "Name Type",
	"recclass":    "Classification",
	"fall":        "Fall Status",
	"year":        "Year",
	"reclat":      "Latitude",
	"reclong":     "Longitude",
	"GeoLocation": "GeoLocation",
}

// massSpellings are the accepted spellings of the mass-in-grams column,
// checked in order. The SQL path uses mass_g.
var massSpellings = []string{"Mass (g)", "mass (g)"}

// Schema is a resolved mapping from one source layout to canonical
// fields: which column index (or -1) holds each canonical field.
type Schema struct {
	Variant    Variant
	MassColumn string // resolved source spelling of the mass column

	idx map[string]int // canonical field name -> column index
}

// Col returns the source column index for a canonical field, or -1 when
// the source does not carry it.
func (s Schema) Col(canonical string) int {
	if i, ok := s.idx[canonical]; ok {
		return i
	}
	return -1
}

// ResolveCSVSchema inspects a CSV header row and maps it to the
// canonical field set. A header whose mass column is missing under every
// known spelling is rejected with a SchemaError before any row is read.
func ResolveCSVSchema(header []string) (Schema, error) {
	s := Schema{
		Variant: CSVSchemaV1,
		idx:     make(map[string]int, len(canonicalNames)+1),
	}

	for i, col := range header {
		col = strings.TrimSpace(col)
		if canonical, ok := canonicalNames[col]; ok {
			s.idx[canonical] = i
			continue
		}
		for _, spelling := range massSpellings {
			if col == spelling {
				s.MassColumn = spelling
				s.idx["Mass (g)"] = i
			}
		}
	}

	if s.MassColumn == "" {
		return Schema{}, &model.SchemaError{Column: massSpellings[0]}
	}

	return s, nil
}

// SQLSchema returns the fixed schema of the relational layout. The
// column order matches the SELECT list used by the store.
func SQLSchema() Schema {
	return Schema{
		Variant:    SQLSchemaV1,
		MassColumn: "mass_g",
		idx: map[string]int{
			"Name":           0,
			"ID":             1,
			"Name Type":      2,
			"Classification": 3,
			"Mass (g)":       4,
			"Fall Status":    5,
			"Year":           6,
			"Latitude":       7,
			"Longitude":      8,
		},
	}
}
