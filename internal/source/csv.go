package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadCSVFile opens and parses a CSV export, returning pre-normalization
// rows plus the resolved schema. Rows are returned as-is: null dropping,
// the year cutoff, and unit conversion all belong to the normalizer.
func ReadCSVFile(path string) ([]Row, Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Schema{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses CSV data from a reader. The first record is the header.
func ReadCSV(r io.Reader) ([]Row, Schema, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows, presence flags handle gaps

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, Schema{}, fmt.Errorf("reading header: empty input")
		}
		return nil, Schema{}, fmt.Errorf("reading header: %w", err)
	}

	schema, err := ResolveCSVSchema(header)
	if err != nil {
		return nil, Schema{}, err
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Schema{}, fmt.Errorf("reading row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, rowFromRecord(schema, record))
	}

	return rows, schema, nil
}

// rowFromRecord maps one CSV record onto a Row through the resolved
// schema. Absent columns and unparseable cells leave presence unset.
func rowFromRecord(s Schema, record []string) Row {
	var row Row

	row.Name = cell(record, s.Col("Name"))
	row.NameType = cell(record, s.Col("Name Type"))
	row.Classification = cell(record, s.Col("Classification"))
	row.FallStatus = cell(record, s.Col("Fall Status"))
	row.GeoLocation = cell(record, s.Col("GeoLocation"))

	if v, ok := parseInt(cell(record, s.Col("ID"))); ok {
		row.ID = v
	}
	if v, ok := parseInt(cell(record, s.Col("Year"))); ok {
		row.Year = int(v)
		row.HasYear = true
	}
	if v, ok := parseFloat(cell(record, s.Col("Latitude"))); ok {
		row.Latitude = v
		row.HasLat = true
	}
	if v, ok := parseFloat(cell(record, s.Col("Longitude"))); ok {
		row.Longitude = v
		row.HasLong = true
	}
	if v, ok := parseFloat(cell(record, s.Col("Mass (g)"))); ok {
		row.MassGrams = v
		row.HasMass = true
	}

	return row
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseInt accepts plain integers and integral floats ("1998.0"), which
// show up in exports that round-trip through spreadsheet tools.
func parseInt(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}
