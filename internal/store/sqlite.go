// Package store reads meteorite landings from a SQLite database, the
// relational ingestion path. Each load opens one short-lived read-only
// connection, runs a single query, and closes it. No pool, no retry.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"regexp"

	"github.com/strewnlab/meteorscope/internal/model"
	"github.com/strewnlab/meteorscope/internal/source"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DefaultTable is the landings table name unless configured otherwise.
const DefaultTable = "meteorite_landings"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// QueryLandings runs the landings query against the database at path and
// returns pre-normalization rows. maxYear bounds the year column server
// side; the normalizer re-checks it so both ingestion paths share one
// cutoff. Unreachable or unreadable databases surface as ConnectionError.
func QueryLandings(path, table string, maxYear int) ([]source.Row, source.Schema, error) {
	if table == "" {
		table = DefaultTable
	}
	if !identRe.MatchString(table) {
		return nil, source.Schema{}, fmt.Errorf("invalid table name %q", table)
	}

	// sql.Open is lazy; stat up front so a missing file reports cleanly
	// instead of surfacing as a cryptic driver error at query time.
	if _, err := os.Stat(path); err != nil {
		return nil, source.Schema{}, &model.ConnectionError{Path: path, Err: err}
	}

	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, source.Schema{}, &model.ConnectionError{Path: path, Err: err}
	}
	defer db.Close()

	query := fmt.Sprintf(`SELECT name, id, nametype, recclass, mass_g, fall, year, reclat, reclong
		FROM %s
		WHERE year <= ? AND nametype = 'valid'
		ORDER BY year DESC`, table)

	rows, err := db.Query(query, maxYear)
	if err != nil {
		return nil, source.Schema{}, &model.ConnectionError{Path: path, Err: err}
	}
	defer rows.Close()

	var out []source.Row
	for rows.Next() {
		var (
			name, nametype, recclass, fall sql.NullString
			id, year                       sql.NullInt64
			massG, lat, long               sql.NullFloat64
		)
		if err := rows.Scan(&name, &id, &nametype, &recclass, &massG, &fall, &year, &lat, &long); err != nil {
			return nil, source.Schema{}, &model.ConnectionError{Path: path, Err: err}
		}

		r := source.Row{
			Name:           name.String,
			ID:             id.Int64,
			NameType:       nametype.String,
			Classification: recclass.String,
			FallStatus:     fall.String,
		}
		if year.Valid {
			r.Year = int(year.Int64)
			r.HasYear = true
		}
		if lat.Valid {
			r.Latitude = lat.Float64
			r.HasLat = true
		}
		if long.Valid {
			r.Longitude = long.Float64
			r.HasLong = true
		}
		if massG.Valid {
			r.MassGrams = massG.Float64
			r.HasMass = true
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, source.Schema{}, &model.ConnectionError{Path: path, Err: err}
	}

	return out, source.SQLSchema(), nil
}
