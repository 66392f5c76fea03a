// Package pipeline turns raw source rows into the canonical landing
// table and computes the aggregate views the dashboard renders.
package pipeline

import (
	"strings"

	"github.com/strewnlab/meteorscope/internal/model"
	"github.com/strewnlab/meteorscope/internal/source"
)

// Normalize applies the cleaning passes, in order, to raw source rows:
//
//  1. drop any row missing latitude, longitude, mass, or year
//  2. drop any row whose year exceeds the current calendar year
//     (placeholder and future-dated bad data)
//  3. derive MassKg = mass grams / 1000, exact; the grams field is not
//     carried into the output
//
// Each pass is total over the table. Running Normalize over its own
// output drops nothing further. Zero surviving rows is an
// EmptyResultError: min/max aggregations are undefined on an empty
// table, so the caller never gets one.
func Normalize(rows []source.Row) ([]model.Record, error) {
	cutoff := CurrentYear()

	records := make([]model.Record, 0, len(rows))
	for _, r := range rows {
		if !r.HasLat || !r.HasLong || !r.HasMass || !r.HasYear {
			continue
		}
		if r.Year > cutoff {
			continue
		}

		records = append(records, model.Record{
			Name:           r.Name,
			ID:             r.ID,
			NameType:       titleCase(r.NameType),
			Classification: r.Classification,
			FallStatus:     titleCase(r.FallStatus),
			Year:           r.Year,
			Latitude:       r.Latitude,
			Longitude:      r.Longitude,
			MassKg:         r.MassGrams / 1000,
			GeoLocation:    r.GeoLocation,
		})
	}

	if len(records) == 0 {
		return nil, &model.EmptyResultError{Stage: "filtering"}
	}

	return records, nil
}

// titleCase canonicalizes the categorical columns: the CSV export uses
// "Fell"/"Valid" while the relational layout stores lowercase.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
