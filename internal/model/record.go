// Package model defines domain types for meteorite landing records and
// the aggregate views computed from them.
package model

// Name type values as they appear in the Meteoritical Society dataset.
const (
	NameTypeValid  = "Valid"
	NameTypeRelict = "Relict"
)

// Fall status values: observed falling vs found after the fact.
const (
	FallStatusFell  = "Fell"
	FallStatusFound = "Found"
)

// Record is one meteorite landing in canonical form. Every Record that
// survives normalization has non-zero-presence Latitude, Longitude,
// MassKg, and Year, with Year no later than the year the load ran.
// Records are read-only once the load pass finishes.
type Record struct {
	Name           string
	ID             int64
	NameType       string // Valid | Relict
	Classification string // free-form taxonomic code, e.g. "H5", "Iron, IIAB"
	FallStatus     string // Fell | Found
	Year           int
	Latitude       float64
	Longitude      float64
	MassKg         float64 // source mass in grams / 1000, exact
	GeoLocation    string  // passthrough "(lat, long)" string when the source has one
}

// Fell reports whether the meteorite was observed falling.
func (r Record) Fell() bool {
	return r.FallStatus == FallStatusFell
}
