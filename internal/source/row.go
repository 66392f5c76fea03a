package source

// Row is one pre-normalization landing record. Presence flags track
// which nullable fields the source actually carried, so the normalizer
// can drop incomplete rows without inventing zero values.
type Row struct {
	Name           string
	ID             int64
	NameType       string
	Classification string
	FallStatus     string
	GeoLocation    string

	Year    int
	HasYear bool

	Latitude float64
	HasLat   bool

	Longitude float64
	HasLong   bool

	MassGrams float64
	HasMass   bool
}
