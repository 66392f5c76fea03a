package model

// SummaryStats holds the top-level aggregate across the canonical table:
// the three headline metrics of the dashboard.
type SummaryStats struct {
	TotalRecords int
	MinYear      int
	MaxYear      int
	MaxMassKg    float64
	HeaviestName string

	FellCount  int
	FoundCount int
	ValidCount int
	RelictCount int
}

// YearCount holds the number of landings recorded for one year.
type YearCount struct {
	Year  int
	Count int
}

// ClassCount holds the number of landings for one classification code.
type ClassCount struct {
	Classification string
	Count          int
	SharePercent   float64
}

// ColumnStats holds descriptive statistics for one numeric column.
type ColumnStats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Median float64
	Max    float64
}
