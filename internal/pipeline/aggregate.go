package pipeline

import (
	"math"
	"sort"

	"github.com/strewnlab/meteorscope/internal/model"
)

// Summarize computes the headline metrics: record count, year range,
// heaviest mass, and the fall/name-type splits.
func Summarize(records []model.Record) (model.SummaryStats, error) {
	if len(records) == 0 {
		return model.SummaryStats{}, &model.EmptyResultError{Stage: "aggregation"}
	}

	stats := model.SummaryStats{
		TotalRecords: len(records),
		MinYear:      records[0].Year,
		MaxYear:      records[0].Year,
	}

	for _, r := range records {
		if r.Year < stats.MinYear {
			stats.MinYear = r.Year
		}
		if r.Year > stats.MaxYear {
			stats.MaxYear = r.Year
		}
		if r.MassKg > stats.MaxMassKg {
			stats.MaxMassKg = r.MassKg
			stats.HeaviestName = r.Name
		}

		switch r.FallStatus {
		case model.FallStatusFell:
			stats.FellCount++
		case model.FallStatusFound:
			stats.FoundCount++
		}
		switch r.NameType {
		case model.NameTypeValid:
			stats.ValidCount++
		case model.NameTypeRelict:
			stats.RelictCount++
		}
	}

	return stats, nil
}

// TopHeaviest returns the n heaviest landings, heaviest first. The sort
// is stable, so ties keep their original table order. Output length is
// min(n, len(records)).
func TopHeaviest(records []model.Record, n int) []model.Record {
	out := make([]model.Record, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MassKg > out[j].MassKg
	})

	if n > len(out) {
		n = len(out)
	}
	if n < 0 {
		n = 0
	}
	return out[:n]
}

// YearlyCounts groups landings by year, ascending. Every year present in
// the table appears exactly once with a count of at least one.
func YearlyCounts(records []model.Record) []model.YearCount {
	byYear := make(map[int]int)
	for _, r := range records {
		byYear[r.Year]++
	}

	counts := make([]model.YearCount, 0, len(byYear))
	for year, n := range byYear {
		counts = append(counts, model.YearCount{Year: year, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Year < counts[j].Year
	})

	return counts
}

// ClassCounts groups landings by classification code, most common first.
// Ties break alphabetically so the ordering is deterministic.
func ClassCounts(records []model.Record) []model.ClassCount {
	byClass := make(map[string]int)
	for _, r := range records {
		byClass[r.Classification]++
	}

	counts := make([]model.ClassCount, 0, len(byClass))
	for class, n := range byClass {
		share := 0.0
		if len(records) > 0 {
			share = float64(n) / float64(len(records)) * 100
		}
		counts = append(counts, model.ClassCount{
			Classification: class,
			Count:          n,
			SharePercent:   share,
		})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Classification < counts[j].Classification
	})

	return counts
}

// Describe computes descriptive statistics for the numeric columns of
// the canonical table: Year, Latitude, Longitude, Mass (kg).
func Describe(records []model.Record) []model.ColumnStats {
	columns := []struct {
		name string
		get  func(model.Record) float64
	}{
		{"Year", func(r model.Record) float64 { return float64(r.Year) }},
		{"Latitude", func(r model.Record) float64 { return r.Latitude }},
		{"Longitude", func(r model.Record) float64 { return r.Longitude }},
		{"Mass (kg)", func(r model.Record) float64 { return r.MassKg }},
	}

	out := make([]model.ColumnStats, 0, len(columns))
	for _, col := range columns {
		values := make([]float64, len(records))
		for i, r := range records {
			values[i] = col.get(r)
		}
		out = append(out, describeColumn(col.name, values))
	}
	return out
}

func describeColumn(name string, values []float64) model.ColumnStats {
	cs := model.ColumnStats{Column: name, Count: len(values)}
	if len(values) == 0 {
		return cs
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	cs.Min = sorted[0]
	cs.Max = sorted[len(sorted)-1]

	var sum float64
	for _, v := range values {
		sum += v
	}
	cs.Mean = sum / float64(len(values))

	// Sample standard deviation; zero for a single-row table.
	if len(values) > 1 {
		var sq float64
		for _, v := range values {
			d := v - cs.Mean
			sq += d * d
		}
		cs.Std = math.Sqrt(sq / float64(len(values)-1))
	}

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		cs.Median = sorted[mid]
	} else {
		cs.Median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return cs
}
