package utils

import (
	"math"
	"sort"
)

// Stats is the descriptive summary attached to quality aggregates.
type Stats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Mode   float64 `json:"mode"`
}

// GetStats computes min/max/mean/median/mode over values. Mean is rounded to
// two decimals. Mode ties resolve to the smallest value. Empty input yields
// the zero summary.
func GetStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, value := range sorted {
		sum += value
	}
	mean := math.Round(sum/float64(len(sorted))*100) / 100

	var median float64
	middle := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[middle-1] + sorted[middle]) / 2
	} else {
		median = sorted[middle]
	}

	// Sorted walk: the first value of the longest run wins ties
	mode := sorted[0]
	bestCount, count := 0, 0
	for i, value := range sorted {
		if i > 0 && value == sorted[i-1] {
			count++
		} else {
			count = 1
		}
		if count > bestCount {
			bestCount = count
			mode = value
		}
	}

	return Stats{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
		Median: median,
		Mode:   mode,
	}
}

// IntsToFloats widens counters before a stats pass.
func IntsToFloats(values []int) []float64 {
	floats := make([]float64, len(values))
	for i, value := range values {
		floats[i] = float64(value)
	}
	return floats
}
