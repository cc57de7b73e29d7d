package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStatsEmpty(t *testing.T) {
	stats := GetStats(nil)
	assert.Equal(t, Stats{}, stats)
}

func TestGetStatsSingleValue(t *testing.T) {
	stats := GetStats([]float64{7})
	assert.Equal(t, Stats{Min: 7, Max: 7, Mean: 7, Median: 7, Mode: 7}, stats)
}

func TestGetStatsOddCount(t *testing.T) {
	stats := GetStats([]float64{3, 1, 2})
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 3.0, stats.Max)
	assert.Equal(t, 2.0, stats.Mean)
	assert.Equal(t, 2.0, stats.Median)
}

func TestGetStatsEvenCountMedian(t *testing.T) {
	stats := GetStats([]float64{4, 1, 3, 2})
	assert.Equal(t, 2.5, stats.Median)
}

func TestGetStatsMeanRounded(t *testing.T) {
	stats := GetStats([]float64{1, 1, 1})
	assert.Equal(t, 1.0, stats.Mean)

	stats = GetStats([]float64{1, 2})
	assert.Equal(t, 1.5, stats.Mean)

	// 10/3 rounds to two decimals
	stats = GetStats([]float64{3, 3, 4})
	assert.Equal(t, 3.33, stats.Mean)
}

func TestGetStatsModeSmallestWinsTies(t *testing.T) {
	stats := GetStats([]float64{2, 1, 2, 1})
	assert.Equal(t, 1.0, stats.Mode)

	stats = GetStats([]float64{5, 5, 3, 3, 3})
	assert.Equal(t, 3.0, stats.Mode)
}

func TestIntsToFloats(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3}, IntsToFloats([]int{1, 2, 3}))
	assert.Empty(t, IntsToFloats(nil))
}
