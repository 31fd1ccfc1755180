// Package contour turns a sampled decision function into
// filled level bands and isolines.
package contour

import (
	"math"
	"sort"

	"gonum.org/v1/plot"
)

// fallbackBands is used when the tick locator does not give
// enough levels.
const fallbackBands = 8

// Levels returns increasing band boundaries covering [min, max].
// With count == 0, the boundaries are round numbers chosen by the
// gonum/plot tick locator, extended by one step on each side when needed.
// Otherwise, count bands of equal width are returned.
// Levels returns nil for a non finite range.
func Levels(min, max float64, count int) []float64 {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	if min == max {
		return []float64{min - 0.5, max + 0.5}
	}
	if min > max {
		min, max = max, min
	}
	if math.IsInf(max-min, 0) {
		return nil
	}
	if count > 0 {
		return linspace(min, max, count)
	}

	var levels []float64
	for _, tick := range (plot.DefaultTicks{}).Ticks(min, max) {
		if tick.IsMinor() {
			continue
		}
		levels = append(levels, tick.Value)
	}
	if len(levels) < 2 {
		return linspace(min, max, fallbackBands)
	}
	step := levels[1] - levels[0]
	if !(step > 0) || math.IsInf(step, 0) {
		return nil
	}
	for levels[0] > min {
		levels = append([]float64{levels[0] - step}, levels...)
	}
	for levels[len(levels)-1] < max {
		levels = append(levels, levels[len(levels)-1]+step)
	}
	return levels
}

// linspace returns bands+1 evenly spaced values
func linspace(min, max float64, bands int) []float64 {
	out := make([]float64, bands+1)
	for i := range out {
		out[i] = min + (max-min)*float64(i)/float64(bands)
	}
	out[bands] = max
	return out
}

// band returns the index k such that levels[k] <= v < levels[k+1],
// clamped to the valid band indices
func band(levels []float64, v float64) int {
	k := sort.Search(len(levels), func(i int) bool { return levels[i] > v }) - 1
	if k < 0 {
		k = 0
	}
	if k > len(levels)-2 {
		k = len(levels) - 2
	}
	return k
}
