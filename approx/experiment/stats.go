package experiment

import (
	"math"
	"sort"
)

// percentile returns the p-th percentile (0..100) of data using linear
// interpolation between closest ranks. data is not modified.
func percentile(data []float64, p float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))
	if lowerIdx == upperIdx {
		return sorted[lowerIdx]
	}
	lower, upper := sorted[lowerIdx], sorted[upperIdx]
	return lower + (upper-lower)*(rank-float64(lowerIdx))
}

func median(data []float64) float64 {
	return percentile(data, 50)
}
