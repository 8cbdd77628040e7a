// Package testutil provides shared test infrastructure for the approx
// packages: independent reference computations the optimizers are checked
// against.
package testutil

import "math"

// SquaredError returns Σ(y - mean)² computed directly, without prefix sums.
func SquaredError(ys []float64) float64 {
	if len(ys) == 0 {
		return 0
	}
	mean := 0.0
	for _, y := range ys {
		mean += y
	}
	mean /= float64(len(ys))
	sse := 0.0
	for _, y := range ys {
		d := y - mean
		sse += d * d
	}
	return sse
}

// BruteForceCost enumerates every split of ys (already in x order) into
// contiguous runs and returns the minimum of total squared error plus
// penalty per run beyond the first. Exponential in len(ys); keep it small.
func BruteForceCost(ys []float64, penalty float64) float64 {
	n := len(ys)
	if n == 0 {
		return 0
	}
	best := math.Inf(1)
	// Bit k of mask set means a new run starts before ys[k+1].
	for mask := 0; mask < 1<<(n-1); mask++ {
		cost, start, runs := 0.0, 0, 1
		for k := 0; k < n-1; k++ {
			if mask&(1<<k) != 0 {
				cost += SquaredError(ys[start : k+1])
				start = k + 1
				runs++
			}
		}
		cost += SquaredError(ys[start:])
		cost += penalty * float64(runs-1)
		best = math.Min(best, cost)
	}
	return best
}
