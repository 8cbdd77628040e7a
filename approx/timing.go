package approx

import (
	"github.com/gavv/monotime"
)

// TimeRun returns the wall-clock seconds of one full optimizer call
// (sort, error sums and recurrence), measured on the monotonic clock.
// The solution itself is discarded.
func TimeRun(s Strategy, points []Point, penalty float64) float64 {
	start := monotime.Now()
	s.Solve(points, penalty)
	return monotime.Since(start).Seconds()
}
