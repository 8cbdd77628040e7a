package approx

import (
	"fmt"
	"sort"
)

// Interval is a closed integer range [Start, End] of the partitioned domain.
type Interval struct {
	Start int
	End   int
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d]", iv.Start, iv.End)
}

// Intervals turns a boundary list into the interval elements of [1, maxX]:
// [1, b0-1] [b0, b1-1] ... [bk, maxX]. No boundaries yields [1, maxX].
func Intervals(boundaries []int, maxX int) []Interval {
	out := make([]Interval, 0, len(boundaries)+1)
	start := 1
	for _, b := range boundaries {
		out = append(out, Interval{Start: start, End: b - 1})
		start = b
	}
	return append(out, Interval{Start: start, End: maxX})
}

// Segment summarises the points falling inside one interval element.
type Segment struct {
	Interval
	Points int
	Mean   float64
	Error  float64
}

// Segments reports, for each interval of sol over [1, maxX], how many
// points it holds and their mean and squared error.
//
// Points are assigned by x-range. When several points share the x of a
// boundary they all land in the later interval, so the segment errors need
// not add up to the rank-based error inside sol.Cost.
func Segments(points []Point, sol Solution, maxX int) []Segment {
	sorted := SortedByX(points)
	model := NewErrorModel(sorted)
	rankOf := func(x int) int {
		return sort.Search(len(sorted), func(i int) bool { return sorted[i].X >= x })
	}

	intervals := Intervals(sol.Boundaries, maxX)
	out := make([]Segment, len(intervals))
	for i, iv := range intervals {
		a, b := rankOf(iv.Start), rankOf(iv.End+1)
		out[i] = Segment{
			Interval: iv,
			Points:   b - a,
			Mean:     model.Mean(a, b),
			Error:    model.Error(a, b),
		}
	}
	return out
}
