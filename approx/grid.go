package approx

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultPenalty is the per-interval penalty of a new Grid.
const DefaultPenalty = 10.0

// Grid is a point set together with the penalty used to partition it.
// It is the entry point for the CLI: add points, set the penalty, and ask
// for the optimal partition.
type Grid struct {
	points  *PointSet
	penalty float64
	rng     *PartitionedRNG
}

// Option configures a Grid.
type Option func(*Grid)

// WithSeed makes random point generation reproducible.
func WithSeed(seed int64) Option {
	return func(g *Grid) {
		g.rng = NewPartitionedRNG(Seed(seed))
	}
}

// WithPenalty overrides DefaultPenalty. Options cannot fail, so a negative
// penalty is ignored and the grid keeps DefaultPenalty; use SetPenalty to
// have it rejected with ErrNegativePenalty.
func WithPenalty(penalty float64) Option {
	return func(g *Grid) {
		if penalty >= 0 {
			g.penalty = penalty
		}
	}
}

// NewGrid returns an empty grid. Without WithSeed the random source is
// seeded from the wall clock. NewGrid never fails: an invalid WithPenalty
// value leaves the default in place.
func NewGrid(opts ...Option) *Grid {
	g := &Grid{
		points:  NewPointSet(),
		penalty: DefaultPenalty,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewPartitionedRNG(Seed(time.Now().UnixNano()))
	}
	return g
}

// Reset drops every point and restores the default penalty. The random
// source keeps its position.
func (g *Grid) Reset() {
	g.points = NewPointSet()
	g.penalty = DefaultPenalty
}

// AddPoint adds (x, y). It returns false with a nil error when the exact
// pair is already present, and an error wrapping ErrInvalidX or ErrInvalidY
// for an unusable coordinate.
func (g *Grid) AddPoint(x int, y float64) (bool, error) {
	return g.points.Add(x, y)
}

// AddRandomPoints fills the grid up to count points with x in [1, maxVal]
// and sets the domain upper bound to maxVal.
func (g *Grid) AddRandomPoints(count, maxVal int) error {
	return g.points.AddRandom(g.rng.ForSubsystem(SubsystemPoints), count, maxVal)
}

// SetPenalty changes the per-interval penalty.
func (g *Grid) SetPenalty(penalty float64) error {
	if penalty < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativePenalty, penalty)
	}
	g.penalty = penalty
	return nil
}

// Penalty returns the per-interval penalty.
func (g *Grid) Penalty() float64 { return g.penalty }

// PointCount returns the number of points.
func (g *Grid) PointCount() int { return g.points.Len() }

// MaxX returns the upper bound M of the domain [1, M].
func (g *Grid) MaxX() int { return g.points.MaxX() }

// Points returns a copy of the points in insertion order.
func (g *Grid) Points() []Point { return g.points.Points() }

// DescribePoints lists the points as "(x, y) (x, y) ...", or a fixed
// message when there are none.
func (g *Grid) DescribePoints() string {
	if g.points.Len() == 0 {
		return "No points in grid."
	}
	var b strings.Builder
	for i, p := range g.points.points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	return b.String()
}

// Solve runs s over a snapshot of the points. The grid's point order is
// left untouched.
func (g *Grid) Solve(s Strategy) Solution {
	logrus.Debugf("solving %d points with %s, penalty=%v", g.points.Len(), s.Name(), g.penalty)
	sol := s.Solve(g.points.points, g.penalty)
	logrus.Debugf("%s: cost=%v, %d boundaries", s.Name(), sol.Cost, len(sol.Boundaries))
	return sol
}

// FindOptimalPartition returns the boundary x-values of the optimal
// partition, ascending, excluding the domain endpoints.
func (g *Grid) FindOptimalPartition(useTabulation bool) []int {
	return g.Solve(StrategyFor(useTabulation)).Boundaries
}

// Intervals renders sol as interval elements of [1, MaxX].
func (g *Grid) Intervals(sol Solution) []Interval {
	return Intervals(sol.Boundaries, g.MaxX())
}

// Segments reports per-interval statistics for sol.
func (g *Grid) Segments(sol Solution) []Segment {
	return Segments(g.points.points, sol, g.MaxX())
}

// TimeToPartition times one optimizer run over the current points.
func (g *Grid) TimeToPartition(useTabulation bool) float64 {
	return g.Time(StrategyFor(useTabulation))
}

// Time times one run of s over the current points.
func (g *Grid) Time(s Strategy) float64 {
	return TimeRun(s, g.points.points, g.penalty)
}
