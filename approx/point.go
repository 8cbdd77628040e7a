package approx

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Point is a single sample. Equality is exact on both fields.
type Point struct {
	X int
	Y float64
}

// String renders the point as "(x, y)" with six decimal places for y.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %f)", p.X, p.Y)
}

// PointSet holds unique points in insertion order and the upper bound of
// the domain being partitioned.
//
// Points may share an x or a y value, but never both. Points are never
// removed; use a fresh PointSet to start over.
//
// Thread-safety: NOT thread-safe.
type PointSet struct {
	points   []Point
	index    map[Point]struct{}
	maxX     int
	observed int // largest x actually present
}

// NewPointSet returns an empty set whose domain is [1, 1].
func NewPointSet() *PointSet {
	return &PointSet{
		index: make(map[Point]struct{}),
		maxX:  1,
	}
}

// Contains reports whether an identical (x, y) pair is already present.
func (s *PointSet) Contains(p Point) bool {
	_, ok := s.index[p]
	return ok
}

// Add appends (x, y) unless it is already present.
// Returns (false, nil) for a duplicate, and (false, err) when x < 1 or y is
// not finite. maxX grows to x on success.
func (s *PointSet) Add(x int, y float64) (bool, error) {
	if x < 1 {
		return false, fmt.Errorf("%w: got %d", ErrInvalidX, x)
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return false, fmt.Errorf("%w: got %v", ErrInvalidY, y)
	}
	p := Point{X: x, Y: y}
	if s.Contains(p) {
		return false, nil
	}
	s.insert(p)
	s.maxX = max(s.maxX, x)
	return true, nil
}

// AddRandom fills the set up to count points in total, drawing x uniformly
// from [1, maxVal] and y uniformly from [-maxVal, maxVal]. Draws that
// collide with an existing point are skipped.
//
// maxX is set to maxVal even if no point reaches it: the partitioned domain
// is the requested [1, maxVal], not the observed maximum x. It only stays
// higher when an earlier point already lies beyond maxVal.
func (s *PointSet) AddRandom(rng *rand.Rand, count, maxVal int) error {
	if count < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeCount, count)
	}
	if maxVal < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidBound, maxVal)
	}
	added, skipped := 0, 0
	bound := float64(maxVal)
	for len(s.points) < count {
		p := Point{
			X: 1 + rng.Intn(maxVal),
			Y: -bound + rng.Float64()*2*bound,
		}
		if s.Contains(p) {
			skipped++
			continue
		}
		s.insert(p)
		added++
	}
	s.maxX = max(maxVal, s.observed)
	logrus.Debugf("added %d random points in [1, %d] (%d collisions skipped)", added, maxVal, skipped)
	return nil
}

// Len returns the number of points.
func (s *PointSet) Len() int { return len(s.points) }

// MaxX returns the upper bound of the partitioned domain.
func (s *PointSet) MaxX() int { return s.maxX }

// Points returns a copy of the points in insertion order.
func (s *PointSet) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

func (s *PointSet) insert(p Point) {
	s.points = append(s.points, p)
	s.index[p] = struct{}{}
	s.observed = max(s.observed, p.X)
}
