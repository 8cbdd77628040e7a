package approx

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrorModel answers "squared error of an interval around its own mean" in
// O(1) from prefix sums of y and y² over an x-sorted point sequence.
//
// Ranks are 1-based: sumY[i] is the sum of the first i sorted y-values and
// sumY[0] = 0. The model is only valid for the ordering it was built from;
// build a new one whenever the points change.
type ErrorModel struct {
	sumY       []float64
	sumYSquare []float64
}

// NewErrorModel builds the prefix sums over sorted in O(n).
func NewErrorModel(sorted []Point) *ErrorModel {
	n := len(sorted)
	m := &ErrorModel{
		sumY:       make([]float64, n+1),
		sumYSquare: make([]float64, n+1),
	}
	if n == 0 {
		return m
	}
	ys := make([]float64, n)
	squares := make([]float64, n)
	for i, p := range sorted {
		ys[i] = p.Y
		squares[i] = p.Y * p.Y
	}
	floats.CumSum(m.sumY[1:], ys)
	floats.CumSum(m.sumYSquare[1:], squares)
	return m
}

// Len returns the number of points the model covers.
func (m *ErrorModel) Len() int { return len(m.sumY) - 1 }

// Mean returns the mean y of the points ranked a+1..b, or 0 when a == b.
func (m *ErrorModel) Mean(a, b int) float64 {
	count := b - a
	if count == 0 {
		return 0
	}
	return (m.sumY[b] - m.sumY[a]) / float64(count)
}

// Error returns the sum of squared deviations from their mean of the
// points ranked a+1..b, for 0 <= a <= b <= Len().
//
// The algebraic form Σy² - count·mean² can dip below zero through
// cancellation; the absolute value keeps the result non-negative.
func (m *ErrorModel) Error(a, b int) float64 {
	count := b - a
	mean := m.Mean(a, b)
	sse := (m.sumYSquare[b] - m.sumYSquare[a]) - float64(count)*mean*mean
	return math.Abs(sse)
}
