package approx

import "errors"

var (
	// ErrInvalidX indicates a point whose x-coordinate is below 1.
	ErrInvalidX = errors.New("approx: x must be a positive integer")

	// ErrInvalidY indicates a NaN or infinite y-value. Such values break
	// exact-equality uniqueness and the error sums.
	ErrInvalidY = errors.New("approx: y must be a finite real number")

	// ErrInvalidBound indicates an upper bound on random x-values below 1.
	ErrInvalidBound = errors.New("approx: upper bound must be at least 1")

	// ErrNegativeCount indicates a negative number of points was requested.
	ErrNegativeCount = errors.New("approx: point count must not be negative")

	// ErrNegativePenalty indicates a penalty below zero.
	ErrNegativePenalty = errors.New("approx: penalty must not be negative")

	// ErrUnknownStrategy indicates an unrecognised optimizer strategy name.
	ErrUnknownStrategy = errors.New("approx: unknown strategy")
)
