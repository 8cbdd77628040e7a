// Package approx computes interval-based constant best approximations of
// 2-D point sets.
//
// Given points (x, y) with integer x in [1, M] and real y, the package finds
// the partition of [1, M] into contiguous intervals that minimises the total
// squared error of approximating each interval by the mean y of its points,
// plus a fixed penalty for every interval beyond the first.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - point.go: Point and PointSet (uniqueness, maxX tracking, random fill)
//   - error_model.go: prefix sums answering interval squared error in O(1)
//   - optimizer.go: the shared Bellman recurrence and boundary bookkeeping
//   - tabulation.go / memoization.go: the two interchangeable strategies
//   - grid.go: the Grid facade used by the CLI
//
// # Architecture
//
// Data flows PointSet -> SortByX -> ErrorModel -> Strategy -> Solution.
// Strategies never reorder the caller's points; they solve over a private
// x-sorted copy. Timing experiments live in sub-package experiment.
package approx
