package approx

// Tabulation solves the recurrence bottom-up: i = 1..n ascending, each
// OPT(i) built from the already-final OPT(0..i-1).
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n) for OPT and the split links
type Tabulation struct{}

// Name implements Strategy.
func (Tabulation) Name() string { return StrategyTabulation }

// Solve implements Strategy.
func (Tabulation) Solve(points []Point, penalty float64) Solution {
	p := newProblem(points, penalty)
	n := p.size()
	t := newTable(n)
	lookup := func(k int) float64 { return t.cost[k] }
	for i := 1; i <= n; i++ {
		cost, split := p.relax(i, lookup)
		t.record(i, cost, split)
	}
	return t.solution(p, n)
}
