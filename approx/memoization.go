package approx

// Memoization solves the recurrence top-down from OPT(n), computing each
// subproblem on first use and caching it in a per-call table.
//
// It shares relax and the boundary rule with Tabulation, so both produce
// identical Solutions. Recursion depth is at most n.
type Memoization struct{}

// Name implements Strategy.
func (Memoization) Name() string { return StrategyMemoization }

// Solve implements Strategy.
func (Memoization) Solve(points []Point, penalty float64) Solution {
	p := newProblem(points, penalty)
	n := p.size()
	m := &memo{problem: p, t: newTable(n)}
	m.solve(n)
	return m.t.solution(p, n)
}

type memo struct {
	*problem
	t *table
}

func (m *memo) solve(i int) float64 {
	if m.t.solved[i] {
		return m.t.cost[i]
	}
	cost, split := m.relax(i, m.solve)
	m.t.record(i, cost, split)
	return cost
}
