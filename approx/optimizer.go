package approx

import "fmt"

// Strategy names accepted by NewStrategy.
const (
	StrategyTabulation  = "tabulation"
	StrategyMemoization = "memoization"
)

// Solution is the result of one optimizer run.
type Solution struct {
	// Cost is OPT(n): total squared error plus penalties.
	Cost float64
	// Boundaries are the x-values at which a new interval begins, ascending.
	// The implicit first interval starting at 1 has no marker. Never nil.
	Boundaries []int
}

// Strategy solves the penalised segmentation problem for a point set.
//
// Implementations must not modify points. All strategies produce identical
// Solutions for identical inputs.
type Strategy interface {
	Name() string
	Solve(points []Point, penalty float64) Solution
}

// NewStrategy returns the strategy registered under name.
func NewStrategy(name string) (Strategy, error) {
	switch name {
	case StrategyTabulation:
		return Tabulation{}, nil
	case StrategyMemoization:
		return Memoization{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// StrategyFor picks tabulation or memoization.
func StrategyFor(useTabulation bool) Strategy {
	if useTabulation {
		return Tabulation{}
	}
	return Memoization{}
}

// problem is the read-only input shared by both strategies: a private
// x-sorted copy of the points, its error model and the penalty.
type problem struct {
	sorted  []Point
	model   *ErrorModel
	penalty float64
}

func newProblem(points []Point, penalty float64) *problem {
	sorted := SortedByX(points)
	return &problem{
		sorted:  sorted,
		model:   NewErrorModel(sorted),
		penalty: penalty,
	}
}

func (p *problem) size() int { return len(p.sorted) }

// relax evaluates the Bellman recurrence for OPT(i), i >= 1:
//
//	OPT(i) = min( error(0, i), min_{1<=j<=i} error(j-1, i) + OPT(j-1) + penalty )
//
// opt must return OPT(k) for k < i. split is the winning j, or 0 when the
// single-interval baseline wins. Candidates replace the incumbent on <=, so
// among equal costs the largest j wins.
func (p *problem) relax(i int, opt func(k int) float64) (cost float64, split int) {
	cost = p.model.Error(0, i)
	for j := 1; j <= i; j++ {
		candidate := p.model.Error(j-1, i) + opt(j-1) + p.penalty
		if candidate <= cost {
			cost = candidate
			split = j
		}
	}
	return cost, split
}

// table holds OPT and the winning split per prefix length. Boundary lists
// are not stored per prefix: each one is its parent's list plus at most one
// marker, so the final list is rebuilt once by following split links.
type table struct {
	cost   []float64
	split  []int
	solved []bool
}

func newTable(n int) *table {
	t := &table{
		cost:   make([]float64, n+1),
		split:  make([]int, n+1),
		solved: make([]bool, n+1),
	}
	t.solved[0] = true
	return t
}

// record finalises OPT(i) with its winning split.
func (t *table) record(i int, cost float64, split int) {
	t.cost[i] = cost
	t.split[i] = split
	t.solved[i] = true
}

// boundaries rebuilds the boundary list for the first n points. The split
// chain n -> split-1 -> ... ends at prefix 0 or at a prefix won by the
// single-interval baseline (split 0), whose list is empty.
func (t *table) boundaries(p *problem, n int) []int {
	var chain []int
	for i := n; i > 0 && t.split[i] > 0; i = t.split[i] - 1 {
		chain = append(chain, t.split[i])
	}
	out := []int{}
	for k := len(chain) - 1; k >= 0; k-- {
		out = p.appendMarker(out, chain[k])
	}
	return out
}

// appendMarker extends the inherited list of a prefix whose last interval
// starts at the point ranked split. The marker x is appended only when it
// differs from the first point's x and from the last inherited marker.
func (p *problem) appendMarker(inherited []int, split int) []int {
	if split <= 1 {
		return inherited
	}
	x := p.sorted[split-1].X
	if x == p.sorted[0].X {
		return inherited
	}
	if len(inherited) > 0 && inherited[len(inherited)-1] == x {
		return inherited
	}
	return append(inherited, x)
}

func (t *table) solution(p *problem, n int) Solution {
	return Solution{Cost: t.cost[n], Boundaries: t.boundaries(p, n)}
}
