package approx

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByX_Stable(t *testing.T) {
	points := []Point{
		{X: 3, Y: 1}, {X: 1, Y: 9}, {X: 3, Y: -2}, {X: 2, Y: 0}, {X: 1, Y: 4}, {X: 3, Y: 0.5},
	}
	SortByX(points)
	want := []Point{
		{X: 1, Y: 9}, {X: 1, Y: 4}, {X: 2, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: -2}, {X: 3, Y: 0.5},
	}
	assert.Equal(t, want, points)
}

func TestSortByX_MatchesStdlibStableSort(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{0, 1, 2, 3, 17, 256, 1001} {
		points := make([]Point, n)
		for i := range points {
			points[i] = Point{X: 1 + rng.Intn(20), Y: float64(i)}
		}
		want := make([]Point, n)
		copy(want, points)
		sort.SliceStable(want, func(i, j int) bool { return want[i].X < want[j].X })

		SortByX(points)
		assert.Equal(t, want, points, "n=%d", n)
	}
}

func TestSortedByX_LeavesInputUntouched(t *testing.T) {
	points := []Point{{X: 4, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	sorted := SortedByX(points)
	assert.Equal(t, []Point{{X: 4, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, points)
	assert.Equal(t, []Point{{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}, sorted)
}
