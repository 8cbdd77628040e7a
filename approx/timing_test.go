package approx

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeRun(t *testing.T) {
	points := randomPoints(rand.New(rand.NewSource(8)), 300, 300)
	for _, s := range strategies {
		elapsed := TimeRun(s, points, DefaultPenalty)
		assert.Greater(t, elapsed, 0.0, s.Name())
		assert.Less(t, elapsed, 60.0, s.Name())
	}
}
