package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	data := []float64{5, 1, 4, 2, 3}
	assert.Equal(t, 3.0, median(data))
	assert.Equal(t, 1.0, percentile(data, 0))
	assert.Equal(t, 5.0, percentile(data, 100))
	assert.Equal(t, 2.0, percentile(data, 25))
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, data, "input must not be reordered")

	assert.Equal(t, 2.5, median([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, median(nil))
}
