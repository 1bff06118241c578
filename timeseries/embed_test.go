package timeseries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tda/timeseries"
)

// TestEmbed_Shape verifies the point count and coordinate layout of a
// delay embedding.
func TestEmbed_Shape(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	points, err := timeseries.Embed(series, 2, 3)
	require.NoError(t, err)
	require.Len(t, points, 6, "n − (d−1)·τ = 10 − 4")
	assert.Equal(t, []float64{1, 3, 5}, points[0])
	assert.Equal(t, []float64{6, 8, 10}, points[5])
}

// TestEmbed_TooShort verifies that a series shorter than the
// embedding demands errors with ErrInsufficientLength.
func TestEmbed_TooShort(t *testing.T) {
	_, err := timeseries.Embed([]float64{1, 2, 3}, 2, 3)
	assert.ErrorIs(t, err, timeseries.ErrInsufficientLength)
}

// TestEmbed_BadParameters verifies that non-positive delay or
// dimension is rejected.
func TestEmbed_BadParameters(t *testing.T) {
	_, err := timeseries.Embed([]float64{1, 2, 3}, 0, 2)
	assert.ErrorIs(t, err, timeseries.ErrInsufficientLength)

	_, err = timeseries.Embed([]float64{1, 2, 3}, 1, 0)
	assert.ErrorIs(t, err, timeseries.ErrInsufficientLength)
}
