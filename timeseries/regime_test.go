package timeseries_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tda/timeseries"
)

// TestDetectRegimeChanges_TooShort verifies that a series no longer
// than the window is rejected.
func TestDetectRegimeChanges_TooShort(t *testing.T) {
	_, err := timeseries.DetectRegimeChanges(make([]float64, 30), timeseries.DefaultRegimeOptions())
	assert.ErrorIs(t, err, timeseries.ErrInsufficientLength)
}

// TestDetectRegimeChanges_ConstantSeries verifies that a flat series
// yields no change points and no error.
func TestDetectRegimeChanges_ConstantSeries(t *testing.T) {
	series := make([]float64, 120)
	for i := range series {
		series[i] = 3.5
	}

	changes, err := timeseries.DetectRegimeChanges(series, timeseries.DefaultRegimeOptions())
	require.NoError(t, err)
	assert.Empty(t, changes)
}

// TestDetectRegimeChanges_OscillationDies verifies that the collapse
// of a strong oscillation into near-silence is flagged close to the
// transition.
func TestDetectRegimeChanges_OscillationDies(t *testing.T) {
	series := make([]float64, 200)
	for i := range series {
		if i < 100 {
			series[i] = math.Sin(2 * math.Pi * float64(i) / 10)
		} else {
			series[i] = 0.05 * math.Sin(2*math.Pi*float64(i)/50)
		}
	}

	changes, err := timeseries.DetectRegimeChanges(series, timeseries.RegimeOptions{Window: 30, Step: 4})
	require.NoError(t, err)
	require.NotEmpty(t, changes, "losing the loop structure must register")

	for _, c := range changes {
		assert.InDelta(t, 100, c.Position, 16, "change points cluster at the transition")
		assert.Greater(t, c.Severity, 1.0, "severity is measured in threshold units")
		assert.NotEqual(t, c.NormBefore, c.NormAfter)
	}
}
