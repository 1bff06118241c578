package timeseries_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tda/timeseries"
)

// hashNoise is a deterministic pseudo-random value in [0,1).
func hashNoise(t int) float64 {
	v := math.Sin(float64(t)*12.9898) * 43758.5453

	return v - math.Floor(v)
}

// TestDetectAnomalies_SingleChannel verifies that fewer than two
// channels yield no anomalies and no error.
func TestDetectAnomalies_SingleChannel(t *testing.T) {
	channels := map[string][]float64{"bookings": make([]float64, 100)}

	anomalies, err := timeseries.DetectAnomalies(channels, timeseries.DefaultAnomalyOptions())
	require.NoError(t, err)
	assert.Empty(t, anomalies)
}

// TestDetectAnomalies_TooShort verifies that channels no longer than
// the window are rejected.
func TestDetectAnomalies_TooShort(t *testing.T) {
	channels := map[string][]float64{
		"a": make([]float64, 10),
		"b": make([]float64, 10),
	}

	_, err := timeseries.DetectAnomalies(channels, timeseries.DefaultAnomalyOptions())
	assert.ErrorIs(t, err, timeseries.ErrInsufficientLength)
}

// TestDetectAnomalies_DecorrelationBlock injects 20 samples of
// independent noise into one of two otherwise identical channels and
// verifies that at least one flagged window falls inside the block.
func TestDetectAnomalies_DecorrelationBlock(t *testing.T) {
	const n = 200
	a := make([]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = math.Sin(2 * math.Pi * float64(i) / 20)
		b[i] = a[i]
	}
	for i := 100; i < 120; i++ {
		b[i] = hashNoise(i)
	}

	anomalies, err := timeseries.DetectAnomalies(map[string][]float64{"a": a, "b": b}, timeseries.DefaultAnomalyOptions())
	require.NoError(t, err)
	require.NotEmpty(t, anomalies, "the decorrelated block must be flagged")

	var inside bool
	for _, an := range anomalies {
		assert.Greater(t, an.Score, 3.0)
		assert.Contains(t, []string{"medium", "high"}, an.Severity)
		if an.Position >= 100 && an.Position < 120 {
			inside = true
		}
	}
	assert.True(t, inside, "at least one anomaly must sit inside the injected block")
}
