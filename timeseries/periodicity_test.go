package timeseries_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tda/timeseries"
)

// weeklySeries is 90 days of a pure 7-day cycle.
func weeklySeries() []float64 {
	series := make([]float64, 90)
	for t := range series {
		series[t] = math.Sin(2 * math.Pi * float64(t) / 7)
	}

	return series
}

// TestDetectPeriodicity_WeeklySignal verifies that a 7-day sine
// ranks period 7 first among {7, 14, 30} by persistence score.
func TestDetectPeriodicity_WeeklySignal(t *testing.T) {
	results, err := timeseries.DetectPeriodicity(weeklySeries(), timeseries.PeriodicityOptions{Periods: []int{7, 14, 30}})
	require.NoError(t, err)
	require.Len(t, results, 3, "90 samples accommodate all three candidates")

	assert.Equal(t, 7, results[0].Period, "the true period must rank first")
	assert.Equal(t, "weekly", results[0].Label)
	assert.Greater(t, results[0].Score, results[1].Score)
	assert.Greater(t, results[0].Confidence, 0.0)
	assert.LessOrEqual(t, results[0].Confidence, 1.0)
}

// TestDetectPeriodicity_SkipsLongPeriods verifies that candidates
// needing more than a third of the series are skipped.
func TestDetectPeriodicity_SkipsLongPeriods(t *testing.T) {
	series := weeklySeries()[:50]

	results, err := timeseries.DetectPeriodicity(series, timeseries.PeriodicityOptions{Periods: []int{7, 30, 365}})
	require.NoError(t, err)
	require.Len(t, results, 1, "only period 7 fits three times into 50 samples")
	assert.Equal(t, 7, results[0].Period)
}

// TestDetectPeriodicity_EmptySeries verifies the empty-input
// contract.
func TestDetectPeriodicity_EmptySeries(t *testing.T) {
	_, err := timeseries.DetectPeriodicity(nil, timeseries.PeriodicityOptions{})
	assert.ErrorIs(t, err, timeseries.ErrInsufficientLength)
}
