package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tda/persistence"
)

// smallDist is a 5-point matrix with all pairwise distances 0.2,
// comfortably below the exact-strategy birth threshold.
func smallDist() [][]float64 {
	const n = 5
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = 0.2
			}
		}
	}

	return dist
}

// TestComputeScaled_ExactPath verifies that small inputs take the
// exact strategy and report diagrams through the default dimension.
func TestComputeScaled_ExactPath(t *testing.T) {
	res, err := persistence.ComputeScaled(context.Background(), smallDist(), persistence.DefaultScaledOptions())
	require.NoError(t, err)

	assert.Equal(t, "exact", res.Method)
	assert.Equal(t, 5, res.NumPoints)
	require.Len(t, res.Diagrams, 3, "default max dimension is 2")
	require.Len(t, res.Stats, 3)

	var essential int
	for _, p := range res.Diagrams[0].Pairs {
		if p.Infinite() {
			essential++
		}
	}
	assert.Equal(t, 1, essential, "all points are within the threshold of each other")
}

// TestComputeScaled_Canceled verifies that a canceled context aborts
// before any computation.
func TestComputeScaled_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := persistence.ComputeScaled(ctx, smallDist(), persistence.DefaultScaledOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestComputeScaled_Deterministic verifies that repeated runs with
// the same options agree, including the seeded default.
func TestComputeScaled_Deterministic(t *testing.T) {
	a, err := persistence.ComputeScaled(context.Background(), smallDist(), persistence.DefaultScaledOptions())
	require.NoError(t, err)
	b, err := persistence.ComputeScaled(context.Background(), smallDist(), persistence.DefaultScaledOptions())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestComputeScaled_MaxDimOne verifies the MaxDim knob limits the
// reported dimensions.
func TestComputeScaled_MaxDimOne(t *testing.T) {
	res, err := persistence.ComputeScaled(context.Background(), smallDist(), persistence.ScaledOptions{MaxDim: 1})
	require.NoError(t, err)

	assert.Len(t, res.Diagrams, 2)
	assert.Len(t, res.Stats, 2)
}
