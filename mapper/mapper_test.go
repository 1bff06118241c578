package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tda/mapper"
)

// TestBuild_EmptyInput verifies the empty point-set contract.
func TestBuild_EmptyInput(t *testing.T) {
	_, err := mapper.Build(nil, [][]float64{{0}}, nil, mapper.DefaultOptions())
	assert.ErrorIs(t, err, mapper.ErrInsufficientData)
}

// TestBuild_ShapeMismatch verifies that the compatibility matrix must
// match the two point sets.
func TestBuild_ShapeMismatch(t *testing.T) {
	rows := [][]float64{{0}, {1}}
	cols := [][]float64{{0}}
	_, err := mapper.Build(rows, cols, [][]float64{{1}}, mapper.DefaultOptions())
	assert.ErrorIs(t, err, mapper.ErrShapeMismatch)
}

// TestBuild_TwoSeparatedBlobs verifies that two well-separated
// feature blobs produce a graph with two connected components and
// that every pair index decodes back to its origin.
func TestBuild_TwoSeparatedBlobs(t *testing.T) {
	var rows [][]float64
	for i := 0; i < 10; i++ {
		rows = append(rows, []float64{0})
	}
	for i := 0; i < 10; i++ {
		rows = append(rows, []float64{100})
	}
	cols := [][]float64{{0}}
	compat := make([][]float64, len(rows))
	for i := range compat {
		compat[i] = []float64{1}
	}

	g, err := mapper.Build(rows, cols, compat, mapper.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 20, g.TotalPairs)
	assert.NotEmpty(t, g.Nodes)
	assert.Equal(t, 2, g.NumComponents, "the blobs are 100 apart, far beyond any cover overlap")

	covered := make(map[int]bool)
	for _, n := range g.Nodes {
		assert.Equal(t, n.Size, len(n.Members))
		require.Len(t, n.Pairs, n.Size)
		assert.InDelta(t, 1.0, n.MeanCompatibility, 1e-12)
		for i, m := range n.Members {
			covered[m] = true
			assert.Equal(t, [2]int{m, 0}, n.Pairs[i], "one column means pair (m, 0)")
		}
	}
	assert.Len(t, covered, 20, "every pair lands in at least one node")
}

// TestBuild_NoiseDiscarded verifies that an isolated point below the
// cluster minimum is not represented by any node.
func TestBuild_NoiseDiscarded(t *testing.T) {
	var rows [][]float64
	for i := 0; i < 10; i++ {
		rows = append(rows, []float64{0})
	}
	rows = append(rows, []float64{50}) // far from the blob, alone in its cell
	cols := [][]float64{{0}}
	compat := make([][]float64, len(rows))
	for i := range compat {
		compat[i] = []float64{1}
	}

	g, err := mapper.Build(rows, cols, compat, mapper.DefaultOptions())
	require.NoError(t, err)

	for _, n := range g.Nodes {
		for _, m := range n.Members {
			assert.NotEqual(t, 10, m, "the isolated point is DBSCAN noise")
		}
	}
	assert.Equal(t, 1, g.NumComponents)
}
