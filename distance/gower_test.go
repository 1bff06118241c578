package distance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tda/distance"
)

// sampleRecords returns three mixed-type records with a shared
// amenity length.
func sampleRecords() []distance.Record {
	return []distance.Record{
		{Capacity: 50, Price: 100, Area: 80, Lat: 52.1, Lng: 4.3, Category: "loft", Amenities: []bool{true, true, false}},
		{Capacity: 50, Price: 100, Area: 80, Lat: 52.1, Lng: 4.3, Category: "loft", Amenities: []bool{true, true, false}},
		{Capacity: 200, Price: 900, Area: 400, Lat: 48.8, Lng: 2.3, Category: "hall", Amenities: []bool{false, false, true}},
	}
}

// TestGower_TooFewRecords verifies the minimum-size contract.
func TestGower_TooFewRecords(t *testing.T) {
	_, err := distance.Gower([]distance.Record{{}}, distance.DefaultGowerOptions())
	assert.ErrorIs(t, err, distance.ErrInvalidInput)
}

// TestGower_AmenityLengthMismatch verifies that inconsistent amenity
// vectors are rejected.
func TestGower_AmenityLengthMismatch(t *testing.T) {
	records := []distance.Record{
		{Amenities: []bool{true}},
		{Amenities: []bool{true, false}},
	}
	_, err := distance.Gower(records, distance.DefaultGowerOptions())
	assert.ErrorIs(t, err, distance.ErrInvalidInput)
}

// TestGower_MetricShape verifies symmetry, zero diagonal, identity of
// indiscernibles, and the [0,1] range.
func TestGower_MetricShape(t *testing.T) {
	dist, err := distance.Gower(sampleRecords(), distance.DefaultGowerOptions())
	require.NoError(t, err)
	require.Len(t, dist, 3)

	for i := range dist {
		assert.Equal(t, 0.0, dist[i][i], "zero diagonal")
		for j := range dist {
			assert.Equal(t, dist[i][j], dist[j][i], "symmetry at (%d,%d)", i, j)
			assert.GreaterOrEqual(t, dist[i][j], 0.0)
			assert.LessOrEqual(t, dist[i][j], 1.0)
		}
	}
	assert.Equal(t, 0.0, dist[0][1], "identical records are at distance 0")
	assert.Greater(t, dist[0][2], 0.5, "fully different records are far apart")
}

// TestGower_EmphasisWeight verifies that raising the emphasis weight
// amplifies price/capacity differences relative to everything else.
func TestGower_EmphasisWeight(t *testing.T) {
	records := []distance.Record{
		{Capacity: 10, Price: 100, Category: "a", Amenities: []bool{true}},
		{Capacity: 10, Price: 500, Category: "a", Amenities: []bool{true}},
	}

	low, err := distance.Gower(records, distance.GowerOptions{EmphasisWeight: 1.0})
	require.NoError(t, err)
	high, err := distance.Gower(records, distance.GowerOptions{EmphasisWeight: 3.0})
	require.NoError(t, err)

	assert.Greater(t, high[0][1], low[0][1], "a heavier emphasis weight must increase a price-only distance")
}

// TestFromPoints_Euclidean pins a 3-4-5 triangle.
func TestFromPoints_Euclidean(t *testing.T) {
	dist, err := distance.FromPoints([][]float64{{0, 0}, {3, 0}, {3, 4}})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, dist[0][1], 1e-12)
	assert.InDelta(t, 4.0, dist[1][2], 1e-12)
	assert.InDelta(t, 5.0, dist[0][2], 1e-12)
}

// TestFromPoints_DimensionMismatch verifies that ragged point clouds
// are rejected.
func TestFromPoints_DimensionMismatch(t *testing.T) {
	_, err := distance.FromPoints([][]float64{{0, 0}, {1}})
	assert.ErrorIs(t, err, distance.ErrInvalidInput)
}
