package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tda/layout"
)

// cornerRing places four 4×4 objects at the corners of a 20×20
// square, enclosing a large central void.
func cornerRing() []layout.Placement {
	return []layout.Placement{
		{X: 0, Y: 0, Width: 4, Depth: 4},
		{X: 20, Y: 0, Width: 4, Depth: 4},
		{X: 20, Y: 20, Width: 4, Depth: 4},
		{X: 0, Y: 20, Width: 4, Depth: 4},
	}
}

// room is the 20×20 boundary the corner ring sits in.
func room() [][2]float64 {
	return [][2]float64{{0, 0}, {20, 0}, {20, 20}, {0, 20}}
}

// TestAnalyze_TooFewPoints verifies that an empty plan produces an
// empty analysis rather than an error.
func TestAnalyze_TooFewPoints(t *testing.T) {
	res, err := layout.Analyze(nil, room(), layout.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.DeadSpaces)
	assert.Zero(t, res.NumPoints)
}

// TestAnalyze_EnclosedVoid verifies that four placements ringing a
// large empty center report exactly one dead space with plausible
// geometry, a fragmented connectivity score, and low coverage.
func TestAnalyze_EnclosedVoid(t *testing.T) {
	res, err := layout.Analyze(cornerRing(), room(), layout.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 20, res.NumPoints, "center plus four corners per placement")
	require.Len(t, res.Diagrams, 2)

	require.Len(t, res.DeadSpaces, 1, "one enclosed void above the threshold")
	ds := res.DeadSpaces[0]
	assert.Greater(t, ds.DeathRadius, ds.BirthRadius)
	assert.InDelta(t, 9.0, ds.BirthRadius, 1.5, "the ring closes at roughly half the corner gap")
	assert.Greater(t, ds.ApproxDiameter, 20.0, "the void spans the square's interior")
	assert.NotEmpty(t, ds.Severity)

	// Four clusters 20 apart merge far beyond the connectivity
	// threshold of 3: three strong separations.
	assert.InDelta(t, 0.25, res.ConnectivityScore, 1e-12)

	// 4 placements of 16 units over the 400-unit room.
	assert.InDelta(t, 0.16, res.CoverageScore, 1e-12)
}

// TestAnalyze_PersistenceInFloorUnits verifies that a dead space's
// persistence is reported on the same linear scale as its radii: the
// square root of the squared-radius lifespan, which exceeds the
// threshold whenever the feature is reported at all.
func TestAnalyze_PersistenceInFloorUnits(t *testing.T) {
	opts := layout.DefaultOptions()
	res, err := layout.Analyze(cornerRing(), room(), opts)
	require.NoError(t, err)

	require.NotEmpty(t, res.DeadSpaces)
	ds := res.DeadSpaces[0]
	want := math.Sqrt(ds.DeathRadius*ds.DeathRadius - ds.BirthRadius*ds.BirthRadius)
	assert.InDelta(t, want, ds.Persistence, 1e-9)
	assert.Greater(t, ds.Persistence, opts.DeadSpaceThreshold)
}

// TestAnalyze_CoverageUsesBoundary verifies that the coverage
// denominator is the room polygon's area: doubling the room halves
// the score, and a missing boundary scores zero.
func TestAnalyze_CoverageUsesBoundary(t *testing.T) {
	double := [][2]float64{{0, 0}, {40, 0}, {40, 20}, {0, 20}}

	small, err := layout.Analyze(cornerRing(), room(), layout.DefaultOptions())
	require.NoError(t, err)
	big, err := layout.Analyze(cornerRing(), double, layout.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, small.CoverageScore/2, big.CoverageScore, 1e-12)

	none, err := layout.Analyze(cornerRing(), nil, layout.DefaultOptions())
	require.NoError(t, err)
	assert.Zero(t, none.CoverageScore)
}

// TestAnalyze_DefaultExtent verifies that non-positive sizes fall
// back to a 2×2 footprint.
func TestAnalyze_DefaultExtent(t *testing.T) {
	placements := []layout.Placement{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8},
	}
	res, err := layout.Analyze(placements, room(), layout.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 15, res.NumPoints)

	// Three 2×2 fallback footprints over the 400-unit room.
	assert.InDelta(t, 0.03, res.CoverageScore, 1e-12)
}

// TestCompare_IdenticalPlans verifies that a plan compared against
// itself is at distance zero in every dimension.
func TestCompare_IdenticalPlans(t *testing.T) {
	cmp, err := layout.Compare(cornerRing(), cornerRing(), room(), layout.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, cmp.Distances, 2)
	for d, dist := range cmp.Distances {
		assert.InDelta(t, 0.0, dist, 1e-9, "self-distance in dimension %d", d)
	}
}

// TestCompare_VoidChangesDistance verifies that closing the void
// moves the H₁ diagram.
func TestCompare_VoidChangesDistance(t *testing.T) {
	filled := append(cornerRing(), layout.Placement{X: 10, Y: 10, Width: 4, Depth: 4})

	cmp, err := layout.Compare(cornerRing(), filled, room(), layout.DefaultOptions())
	require.NoError(t, err)
	assert.Greater(t, cmp.Distances[1], 0.0, "the loop shrinks or disappears when the center fills")
}
