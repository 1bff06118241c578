package vectorize_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tda/persistence"
	"github.com/katalvlaran/tda/vectorize"
)

func dgm(pairs ...persistence.Pair) persistence.Diagram {
	return persistence.Diagram{Dim: 1, Pairs: pairs}
}

// TestBottleneck_BothEmpty verifies the trivial base case.
func TestBottleneck_BothEmpty(t *testing.T) {
	assert.Zero(t, vectorize.Bottleneck(dgm(), dgm()))
}

// TestBottleneck_Identical verifies that matching a diagram to itself
// costs nothing.
func TestBottleneck_Identical(t *testing.T) {
	d := dgm(persistence.Pair{Birth: 0.2, Death: 1.0}, persistence.Pair{Birth: 0.5, Death: 0.9})
	assert.Zero(t, vectorize.Bottleneck(d, d))
}

// TestBottleneck_AgainstEmpty verifies that an unmatched feature pays
// its diagonal projection, half its lifespan.
func TestBottleneck_AgainstEmpty(t *testing.T) {
	d := dgm(persistence.Pair{Birth: 0, Death: 1})
	assert.InDelta(t, 0.5, vectorize.Bottleneck(d, dgm()), 1e-12)
	assert.InDelta(t, 0.5, vectorize.Bottleneck(dgm(), d), 1e-12, "symmetry")
}

// TestBottleneck_CrossVersusDiagonal verifies the matching picks the
// cheaper of a cross match and two diagonal projections.
func TestBottleneck_CrossVersusDiagonal(t *testing.T) {
	a := dgm(persistence.Pair{Birth: 0, Death: 2})
	b := dgm(persistence.Pair{Birth: 0, Death: 1})

	// Cross match costs max(0, 1) = 1; sending both to the diagonal
	// costs max(1, 0.5) = 1 as well.
	assert.InDelta(t, 1.0, vectorize.Bottleneck(a, b), 1e-12)

	// A nearby feature makes the cross match cheap.
	c := dgm(persistence.Pair{Birth: 0.1, Death: 2.05})
	assert.InDelta(t, 0.1, vectorize.Bottleneck(a, c), 1e-12)
}

// TestBottleneck_EssentialIgnored verifies that infinite features are
// excluded from the matching.
func TestBottleneck_EssentialIgnored(t *testing.T) {
	a := dgm(persistence.Pair{Birth: 0, Death: math.Inf(1)})
	assert.Zero(t, vectorize.Bottleneck(a, dgm()))
}

// TestWasserstein_BothEmpty verifies the trivial base case.
func TestWasserstein_BothEmpty(t *testing.T) {
	assert.Zero(t, vectorize.Wasserstein(dgm(), dgm()))
}

// TestWasserstein_AgainstEmpty verifies that an unmatched feature
// pays its perpendicular distance to the diagonal.
func TestWasserstein_AgainstEmpty(t *testing.T) {
	d := dgm(persistence.Pair{Birth: 0, Death: 2})
	assert.InDelta(t, 2/math.Sqrt2, vectorize.Wasserstein(d, dgm()), 1e-12)
}

// TestWasserstein_SumsTransportCosts verifies that costs add across
// features, unlike the bottleneck's maximum.
func TestWasserstein_SumsTransportCosts(t *testing.T) {
	a := dgm(
		persistence.Pair{Birth: 0, Death: 1},
		persistence.Pair{Birth: 2, Death: 4},
	)
	b := dgm(
		persistence.Pair{Birth: 0, Death: 1.1},
		persistence.Pair{Birth: 2, Death: 4},
	)

	// Optimal matching pairs like with like: one exact match plus one
	// move of 0.1 along the death axis.
	assert.InDelta(t, 0.1, vectorize.Wasserstein(a, b), 1e-12)

	require.InDelta(t, vectorize.Wasserstein(a, b), vectorize.Wasserstein(b, a), 1e-12, "symmetry")
}

// TestWasserstein_PrefersDiagonalForShortFeatures verifies that a
// short-lived feature goes to the diagonal when the cross match is
// more expensive.
func TestWasserstein_PrefersDiagonalForShortFeatures(t *testing.T) {
	a := dgm(persistence.Pair{Birth: 0, Death: 0.1})
	b := dgm(persistence.Pair{Birth: 5, Death: 9})

	// Matching across would cost ~10.2; each feature retiring to the
	// diagonal costs 0.1/√2 + 4/√2.
	want := 0.1/math.Sqrt2 + 4/math.Sqrt2
	assert.InDelta(t, want, vectorize.Wasserstein(a, b), 1e-12)
}
