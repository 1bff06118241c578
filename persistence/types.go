// Package persistence core types, options, and sentinel errors.
package persistence

import (
	"errors"
	"math"
)

// Sentinel errors for persistence computation.
var (
	// ErrEmptyComplex indicates the filtration carries no simplices at a
	// dimension required by the request.
	ErrEmptyComplex = errors.New("persistence: complex has no simplices at requested dimension")
)

// Pair is one persistence feature: born at Birth, dead at Death.
// Essential features that never die carry Death = math.Inf(1).
type Pair struct {
	Birth float64
	Death float64
}

// Infinite reports whether the feature never dies.
func (p Pair) Infinite() bool { return math.IsInf(p.Death, 1) }

// Lifespan returns Death − Birth (infinite for essential features).
func (p Pair) Lifespan() float64 { return p.Death - p.Birth }

// Diagram is the persistence diagram of a single homology dimension.
type Diagram struct {
	Dim   int
	Pairs []Pair
}

// Finite returns the finite sub-diagram (essential features removed).
func (d Diagram) Finite() []Pair {
	out := make([]Pair, 0, len(d.Pairs))
	for _, p := range d.Pairs {
		if !p.Infinite() {
			out = append(out, p)
		}
	}

	return out
}

// Stats summarizes the finite lifespans of one diagram dimension.
// All fields are zero when the dimension holds no finite features;
// that is a well-defined summary, not an error. Subsamples and
// SubsampleSize are populated only by the multi-subsample strategy.
type Stats struct {
	Count   int
	Mean    float64
	Std     float64
	Median  float64
	IQR     float64
	Max     float64
	Range   float64
	Entropy float64

	Subsamples    int
	SubsampleSize int
}

// Result bundles diagrams and statistics per homology dimension.
// Diagrams and Stats are indexed by dimension, 0 through the requested
// maximum. Method names the strategy that produced the result.
type Result struct {
	Diagrams  []Diagram
	Stats     []Stats
	NumPoints int
	Method    string
}

// ScaledOptions configures ComputeScaled.
//
// Fields:
//   - MaxDim — maximum homology dimension to report (default 2).
//   - Seed — seed for the multi-subsample strategy; 0 selects a fixed
//     default seed so repeated runs agree.
type ScaledOptions struct {
	MaxDim int
	Seed   int64
}

// DefaultScaledOptions returns ScaledOptions with MaxDim=2, Seed=0.
func DefaultScaledOptions() ScaledOptions {
	return ScaledOptions{MaxDim: 2, Seed: 0}
}
