// Package mapper core types, options, and sentinel errors.
package mapper

import "errors"

// Sentinel errors for Mapper graph construction.
var (
	// ErrInsufficientData indicates an empty input point set.
	ErrInsufficientData = errors.New("mapper: input point sets must be non-empty")
	// ErrProjection indicates the principal-component projection failed.
	ErrProjection = errors.New("mapper: principal component projection failed")
	// ErrShapeMismatch indicates the compatibility matrix shape does not
	// match the two point sets.
	ErrShapeMismatch = errors.New("mapper: compatibility matrix shape mismatch")
)

// Options configures the cover and the per-cell clusterer.
//
// Fields:
//   - NCubes — overlapping intervals per lens axis (default 12).
//   - Overlap — fractional overlap between adjacent intervals
//     (default 0.4).
//   - Eps — DBSCAN neighborhood radius (default 0.3).
//   - MinSamples — DBSCAN minimum neighborhood size for a core point
//     (default 5).
type Options struct {
	NCubes     int
	Overlap    float64
	Eps        float64
	MinSamples int
}

// DefaultOptions returns the standard Mapper configuration:
// NCubes=12, Overlap=0.4, Eps=0.3, MinSamples=5.
func DefaultOptions() Options {
	return Options{NCubes: 12, Overlap: 0.4, Eps: 0.3, MinSamples: 5}
}

// Node is one cluster in the summary graph. Members are indices into
// the joint pair space; Pairs decodes each member back to its
// (row index, column index) origin.
type Node struct {
	ID                string
	Size              int
	MeanCompatibility float64
	Members           []int
	Pairs             [][2]int
}

// Edge connects two nodes whose member sets intersect.
type Edge struct {
	Source string
	Target string
}

// Graph is the assembled Mapper summary graph.
type Graph struct {
	Nodes         []Node
	Edges         []Edge
	NumComponents int
	TotalPairs    int
}
