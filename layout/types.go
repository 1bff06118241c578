// Package layout core types and options.
package layout

import "github.com/katalvlaran/tda/persistence"

// defaultExtent is the assumed side length of a placement whose width
// or depth was not recorded.
const defaultExtent = 2.0

// Placement is one rectangular object on the floor, positioned by its
// center. Width and Depth at or below zero fall back to a 2×2 square.
type Placement struct {
	X     float64
	Y     float64
	Width float64
	Depth float64
}

// Options configures Analyze.
//
// Fields:
//   - DeadSpaceThreshold — minimum dead-space radius, in floor units,
//     worth reporting (default 6).
//   - ConnectivityThreshold — component separations beyond this radius
//     count as fragmentation (default 3).
type Options struct {
	DeadSpaceThreshold    float64
	ConnectivityThreshold float64
}

// DefaultOptions returns Options with DeadSpaceThreshold=6,
// ConnectivityThreshold=3.
func DefaultOptions() Options {
	return Options{DeadSpaceThreshold: 6, ConnectivityThreshold: 3}
}

// DeadSpace is one enclosed void. All fields are in floor units, the
// alpha filtration's squared scale already converted back: Persistence
// is the square root of the filtration lifespan, so BirthRadius² +
// Persistence² = DeathRadius².
type DeadSpace struct {
	BirthRadius    float64
	DeathRadius    float64
	Persistence    float64
	ApproxDiameter float64
	Severity       string
}

// Analysis is the full topological report of one floor plan.
// CoverageScore is placed area over the room boundary area, capped at
// 1; ConnectivityScore is 1 for a single connected cluster and decays
// toward 0 as clusters fragment.
type Analysis struct {
	DeadSpaces        []DeadSpace
	CoverageScore     float64
	ConnectivityScore float64
	Diagrams          []persistence.Diagram
	NumPoints         int
}

// Comparison is the result of Compare: both analyses plus the
// per-dimension Wasserstein distances between their diagrams.
type Comparison struct {
	A         Analysis
	B         Analysis
	Distances []float64
}
