// Package distance core types, options, and sentinel errors.
package distance

import "errors"

// Sentinel errors for distance-matrix construction.
var (
	// ErrInvalidInput indicates fewer than two records or records with
	// inconsistent field shapes.
	ErrInvalidInput = errors.New("distance: invalid input records")
)

// Record is one mixed-type feature record. Continuous fields are
// range-normalized per column; Category matches exactly or not at all;
// Amenities is a fixed-size boolean vector compared with Dice
// dissimilarity. All records in one call must share the amenity length.
type Record struct {
	Capacity  float64
	Price     float64
	Area      float64
	Lat       float64
	Lng       float64
	Category  string
	Amenities []bool
}

// GowerOptions configures the Gower-style metric.
//
// Fields:
//   - EmphasisWeight — weight applied to the capacity and price
//     features (all other features weigh 1). Values ≤ 0 fall back to
//     the default 1.5.
type GowerOptions struct {
	EmphasisWeight float64
}

// DefaultGowerOptions returns GowerOptions with EmphasisWeight=1.5.
func DefaultGowerOptions() GowerOptions {
	return GowerOptions{EmphasisWeight: 1.5}
}
