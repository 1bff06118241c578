// Package distance builds normalized, symmetric distance matrices for
// the filtration builders.
//
// What:
//
//   - Gower: a weighted Gower-style metric over mixed-type records —
//     continuous fields use range-normalized absolute difference,
//     the categorical field matches 0/1, and the boolean amenity
//     vector uses Dice dissimilarity. Per-feature distances are
//     averaged with caller weights; capacity and price carry a
//     configurable emphasis (default 1.5×). Output is clamped to
//     [0,1] and satisfies the triangle inequality when each feature
//     column is scaled to [0,1], which the range normalization does.
//   - FromPoints: plain pairwise Euclidean distances from a raw point
//     cloud in R^d.
//
// Why:
//
//	Rips filtrations are metric-agnostic; feeding them a bounded,
//	normalized matrix keeps the strategy thresholds (0.8, 0.5)
//	meaningful across heterogeneous inputs.
//
// Complexity: O(n²·f) for n records over f features; O(n²·d) for
// points in R^d.
//
// Errors:
//
//   - ErrInvalidInput: fewer than 2 records/points, or inconsistent
//     field shapes across records.
package distance
