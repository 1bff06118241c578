// Package persistence computes persistence diagrams from filtrations
// and selects a computation strategy adapted to input size.
//
// What:
//
//   - Compute: persistent homology of a filtration.Source up to a
//     requested homology dimension. Dimension 0 runs a union-find fast
//     path over edges; dimensions ≥ 1 run sparse boundary-matrix
//     reduction over the two-element field (columns as sorted row-index
//     sets, pivot map from lowest row to owning column).
//   - Stats: per-dimension summary statistics of finite lifespans
//     (count, mean, std, median, IQR, max, range, Shannon entropy).
//   - ComputeScaled: picks exact / landmark / sparse / multi-subsample
//     execution from the point count alone, and aggregates subsample
//     statistics by averaging. Accepts a context for cooperative
//     cancellation between stages and subsample tasks.
//
// Why:
//
//	Exact reduction is cubic in the number of simplices, which grows by
//	orders of magnitude with input size. The strategy table trades
//	diagram exactness for bounded complex size: callers needing exact
//	diagrams on huge inputs must pre-filter. The contract is "best
//	obtainable summary within a bounded-size complex".
//
// Determinism:
//
//	Filtration order is total (birth, dimension, lexicographic), so two
//	runs over identical inputs produce identical diagrams. Subsampling
//	uses seeded streams; seed 0 means a fixed default seed.
//
// Conventions:
//
//   - Death of an essential (never-dying) feature is math.Inf(1).
//   - Zero-persistence pairs (death == birth) are kept; they carry no
//     mass in lifespan statistics.
//   - An empty diagram yields zero-valued statistics, not an error.
//
// Errors:
//
//   - ErrEmptyComplex: the filtration has no simplices at a dimension
//     required by the request.
package persistence
