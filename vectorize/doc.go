// Package vectorize turns persistence diagrams into fixed-length
// feature vectors and compares diagrams directly with matching-based
// metrics.
//
// What
//
//   - StatisticsVector — a 36-element summary (12 statistics × 3
//     homology dimensions) suitable for downstream ML models: counts,
//     moments, quantiles, and lifespan entropy per dimension.
//   - Bottleneck — the L∞ matching distance between two diagrams,
//     computed by binary search over candidate costs with a bipartite
//     feasibility matching.
//   - Wasserstein — the 1-Wasserstein matching distance with L2
//     ground metric, computed by the Hungarian algorithm on a
//     diagonal-augmented cost matrix.
//
// Why
//
// Diagrams are multisets of varying size; models and indexes need
// fixed-length vectors, while nearest-neighbor search over diagrams
// themselves needs a proper metric that respects the diagonal (a
// feature may always be matched to its own birth=death projection).
//
// Complexity
//
//   - StatisticsVector: O(P log P) over P total pairs (sorting for
//     quantiles).
//   - Bottleneck: O((n+m)³ log(n+m)) in the worst case.
//   - Wasserstein: O((n+m)³) via the Hungarian algorithm.
//
// Errors
//
// The package has no sentinel errors: empty diagrams vectorize to zero
// blocks, and the distance between two empty diagrams is zero.
package vectorize
