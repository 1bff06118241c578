// Package filtration constructs simplicial complexes with monotone
// birth values from distance matrices and 2D point clouds.
//
// What:
//
//   - Simplex: canonical (sorted) vertex set with a birth value.
//   - Source: "enumerate simplices with births, up to a dimension" —
//     the single capability the persistence engine is written against.
//   - Rips: Vietoris–Rips filtration over a distance matrix; a simplex
//     is born at the maximum pairwise distance among its vertices.
//     Supports a birth threshold and a sparse approximation.
//   - Alpha: alpha-complex filtration over a 2D point cloud, built on
//     the Delaunay triangulation; birth values are squared circumradii.
//
// Why:
//
//   - Rips is metric-agnostic and pairs with Gower-style matrices.
//   - Alpha is geometrically exact and far smaller for planar clouds.
//
// Conventions:
//
//   - Vertices are always born at 0 in Rips; at 0 in Alpha as well.
//   - Simplices are returned in filtration order: by birth, then by
//     dimension (lower first), then lexicographically by vertex ids.
//     The order is total, so enumeration is deterministic.
//   - Reporting homology in dimension k requires simplices through
//     dimension k+1; callers pass maxDim accordingly.
//
// Complexity:
//
//   - Rips: O(n^(d+1)) simplices in the worst case for max dimension d;
//     the threshold and the sparse slack bound growth in practice.
//   - Alpha: O(n log n) expected for the triangulation, O(n) simplices.
//
// Errors:
//
//   - ErrDegenerateInput: fewer points than maxDim+1, or a malformed
//     (non-square, too small) distance matrix.
package filtration
