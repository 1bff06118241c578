// Package layout analyzes 2D floor plans with persistent homology.
//
// What
//
// A floor plan is a set of rectangular placements (desks, machines,
// shelving). Each placement is sampled as its center plus four
// corners; an alpha filtration over those samples yields persistence
// diagrams whose features translate directly into layout facts:
//
//   - long-lived H₁ loops are dead spaces — enclosed voids the
//     placements surround but do not cover;
//   - long-lived H₀ components are disconnected placement clusters,
//     summarized as a connectivity score;
//   - placed area against the room boundary polygon's area gives a
//     coverage score.
//
// Compare runs the analysis on two plans and reports per-dimension
// Wasserstein distances between their diagrams, a single number for
// "how differently is this floor organized".
//
// Why
//
// Grid-based void detection needs a resolution parameter and misses
// voids at other scales; persistence reports every void with its exact
// birth and death radius, so thresholds are in floor units.
//
// Complexity
//
// Analyze is dominated by the alpha filtration, O(P log P) expected
// over P sample points, plus the persistence reduction.
//
// Errors
//
// Plans with fewer than four sample points return an empty Analysis
// and no error: there is nothing topological to say about them.
package layout
