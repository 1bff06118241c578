// Package simplicial builds simplicial complexes from k-way relational
// records and derives Betti numbers and higher-order affinity signals.
//
// What:
//
//   - BuildComplex: every nonempty subset of each relation's entity set
//     becomes a simplex, so downward closure holds by construction;
//     simplices are deduplicated via canonical sorted form.
//   - Betti numbers: β₀ is exact (union-find over the 1-skeleton).
//     Higher βₖ use the Euler-characteristic rank estimate
//     max(0, |Sₖ| − |Sₖ₋₁| − |Sₖ₊₁|). This is an APPROXIMATION, not an
//     exact rank computation; an exact implementation would reduce the
//     boundary matrices as the persistence engine does.
//   - Affinities: row-normalized co-occurrence scores between two
//     designated entity types.
//   - Signals: a Gini-coefficient skew of per-entity relation counts
//     ("gradient strength") plus a cycle flag (any 2-simplex present).
//
// Why:
//
//	Pairwise graphs cannot represent a 4-way booking; a simplicial
//	complex captures the multi-way structure directly, and its Betti
//	numbers expose disconnected clusters, cyclic patterns, and voids.
//
// Complexity: O(Σ 2^|relation|) simplices; relations are capped at
// MaxRelationEntities members to keep the expansion bounded.
//
// Errors:
//
//   - ErrNoRelations: the input holds no relations.
//   - ErrRelationTooLarge: a relation exceeds MaxRelationEntities.
package simplicial
