package simplicial

import (
	"fmt"
	"sort"
	"strings"
)

// BuildComplex constructs a simplicial complex from k-way relations:
// every nonempty subset of each relation's (deduplicated) entity set is
// a simplex, which guarantees downward closure by construction.
// Simplices are deduplicated via canonical sorted tuples, β₀ is exact,
// and higher Betti numbers are estimated (see package doc).
//
// Time:   O(Σ 2^k · k log k) over relations of size k.
// Memory: O(total simplices).
func BuildComplex(relations []Relation) (*Complex, error) {
	if len(relations) == 0 {
		return nil, fmt.Errorf("%w: got 0", ErrNoRelations)
	}

	seen := make(map[string]struct{})
	byDim := make(map[int][][]string)
	entities := make(map[string]struct{})

	for ri, rel := range relations {
		keys := relationKeys(rel)
		if len(keys) > MaxRelationEntities {
			return nil, fmt.Errorf("%w: relation %d has %d entities, max %d", ErrRelationTooLarge, ri, len(keys), MaxRelationEntities)
		}
		for _, k := range keys {
			entities[k] = struct{}{}
		}

		// Every nonempty subset, via bitmask over the sorted entity set.
		for mask := 1; mask < 1<<len(keys); mask++ {
			var verts []string
			for b := 0; b < len(keys); b++ {
				if mask&(1<<b) != 0 {
					verts = append(verts, keys[b])
				}
			}
			key := strings.Join(verts, "|")
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			dim := len(verts) - 1
			byDim[dim] = append(byDim[dim], verts)
		}
	}

	// Deterministic ordering within each dimension.
	counts := make(map[int]int, len(byDim))
	for dim, simps := range byDim {
		sort.Slice(simps, func(i, j int) bool { return lexLess(simps[i], simps[j]) })
		counts[dim] = len(simps)
	}

	cx := &Complex{
		SimplicesByDim: byDim,
		Counts:         counts,
		NumEntities:    len(entities),
	}
	cx.Betti = bettiNumbers(cx)

	return cx, nil
}

// relationKeys returns the sorted, deduplicated canonical keys of a
// relation's entities.
func relationKeys(rel Relation) []string {
	set := make(map[string]struct{}, len(rel.Entities))
	for _, e := range rel.Entities {
		set[e.Key()] = struct{}{}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// bettiNumbers computes β₀ exactly via union-find over the 1-skeleton
// and estimates βₖ (k ≥ 1) with the Euler-characteristic rank bound
// max(0, nₖ − nₖ₋₁ − nₖ₊₁). The estimate is approximate; exact ranks
// would require boundary-matrix reduction.
func bettiNumbers(cx *Complex) map[int]int {
	betti := make(map[int]int)
	maxDim := 0
	for dim := range cx.SimplicesByDim {
		if dim > maxDim {
			maxDim = dim
		}
	}

	// β₀: connected components of the 1-skeleton.
	idx := make(map[string]int)
	for _, s := range cx.SimplicesByDim[0] {
		idx[s[0]] = len(idx)
	}
	parent := make([]int, len(idx))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}
	comps := len(idx)
	for _, e := range cx.SimplicesByDim[1] {
		ra, rb := find(idx[e[0]]), find(idx[e[1]])
		if ra != rb {
			parent[ra] = rb
			comps--
		}
	}
	betti[0] = comps

	for k := 1; k <= maxDim; k++ {
		est := cx.Counts[k] - cx.Counts[k-1] - cx.Counts[k+1]
		if est < 0 {
			est = 0
		}
		betti[k] = est
	}

	return betti
}

// lexLess compares two canonical simplices lexicographically.
func lexLess(a, b []string) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
