package filtration

import (
	"fmt"
	"math"
)

// Rips is a Vietoris–Rips filtration over a symmetric distance matrix.
// A simplex {v0..vk} is born at the maximum pairwise distance among its
// vertices; vertices are born at 0.
type Rips struct {
	dist   [][]float64
	thresh float64
	sparse float64
}

// NewRips validates the distance matrix and returns a Rips source.
// The matrix must be square with at least two rows; entries are read as
// given (symmetry and zero diagonal are the caller's contract).
func NewRips(dist [][]float64, opts RipsOptions) (*Rips, error) {
	n := len(dist)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrDegenerateInput, n)
	}
	for i, row := range dist {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrDegenerateInput, i, len(row), n)
		}
	}

	thresh := opts.Threshold
	if thresh <= 0 {
		thresh = math.Inf(1)
	}

	return &Rips{dist: dist, thresh: thresh, sparse: opts.Sparse}, nil
}

// NumPoints returns the number of points underlying the filtration.
func (r *Rips) NumPoints() int { return len(r.dist) }

// Simplices enumerates the Rips filtration up to maxDim, in filtration
// order. The expansion walks lower neighbors: a k-simplex is extended
// only by vertices greater than its maximum vertex that are within the
// threshold of every current vertex, so each simplex is produced once
// in canonical form.
//
// Time:   O(n^2 + m·n) for m output simplices.
// Memory: O(m).
func (r *Rips) Simplices(maxDim int) ([]Simplex, error) {
	n := len(r.dist)
	if n < maxDim+1 {
		return nil, fmt.Errorf("%w: %d points cannot carry dimension-%d simplices", ErrDegenerateInput, n, maxDim)
	}

	keep := r.edgeFilter()

	var simps []Simplex
	for v := 0; v < n; v++ {
		simps = append(simps, Simplex{Verts: []int{v}, Birth: 0})
	}
	if maxDim < 1 {
		sortSimplices(simps)

		return simps, nil
	}

	// Edges, then recursive expansion by lower neighbors.
	var expand func(verts []int, birth float64)
	expand = func(verts []int, birth float64) {
		if len(verts)-1 == maxDim {
			return
		}
		last := verts[len(verts)-1]
		for w := last + 1; w < n; w++ {
			b := birth
			ok := true
			for _, v := range verts {
				d := r.dist[v][w]
				if d > r.thresh || !keep(v, w) {
					ok = false
					break
				}
				if d > b {
					b = d
				}
			}
			if !ok {
				continue
			}
			next := make([]int, len(verts)+1)
			copy(next, verts)
			next[len(verts)] = w
			simps = append(simps, Simplex{Verts: next, Birth: b})
			expand(next, b)
		}
	}
	for v := 0; v < n; v++ {
		expand([]int{v}, 0)
	}

	sortSimplices(simps)

	return simps, nil
}

// edgeFilter returns the edge predicate for the current sparsity mode.
// Exact mode admits every edge; sparse mode drops edges that are long
// relative to both endpoints' greedy-permutation insertion radii, so
// connectivity is preserved within a (1+ε) multiplicative slack while
// complex growth stays near linear. The resulting diagrams are
// approximate.
func (r *Rips) edgeFilter() func(i, j int) bool {
	if r.sparse <= 0 {
		return func(int, int) bool { return true }
	}

	radii := insertionRadii(r.dist)
	eps := r.sparse
	scale := 2 * (1 + eps) / eps
	return func(i, j int) bool {
		limit := radii[i]
		if radii[j] < limit {
			limit = radii[j]
		}

		return r.dist[i][j] <= scale*limit
	}
}

// insertionRadii computes, for each point, the radius at which a
// farthest-point (greedy permutation) traversal inserts it: the
// distance to the nearest already-inserted point. The first point gets
// +Inf. Radii shrink with local density, which is what lets the sparse
// filter prune redundant long edges in dense regions.
func insertionRadii(dist [][]float64) []float64 {
	n := len(dist)
	radii := make([]float64, n)
	nearest := make([]float64, n)
	inserted := make([]bool, n)
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}

	cur := 0
	radii[0] = math.Inf(1)
	inserted[0] = true
	for step := 1; step < n; step++ {
		next, best := -1, -1.0
		for i := 0; i < n; i++ {
			if inserted[i] {
				continue
			}
			if dist[cur][i] < nearest[i] {
				nearest[i] = dist[cur][i]
			}
			if nearest[i] > best {
				best, next = nearest[i], i
			}
		}
		radii[next] = best
		inserted[next] = true
		cur = next
	}

	return radii
}

// GreedySubsample returns the indices of the first k points of the
// greedy (farthest-point) permutation of the matrix, starting from
// index 0. Used by the landmark strategy for large inputs.
func GreedySubsample(dist [][]float64, k int) []int {
	n := len(dist)
	if k >= n {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}

		return idx
	}

	nearest := make([]float64, n)
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}
	chosen := make([]int, 0, k)
	cur := 0
	for len(chosen) < k {
		chosen = append(chosen, cur)
		next, best := -1, -1.0
		for i := 0; i < n; i++ {
			if dist[cur][i] < nearest[i] {
				nearest[i] = dist[cur][i]
			}
			if nearest[i] > best && nearest[i] > 0 {
				// Already-chosen points have nearest 0 and are skipped.
				best, next = nearest[i], i
			}
		}
		if next < 0 {
			break
		}
		cur = next
	}

	return chosen
}
