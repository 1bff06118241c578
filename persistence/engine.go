package persistence

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/tda/filtration"
)

// Compute computes persistent homology of the filtration up to homology
// dimension maxDim. The source is asked for simplices through dimension
// maxDim+1, because a k-cycle is killed by a (k+1)-simplex.
//
// Dimension 0 is paired by union-find over edges in filtration order:
// each merge emits (0, edge birth) for the absorbed component; the
// roots that survive become essential features. Dimensions ≥ 1 run the
// standard column reduction of the mod-2 boundary matrix, one dimension
// at a time, with a pivot map from lowest row to owning column.
//
// Time:   O(m^2) worst case for m simplices (near-linear in practice).
// Memory: O(m).
func Compute(src filtration.Source, maxDim int) (*Result, error) {
	if maxDim < 0 {
		maxDim = 0
	}

	simps, err := src.Simplices(maxDim + 1)
	if err != nil {
		return nil, err
	}

	// Group by dimension, preserving filtration order within each.
	byDim := make([][]filtration.Simplex, maxDim+2)
	for _, s := range simps {
		if d := s.Dim(); d < len(byDim) {
			byDim[d] = append(byDim[d], s)
		}
	}
	for d := 0; d <= maxDim; d++ {
		if len(byDim[d]) == 0 {
			return nil, fmt.Errorf("%w: dimension %d (complex has %d vertices)", ErrEmptyComplex, d, len(byDim[0]))
		}
	}

	n := len(byDim[0])
	diagrams := make([]Diagram, maxDim+1)
	for d := range diagrams {
		diagrams[d].Dim = d
	}

	// Dimension 0: union-find fast path.
	uf := newUnionFind(n)
	positiveEdge := make([]bool, len(byDim[1]))
	for i, e := range byDim[1] {
		if uf.union(e.Verts[0], e.Verts[1]) {
			diagrams[0].Pairs = append(diagrams[0].Pairs, Pair{Birth: 0, Death: e.Birth})
		} else {
			positiveEdge[i] = true
		}
	}
	for c := uf.components(); c > 0; c-- {
		diagrams[0].Pairs = append(diagrams[0].Pairs, Pair{Birth: 0, Death: math.Inf(1)})
	}

	// Dimensions ≥ 1: per-dimension column reduction. positive[d][i]
	// marks dim-d simplices that create a d-cycle; pairedRow[d][i]
	// marks those later consumed as a pivot row by a (d+1)-column.
	positive := make([][]bool, maxDim+2)
	pairedRow := make([][]bool, maxDim+2)
	positive[1] = positiveEdge
	for d := range pairedRow {
		pairedRow[d] = make([]bool, len(byDim[d]))
	}

	for k := 2; k <= maxDim+1; k++ {
		if len(byDim[k]) == 0 {
			positive[k] = nil
			continue
		}
		rows := byDim[k-1]
		rowIdx := make(map[string]int, len(rows))
		for i, s := range rows {
			rowIdx[s.Key()] = i
		}

		positive[k] = make([]bool, len(byDim[k]))
		pivot := make(map[int]int, len(byDim[k]))
		reduced := make([][]int, len(byDim[k]))

		face := make([]int, k)
		for j, s := range byDim[k] {
			col := make([]int, 0, k+1)
			for drop := 0; drop <= k; drop++ {
				face = face[:0]
				for i, v := range s.Verts {
					if i != drop {
						face = append(face, v)
					}
				}
				col = append(col, rowIdx[filtration.Simplex{Verts: face}.Key()])
			}
			sort.Ints(col)

			for len(col) > 0 {
				low := col[len(col)-1]
				owner, ok := pivot[low]
				if !ok {
					break
				}
				col = symDiff(col, reduced[owner])
			}

			if len(col) == 0 {
				positive[k][j] = true
				continue
			}
			low := col[len(col)-1]
			pivot[low] = j
			reduced[j] = col
			pairedRow[k-1][low] = true
			diagrams[k-1].Pairs = append(diagrams[k-1].Pairs, Pair{
				Birth: rows[low].Birth,
				Death: s.Birth,
			})
		}
	}

	// Essential features: positive simplices never consumed as pivots.
	for d := 1; d <= maxDim; d++ {
		for i := range byDim[d] {
			if positive[d] != nil && positive[d][i] && !pairedRow[d][i] {
				diagrams[d].Pairs = append(diagrams[d].Pairs, Pair{
					Birth: byDim[d][i].Birth,
					Death: math.Inf(1),
				})
			}
		}
	}

	stats := make([]Stats, maxDim+1)
	for d := range diagrams {
		sortPairs(diagrams[d].Pairs)
		stats[d] = Summarize(diagrams[d])
	}

	return &Result{
		Diagrams:  diagrams,
		Stats:     stats,
		NumPoints: n,
		Method:    "exact",
	}, nil
}

// symDiff returns the mod-2 sum (symmetric difference) of two sorted
// index sets, the core reduction step.
func symDiff(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// sortPairs orders a diagram by birth, then death, infinities last.
func sortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Birth != pairs[j].Birth {
			return pairs[i].Birth < pairs[j].Birth
		}

		return pairs[i].Death < pairs[j].Death
	})
}

// unionFind is an array-backed disjoint-set structure with path
// compression and union by rank, owned locally by the call that needs
// it.
type unionFind struct {
	parent []int
	rank   []int
	comps  int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n), comps: n}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// union merges the sets of a and b; reports whether a merge happened.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	uf.comps--

	return true
}

func (uf *unionFind) components() int { return uf.comps }
