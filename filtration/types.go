// Package filtration core types, options, and sentinel errors.
package filtration

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for filtration construction.
var (
	// ErrDegenerateInput indicates too few points for the requested dimension,
	// or a distance matrix that is not square.
	ErrDegenerateInput = errors.New("filtration: too few points for requested dimension")
)

// Simplex is a canonical simplex: Verts is sorted ascending and holds
// dim+1 distinct vertex indices; Birth is the filtration value at which
// the simplex enters the complex.
type Simplex struct {
	Verts []int
	Birth float64
}

// Dim returns the simplex dimension (number of vertices minus one).
func (s Simplex) Dim() int { return len(s.Verts) - 1 }

// Key returns the canonical string form of the vertex set, used for
// deduplication and face lookup.
func (s Simplex) Key() string {
	var b strings.Builder
	for i, v := range s.Verts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// Source enumerates the simplices of a filtration, in filtration order,
// up to the given maximum simplex dimension. Implementations must
// return a totally ordered, monotone filtration: every face precedes
// its cofaces and birth(face) ≤ birth(coface).
type Source interface {
	Simplices(maxDim int) ([]Simplex, error)
}

// RipsOptions configures a Vietoris–Rips filtration.
//
// Fields:
//   - Threshold — discard simplices born above this value. A value of 0
//     (or negative) disables thresholding.
//   - Sparse — slack factor ε for the sparse approximation. A value of
//     0 (or negative) builds the exact complex. Positive values drop
//     edges whose inclusion would not change connectivity within a
//     multiplicative (1+ε) slack, trading diagram exactness for
//     near-linear complex growth.
type RipsOptions struct {
	Threshold float64
	Sparse    float64
}

// DefaultRipsOptions returns RipsOptions for an exact, unthresholded
// Rips filtration.
func DefaultRipsOptions() RipsOptions {
	return RipsOptions{Threshold: 0, Sparse: 0}
}

// sortSimplices orders simplices by birth, then dimension (lower
// first), then lexicographically by vertex ids. The order is total,
// which makes downstream persistence pairing deterministic.
func sortSimplices(simps []Simplex) {
	sort.Slice(simps, func(i, j int) bool {
		a, b := simps[i], simps[j]
		if a.Birth != b.Birth {
			return a.Birth < b.Birth
		}
		if len(a.Verts) != len(b.Verts) {
			return len(a.Verts) < len(b.Verts)
		}
		for k := range a.Verts {
			if a.Verts[k] != b.Verts[k] {
				return a.Verts[k] < b.Verts[k]
			}
		}

		return false
	})
}
