package filtration

import (
	"fmt"
	"math"
	"sort"
)

// Alpha is an alpha-complex filtration over a 2D point cloud: the
// Delaunay triangulation restricted by empty-circumcircle radius.
// Birth values are squared circumradii, so downstream consumers take
// square roots to recover a linear distance scale.
type Alpha struct {
	points [][]float64
}

// NewAlpha validates the point cloud and returns an Alpha source.
// Points must be 2-dimensional and at least three are required to
// triangulate.
func NewAlpha(points [][]float64) (*Alpha, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: alpha complex needs at least 3 points, got %d", ErrDegenerateInput, len(points))
	}
	for i, p := range points {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, want 2", ErrDegenerateInput, i, len(p))
		}
	}

	return &Alpha{points: points}, nil
}

// NumPoints returns the number of points underlying the filtration.
func (a *Alpha) NumPoints() int { return len(a.points) }

// Simplices enumerates the alpha filtration up to maxDim (capped at 2,
// the top dimension of a planar complex), in filtration order.
//
// Births follow the standard 2D alpha convention: a triangle is born at
// its squared circumradius; an edge at its squared half-length if its
// diametral circle is empty (Gabriel edge), otherwise at the smallest
// birth among its incident triangles; vertices at 0. Monotonicity holds
// because a circumradius is at least half of every side.
//
// Time:   O(n^2) worst case for the incremental triangulation.
// Memory: O(n).
func (a *Alpha) Simplices(maxDim int) ([]Simplex, error) {
	n := len(a.points)
	if n < maxDim+1 {
		return nil, fmt.Errorf("%w: %d points cannot carry dimension-%d simplices", ErrDegenerateInput, n, maxDim)
	}

	var simps []Simplex
	for v := 0; v < n; v++ {
		simps = append(simps, Simplex{Verts: []int{v}, Birth: 0})
	}
	if maxDim < 1 {
		sortSimplices(simps)

		return simps, nil
	}

	tris := delaunay(a.points)

	// Triangle births: squared circumradii.
	triBirth := make([]float64, len(tris))
	for i, t := range tris {
		_, _, r2 := circumcircle(a.points[t[0]], a.points[t[1]], a.points[t[2]])
		triBirth[i] = r2
	}

	// Edge births: Gabriel rule against the opposite vertices of the
	// incident triangles.
	type edge struct{ a, b int }
	incident := make(map[edge][]int)
	opposite := make(map[edge][]int)
	for i, t := range tris {
		for k := 0; k < 3; k++ {
			u, v, w := t[k], t[(k+1)%3], t[(k+2)%3]
			if u > v {
				u, v = v, u
			}
			e := edge{u, v}
			incident[e] = append(incident[e], i)
			opposite[e] = append(opposite[e], w)
		}
	}

	edges := make([]edge, 0, len(incident))
	for e := range incident {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].a != edges[j].a {
			return edges[i].a < edges[j].a
		}

		return edges[i].b < edges[j].b
	})

	for _, e := range edges {
		pa, pb := a.points[e.a], a.points[e.b]
		mx, my := (pa[0]+pb[0])/2, (pa[1]+pb[1])/2
		r2 := sqDist(pa, pb) / 4

		gabriel := true
		for _, w := range opposite[e] {
			if sqDist2(a.points[w], mx, my) < r2 {
				gabriel = false
				break
			}
		}

		birth := r2
		if !gabriel {
			birth = math.Inf(1)
			for _, ti := range incident[e] {
				if triBirth[ti] < birth {
					birth = triBirth[ti]
				}
			}
		}
		simps = append(simps, Simplex{Verts: []int{e.a, e.b}, Birth: birth})
	}

	if maxDim >= 2 {
		for i, t := range tris {
			verts := []int{t[0], t[1], t[2]}
			sort.Ints(verts)
			simps = append(simps, Simplex{Verts: verts, Birth: triBirth[i]})
		}
	}

	sortSimplices(simps)

	return simps, nil
}

// delaunay computes the Delaunay triangulation of 2D points via the
// incremental Bowyer–Watson algorithm with a bounding super-triangle.
// Returns triangles as vertex-index triples; triangles touching the
// super-triangle are dropped. Degenerate (collinear) inputs yield an
// empty triangulation.
func delaunay(points [][]float64) [][3]int {
	n := len(points)

	// Bounding super-triangle, generously sized.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	cx, cy := (minX+maxX)/2, (minY+maxY)/2

	ext := make([][]float64, n, n+3)
	copy(ext, points)
	ext = append(ext,
		[]float64{cx - 20*span, cy - span},
		[]float64{cx + 20*span, cy - span},
		[]float64{cx, cy + 20*span},
	)

	type tri struct {
		v          [3]int
		cx, cy, r2 float64
	}
	valid := func(a, b, c int) (tri, bool) {
		x, y, r2 := circumcircle(ext[a], ext[b], ext[c])
		if math.IsInf(r2, 1) {
			return tri{}, false
		}

		return tri{v: [3]int{a, b, c}, cx: x, cy: y, r2: r2}, true
	}

	t0, ok := valid(n, n+1, n+2)
	if !ok {
		return nil
	}
	tris := []tri{t0}

	for p := 0; p < n; p++ {
		px, py := ext[p][0], ext[p][1]

		// Triangles whose circumcircle contains the new point.
		var keepTris []tri
		edgeCount := make(map[[2]int]int)
		var boundary [][2]int
		for _, t := range tris {
			dx, dy := px-t.cx, py-t.cy
			if dx*dx+dy*dy <= t.r2 {
				for k := 0; k < 3; k++ {
					u, v := t.v[k], t.v[(k+1)%3]
					if u > v {
						u, v = v, u
					}
					e := [2]int{u, v}
					if edgeCount[e] == 0 {
						boundary = append(boundary, e)
					}
					edgeCount[e]++
				}
			} else {
				keepTris = append(keepTris, t)
			}
		}

		// Retriangulate the cavity: connect p to each boundary edge
		// (edges shared by two removed triangles are interior).
		tris = keepTris
		for _, e := range boundary {
			if edgeCount[e] != 1 {
				continue
			}
			if t, ok := valid(e[0], e[1], p); ok {
				tris = append(tris, t)
			}
		}
	}

	var out [][3]int
	for _, t := range tris {
		if t.v[0] >= n || t.v[1] >= n || t.v[2] >= n {
			continue
		}
		out = append(out, t.v)
	}

	return out
}

// circumcircle returns the circumcenter and squared circumradius of the
// triangle (a, b, c). Collinear inputs yield an infinite radius.
func circumcircle(a, b, c []float64) (x, y, r2 float64) {
	d := 2 * (a[0]*(b[1]-c[1]) + b[0]*(c[1]-a[1]) + c[0]*(a[1]-b[1]))
	if math.Abs(d) < 1e-12 {
		return 0, 0, math.Inf(1)
	}
	a2 := a[0]*a[0] + a[1]*a[1]
	b2 := b[0]*b[0] + b[1]*b[1]
	c2 := c[0]*c[0] + c[1]*c[1]
	x = (a2*(b[1]-c[1]) + b2*(c[1]-a[1]) + c2*(a[1]-b[1])) / d
	y = (a2*(c[0]-b[0]) + b2*(a[0]-c[0]) + c2*(b[0]-a[0])) / d
	dx, dy := a[0]-x, a[1]-y

	return x, y, dx*dx + dy*dy
}

func sqDist(a, b []float64) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]

	return dx*dx + dy*dy
}

func sqDist2(p []float64, x, y float64) float64 {
	dx, dy := p[0]-x, p[1]-y

	return dx*dx + dy*dy
}
