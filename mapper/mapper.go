package mapper

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// lensDim is the dimensionality of the projected lens.
const lensDim = 2

// Build assembles a Mapper summary graph over the joint compatibility
// space of two point sets. rowFeatures is R×dr, colFeatures is C×dc,
// and compat is R×C; the joint space holds R·C rows of width dr+dc+1
// (the compatibility scalar is the last column).
//
// Time: O(R·C·(dr+dc) + cells·k²) for cells of size k.
func Build(rowFeatures, colFeatures [][]float64, compat [][]float64, opts Options) (*Graph, error) {
	nr, nc := len(rowFeatures), len(colFeatures)
	if nr == 0 || nc == 0 {
		return nil, fmt.Errorf("%w: got %d rows, %d columns", ErrInsufficientData, nr, nc)
	}
	if len(compat) != nr {
		return nil, fmt.Errorf("%w: compatibility has %d rows, want %d", ErrShapeMismatch, len(compat), nr)
	}
	for i, row := range compat {
		if len(row) != nc {
			return nil, fmt.Errorf("%w: compatibility row %d has %d entries, want %d", ErrShapeMismatch, i, len(row), nc)
		}
	}
	opts = withDefaults(opts)

	// Joint feature space: one row per (row, column) pair.
	dr, dc := len(rowFeatures[0]), len(colFeatures[0])
	width := dr + dc + 1
	joint := mat.NewDense(nr*nc, width, nil)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			r := i*nc + j
			for k, v := range rowFeatures[i] {
				joint.Set(r, k, v)
			}
			for k, v := range colFeatures[j] {
				joint.Set(r, dr+k, v)
			}
			joint.Set(r, dr+dc, compat[i][j])
		}
	}

	lens, err := projectLens(joint)
	if err != nil {
		return nil, err
	}

	nodes := coverAndCluster(joint, lens, opts, nc)
	edges := overlapEdges(nodes)

	return &Graph{
		Nodes:         nodes,
		Edges:         edges,
		NumComponents: countComponents(nodes, edges),
		TotalPairs:    nr * nc,
	}, nil
}

// projectLens projects the joint matrix onto its first two principal
// components, the variance-maximizing 2D linear lens.
func projectLens(joint *mat.Dense) (*mat.Dense, error) {
	rows, cols := joint.Dims()

	var pc stat.PC
	if ok := pc.PrincipalComponents(joint, nil); !ok {
		return nil, ErrProjection
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	k := lensDim
	if cols < k {
		k = cols
	}
	lens := mat.NewDense(rows, lensDim, nil)
	var proj mat.Dense
	proj.Mul(joint, vecs.Slice(0, cols, 0, k))
	for r := 0; r < rows; r++ {
		for c := 0; c < k; c++ {
			lens.Set(r, c, proj.At(r, c))
		}
	}

	return lens, nil
}

// coverAndCluster covers the 2D lens with opts.NCubes overlapping
// intervals per axis and runs DBSCAN inside each cell. Every cluster
// becomes a node; DBSCAN noise is discarded.
func coverAndCluster(joint, lens *mat.Dense, opts Options, nc int) []Node {
	rows, width := joint.Dims()

	var lo, hi [lensDim]float64
	for a := 0; a < lensDim; a++ {
		lo[a], hi[a] = lens.At(0, a), lens.At(0, a)
		for r := 1; r < rows; r++ {
			v := lens.At(r, a)
			if v < lo[a] {
				lo[a] = v
			}
			if v > hi[a] {
				hi[a] = v
			}
		}
	}

	inInterval := func(axis, i int, v float64) bool {
		w := (hi[axis] - lo[axis]) / float64(opts.NCubes)
		if w == 0 {
			return i == 0
		}
		pad := opts.Overlap * w / 2
		start := lo[axis] + float64(i)*w - pad
		end := lo[axis] + float64(i+1)*w + pad

		return v >= start && v <= end
	}

	var nodes []Node
	for cx := 0; cx < opts.NCubes; cx++ {
		for cy := 0; cy < opts.NCubes; cy++ {
			var members []int
			for r := 0; r < rows; r++ {
				if inInterval(0, cx, lens.At(r, 0)) && inInterval(1, cy, lens.At(r, 1)) {
					members = append(members, r)
				}
			}
			if len(members) == 0 {
				continue
			}

			cell := make([][]float64, len(members))
			for i, m := range members {
				cell[i] = mat.Row(nil, m, joint)
			}
			labels, clusters := dbscan(cell, opts.Eps, opts.MinSamples)

			cube := cx*opts.NCubes + cy
			for c := 0; c < clusters; c++ {
				var idx []int
				var meanCompat float64
				for i, l := range labels {
					if l == c {
						idx = append(idx, members[i])
						meanCompat += cell[i][width-1]
					}
				}
				if len(idx) == 0 {
					continue
				}
				pairs := make([][2]int, len(idx))
				for i, m := range idx {
					pairs[i] = [2]int{m / nc, m % nc}
				}
				nodes = append(nodes, Node{
					ID:                fmt.Sprintf("cube%d_cluster%d", cube, c),
					Size:              len(idx),
					MeanCompatibility: meanCompat / float64(len(idx)),
					Members:           idx,
					Pairs:             pairs,
				})
			}
		}
	}

	return nodes
}

// overlapEdges connects every pair of nodes whose member sets
// intersect. Members are sorted ascending, so the intersection test is
// a linear merge.
func overlapEdges(nodes []Node) []Edge {
	var edges []Edge
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if sortedIntersect(nodes[i].Members, nodes[j].Members) {
				edges = append(edges, Edge{Source: nodes[i].ID, Target: nodes[j].ID})
			}
		}
	}

	return edges
}

func sortedIntersect(a, b []int) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			return true
		}
	}

	return false
}

// countComponents counts connected components of the node/edge graph
// via breadth-first traversal.
func countComponents(nodes []Node, edges []Edge) int {
	if len(nodes) == 0 {
		return 0
	}
	adj := make(map[string][]string, len(nodes))
	for _, e := range edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}

	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	sort.Strings(ids)

	visited := make(map[string]bool, len(ids))
	comps := 0
	for _, id := range ids {
		if visited[id] {
			continue
		}
		comps++
		queue := []string{id}
		visited[id] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, nb := range adj[queue[qi]] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
	}

	return comps
}

// withDefaults fills zero/invalid options from DefaultOptions.
func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.NCubes <= 0 {
		opts.NCubes = def.NCubes
	}
	if opts.Overlap <= 0 {
		opts.Overlap = def.Overlap
	}
	if opts.Eps <= 0 {
		opts.Eps = def.Eps
	}
	if opts.MinSamples <= 0 {
		opts.MinSamples = def.MinSamples
	}

	return opts
}
