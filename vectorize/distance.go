package vectorize

import (
	"math"
	"sort"

	"github.com/katalvlaran/tda/persistence"
)

// Bottleneck returns the bottleneck distance between two diagrams: the
// smallest c such that every feature of one diagram can be matched to
// a feature of the other, or to its own diagonal projection, moving no
// feature further than c in the L∞ metric. Essential features are
// excluded; two empty diagrams are at distance 0.
//
// Time: O((n+m)³·log(n+m)) — binary search over candidate costs, each
// checked with an augmenting-path matching.
func Bottleneck(a, b persistence.Diagram) float64 {
	pa, pb := a.Finite(), b.Finite()
	if len(pa) == 0 && len(pb) == 0 {
		return 0
	}

	// Every achievable bottleneck value is either a cross distance or a
	// diagonal projection distance.
	candidates := []float64{0}
	for _, p := range pa {
		candidates = append(candidates, diagDistInf(p))
		for _, q := range pb {
			candidates = append(candidates, distInf(p, q))
		}
	}
	for _, q := range pb {
		candidates = append(candidates, diagDistInf(q))
	}
	sort.Float64s(candidates)

	lo, hi := 0, len(candidates)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if matchable(pa, pb, candidates[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return candidates[lo]
}

// Wasserstein returns the 1-Wasserstein distance between two diagrams:
// the minimum total L2 transport cost of a matching in which unmatched
// features pay their perpendicular distance to the diagonal. Essential
// features are excluded; two empty diagrams are at distance 0.
//
// Time: O((n+m)³) via the Hungarian algorithm.
func Wasserstein(a, b persistence.Diagram) float64 {
	pa, pb := a.Finite(), b.Finite()
	n, m := len(pa), len(pb)
	if n == 0 && m == 0 {
		return 0
	}

	// Augmented square cost matrix: rows are A's features plus m
	// diagonal slots, columns are B's features plus n diagonal slots.
	size := n + m
	cost := make([][]float64, size)
	for i := range cost {
		cost[i] = make([]float64, size)
	}
	for i, p := range pa {
		for j, q := range pb {
			cost[i][j] = dist2(p, q)
		}
		for j := m; j < size; j++ {
			cost[i][j] = diagDist2(p)
		}
	}
	for i := n; i < size; i++ {
		for j, q := range pb {
			cost[i][j] = diagDist2(q)
		}
	}

	return hungarian(cost)
}

// distInf is the L∞ distance between two persistence features.
func distInf(p, q persistence.Pair) float64 {
	return math.Max(math.Abs(p.Birth-q.Birth), math.Abs(p.Death-q.Death))
}

// diagDistInf is the L∞ distance from a feature to the diagonal.
func diagDistInf(p persistence.Pair) float64 {
	return p.Lifespan() / 2
}

// dist2 is the L2 distance between two persistence features.
func dist2(p, q persistence.Pair) float64 {
	db, dd := p.Birth-q.Birth, p.Death-q.Death

	return math.Sqrt(db*db + dd*dd)
}

// diagDist2 is the L2 (perpendicular) distance from a feature to the
// diagonal.
func diagDist2(p persistence.Pair) float64 {
	return p.Lifespan() / math.Sqrt2
}

// matchable reports whether a perfect matching exists at cost bound c.
// The bipartite graph has A's features plus len(b) diagonal slots on
// the left and B's features plus len(a) diagonal slots on the right;
// diagonal slots always match each other, so feasibility reduces to
// finding augmenting paths for every left node.
func matchable(a, b []persistence.Pair, c float64) bool {
	n, m := len(a), len(b)
	left, right := n+m, m+n
	// allowed reports whether left node i may take right node j.
	allowed := func(i, j int) bool {
		switch {
		case i < n && j < m:
			return distInf(a[i], b[j]) <= c
		case i < n:
			return diagDistInf(a[i]) <= c
		case j < m:
			return diagDistInf(b[j]) <= c
		default:
			return true
		}
	}

	matchOf := make([]int, right)
	for j := range matchOf {
		matchOf[j] = -1
	}

	var visited []bool
	var augment func(i int) bool
	augment = func(i int) bool {
		for j := 0; j < right; j++ {
			if visited[j] || !allowed(i, j) {
				continue
			}
			visited[j] = true
			if matchOf[j] == -1 || augment(matchOf[j]) {
				matchOf[j] = i
				return true
			}
		}

		return false
	}

	for i := 0; i < left; i++ {
		visited = make([]bool, right)
		if !augment(i) {
			return false
		}
	}

	return true
}

// hungarian solves the square assignment problem by the potentials
// method and returns the minimum total cost.
func hungarian(cost [][]float64) float64 {
	n := len(cost)
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	owner := make([]int, n+1)
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		owner[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}

		for {
			used[j0] = true
			i0 := owner[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[owner[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if owner[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			owner[j0] = owner[j1]
			j0 = j1
		}
	}

	var total float64
	for j := 1; j <= n; j++ {
		total += cost[owner[j]-1][j-1]
	}

	return total
}
