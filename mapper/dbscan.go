package mapper

import "math"

// noise is the DBSCAN label for points in no cluster.
const noise = -1

// dbscan labels points by density: a point is core when at least
// minSamples points (itself included) lie within eps; core points
// expand clusters over their neighborhoods; non-core points reachable
// from a core point join its cluster, everything else is noise.
// Returns per-point labels (0..k-1, or noise) and the cluster count.
//
// Time: O(n²) with the direct neighborhood scan — cover cells are
// small, so no index structure is warranted.
func dbscan(points [][]float64, eps float64, minSamples int) ([]int, int) {
	n := len(points)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = noise
	}
	visited := make([]bool, n)

	neighbors := func(i int) []int {
		var nb []int
		for j := 0; j < n; j++ {
			if euclidean(points[i], points[j]) <= eps {
				nb = append(nb, j)
			}
		}

		return nb
	}

	cluster := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true
		nb := neighbors(i)
		if len(nb) < minSamples {
			continue // noise (may later be claimed as a border point)
		}

		labels[i] = cluster
		queue := nb
		for qi := 0; qi < len(queue); qi++ {
			p := queue[qi]
			if labels[p] == noise {
				labels[p] = cluster
			}
			if visited[p] {
				continue
			}
			visited[p] = true
			pnb := neighbors(p)
			if len(pnb) >= minSamples {
				queue = append(queue, pnb...)
			}
		}
		cluster++
	}

	return labels, cluster
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}
