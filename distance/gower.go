package distance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// continuous feature accessors, in weight order: capacity and price
// first (they take the emphasis weight), then area and geography.
var continuousFields = []func(Record) float64{
	func(r Record) float64 { return r.Capacity },
	func(r Record) float64 { return r.Price },
	func(r Record) float64 { return r.Area },
	func(r Record) float64 { return r.Lat },
	func(r Record) float64 { return r.Lng },
}

// emphasisFields is the number of leading continuous features that
// receive the emphasis weight.
const emphasisFields = 2

// Gower builds an N×N symmetric distance matrix over mixed-type
// records. Per-feature distances (range-normalized continuous, 0/1
// categorical, Dice over the amenity vector) are combined as a
// weighted average and clamped to [0,1].
//
// Time: O(n²·f). Memory: O(n²).
func Gower(records []Record, opts GowerOptions) ([][]float64, error) {
	n := len(records)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 records, got %d", ErrInvalidInput, n)
	}
	amenities := len(records[0].Amenities)
	for i, r := range records {
		if len(r.Amenities) != amenities {
			return nil, fmt.Errorf("%w: record %d has %d amenities, want %d", ErrInvalidInput, i, len(r.Amenities), amenities)
		}
	}

	emphasis := opts.EmphasisWeight
	if emphasis <= 0 {
		emphasis = DefaultGowerOptions().EmphasisWeight
	}

	// Per-column ranges for the continuous features.
	ranges := make([]float64, len(continuousFields))
	col := make([]float64, n)
	for f, get := range continuousFields {
		for i, r := range records {
			col[i] = get(r)
		}
		ranges[f] = floats.Max(col) - floats.Min(col)
	}

	weights := make([]float64, 0, len(continuousFields)+2)
	for f := range continuousFields {
		if f < emphasisFields {
			weights = append(weights, emphasis)
		} else {
			weights = append(weights, 1)
		}
	}
	weights = append(weights, 1, 1) // categorical, amenity vector
	totalWeight := floats.Sum(weights)

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var acc float64
			for f, get := range continuousFields {
				acc += weights[f] * rangeNormDiff(get(records[i]), get(records[j]), ranges[f])
			}
			if records[i].Category != records[j].Category {
				acc += weights[len(continuousFields)]
			}
			acc += weights[len(continuousFields)+1] * diceDissimilarity(records[i].Amenities, records[j].Amenities)

			d := clamp01(acc / totalWeight)
			dist[i][j], dist[j][i] = d, d
		}
	}

	return dist, nil
}

// FromPoints builds a pairwise Euclidean distance matrix from a raw
// point cloud. All points must share one dimensionality.
func FromPoints(points [][]float64) ([][]float64, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidInput, n)
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, want %d", ErrInvalidInput, i, len(p), dim)
		}
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := floats.Distance(points[i], points[j], 2)
			dist[i][j], dist[j][i] = d, d
		}
	}

	return dist, nil
}

// rangeNormDiff is |a−b| scaled by the column range; a zero range
// means the column is constant and contributes no distance.
func rangeNormDiff(a, b, rng float64) float64 {
	if rng == 0 {
		return 0
	}

	return math.Abs(a-b) / rng
}

// diceDissimilarity is 1 − 2|A∩B|/(|A|+|B|) over the true bits of two
// boolean vectors; two empty sets are identical by convention.
func diceDissimilarity(a, b []bool) float64 {
	var both, total int
	for i := range a {
		if a[i] && b[i] {
			both++
		}
		if a[i] {
			total++
		}
		if b[i] {
			total++
		}
	}
	if total == 0 {
		return 0
	}

	return 1 - 2*float64(both)/float64(total)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}
