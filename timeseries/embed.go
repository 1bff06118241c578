package timeseries

import "fmt"

// Embed performs a Takens delay embedding: each output point is
// [x(t), x(t+τ), …, x(t+(d−1)τ)], reconstructing the underlying
// dynamics' point cloud from a single scalar series. Periodic signals
// trace loops; chaotic signals fill volumes.
//
// The result holds n−(d−1)·τ points; ErrInsufficientLength is returned
// when that count is not positive.
func Embed(series []float64, delay, dimension int) ([][]float64, error) {
	if delay < 1 || dimension < 1 {
		return nil, fmt.Errorf("%w: delay=%d, dimension=%d", ErrInsufficientLength, delay, dimension)
	}
	n := len(series)
	count := n - (dimension-1)*delay
	if count <= 0 {
		return nil, fmt.Errorf("%w: length %d yields %d points for delay=%d, dimension=%d",
			ErrInsufficientLength, n, count, delay, dimension)
	}

	points := make([][]float64, count)
	for t := 0; t < count; t++ {
		p := make([]float64, dimension)
		for i := 0; i < dimension; i++ {
			p[i] = series[t+i*delay]
		}
		points[t] = p
	}

	return points, nil
}

// normalize01 min-max scales a series to [0,1]; a constant series maps
// to all zeros. The small ε keeps the division finite.
func normalize01(series []float64) []float64 {
	lo, hi := series[0], series[0]
	for _, v := range series {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := make([]float64, len(series))
	span := hi - lo + 1e-10
	for i, v := range series {
		out[i] = (v - lo) / span
	}

	return out
}
