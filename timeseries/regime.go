package timeseries

import (
	"fmt"
	"math"
)

// sigmaFactor is the outlier rule for norm jumps: mean + 2·std.
const sigmaFactor = 2.0

// DetectRegimeChanges slides a window across the series, computes a
// persistence-landscape-norm proxy (sum of squared finite H₁
// lifespans of the window's 2D embedding) per window, and flags a
// change point wherever the first difference of consecutive norms
// exceeds mean+2·std of all differences. Severity is the jump in units
// of that threshold.
func DetectRegimeChanges(series []float64, opts RegimeOptions) ([]ChangePoint, error) {
	window := opts.Window
	if window <= 0 {
		window = DefaultRegimeOptions().Window
	}
	step := opts.Step
	if step <= 0 {
		step = DefaultRegimeOptions().Step
	}
	if len(series) <= window {
		return nil, fmt.Errorf("%w: length %d, window %d", ErrInsufficientLength, len(series), window)
	}

	delay := window / 7
	if delay < 1 {
		delay = 1
	}

	var norms []float64
	var positions []int
	for start := 0; start+window < len(series); start += step {
		chunk := series[start : start+window]
		positions = append(positions, start+window/2)

		if flat(chunk) {
			norms = append(norms, 0)
			continue
		}
		cloud, err := Embed(normalize01(chunk), delay, 2)
		if err != nil {
			norms = append(norms, 0)
			continue
		}
		h1, err := loopDiagram(cloud)
		if err != nil {
			norms = append(norms, 0)
			continue
		}

		var norm float64
		for _, p := range h1.Finite() {
			span := p.Lifespan()
			norm += span * span
		}
		norms = append(norms, norm)
	}

	if len(norms) < 3 {
		return nil, nil
	}

	diffs := make([]float64, len(norms)-1)
	var mean float64
	for i := 1; i < len(norms); i++ {
		diffs[i-1] = math.Abs(norms[i] - norms[i-1])
		mean += diffs[i-1]
	}
	mean /= float64(len(diffs))
	var variance float64
	for _, d := range diffs {
		variance += (d - mean) * (d - mean)
	}
	std := math.Sqrt(variance / float64(len(diffs)))

	threshold := mean + sigmaFactor*std
	if threshold < 1e-10 {
		return nil, nil
	}

	var changes []ChangePoint
	for i, d := range diffs {
		if d > threshold {
			changes = append(changes, ChangePoint{
				Position:   positions[i],
				Severity:   d / threshold,
				NormBefore: norms[i],
				NormAfter:  norms[i+1],
			})
		}
	}

	return changes, nil
}

// flat reports whether a window has no usable dynamic range.
func flat(chunk []float64) bool {
	lo, hi := chunk[0], chunk[0]
	for _, v := range chunk {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return hi-lo < 1e-10
}
