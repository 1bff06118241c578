package persistence

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// epsMass keeps entropy finite on zero-mass lifespan distributions.
const epsMass = 1e-10

// Summarize computes lifespan statistics for one diagram dimension.
// Only finite features contribute; an empty finite sub-diagram yields
// the zero Stats value.
func Summarize(d Diagram) Stats {
	finite := d.Finite()
	if len(finite) == 0 {
		return Stats{}
	}

	spans := make([]float64, len(finite))
	for i, p := range finite {
		spans[i] = p.Lifespan()
	}
	sort.Float64s(spans)

	mean := stat.Mean(spans, nil)
	max := spans[len(spans)-1]

	return Stats{
		Count:   len(spans),
		Mean:    mean,
		Std:     popStd(spans, mean),
		Median:  Quantile(spans, 0.5),
		IQR:     Quantile(spans, 0.75) - Quantile(spans, 0.25),
		Max:     max,
		Range:   max - spans[0],
		Entropy: lifespanEntropy(spans),
	}
}

// Quantile returns the p-quantile (p ∈ [0,1]) of a sorted sample by
// linear interpolation between order statistics: the value at
// fractional rank (n−1)·p. This is the interpolation convention the
// diagram statistics are specified in; gonum's stat.Quantile
// implements the non-interpolating empirical variants instead.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	h := float64(n-1) * p
	lo := int(h)
	if lo >= n-1 {
		return sorted[n-1]
	}

	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// popStd is the population standard deviation (divisor n, matching the
// convention used throughout the diagram statistics).
func popStd(xs []float64, mean float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}

	return math.Sqrt(ss / float64(len(xs)))
}

// lifespanEntropy is the Shannon entropy of the lifespan distribution
// normalized to unit mass: −Σ pᵢ·log(pᵢ+ε). The ε term avoids −Inf on
// zero-mass entries.
func lifespanEntropy(spans []float64) float64 {
	var total float64
	for _, s := range spans {
		total += s
	}
	total += epsMass

	var h float64
	for _, s := range spans {
		p := s / total
		h -= p * math.Log(p+epsMass)
	}

	return h
}
