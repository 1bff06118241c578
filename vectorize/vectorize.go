package vectorize

import (
	"sort"

	"github.com/katalvlaran/tda/persistence"
)

// StatisticsVector flattens a set of diagrams into a fixed-length
// vector of TotalFeatures elements: FeaturesPerDim statistics for each
// homology dimension 0..NumDims−1, in that order. Dimensions absent
// from the input, or holding no finite features, contribute an
// all-zero block, so vectors from diagrams of different depths remain
// directly comparable.
func StatisticsVector(diagrams []persistence.Diagram) []float64 {
	vec := make([]float64, TotalFeatures)
	for _, d := range diagrams {
		if d.Dim < 0 || d.Dim >= NumDims {
			continue
		}
		copy(vec[d.Dim*FeaturesPerDim:], dimFeatures(d))
	}

	return vec
}

// dimFeatures computes the 12 statistics of one diagram's finite
// lifespans.
func dimFeatures(d persistence.Diagram) []float64 {
	finite := d.Finite()
	if len(finite) == 0 {
		return make([]float64, FeaturesPerDim)
	}

	spans := make([]float64, len(finite))
	for i, p := range finite {
		spans[i] = p.Lifespan()
	}
	sort.Float64s(spans)

	s := persistence.Summarize(d)

	return []float64{
		float64(s.Count),
		s.Mean,
		s.Std,
		s.Median,
		s.IQR,
		s.Max,
		s.Range,
		s.Entropy,
		persistence.Quantile(spans, 0.10),
		persistence.Quantile(spans, 0.25),
		persistence.Quantile(spans, 0.75),
		persistence.Quantile(spans, 0.90),
	}
}
