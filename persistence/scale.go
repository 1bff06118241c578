package persistence

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/tda/filtration"
)

// Strategy thresholds, calibrated for distances normalized to [0,1].
const (
	exactLimit    = 3000  // up to here: exact Rips everywhere
	landmarkLimit = 10000 // up to here: exact H0–H1, landmarks for H2+
	sparseLimit   = 50000 // up to here: sparse Rips

	defaultThreshold  = 0.8
	landmarkThreshold = 0.5
	landmarkSize      = 2000
	sparseSlack       = 0.3
	subsampleCount    = 20
	subsampleSize     = 2000
)

// computeMode selects the execution path for ComputeScaled.
type computeMode int

const (
	modeExact computeMode = iota
	modeLandmark
	modeSparse
	modeSubsample
)

// strategy is a pure descriptor of how to compute: mode plus the
// parameters the single execution path consumes.
type strategy struct {
	mode       computeMode
	threshold  float64
	landmarks  int
	slack      float64
	subsamples int
	subSize    int
}

// strategyFor maps a point count to a strategy descriptor. It is a
// pure function of n so call sites cannot drift apart.
func strategyFor(n int) strategy {
	switch {
	case n <= exactLimit:
		return strategy{mode: modeExact, threshold: defaultThreshold}
	case n <= landmarkLimit:
		return strategy{mode: modeLandmark, threshold: defaultThreshold, landmarks: minInt(n, landmarkSize)}
	case n <= sparseLimit:
		return strategy{mode: modeSparse, slack: sparseSlack}
	default:
		return strategy{mode: modeSubsample, threshold: defaultThreshold, subsamples: subsampleCount, subSize: subsampleSize}
	}
}

// ComputeScaled computes persistence over a distance matrix with a
// computation path chosen from the point count:
//
//	≤3000        exact Rips, birth threshold 0.8
//	3001–10000   exact dims 0–1 at 0.8; dims ≥2 on a greedy-permutation
//	             landmark subsample (≤2000 points) at threshold 0.5
//	10001–50000  sparse Rips, slack factor 0.3, all dimensions
//	>50000       20 independent random subsamples of 2000 points run
//	             concurrently; statistics averaged, diagrams omitted
//
// The context is checked between stages and between subsample tasks;
// a canceled context aborts with ctx.Err().
func ComputeScaled(ctx context.Context, dist [][]float64, opts ScaledOptions) (*Result, error) {
	maxDim := opts.MaxDim
	if maxDim <= 0 {
		maxDim = DefaultScaledOptions().MaxDim
	}
	n := len(dist)
	strat := strategyFor(n)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch strat.mode {
	case modeExact:
		return computeRips(dist, maxDim, filtration.RipsOptions{Threshold: strat.threshold}, "exact")

	case modeLandmark:
		if maxDim <= 1 {
			return computeRips(dist, maxDim, filtration.RipsOptions{Threshold: strat.threshold}, "landmark")
		}
		low, err := computeRips(dist, 1, filtration.RipsOptions{Threshold: strat.threshold}, "landmark")
		if err != nil {
			return nil, err
		}
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		idx := filtration.GreedySubsample(dist, strat.landmarks)
		high, err := computeRips(subMatrix(dist, idx), maxDim, filtration.RipsOptions{Threshold: landmarkThreshold}, "landmark")
		if err != nil {
			return nil, err
		}
		merged := &Result{NumPoints: n, Method: "landmark"}
		merged.Diagrams = append(merged.Diagrams, low.Diagrams...)
		merged.Stats = append(merged.Stats, low.Stats...)
		merged.Diagrams = append(merged.Diagrams, high.Diagrams[2:]...)
		merged.Stats = append(merged.Stats, high.Stats[2:]...)

		return merged, nil

	case modeSparse:
		return computeRips(dist, maxDim, filtration.RipsOptions{Sparse: strat.slack}, "sparse")

	default:
		return computeSubsampled(ctx, dist, maxDim, strat, opts.Seed)
	}
}

// computeRips is the single execution path shared by the exact,
// landmark, and sparse strategies.
func computeRips(dist [][]float64, maxDim int, opts filtration.RipsOptions, method string) (*Result, error) {
	src, err := filtration.NewRips(dist, opts)
	if err != nil {
		return nil, err
	}
	res, err := Compute(src, maxDim)
	if err != nil {
		return nil, err
	}
	res.Method = method

	return res, nil
}

// computeSubsampled draws strat.subsamples random subsamples, computes
// persistence on each concurrently, and averages the per-dimension
// statistics. Individual diagrams are not meaningful at this scale and
// are omitted. Each task owns an independent seeded RNG stream and its
// own result slot, so no shared mutable state exists.
func computeSubsampled(ctx context.Context, dist [][]float64, maxDim int, strat strategy, seed int64) (*Result, error) {
	n := len(dist)
	size := minInt(strat.subSize, n)

	results := make([]*Result, strat.subsamples)
	errs := make([]error, strat.subsamples)
	var wg sync.WaitGroup
	for t := 0; t < strat.subsamples; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(task int) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			rng := rngFromSeed(deriveSeed(seed, uint64(task)))
			idx := rng.Perm(n)[:size]
			results[task], errs[task] = computeRips(subMatrix(dist, idx), maxDim, filtration.RipsOptions{Threshold: strat.threshold}, "multi_subsample")
		}(t)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("subsample: %w", err)
		}
	}

	out := &Result{
		Diagrams:  make([]Diagram, maxDim+1),
		Stats:     make([]Stats, maxDim+1),
		NumPoints: n,
		Method:    "multi_subsample",
	}
	for d := 0; d <= maxDim; d++ {
		out.Diagrams[d].Dim = d
		var picked []Stats
		for _, r := range results {
			if r.Stats[d].Count > 0 {
				picked = append(picked, r.Stats[d])
			}
		}
		if len(picked) == 0 {
			continue
		}
		agg := Stats{
			Subsamples:    strat.subsamples,
			SubsampleSize: size,
			Max:           math.Inf(-1),
		}
		var count float64
		for _, s := range picked {
			count += float64(s.Count)
			agg.Mean += s.Mean
			agg.Std += s.Std
			agg.Median += s.Median
			agg.IQR += s.IQR
			agg.Range += s.Range
			agg.Entropy += s.Entropy
			if s.Max > agg.Max {
				agg.Max = s.Max
			}
		}
		k := float64(len(picked))
		agg.Count = int(count / k)
		agg.Mean /= k
		agg.Std /= k
		agg.Median /= k
		agg.IQR /= k
		agg.Range /= k
		agg.Entropy /= k
		out.Stats[d] = agg
	}

	return out, nil
}

// subMatrix extracts the restriction of dist to the given indices.
func subMatrix(dist [][]float64, idx []int) [][]float64 {
	sub := make([][]float64, len(idx))
	for i, a := range idx {
		row := make([]float64, len(idx))
		for j, b := range idx {
			row[j] = dist[a][b]
		}
		sub[i] = row
	}

	return sub
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
