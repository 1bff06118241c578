package timeseries

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tda/filtration"
	"github.com/katalvlaran/tda/persistence"
)

const (
	// covarianceRidge keeps the fitted covariance invertible.
	covarianceRidge = 1e-6
	// anomalyThreshold flags windows beyond this Mahalanobis distance
	// (≈ a 3-sigma outlier); highSeverity upgrades the label.
	anomalyThreshold = 3.0
	highSeverity     = 5.0
	// minWindows is the smallest sample over which fitting a Gaussian
	// is meaningful.
	minWindows = 10
	// anomalyFeatureDim is the per-window feature vector length.
	anomalyFeatureDim = 4
)

// DetectAnomalies flags windows where the correlation topology of ≥2
// synchronized channels deviates from the fitted norm. Per window, the
// pairwise channel correlation matrix becomes a distance (1−|ρ|), H₀
// persistence of that matrix is summarized as a 4-feature vector, and
// a Gaussian (mean, ridge-regularized covariance) is fitted across all
// windows; windows with Mahalanobis distance above 3 are returned.
//
// Fewer than two channels, or fewer than 10 windows, yield no
// anomalies and no error. Channels are processed in sorted name order
// so results are deterministic.
func DetectAnomalies(channels map[string][]float64, opts AnomalyOptions) ([]Anomaly, error) {
	if len(channels) < 2 {
		return nil, nil
	}
	window := opts.Window
	if window <= 0 {
		window = DefaultAnomalyOptions().Window
	}
	step := opts.Step
	if step <= 0 {
		step = DefaultAnomalyOptions().Step
	}

	names := make([]string, 0, len(channels))
	for name := range channels {
		names = append(names, name)
	}
	sort.Strings(names)

	length := math.MaxInt
	for _, series := range channels {
		if len(series) < length {
			length = len(series)
		}
	}
	if length <= window {
		return nil, fmt.Errorf("%w: channel length %d, window %d", ErrInsufficientLength, length, window)
	}

	var features [][]float64
	var positions []int
	for start := 0; start+window < length; start += step {
		dist := correlationDistance(channels, names, start, window)
		features = append(features, windowFeatures(dist))
		positions = append(positions, start+window/2)
	}
	if len(features) < minWindows {
		return nil, nil
	}

	return flagOutliers(features, positions)
}

// correlationDistance builds the channel-by-channel distance matrix
// 1−|ρ| over one window; undefined correlations (constant channels)
// count as fully decorrelated.
func correlationDistance(channels map[string][]float64, names []string, start, window int) [][]float64 {
	k := len(names)
	dist := make([][]float64, k)
	for i := range dist {
		dist[i] = make([]float64, k)
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			a := channels[names[i]][start : start+window]
			b := channels[names[j]][start : start+window]
			rho := stat.Correlation(a, b, nil)
			d := 1.0
			if !math.IsNaN(rho) {
				d = 1 - math.Abs(rho)
			}
			dist[i][j], dist[j][i] = d, d
		}
	}

	return dist
}

// windowFeatures summarizes H₀ persistence of a distance matrix as
// {mean, std, max lifespan, component count}.
func windowFeatures(dist [][]float64) []float64 {
	src, err := filtration.NewRips(dist, filtration.DefaultRipsOptions())
	if err != nil {
		return make([]float64, anomalyFeatureDim)
	}
	res, err := persistence.Compute(src, 0)
	if err != nil {
		return make([]float64, anomalyFeatureDim)
	}

	finite := res.Diagrams[0].Finite()
	if len(finite) == 0 {
		return make([]float64, anomalyFeatureDim)
	}
	spans := make([]float64, len(finite))
	for i, p := range finite {
		spans[i] = p.Lifespan()
	}
	mean := stat.Mean(spans, nil)
	var ss, max float64
	for _, s := range spans {
		ss += (s - mean) * (s - mean)
		if s > max {
			max = s
		}
	}

	return []float64{mean, math.Sqrt(ss / float64(len(spans))), max, float64(len(spans))}
}

// flagOutliers fits a Gaussian over the window features and returns
// the windows whose Mahalanobis distance exceeds the threshold.
func flagOutliers(features [][]float64, positions []int) ([]Anomaly, error) {
	n := len(features)
	data := mat.NewDense(n, anomalyFeatureDim, nil)
	for i, f := range features {
		data.SetRow(i, f)
	}

	mean := make([]float64, anomalyFeatureDim)
	for c := 0; c < anomalyFeatureDim; c++ {
		mean[c] = stat.Mean(mat.Col(nil, c, data), nil)
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, data, nil)
	for i := 0; i < anomalyFeatureDim; i++ {
		cov.SetSym(i, i, cov.At(i, i)+covarianceRidge)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(&cov); !ok {
		return nil, fmt.Errorf("%w: covariance not positive definite after ridge %g", ErrNumericalInstability, covarianceRidge)
	}

	var anomalies []Anomaly
	diff := mat.NewVecDense(anomalyFeatureDim, nil)
	var solved mat.VecDense
	for i, f := range features {
		for c := 0; c < anomalyFeatureDim; c++ {
			diff.SetVec(c, f[c]-mean[c])
		}
		if err := chol.SolveVecTo(&solved, diff); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNumericalInstability, err)
		}
		score := math.Sqrt(mat.Dot(diff, &solved))
		if score <= anomalyThreshold {
			continue
		}

		severity := "medium"
		if score > highSeverity {
			severity = "high"
		}
		anomalies = append(anomalies, Anomaly{
			Position: positions[i],
			Score:    score,
			Severity: severity,
			Features: AnomalyFeatures{
				MeanLifespan:  f[0],
				StdLifespan:   f[1],
				MaxLifespan:   f[2],
				NumComponents: int(f[3]),
			},
		})
	}

	return anomalies, nil
}
