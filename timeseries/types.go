// Package timeseries core types, options, and sentinel errors.
package timeseries

import "errors"

// Sentinel errors for time-series topology.
var (
	// ErrInsufficientLength indicates a series too short for the
	// requested delay, dimension, or window.
	ErrInsufficientLength = errors.New("timeseries: series too short for requested parameters")
	// ErrNumericalInstability indicates a covariance matrix that failed
	// to factorize even after ridge regularization.
	ErrNumericalInstability = errors.New("timeseries: covariance matrix is numerically singular")
)

// DefaultPeriods are the candidate periods (in samples) scanned when
// the caller supplies none: weekly through annual for daily data.
var DefaultPeriods = []int{7, 14, 30, 90, 365}

// PeriodicityOptions configures DetectPeriodicity.
//
// Fields:
//   - Periods — candidate periods in samples; nil selects
//     DefaultPeriods.
type PeriodicityOptions struct {
	Periods []int
}

// Periodicity is one scored periodicity candidate. Score is the
// maximum H₁ lifespan of the delay embedding; Confidence ∈ [0,1] is
// how dominant that lifespan is over the mean.
type Periodicity struct {
	Period     int
	Score      float64
	Confidence float64
	Label      string
}

// RegimeOptions configures DetectRegimeChanges.
//
// Fields:
//   - Window — sliding window length in samples (default 30).
//   - Step — window stride (default 1).
type RegimeOptions struct {
	Window int
	Step   int
}

// DefaultRegimeOptions returns RegimeOptions with Window=30, Step=1.
func DefaultRegimeOptions() RegimeOptions {
	return RegimeOptions{Window: 30, Step: 1}
}

// ChangePoint is one detected regime change: Position is the center of
// the window after which the landscape norm jumped; Severity is the
// jump measured in units of the detection threshold.
type ChangePoint struct {
	Position   int
	Severity   float64
	NormBefore float64
	NormAfter  float64
}

// AnomalyOptions configures DetectAnomalies.
//
// Fields:
//   - Window — sliding window length in samples (default 14).
//   - Step — window stride (default 1).
type AnomalyOptions struct {
	Window int
	Step   int
}

// DefaultAnomalyOptions returns AnomalyOptions with Window=14, Step=1.
func DefaultAnomalyOptions() AnomalyOptions {
	return AnomalyOptions{Window: 14, Step: 1}
}

// AnomalyFeatures is the topological summary of one window: statistics
// of the H₀ lifespans of the channel-correlation distance matrix.
type AnomalyFeatures struct {
	MeanLifespan  float64
	StdLifespan   float64
	MaxLifespan   float64
	NumComponents int
}

// Anomaly is one flagged window. Score is the Mahalanobis distance of
// the window's features from the fitted Gaussian; Severity is "high"
// above 5, otherwise "medium".
type Anomaly struct {
	Position int
	Score    float64
	Severity string
	Features AnomalyFeatures
}
