// Package vectorize feature layout constants.
package vectorize

// Feature vector layout: FeaturesPerDim statistics for each homology
// dimension 0..NumDims−1, concatenated in dimension order.
const (
	// FeaturesPerDim is the number of statistics per homology dimension:
	// count, mean, std, median, IQR, max, range, entropy, and the 10th,
	// 25th, 75th, and 90th lifespan percentiles.
	FeaturesPerDim = 12
	// NumDims is the number of homology dimensions encoded (H₀, H₁, H₂).
	NumDims = 3
	// TotalFeatures is the full vector length.
	TotalFeatures = FeaturesPerDim * NumDims
)
