// Package timeseries detects periodicity, regime changes, and
// cross-channel anomalies in scalar series via delay-embedding
// topology.
//
// What:
//
//   - Embed: Takens delay embedding — a series of length n with delay τ
//     and dimension d becomes n−(d−1)τ points in R^d. Periodic signals
//     trace loops (H₁ features); the method is shape-agnostic, so a
//     weekly cycle is found whether it is sinusoidal or spiky.
//   - DetectPeriodicity: for each candidate period, embed (d=2, delay
//     a quarter period) and score by the maximum H₁ lifespan;
//     confidence is the dominance of the top lifespan over the mean.
//     Candidates needing more than ⌊n/3⌋ samples per period are
//     skipped.
//   - DetectRegimeChanges: sliding windows, each normalized to [0,1]
//     and embedded; the sum of squared finite H₁ lifespans acts as a
//     landscape-norm proxy, and a change point is flagged where the
//     first difference of consecutive norms exceeds mean+2·std.
//   - DetectAnomalies: for ≥2 synchronized channels, windowed
//     correlation distance (1−|ρ|) feeds H₀ persistence; each window
//     is summarized as a 4-feature vector, a Gaussian (mean,
//     ridge-regularized covariance) is fitted over all windows, and
//     windows beyond Mahalanobis distance 3 are flagged ("high"
//     above 5, else "medium").
//
// Errors:
//
//   - ErrInsufficientLength: the series is too short for the requested
//     delay/dimension/window.
//   - ErrNumericalInstability: the ridged covariance still fails to
//     factorize (guarded; should not occur with the fixed ridge term).
package timeseries
