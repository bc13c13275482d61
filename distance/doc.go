// Package distance computes per-observation statistical distances over a
// matrix of observations.
//
// What is in here?
//
//	Two stateless kernels, selected by the caller:
//	  • Mahalanobis  — squared Mahalanobis distance (x−μ)ᵀ Σ⁻¹ (x−μ) for every
//	    row x of an n×p observation matrix, given the mean μ and a precomputed
//	    p×p inverse covariance (precision) matrix Σ⁻¹.
//	  • ReducedSpace — squared Euclidean distance Σⱼ (sⱼ−cⱼ)² from every row s
//	    of an n×k score matrix (e.g. PCA scores) to a center c.
//
// Estimating μ or Σ, inverting Σ and fitting PCA are the caller's job; this
// package only checks that the shapes agree.
//
// Key features:
//   - fail-fast dimension checks with a typed *DimensionError naming the
//     mismatching operand and both sizes (errors.Is ErrDimensionMismatch);
//   - deterministic summation order (ascending column index), so results are
//     bit-identical between sequential and parallel evaluation;
//   - optional row-parallel evaluation (WithWorkers) with context
//     cancellation and no partial results;
//   - optional precision-matrix validation (WithCovarianceCheck): symmetric
//     and positive semi-definite, else ErrInvalidCovariance.
//
// Usage:
//
//	X, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	I, _ := matrix.NewIdentity(2)
//	d, err := distance.Mahalanobis(X, []float64{1, 1}, I)
//	// d == [1 13]
//
// Performance:
//
//   - Mahalanobis:  O(n·p²) time, O(p) scratch per worker.
//   - ReducedSpace: O(n·k) time, O(1) scratch.
//
// NaN and ±Inf inputs propagate per IEEE 754. A precision matrix that is
// not positive semi-definite may produce negative "squared" distances; they
// are returned as computed unless WithCovarianceCheck is set.
package distance
