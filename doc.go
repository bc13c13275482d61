// Package lvdist computes per-observation statistical distances over a
// matrix of observations.
//
// What is in lvdist?
//
//	Two small, deterministic kernels on top of a dense matrix layer:
//		• distance.Mahalanobis  — squared Mahalanobis distance to a mean under a
//		  precomputed inverse covariance matrix
//		• distance.ReducedSpace — squared Euclidean distance to a center in a
//		  reduced (e.g. principal-component) coordinate space
//
// Estimating the mean or covariance, inverting the covariance and fitting
// PCA belong to the caller; lvdist checks shapes, never statistics (unless
// asked to with distance.WithCovarianceCheck).
//
// Packages:
//
//	matrix/   — Dense row-major storage, validators, MatVecInto/Dot/SquaredEuclidean,
//	            gonum interop
//	distance/ — the kernels, DimensionError, options, logging, parallel rows
//
//	go get github.com/katalvlaran/lvdist
package lvdist
