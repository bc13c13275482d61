package distance

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvdist/matrix"
)

const opMahalanobis = "Mahalanobis"

// Mahalanobis returns the squared Mahalanobis distance of every row of X:
//
//	dist[i] = (X[i,:] − mu)ᵀ · Sinv · (X[i,:] − mu)
//
// X is n×p, mu has length p and Sinv is the p×p inverse covariance matrix.
// The result has length n and dist[i] belongs to row i.
//
// Algorithm, per row i (same summation order as the matrix primitives named):
//  1. diff = X[i,:] − mu                         (matrix.SubInto)
//  2. tmp[j] = Σ_{k=0..p-1} Sinv[j,k]·diff[k]    (matrix.MatVecInto)
//  3. dist[i] = Σ_{j=0..p-1} diff[j]·tmp[j]      (matrix.Dot)
//
// Errors (returned before any row is evaluated, with a nil result):
//   - matrix.ErrNilMatrix when X or Sinv is nil.
//   - *DimensionError (errors.Is ErrDimensionMismatch) when Sinv is not square,
//     Sinv's side differs from p, or len(mu) != p.
//   - ErrInvalidCovariance when WithCovarianceCheck is set and Sinv fails it.
//
// Sinv is otherwise trusted: a non-PSD Sinv can yield negative values,
// which are returned as computed. Inputs are never modified.
//
// Complexity: O(n·p²) time, O(p) scratch per worker, O(n) row views and result.
func Mahalanobis(X matrix.Matrix, mu []float64, Sinv matrix.Matrix, opts ...Option) ([]float64, error) {
	return MahalanobisContext(context.Background(), X, mu, Sinv, opts...)
}

// MahalanobisContext is Mahalanobis with cancellation. When ctx is done
// before every row is evaluated it returns (nil, ctx.Err()).
func MahalanobisContext(ctx context.Context, X matrix.Matrix, mu []float64, Sinv matrix.Matrix, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)

	xRows, sinvRows, err := checkMahalanobis(X, mu, Sinv, o)
	if err != nil {
		o.logger.LogCompute(ctx, MetricMahalanobis, rowsOf(X), len(mu), o.workers, err)
		return nil, err
	}

	p := len(mu)
	out, err := evalRows(ctx, len(xRows), o.workers, func() rowFunc {
		diff := make([]float64, p) // centered row, reused across rows
		tmp := make([]float64, p)  // Sinv·diff, reused across rows

		return func(i int) float64 {
			return mahalanobisRow(xRows[i], mu, sinvRows, diff, tmp)
		}
	})
	o.logger.LogCompute(ctx, MetricMahalanobis, len(xRows), p, o.workers, err)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// mahalanobisRow evaluates the quadratic form for a single observation:
// diff = row − mu, tmp = Sinv·diff, then diff·tmp.
func mahalanobisRow(row, mu []float64, sinvRows [][]float64, diff, tmp []float64) float64 {
	subUnchecked(diff, row, mu)
	matVecUnchecked(tmp, sinvRows, diff)

	return dotUnchecked(diff, tmp)
}

// checkMahalanobis enforces the boundary contract in a fixed order:
// nil → Sinv square → Sinv side == p → len(mu) == p → optional covariance check.
// On success it returns the row views of X and Sinv.
func checkMahalanobis(X matrix.Matrix, mu []float64, Sinv matrix.Matrix, o Options) ([][]float64, [][]float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, nil, distanceErrorf(opMahalanobis, "X", err)
	}
	if err := matrix.ValidateNotNil(Sinv); err != nil {
		return nil, nil, distanceErrorf(opMahalanobis, "Sinv", err)
	}

	p := X.Cols()
	if Sinv.Rows() != Sinv.Cols() {
		return nil, nil, &DimensionError{Op: opMahalanobis, Operand: OperandSinvCols, Want: Sinv.Rows(), Got: Sinv.Cols()}
	}
	if Sinv.Rows() != p {
		return nil, nil, &DimensionError{Op: opMahalanobis, Operand: OperandSinvRows, Want: p, Got: Sinv.Rows()}
	}
	if len(mu) != p {
		return nil, nil, &DimensionError{Op: opMahalanobis, Operand: OperandMu, Want: p, Got: len(mu)}
	}

	if o.checkCov {
		if err := checkCovariance(Sinv, o.covTol); err != nil {
			return nil, nil, err
		}
	}

	x, err := matrix.AsDense(X)
	if err != nil {
		return nil, nil, distanceErrorf(opMahalanobis, "X", err)
	}
	sinv, err := matrix.AsDense(Sinv)
	if err != nil {
		return nil, nil, distanceErrorf(opMahalanobis, "Sinv", err)
	}
	xRows, err := rowViews(x)
	if err != nil {
		return nil, nil, distanceErrorf(opMahalanobis, "X", err)
	}
	sinvRows, err := rowViews(sinv)
	if err != nil {
		return nil, nil, distanceErrorf(opMahalanobis, "Sinv", err)
	}

	return xRows, sinvRows, nil
}

// checkCovariance requires Sinv to be symmetric within tol and to have no
// eigenvalue below -tol.
func checkCovariance(Sinv matrix.Matrix, tol float64) error {
	if err := matrix.ValidateSymmetric(Sinv, tol); err != nil {
		return fmt.Errorf("distance: %s: %w: %w", opMahalanobis, ErrInvalidCovariance, err)
	}
	lo, ok, err := matrix.MinEigenSym(Sinv)
	if err != nil {
		return fmt.Errorf("distance: %s: %w: %w", opMahalanobis, ErrInvalidCovariance, err)
	}
	if !ok {
		return fmt.Errorf("distance: %s: %w: matrix has no usable spectrum (NaN/Inf or no convergence)", opMahalanobis, ErrInvalidCovariance)
	}
	if lo < -tol {
		return fmt.Errorf("distance: %s: %w: smallest eigenvalue %g < -%g", opMahalanobis, ErrInvalidCovariance, lo, tol)
	}

	return nil
}

// rowsOf reports Rows() for logging, tolerating nil.
func rowsOf(m matrix.Matrix) int {
	if matrix.ValidateNotNil(m) != nil {
		return 0
	}

	return m.Rows()
}
