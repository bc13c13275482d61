package distance

import (
	"context"

	"github.com/katalvlaran/lvdist/matrix"
)

const opReducedSpace = "ReducedSpace"

// ReducedSpace returns the squared Euclidean distance from every row of
// scores to center:
//
//	dist[i] = Σ_{j=0..k-1} (scores[i,j] − center[j])²
//
// scores is n×k (typically PCA scores) and center has length k. The sum
// runs in ascending j. The result has length n and dist[i] belongs to row i.
//
// Errors (returned before any row is evaluated, with a nil result):
//   - matrix.ErrNilMatrix when scores is nil.
//   - *DimensionError (errors.Is ErrDimensionMismatch) when len(center) != k.
//
// Complexity: O(n·k) time, O(n) row views and result.
func ReducedSpace(scores matrix.Matrix, center []float64, opts ...Option) ([]float64, error) {
	return ReducedSpaceContext(context.Background(), scores, center, opts...)
}

// ReducedSpaceContext is ReducedSpace with cancellation. When ctx is done
// before every row is evaluated it returns (nil, ctx.Err()).
func ReducedSpaceContext(ctx context.Context, scores matrix.Matrix, center []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)

	sRows, err := checkReducedSpace(scores, center)
	if err != nil {
		o.logger.LogCompute(ctx, MetricReducedSpace, rowsOf(scores), len(center), o.workers, err)
		return nil, err
	}

	out, err := evalRows(ctx, len(sRows), o.workers, func() rowFunc {
		return func(i int) float64 {
			return squaredEuclideanUnchecked(sRows[i], center)
		}
	})
	o.logger.LogCompute(ctx, MetricReducedSpace, len(sRows), len(center), o.workers, err)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func checkReducedSpace(scores matrix.Matrix, center []float64) ([][]float64, error) {
	if err := matrix.ValidateNotNil(scores); err != nil {
		return nil, distanceErrorf(opReducedSpace, "scores", err)
	}
	if k := scores.Cols(); len(center) != k {
		return nil, &DimensionError{Op: opReducedSpace, Operand: OperandCenter, Want: k, Got: len(center)}
	}
	s, err := matrix.AsDense(scores)
	if err != nil {
		return nil, distanceErrorf(opReducedSpace, "scores", err)
	}
	rows, err := rowViews(s)
	if err != nil {
		return nil, distanceErrorf(opReducedSpace, "scores", err)
	}

	return rows, nil
}
