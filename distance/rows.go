package distance

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// rowFunc evaluates the distance of observation i. Each worker owns its
// rowFunc (and therefore its scratch buffers).
type rowFunc func(i int) float64

// evalRows fills a fresh length-n result by calling a per-worker rowFunc
// for every row index.
//
// Implementation:
//   - Stage 1: fail fast if ctx is already done.
//   - Stage 2: with one worker (or too few rows to split) walk 0..n-1 on the
//     calling goroutine, polling ctx every cancelCheckEvery rows.
//   - Stage 3: otherwise cut [0,n) into contiguous blocks and run them on an
//     errgroup limited to `workers` goroutines; each block writes only its
//     own slots of out.
//
// Behavior highlights:
//   - Every row is computed by the same routine in the same order of
//     operations, so the result does not depend on the worker count.
//   - On cancellation the partially filled buffer is dropped: (nil, ctx.Err()).
//
// Complexity: O(n) calls to row; O(n) result allocation.
func evalRows(ctx context.Context, n, workers int, newRow func() rowFunc) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]float64, n)

	if workers <= 1 || n < 2*minRowsPerBlock {
		row := newRow()
		for i := 0; i < n; i++ {
			if i%cancelCheckEvery == 0 && i > 0 {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}
			out[i] = row(i)
		}

		return out, nil
	}

	block := (n + workers - 1) / workers
	if block < minRowsPerBlock {
		block = minRowsPerBlock
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += block {
		lo := lo
		hi := min(lo+block, n)
		g.Go(func() error {
			row := newRow()
			for i := lo; i < hi; i++ {
				if (i-lo)%cancelCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				out[i] = row(i)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
