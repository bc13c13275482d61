package distance_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/katalvlaran/lvdist/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParallel_MatchesSequential verifies row-parallel evaluation is bit-identical
// to the sequential reference for several worker counts.
func TestParallel_MatchesSequential(t *testing.T) {
	const n, p = 1000, 7
	X := mustRows(t, randomRows(21, n, p))
	mu := randomRows(22, 1, p)[0]
	Sinv := randomSPD(t, 23, p)

	seqM, err := distance.Mahalanobis(X, mu, Sinv)
	require.NoError(t, err)
	seqR, err := distance.ReducedSpace(X, mu)
	require.NoError(t, err)

	for _, w := range []int{0, 2, 3, 8, 64} {
		parM, err := distance.Mahalanobis(X, mu, Sinv, distance.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, seqM, parM, "Mahalanobis workers=%d", w)

		parR, err := distance.ReducedSpace(X, mu, distance.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, seqR, parR, "ReducedSpace workers=%d", w)
	}
}

// TestContext_CanceledBeforeStart verifies a done context yields no result.
func TestContext_CanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	X := mustRows(t, randomRows(31, 500, 3))
	mu := []float64{0, 0, 0}

	for _, w := range []int{1, 4} {
		got, err := distance.MahalanobisContext(ctx, X, mu, mustIdentity(t, 3), distance.WithWorkers(w))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, got)

		got, err = distance.ReducedSpaceContext(ctx, X, mu, distance.WithWorkers(w))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, got)
	}
}

// TestEvalRows_CanceledMidway cancels from inside a row and verifies both the
// sequential poll and the errgroup poll stop the walk early and drop the buffer.
func TestEvalRows_CanceledMidway(t *testing.T) {
	const n = 10000
	const cancelAt = 300

	for _, w := range []int{1, 4} {
		ctx, cancel := context.WithCancel(context.Background())
		var calls atomic.Int64

		got, err := distance.EvalRows(ctx, n, w, func() distance.RowFunc {
			return func(i int) float64 {
				calls.Add(1)
				if i == cancelAt {
					cancel()
				}

				return float64(i)
			}
		})
		cancel()

		assert.ErrorIs(t, err, context.Canceled, "workers=%d", w)
		assert.Nil(t, got, "workers=%d", w)
		assert.Less(t, calls.Load(), int64(n), "workers=%d: rows kept running after cancel", w)
	}

	// Sequential walk stops at the first poll after the cancelling row.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var calls int
	_, err := distance.EvalRows(ctx, n, 1, func() distance.RowFunc {
		return func(i int) float64 {
			calls++
			if i == cancelAt {
				cancel()
			}

			return 0
		}
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, (cancelAt/distance.CancelCheckEvery+1)*distance.CancelCheckEvery, calls)
}

// TestContext_CanceledWhileRunning cancels a large computation in flight for
// sequential and parallel evaluation.
func TestContext_CanceledWhileRunning(t *testing.T) {
	if testing.Short() {
		t.Skip("large input")
	}
	const n, p = 200000, 30
	X := mustRows(t, randomRows(41, n, p))
	mu := make([]float64, p)
	Sinv := randomSPD(t, 42, p)

	for _, w := range []int{1, 4} {
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(2*time.Millisecond, cancel)

		got, err := distance.MahalanobisContext(ctx, X, mu, Sinv, distance.WithWorkers(w))
		cancel()
		if err == nil {
			// The whole input finished before the timer fired; nothing to observe.
			require.Len(t, got, n)
			continue
		}
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", w)
		assert.Nil(t, got, "workers=%d", w)
	}
}

// TestContext_DimensionErrorWins verifies shape errors are reported even on a live context
// and take precedence over computation.
func TestContext_DimensionErrorWins(t *testing.T) {
	X := mustRows(t, [][]float64{{1, 2}})
	_, err := distance.MahalanobisContext(context.Background(), X, []float64{1}, mustIdentity(t, 2))
	assert.ErrorIs(t, err, distance.ErrDimensionMismatch)
}
