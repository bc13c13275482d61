package distance_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvdist/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix so the kernels cannot see the *Dense underneath and
// must take the interface path.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustIdentity builds I_n or fails the test.
func mustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// randomRows returns n×p values in [-10, 10) from a fixed seed.
func randomRows(seed int64, n, p int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, p)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*20 - 10
		}
	}

	return rows
}

// randomSPD returns A·Aᵀ + p·I for a random A, a symmetric positive-definite p×p matrix.
func randomSPD(t testing.TB, seed int64, p int) *matrix.Dense {
	t.Helper()
	a := randomRows(seed, p, p)
	out := make([][]float64, p)
	for i := 0; i < p; i++ {
		out[i] = make([]float64, p)
		for j := 0; j < p; j++ {
			var s float64
			for k := 0; k < p; k++ {
				s += a[i][k] * a[j][k]
			}
			out[i][j] = s
		}
		out[i][i] += float64(p)
	}

	return mustRows(t, out)
}

// squaredEuclideanRows is the reference Σ (x−c)² per row.
func squaredEuclideanRows(rows [][]float64, c []float64) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		var s float64
		for j := range r {
			d := r[j] - c[j]
			s += d * d
		}
		out[i] = s
	}

	return out
}
