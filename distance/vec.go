package distance

import "github.com/katalvlaran/lvdist/matrix"

// Unchecked per-row primitives. Shapes are validated once at the kernel
// boundary, so the hot loop skips the length guards of the matrix
// package. Each helper accumulates in ascending index order from
// matrix.ZeroSum, matching matrix.MatVecInto, matrix.Dot and
// matrix.SquaredEuclidean bit for bit.

// rowViews returns the read-only row slices of d.
// Complexity: O(r) slice headers; no element copies.
func rowViews(d *matrix.Dense) ([][]float64, error) {
	rows := make([][]float64, d.Rows())
	for i := range rows {
		r, err := d.RawRow(i)
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}

	return rows, nil
}

// subUnchecked writes a-b into dst; len(dst) == len(b) >= len(a) is assumed.
func subUnchecked(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

// dotUnchecked returns Σ a[i]*b[i]; len(b) >= len(a) is assumed.
func dotUnchecked(a, b []float64) float64 {
	acc := matrix.ZeroSum
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc
}

// matVecUnchecked writes m·x into dst, one row slice of m per entry of dst.
func matVecUnchecked(dst []float64, m [][]float64, x []float64) {
	for j, row := range m {
		dst[j] = dotUnchecked(row, x)
	}
}

// squaredEuclideanUnchecked returns Σ (a[i]-b[i])²; len(b) >= len(a) is assumed.
func squaredEuclideanUnchecked(a, b []float64) float64 {
	var diff float64
	acc := matrix.ZeroSum
	for i := range a {
		diff = a[i] - b[i]
		acc += diff * diff
	}

	return acc
}
