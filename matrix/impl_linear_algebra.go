// SPDX-License-Identifier: MIT
// Package matrix provides the small set of dense linear-algebra kernels the
// distance package is expressed with: matrix-vector product, dot product,
// vector difference, squared Euclidean distance and scalar scaling.
//
// Purpose:
//   - Keep every accumulation in a fixed, documented index order so results are
//     bit-reproducible across runs and across sequential/parallel callers.
//   - Offer *Into variants that write into caller-owned buffers, so per-row
//     scratch space can be reused across rows.
//
// Notes:
//   - No zero-skipping micro-optimizations: 0·Inf must produce NaN exactly as
//     IEEE 754 says, so NaN/Inf inputs propagate unchanged.

package matrix

import "fmt"

// ZeroSum is the initial value for every accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec           = "MatVec"
	opMatVecInto       = "MatVecInto"
	opDot              = "Dot"
	opSubInto          = "SubInto"
	opSquaredEuclidean = "SquaredEuclidean"
	opScale            = "Scale"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x for a column vector x into a freshly allocated y.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order (see MatVecInto).
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows())
	if err := MatVecInto(y, m, x); err != nil {
		return nil, err
	}

	return y, nil
}

// MatVecInto computes dst = m·x, overwriting dst.
// Implementation:
//   - Stage 1: validate m non-nil, len(x) == Cols, len(dst) == Rows.
//   - Stage 2: for each row i, dst[i] = Σ_{j=0..c-1} m[i,j]*x[j], summed in
//     ascending j. *Dense reads the flat buffer; other types go through At.
//
// Behavior highlights:
//   - dst must not alias x; m and x are never written.
//   - An r×0 matrix yields dst filled with zeros.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opMatVecInto).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MatVecInto(dst []float64, m Matrix, x []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}
	if err := ValidateVecLen(dst, rows); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}

	var i, j int
	var acc float64

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			dst[i] = acc
		}

		return nil
	}

	// Fallback: interface-based dot-products via At.
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return matrixErrorf(opMatVecInto, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		dst[i] = acc
	}

	return nil
}

// Dot returns Σ_{i=0..n-1} a[i]*b[i], summed in ascending i.
//
// Errors: ErrDimensionMismatch when len(a) != len(b).
// Complexity: Time O(n), Space O(1).
func Dot(a, b []float64) (float64, error) {
	if err := ValidateVecLen(b, len(a)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return dotUnchecked(a, b), nil
}

// dotUnchecked is Dot without the length guard; len(b) >= len(a) is assumed.
func dotUnchecked(a, b []float64) float64 {
	acc := ZeroSum
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc
}

// SubInto computes dst = a - b elementwise.
//
// Errors: ErrDimensionMismatch unless len(a) == len(b) == len(dst).
// Complexity: Time O(n), Space O(1).
func SubInto(dst, a, b []float64) error {
	if err := ValidateVecLen(b, len(a)); err != nil {
		return matrixErrorf(opSubInto, err)
	}
	if err := ValidateVecLen(dst, len(a)); err != nil {
		return matrixErrorf(opSubInto, err)
	}
	for i := range a {
		dst[i] = a[i] - b[i]
	}

	return nil
}

// SquaredEuclidean returns Σ_{i=0..n-1} (a[i]-b[i])², summed in ascending i.
//
// Errors: ErrDimensionMismatch when len(a) != len(b).
// Complexity: Time O(n), Space O(1).
func SquaredEuclidean(a, b []float64) (float64, error) {
	if err := ValidateVecLen(b, len(a)); err != nil {
		return 0, matrixErrorf(opSquaredEuclidean, err)
	}

	var diff float64
	acc := ZeroSum
	for i := range a {
		diff = a[i] - b[i]
		acc += diff * diff
	}

	return acc, nil
}

// Scale returns a new matrix alpha*m.
//
// Errors: ErrNilMatrix; wrapped At/Set errors on the fallback path.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			res.data[k] = alpha * v
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = alpha * v
		}
	}

	return res, nil
}
