// SPDX-License-Identifier: MIT
// Package matrix — public constructors and adapters.
//
// Purpose:
//   - Provide thin, intention-revealing entry points (identity, zeros, AsDense).
//   - Each facade delegates to the canonical implementation; no logic duplication.
//
// AI-Hints:
//   - NewIdentity(p) is the neutral precision matrix: Mahalanobis under I is squared Euclidean.
//   - AsDense lets kernels use flat-buffer loops for any Matrix implementation.

package matrix

import "fmt"

const opAsDense = "AsDense"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// AsDense returns m itself when it already is a *Dense, otherwise a *Dense
// copy materialized through At in i→j order.
//
// Errors: ErrNilMatrix; wrapped At errors from foreign implementations.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAsDense, err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAsDense, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opAsDense, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
