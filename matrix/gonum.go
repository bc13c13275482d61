// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

const opFromGonum = "FromGonum"

// FromGonum copies any gonum matrix into a *Dense.
// Upstream code that estimates covariance or fits PCA with gonum can hand
// its results to the distance kernels through this adapter.
//
// Errors: ErrNilMatrix for a nil interface or a typed nil pointer
// (e.g. (*mat.Dense)(nil)).
// Complexity: Time O(r*c), Space O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if isNilGonum(g) {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}

// isNilGonum reports whether g is nil or wraps a nil pointer.
// gonum's concrete types panic in Dims on a nil receiver.
func isNilGonum(g mat.Matrix) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ToGonum returns a *mat.Dense holding a copy of m.
// Empty shapes map to a zero-value mat.Dense, since gonum rejects 0-length dims.
func (m *Dense) ToGonum() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return &mat.Dense{}
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// symDense copies the upper triangle of a square *Dense into a gonum SymDense.
// Callers validate squareness and symmetry first; n must be > 0.
func (m *Dense) symDense() *mat.SymDense {
	n := m.r
	buf := make([]float64, n*n)
	copy(buf, m.data)

	return mat.NewSymDense(n, buf)
}

// MinEigenSym returns the smallest eigenvalue of the symmetric matrix m,
// computed with gonum's symmetric eigensolver. ok is false when the input
// holds NaN/Inf or the solver did not converge. An empty matrix reports (0, true).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^3).
func MinEigenSym(m Matrix) (float64, bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, false, matrixErrorf("MinEigenSym", err)
	}
	d, err := AsDense(m)
	if err != nil {
		return 0, false, matrixErrorf("MinEigenSym", err)
	}
	if d.r == 0 {
		return 0, true, nil
	}
	for _, v := range d.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false, nil // no meaningful spectrum
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(d.symDense(), false) {
		return 0, false, nil
	}
	vals := eig.Values(nil)
	lo := vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
	}

	return lo, true, nil
}
