// Package matrix offers the dense linear-algebra layer under the distance kernels.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors
//     (At, Set, RawRow) and legal empty shapes (0×p, n×0).
//   - Deterministic vector/matrix primitives (MatVecInto, Dot, SubInto,
//     SquaredEuclidean, Scale) that always accumulate in ascending index order.
//   - Validators (ValidateNotNil, ValidateSquareNonNil, ValidateVecLen,
//     ValidateSymmetric) shared by every caller.
//   - gonum interop (FromGonum, ToGonum) and a symmetric smallest-eigenvalue
//     probe (MinEigenSym) used for optional precision-matrix checks.
//
// All errors are package sentinels (see errors.go) matched with errors.Is.
//
// See the examples in this package and in distance for usage patterns.
package matrix
