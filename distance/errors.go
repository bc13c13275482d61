package distance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvdist/matrix"
)

var (
	// ErrDimensionMismatch reports operands whose sizes disagree. Every
	// *DimensionError matches it (and matrix.ErrDimensionMismatch) via errors.Is.
	ErrDimensionMismatch = errors.New("distance: dimension mismatch")

	// ErrInvalidCovariance is returned under WithCovarianceCheck when the
	// precision matrix is not symmetric or not positive semi-definite.
	ErrInvalidCovariance = errors.New("distance: invalid inverse covariance matrix")
)

// Operand names used in DimensionError.
const (
	OperandMu       = "mu"
	OperandSinvRows = "sinv.rows"
	OperandSinvCols = "sinv.cols"
	OperandCenter   = "center"
)

// DimensionError describes which operand had the wrong size.
//
// Example message:
//
//	distance: Mahalanobis: mu has size 3, want 2 (columns of X)
type DimensionError struct {
	Op      string // kernel name, e.g. "Mahalanobis"
	Operand string // one of the Operand* constants
	Want    int    // size implied by the other operands
	Got     int    // size actually supplied
}

func (e *DimensionError) Error() string {
	var ref string
	switch e.Operand {
	case OperandSinvCols:
		ref = "rows of Sinv"
	case OperandCenter:
		ref = "columns of scores"
	default:
		ref = "columns of X"
	}

	return fmt.Sprintf("distance: %s: %s has size %d, want %d (%s)", e.Op, e.Operand, e.Got, e.Want, ref)
}

// Unwrap exposes both the package sentinel and the matrix sentinel.
func (e *DimensionError) Unwrap() []error {
	return []error{ErrDimensionMismatch, matrix.ErrDimensionMismatch}
}

// distanceErrorf tags err with the kernel and operand it was found on.
func distanceErrorf(op, operand string, err error) error {
	return fmt.Errorf("distance: %s: %s: %w", op, operand, err)
}
