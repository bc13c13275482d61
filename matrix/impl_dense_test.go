// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvdist/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseEmptyShapes ensures 0×c and r×0 are legal.
func TestNewDenseEmptyShapes(t *testing.T) {
	m, err := matrix.NewDense(0, 4)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 4, c)

	m, err = matrix.NewDense(3, 0)
	require.NoError(t, err)
	row, err := m.RawRow(2)
	require.NoError(t, err)
	require.Empty(t, row)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Set(0,-1)")
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestNewDenseFrom copies the buffer and validates its length.
func TestNewDenseFrom(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)
	data[0] = 100 // caller mutation must not leak in

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	v, err = m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = matrix.NewDenseFrom(2, 2, data)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFrom(-1, 2, nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFromRows covers regular, empty and ragged input.
func TestNewDenseFromRows(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	assert.Equal(t, "[1, 2]\n[3, 4]\n[5, 6]\n", m.String())

	empty, err := matrix.NewDenseFromRows(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, 0, empty.Cols())

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "row 1 has 1 values, want 2")
}

// TestRawRow checks aliasing, clipped capacity and bounds.
func TestRawRow(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.RawRow(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, row)
	assert.Equal(t, 2, cap(row), "capacity must stop at the row end")

	_ = append(row, 99) // must reallocate, not overwrite row 1
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = m.RawRow(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.RawRow(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestSetNonFinite verifies Set stores NaN and ±Inf as given; only validator
// tolerances are rejected with ErrNaNInf.
func TestSetNonFinite(t *testing.T) {
	m := MustDense(t, 1, 3)
	require.NoError(t, m.Set(0, 0, math.NaN()))
	require.NoError(t, m.Set(0, 1, math.Inf(1)))
	require.NoError(t, m.Set(0, 2, math.Inf(-1)))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
	v, err = m.At(0, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
	v, err = m.At(0, 2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))
}
