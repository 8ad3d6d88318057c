// Package matrix provides the integer matrix value used by every matrixlab
// operation, together with shape validation and the row, column and diagonal
// reductions the features are built on.
//
// A Matrix is a plain [][]int. Functions that need a square matrix check for
// it explicitly instead of encoding squareness in a separate type.
package matrix

import (
	"github.com/arthur-debert/matrixlab/pkg/errors"
)

// Matrix is a rectangular grid of signed integers stored row by row.
type Matrix [][]int

// New returns a zero-filled rows×cols matrix.
func New(rows, cols int) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Newf(errors.ErrInvalidDimension,
			"dimensions must be positive, got %dx%d", rows, cols).
			WithDetail("rows", rows).
			WithDetail("cols", cols)
	}

	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]int, cols)
	}
	return m, nil
}

// FromRows validates rows and returns a deep copy of them as a Matrix.
func FromRows(rows [][]int) (Matrix, error) {
	m := Matrix(rows)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m.Clone(), nil
}

// Validate reports an ErrInvalidDimension error when m is empty or ragged.
func (m Matrix) Validate() error {
	if len(m) == 0 {
		return errors.New(errors.ErrInvalidDimension, "matrix cannot be empty")
	}

	cols := len(m[0])
	if cols == 0 {
		return errors.New(errors.ErrInvalidDimension, "matrix rows cannot be empty")
	}

	for i, row := range m {
		if len(row) != cols {
			return errors.Newf(errors.ErrInvalidDimension,
				"row %d has %d values, expected %d", i, len(row), cols).
				WithDetail("row", i)
		}
	}
	return nil
}

// RequireSquare validates m and additionally requires Rows() == Cols().
func (m Matrix) RequireSquare() error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !m.IsSquare() {
		return errors.Newf(errors.ErrInvalidDimension,
			"matrix must be square, got %dx%d", m.Rows(), m.Cols()).
			WithDetail("rows", m.Rows()).
			WithDetail("cols", m.Cols())
	}
	return nil
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsSquare reports whether m is non-empty with as many rows as columns.
func (m Matrix) IsSquare() bool {
	return len(m) > 0 && len(m) == m.Cols()
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether m and other have the same shape and values.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// InBounds reports whether (row, col) addresses a cell of m.
func (m Matrix) InBounds(row, col int) bool {
	return row >= 0 && row < m.Rows() && col >= 0 && col < m.Cols()
}

// MirrorColumns returns a copy of m with every row reversed, so column j of
// the result is column Cols()-1-j of m.
func (m Matrix) MirrorColumns() Matrix {
	out := m.Clone()
	for _, row := range out {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	return out
}
