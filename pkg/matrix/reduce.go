package matrix

import (
	"github.com/arthur-debert/matrixlab/pkg/errors"
)

// RowSums returns the sum of every row.
func (m Matrix) RowSums() []int {
	sums := make([]int, m.Rows())
	for i, row := range m {
		for _, v := range row {
			sums[i] += v
		}
	}
	return sums
}

// ColSums returns the sum of every column.
func (m Matrix) ColSums() []int {
	sums := make([]int, m.Cols())
	for _, row := range m {
		for j, v := range row {
			sums[j] += v
		}
	}
	return sums
}

// Total returns the sum of all cells.
func (m Matrix) Total() int {
	total := 0
	for _, s := range m.RowSums() {
		total += s
	}
	return total
}

// MainDiagonal returns the cells where row == col. m must be square.
func (m Matrix) MainDiagonal() []int {
	d := make([]int, len(m))
	for i := range m {
		d[i] = m[i][i]
	}
	return d
}

// SecondaryDiagonal returns the cells where row+col == n-1, top to bottom.
// m must be square.
func (m Matrix) SecondaryDiagonal() []int {
	n := len(m)
	d := make([]int, n)
	for i := range m {
		d[i] = m[i][n-1-i]
	}
	return d
}

// MainDiagonalSum returns the sum of the main diagonal.
func (m Matrix) MainDiagonalSum() int {
	sum := 0
	for _, v := range m.MainDiagonal() {
		sum += v
	}
	return sum
}

// SecondaryDiagonalProduct returns the product of the secondary diagonal.
// The product is accumulated in 64 bits.
func (m Matrix) SecondaryDiagonalProduct() int64 {
	product := int64(1)
	for _, v := range m.SecondaryDiagonal() {
		product *= int64(v)
	}
	return product
}

// DiagonalRatio divides the main diagonal sum by the secondary diagonal
// product. A zero product yields ErrDivisionDegenerate.
func (m Matrix) DiagonalRatio() (float64, error) {
	if err := m.RequireSquare(); err != nil {
		return 0, err
	}

	product := m.SecondaryDiagonalProduct()
	if product == 0 {
		return 0, errors.New(errors.ErrDivisionDegenerate,
			"secondary diagonal product is zero").
			WithDetail("sum", m.MainDiagonalSum())
	}
	return float64(m.MainDiagonalSum()) / float64(product), nil
}

// MaskMain returns a copy of m that keeps only the main diagonal and zeroes
// every other cell.
func (m Matrix) MaskMain() Matrix {
	return m.mask(func(i, j, _ int) bool { return i == j })
}

// MaskSecondary returns a copy of m that keeps only the secondary diagonal.
func (m Matrix) MaskSecondary() Matrix {
	return m.mask(func(i, j, n int) bool { return i+j == n-1 })
}

func (m Matrix) mask(keep func(i, j, n int) bool) Matrix {
	out := m.Clone()
	n := len(m)
	for i, row := range out {
		for j := range row {
			if !keep(i, j, n) {
				row[j] = 0
			}
		}
	}
	return out
}
