// Package possort reorders the values of a region of a matrix while every
// value slot stays bound to the cell it was read from.
//
// The workflow is Extract, then SortAscending or SortDescending, then Apply.
// Sorting moves values between slots but never touches the Row and Col
// fields. Applying the list writes the sorted values back over the same set
// of cells, in the row-major order they were extracted.
package possort

import (
	"sort"

	"github.com/arthur-debert/matrixlab/pkg/errors"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
)

// PositionedValue is one matrix cell's value bound to its coordinate.
type PositionedValue struct {
	Value int `json:"value"`
	Row   int `json:"row"`
	Col   int `json:"col"`
}

// Predicate selects cells by coordinate.
type Predicate func(row, col int) bool

// AboveMain selects cells strictly above the main diagonal.
func AboveMain(row, col int) bool { return col > row }

// BelowMain selects cells strictly below the main diagonal.
func BelowMain(row, col int) bool { return col < row }

// AboveSecondary selects cells strictly above the secondary diagonal of an
// n×n matrix.
func AboveSecondary(n int) Predicate {
	return func(row, col int) bool { return row+col < n-1 }
}

// BelowSecondary selects cells strictly below the secondary diagonal of an
// n×n matrix.
func BelowSecondary(n int) Predicate {
	return func(row, col int) bool { return row+col > n-1 }
}

// Order is the direction of a sort.
type Order int

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// Extract scans m in row-major order and returns every cell accepted by pred.
func Extract(m matrix.Matrix, pred Predicate) []PositionedValue {
	var list []PositionedValue
	for i, row := range m {
		for j, v := range row {
			if pred(i, j) {
				list = append(list, PositionedValue{Value: v, Row: i, Col: j})
			}
		}
	}
	return list
}

// SortValues stably sorts the values of list with less. Coordinates keep
// their slots.
func SortValues(list []PositionedValue, less func(a, b int) bool) {
	values := Values(list)
	sort.SliceStable(values, func(i, j int) bool { return less(values[i], values[j]) })
	for i := range list {
		list[i].Value = values[i]
	}
}

// SortAscending sorts the values of list from smallest to largest.
func SortAscending(list []PositionedValue) {
	SortValues(list, func(a, b int) bool { return a < b })
}

// SortDescending sorts the values of list from largest to smallest.
func SortDescending(list []PositionedValue) {
	SortValues(list, func(a, b int) bool { return a > b })
}

// Sort dispatches to SortAscending or SortDescending.
func Sort(list []PositionedValue, order Order) {
	if order == Descending {
		SortDescending(list)
		return
	}
	SortAscending(list)
}

// Apply writes every value of list into m at its coordinate. All coordinates
// are checked first, so m is untouched when any of them is invalid.
func Apply(m matrix.Matrix, list []PositionedValue) error {
	for _, pv := range list {
		if !m.InBounds(pv.Row, pv.Col) {
			return errors.Newf(errors.ErrInvalidPosition,
				"position (%d,%d) is outside the %dx%d matrix", pv.Row, pv.Col, m.Rows(), m.Cols()).
				WithDetail("row", pv.Row).
				WithDetail("col", pv.Col)
		}
	}

	for _, pv := range list {
		m[pv.Row][pv.Col] = pv.Value
	}
	return nil
}

// Reorder sorts the cells of m selected by pred in the given order, in place.
func Reorder(m matrix.Matrix, pred Predicate, order Order) error {
	if err := m.Validate(); err != nil {
		return err
	}

	list := Extract(m, pred)
	Sort(list, order)
	return Apply(m, list)
}

// Values returns the values of list in slot order.
func Values(list []PositionedValue) []int {
	values := make([]int, len(list))
	for i, pv := range list {
		values[i] = pv.Value
	}
	return values
}
