package possort

import (
	"github.com/arthur-debert/matrixlab/pkg/matrix"
)

// Regions holds the sorted cells on each side of a diagonal, in the order
// they were written.
type Regions struct {
	Above []PositionedValue `json:"above"`
	Below []PositionedValue `json:"below"`
}

// Values above a diagonal sort from largest to smallest, values below it from
// smallest to largest.
const (
	AboveOrder = Descending
	BelowOrder = Ascending
)

// SortAroundMain sorts the cells above the main diagonal descending and the
// cells below it ascending. The diagonal itself is not moved.
func SortAroundMain(m matrix.Matrix) (Regions, error) {
	if err := m.RequireSquare(); err != nil {
		return Regions{}, err
	}

	above := Extract(m, AboveMain)
	below := Extract(m, BelowMain)
	Sort(above, AboveOrder)
	Sort(below, BelowOrder)

	if err := Apply(m, above); err != nil {
		return Regions{}, err
	}
	if err := Apply(m, below); err != nil {
		return Regions{}, err
	}
	return Regions{Above: above, Below: below}, nil
}

// SortAroundSecondary applies the SortAroundMain rule to the secondary
// diagonal. The columns are mirrored so the secondary diagonal becomes the
// main one, sorted, and mirrored back. Each row is therefore filled right to
// left. The returned coordinates refer to m, not to the mirror.
func SortAroundSecondary(m matrix.Matrix) (Regions, error) {
	if err := m.RequireSquare(); err != nil {
		return Regions{}, err
	}

	mirrored := m.MirrorColumns()
	regions, err := SortAroundMain(mirrored)
	if err != nil {
		return Regions{}, err
	}

	restored := mirrored.MirrorColumns()
	for i := range m {
		copy(m[i], restored[i])
	}

	n := m.Cols()
	unmirror := func(list []PositionedValue) {
		for i := range list {
			list[i].Col = n - 1 - list[i].Col
		}
	}
	unmirror(regions.Above)
	unmirror(regions.Below)
	return regions, nil
}
