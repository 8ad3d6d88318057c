package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/arthur-debert/matrixlab/pkg/possort"
	"github.com/arthur-debert/matrixlab/pkg/ring"
	"github.com/arthur-debert/matrixlab/pkg/style"
	"github.com/arthur-debert/matrixlab/pkg/types"
)

func TestBuildUnknown(t *testing.T) {
	sections, ok := Build("nope")
	assert.False(t, ok)
	assert.Nil(t, sections)
}

func TestSumsView(t *testing.T) {
	m := matrix.Matrix{{1, 2}, {3, 4}}
	sections, ok := Build(&types.SumsResult{Matrix: m, RowSums: m.RowSums(), ColSums: m.ColSums(), Total: 10})
	require.True(t, ok)
	require.Len(t, sections, 1)

	assert.Equal(t, []int{3, 7}, sections[0].Table.RowSums)
	assert.Equal(t, []int{4, 6}, sections[0].Table.ColSums)
	assert.Equal(t, "Total: 10", style.Strip(sections[0].Lines[0]))
}

func TestDiagonalsView(t *testing.T) {
	ratio := 5.0 / 6.0
	r := &types.DiagonalsResult{Matrix: matrix.Matrix{{1, 2}, {3, 4}}, Sum: 5, Product: 6, Ratio: &ratio}

	sections := Diagonals(r)
	require.Len(t, sections, 4)

	assert.Equal(t, matrix.Matrix{{1, 0}, {0, 4}}, sections[1].Table.Matrix)
	assert.Equal(t, matrix.Matrix{{0, 2}, {3, 0}}, sections[2].Table.Matrix)
	assert.Equal(t, style.HighlightDiagonal, sections[2].Table.Highlight(0, 1))
	assert.Equal(t, style.HighlightNone, sections[2].Table.Highlight(0, 0))
	assert.Equal(t, "5/6 = 0.8333", style.Strip(sections[3].Lines[0]))

	r.Ratio = nil
	r.Product = 0
	assert.Contains(t, style.Strip(Diagonals(r)[3].Lines[0]), "5/0 is undefined")
}

func TestSortView(t *testing.T) {
	m := matrix.Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	r := &types.SortResult{
		Original:  m,
		Main:      m,
		Secondary: m,
		MainRegions: possort.Regions{
			Above: []possort.PositionedValue{{Value: 6}, {Value: 3}, {Value: 2}},
			Below: []possort.PositionedValue{{Value: 4}, {Value: 7}, {Value: 8}},
		},
	}

	sections := Sort(r)
	require.Len(t, sections, 3)

	main := sections[1].Table.Highlight
	assert.Equal(t, style.HighlightAbove, main(0, 2))
	assert.Equal(t, style.HighlightBelow, main(2, 0))
	assert.Equal(t, style.HighlightDiagonal, main(1, 1))

	secondary := sections[2].Table.Highlight
	assert.Equal(t, style.HighlightAbove, secondary(0, 0))
	assert.Equal(t, style.HighlightBelow, secondary(2, 2))
	assert.Equal(t, style.HighlightDiagonal, secondary(0, 2))

	assert.Equal(t, "Above the main diagonal, descending: 6 3 2", style.Strip(sections[1].Lines[0]))
	assert.Equal(t, "Below the main diagonal, ascending: 4 7 8", style.Strip(sections[1].Lines[1]))
}

func TestRotateView(t *testing.T) {
	m := matrix.Matrix{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}
	r := &types.RotateResult{
		Original:  m,
		Rotated:   m,
		Ring:      2,
		Direction: ring.Left,
		Angle:     ring.Angle90,
		Clockwise: ring.Angle270,
		Cells:     ring.Cells(4, 2),
	}

	sections := Rotate(r)
	require.Len(t, sections, 2)

	h := sections[1].Table.Highlight
	assert.Equal(t, style.HighlightRing, h(1, 1))
	assert.Equal(t, style.HighlightRing, h(2, 2))
	assert.Equal(t, style.HighlightNone, h(0, 0))
	assert.Equal(t, "Ring 2 rotated left 90 degrees (270 degrees clockwise)", style.Strip(sections[1].Lines[0]))
}

func TestGenConfigView(t *testing.T) {
	sections := GenConfig(&types.GenConfigResult{Content: "[display]\nformat = \"auto\"\n"})
	require.Len(t, sections, 1)
	assert.True(t, sections[0].Raw)
	assert.Equal(t, "[display]\nformat = \"auto\"", sections[0].Lines[0])

	sections = GenConfig(&types.GenConfigResult{Written: true, Path: "/tmp/c.toml"})
	assert.Equal(t, "Config written to /tmp/c.toml", style.Strip(sections[0].Lines[0]))
}
