package possort_test

import (
	"testing"

	"github.com/arthur-debert/matrixlab/pkg/errors"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/arthur-debert/matrixlab/pkg/possort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	m := matrix.Matrix{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}

	t.Run("above_main_in_scan_order", func(t *testing.T) {
		got := possort.Extract(m, possort.AboveMain)
		assert.Equal(t, []possort.PositionedValue{
			{Value: 2, Row: 0, Col: 1},
			{Value: 3, Row: 0, Col: 2},
			{Value: 6, Row: 1, Col: 2},
		}, got)
	})

	t.Run("below_main_in_scan_order", func(t *testing.T) {
		got := possort.Extract(m, possort.BelowMain)
		assert.Equal(t, []int{4, 7, 8}, possort.Values(got))
	})

	t.Run("secondary_predicates", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 4}, possort.Values(possort.Extract(m, possort.AboveSecondary(3))))
		assert.Equal(t, []int{6, 8, 9}, possort.Values(possort.Extract(m, possort.BelowSecondary(3))))
	})

	t.Run("nothing_selected", func(t *testing.T) {
		assert.Empty(t, possort.Extract(matrix.Matrix{{1}}, possort.AboveMain))
	})
}

func TestExtractThenApplyIsIdentity(t *testing.T) {
	m := matrix.Matrix{
		{3, -1, 8, 2},
		{0, 5, 7, 1},
		{9, 4, -6, 2},
		{1, 1, 1, 1},
	}
	want := m.Clone()

	for _, pred := range []possort.Predicate{possort.AboveMain, possort.BelowMain, possort.AboveSecondary(4)} {
		list := possort.Extract(m, pred)
		require.NoError(t, possort.Apply(m, list))
		assert.Equal(t, want, m)
	}
}

func TestSortMovesValuesNotPositions(t *testing.T) {
	list := []possort.PositionedValue{
		{Value: 9, Row: 0, Col: 1},
		{Value: 2, Row: 0, Col: 2},
		{Value: 5, Row: 1, Col: 2},
	}

	possort.SortAscending(list)

	assert.Equal(t, []possort.PositionedValue{
		{Value: 2, Row: 0, Col: 1},
		{Value: 5, Row: 0, Col: 2},
		{Value: 9, Row: 1, Col: 2},
	}, list)

	m := matrix.Matrix{{0, 9, 2}, {0, 0, 5}, {0, 0, 0}}
	require.NoError(t, possort.Apply(m, list))
	assert.Equal(t, matrix.Matrix{{0, 2, 5}, {0, 0, 9}, {0, 0, 0}}, m)
}

func TestSortDescending(t *testing.T) {
	list := []possort.PositionedValue{
		{Value: -3, Row: 1, Col: 0},
		{Value: 7, Row: 2, Col: 0},
		{Value: 7, Row: 2, Col: 1},
		{Value: 0, Row: 3, Col: 0},
	}

	possort.Sort(list, possort.Descending)

	assert.Equal(t, []int{7, 7, 0, -3}, possort.Values(list))
	assert.Equal(t, 1, list[0].Row)
	assert.Equal(t, 0, list[0].Col)
	assert.Equal(t, 3, list[3].Row)
}

func TestSortEmptyList(t *testing.T) {
	var list []possort.PositionedValue
	possort.SortAscending(list)
	possort.SortDescending(list)
	assert.Empty(t, list)
}

func TestApplyRejectsInvalidPositions(t *testing.T) {
	tests := []struct {
		name string
		pv   possort.PositionedValue
	}{
		{"row_out_of_range", possort.PositionedValue{Value: 1, Row: 2, Col: 0}},
		{"col_out_of_range", possort.PositionedValue{Value: 1, Row: 0, Col: 2}},
		{"negative_row", possort.PositionedValue{Value: 1, Row: -1, Col: 0}},
		{"negative_col", possort.PositionedValue{Value: 1, Row: 0, Col: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := matrix.Matrix{{1, 2}, {3, 4}}
			list := []possort.PositionedValue{
				{Value: 99, Row: 0, Col: 0},
				tt.pv,
			}

			err := possort.Apply(m, list)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPosition))
			assert.Equal(t, matrix.Matrix{{1, 2}, {3, 4}}, m, "no partial writes")
		})
	}
}

func TestReorder(t *testing.T) {
	m := matrix.Matrix{
		{1, 9, 4},
		{8, 5, 2},
		{3, 7, 6},
	}

	require.NoError(t, possort.Reorder(m, possort.AboveMain, possort.Ascending))
	assert.Equal(t, matrix.Matrix{
		{1, 2, 4},
		{8, 5, 9},
		{3, 7, 6},
	}, m)

	err := possort.Reorder(matrix.Matrix{}, possort.AboveMain, possort.Ascending)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidDimension))
}

func TestOrderString(t *testing.T) {
	assert.Equal(t, "ascending", possort.Ascending.String())
	assert.Equal(t, "descending", possort.Descending.String())
}
