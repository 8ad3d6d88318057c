package possort_test

import (
	"testing"

	"github.com/arthur-debert/matrixlab/pkg/errors"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/arthur-debert/matrixlab/pkg/possort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortAroundMain(t *testing.T) {
	m := matrix.Matrix{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}

	regions, err := possort.SortAroundMain(m)
	require.NoError(t, err)

	assert.Equal(t, matrix.Matrix{
		{1, 6, 3},
		{4, 5, 2},
		{7, 8, 9},
	}, m)
	assert.Equal(t, []int{6, 3, 2}, possort.Values(regions.Above))
	assert.Equal(t, []int{4, 7, 8}, possort.Values(regions.Below))
	assert.Equal(t, []int{1, 5, 9}, m.MainDiagonal(), "diagonal untouched")
}

func TestSortAroundMainKeepsMultiset(t *testing.T) {
	m := matrix.Matrix{
		{50, 31, 72, 25},
		{44, 60, 28, 39},
		{71, 26, 33, 58},
		{47, 65, 29, 70},
	}
	before := possort.Extract(m, possort.AboveMain)

	regions, err := possort.SortAroundMain(m)
	require.NoError(t, err)

	assert.ElementsMatch(t, possort.Values(before), possort.Values(regions.Above))
	assert.Equal(t, []int{72, 58, 39, 31, 28, 25}, possort.Values(possort.Extract(m, possort.AboveMain)))
	assert.Equal(t, []int{26, 29, 44, 47, 65, 71}, possort.Values(possort.Extract(m, possort.BelowMain)))
}

func TestSortAroundSecondary(t *testing.T) {
	m := matrix.Matrix{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}

	regions, err := possort.SortAroundSecondary(m)
	require.NoError(t, err)

	assert.Equal(t, matrix.Matrix{
		{2, 4, 3},
		{1, 5, 6},
		{7, 9, 8},
	}, m)
	assert.Equal(t, []int{3, 5, 7}, m.SecondaryDiagonal(), "diagonal untouched")

	assert.Equal(t, []possort.PositionedValue{
		{Value: 4, Row: 0, Col: 1},
		{Value: 2, Row: 0, Col: 0},
		{Value: 1, Row: 1, Col: 0},
	}, regions.Above)
	assert.Equal(t, []possort.PositionedValue{
		{Value: 6, Row: 1, Col: 2},
		{Value: 8, Row: 2, Col: 2},
		{Value: 9, Row: 2, Col: 1},
	}, regions.Below)

	for _, pv := range append(regions.Above, regions.Below...) {
		assert.Equal(t, pv.Value, m[pv.Row][pv.Col], "returned coordinates refer to the matrix")
	}
}

func TestSortAroundDiagonalRequiresSquare(t *testing.T) {
	_, err := possort.SortAroundMain(matrix.Matrix{{1, 2}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidDimension))

	_, err = possort.SortAroundSecondary(matrix.Matrix{{1, 2}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidDimension))
}
