package matrix_test

import (
	"testing"

	"github.com/arthur-debert/matrixlab/pkg/errors"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowAndColSums(t *testing.T) {
	m := matrix.Matrix{
		{1, 2, 3},
		{4, 5, 6},
	}

	assert.Equal(t, []int{6, 15}, m.RowSums())
	assert.Equal(t, []int{5, 7, 9}, m.ColSums())
	assert.Equal(t, 21, m.Total())
}

func TestDiagonals(t *testing.T) {
	tests := []struct {
		name        string
		m           matrix.Matrix
		main        []int
		secondary   []int
		wantSum     int
		wantProduct int64
	}{
		{
			name:        "two_by_two",
			m:           matrix.Matrix{{1, 2}, {3, 4}},
			main:        []int{1, 4},
			secondary:   []int{2, 3},
			wantSum:     5,
			wantProduct: 6,
		},
		{
			name:        "three_by_three",
			m:           matrix.Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			main:        []int{1, 5, 9},
			secondary:   []int{3, 5, 7},
			wantSum:     15,
			wantProduct: 105,
		},
		{
			name:        "negatives",
			m:           matrix.Matrix{{-2, 5}, {-3, 4}},
			main:        []int{-2, 4},
			secondary:   []int{5, -3},
			wantSum:     2,
			wantProduct: -15,
		},
		{
			name:        "single_cell",
			m:           matrix.Matrix{{7}},
			main:        []int{7},
			secondary:   []int{7},
			wantSum:     7,
			wantProduct: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.main, tt.m.MainDiagonal())
			assert.Equal(t, tt.secondary, tt.m.SecondaryDiagonal())
			assert.Equal(t, tt.wantSum, tt.m.MainDiagonalSum())
			assert.Equal(t, tt.wantProduct, tt.m.SecondaryDiagonalProduct())
		})
	}
}

func TestSecondaryDiagonalProductDoesNotOverflowInt32(t *testing.T) {
	m := matrix.Matrix{
		{0, 0, 50000},
		{0, 50000, 0},
		{50000, 0, 0},
	}
	assert.Equal(t, int64(125000000000000), m.SecondaryDiagonalProduct())
}

func TestDiagonalRatio(t *testing.T) {
	t.Run("divides_sum_by_product", func(t *testing.T) {
		ratio, err := matrix.Matrix{{1, 2}, {3, 4}}.DiagonalRatio()
		require.NoError(t, err)
		assert.InDelta(t, 5.0/6.0, ratio, 1e-12)
	})

	t.Run("zero_product_is_degenerate", func(t *testing.T) {
		_, err := matrix.Matrix{{1, 0}, {3, 4}}.DiagonalRatio()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDivisionDegenerate))
		assert.Equal(t, 5, errors.GetErrorDetails(err)["sum"])
	})

	t.Run("non_square_rejected", func(t *testing.T) {
		_, err := matrix.Matrix{{1, 2, 3}}.DiagonalRatio()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidDimension))
	})
}

func TestMasks(t *testing.T) {
	m := matrix.Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}

	assert.Equal(t, matrix.Matrix{{1, 0, 0}, {0, 5, 0}, {0, 0, 9}}, m.MaskMain())
	assert.Equal(t, matrix.Matrix{{0, 0, 3}, {0, 5, 0}, {7, 0, 0}}, m.MaskSecondary())
	assert.Equal(t, 45, m.Total(), "masks must not modify the source")
}
