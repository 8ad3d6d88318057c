// Package sums implements the row and column sums command.
package sums

import (
	"github.com/arthur-debert/matrixlab/pkg/logging"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/arthur-debert/matrixlab/pkg/types"
)

// SumsOptions holds options for the sums command
type SumsOptions struct {
	// Matrix is any non-empty rectangular matrix.
	Matrix matrix.Matrix
}

// Sums computes the sum of every row, every column and the whole matrix.
func Sums(opts SumsOptions) (*types.SumsResult, error) {
	logger := logging.GetLogger("commands.sums")
	defer logging.LogOperationStart(logger, "sums")()

	if err := opts.Matrix.Validate(); err != nil {
		return nil, err
	}

	result := &types.SumsResult{
		Matrix:  opts.Matrix.Clone(),
		RowSums: opts.Matrix.RowSums(),
		ColSums: opts.Matrix.ColSums(),
		Total:   opts.Matrix.Total(),
	}

	logger.Info().
		Int("rows", opts.Matrix.Rows()).
		Int("cols", opts.Matrix.Cols()).
		Int("total", result.Total).
		Msg("Computed sums")
	return result, nil
}
