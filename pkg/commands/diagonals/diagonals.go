// Package diagonals implements the diagonal arithmetic command: main
// diagonal sum, secondary diagonal product and their ratio.
package diagonals

import (
	"github.com/arthur-debert/matrixlab/pkg/errors"
	"github.com/arthur-debert/matrixlab/pkg/logging"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/arthur-debert/matrixlab/pkg/types"
)

// DiagonalsOptions holds options for the diagonals command
type DiagonalsOptions struct {
	Matrix matrix.Matrix
}

// Diagonals computes the diagonal arithmetic of a square matrix. A zero
// secondary product leaves the ratio undefined instead of failing.
func Diagonals(opts DiagonalsOptions) (*types.DiagonalsResult, error) {
	logger := logging.GetLogger("commands.diagonals")
	defer logging.LogOperationStart(logger, "diagonals")()

	m := opts.Matrix
	if err := m.RequireSquare(); err != nil {
		return nil, err
	}

	result := &types.DiagonalsResult{
		Matrix:            m.Clone(),
		MainDiagonal:      m.MainDiagonal(),
		SecondaryDiagonal: m.SecondaryDiagonal(),
		Sum:               m.MainDiagonalSum(),
		Product:           m.SecondaryDiagonalProduct(),
	}

	ratio, err := m.DiagonalRatio()
	switch {
	case err == nil:
		result.Ratio = &ratio
	case errors.IsErrorCode(err, errors.ErrDivisionDegenerate):
		logger.Warn().Int("sum", result.Sum).Msg("Secondary diagonal product is zero, ratio undefined")
	default:
		return nil, err
	}

	logger.Info().
		Int("size", m.Rows()).
		Int("sum", result.Sum).
		Int64("product", result.Product).
		Msg("Computed diagonal arithmetic")
	return result, nil
}
