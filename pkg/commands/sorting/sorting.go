// Package sorting implements the diagonal sort command. Values above a
// diagonal are sorted descending and values below ascending, each value
// landing on one of the cells the region already occupied.
package sorting

import (
	"github.com/arthur-debert/matrixlab/pkg/logging"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/arthur-debert/matrixlab/pkg/possort"
	"github.com/arthur-debert/matrixlab/pkg/types"
)

// SortOptions holds options for the sort command
type SortOptions struct {
	Matrix matrix.Matrix
}

// SortDiagonals sorts a copy of the matrix around the main diagonal and
// another copy around the secondary diagonal. The input is not modified.
func SortDiagonals(opts SortOptions) (*types.SortResult, error) {
	logger := logging.GetLogger("commands.sorting")
	defer logging.LogOperationStart(logger, "sort")()

	if err := opts.Matrix.RequireSquare(); err != nil {
		return nil, err
	}

	main := opts.Matrix.Clone()
	mainRegions, err := possort.SortAroundMain(main)
	if err != nil {
		return nil, err
	}

	secondary := opts.Matrix.Clone()
	secondaryRegions, err := possort.SortAroundSecondary(secondary)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("size", opts.Matrix.Rows()).
		Int("above", len(mainRegions.Above)).
		Int("below", len(mainRegions.Below)).
		Msg("Sorted around both diagonals")

	return &types.SortResult{
		Original:         opts.Matrix.Clone(),
		Main:             main,
		MainRegions:      mainRegions,
		Secondary:        secondary,
		SecondaryRegions: secondaryRegions,
	}, nil
}
