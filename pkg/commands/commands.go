// Package commands provides high-level command implementations for matrixlab.
//
// This package is the orchestration layer between the CLI and interactive
// shell on one side and the matrix packages on the other. Each command lives
// in its own subdirectory and returns a result struct from pkg/types:
//   - sums/      - Sums command
//   - diagonals/ - Diagonals command
//   - sorting/   - SortDiagonals command
//   - rotate/    - RotateRing command
//   - genconfig/ - GenConfig command
//   - input/     - matrix source resolution (file or generator)
package commands

import (
	"github.com/arthur-debert/matrixlab/pkg/commands/diagonals"
	"github.com/arthur-debert/matrixlab/pkg/commands/genconfig"
	"github.com/arthur-debert/matrixlab/pkg/commands/input"
	"github.com/arthur-debert/matrixlab/pkg/commands/rotate"
	"github.com/arthur-debert/matrixlab/pkg/commands/sorting"
	"github.com/arthur-debert/matrixlab/pkg/commands/sums"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/arthur-debert/matrixlab/pkg/types"
)

// Sums computes row, column and total sums.
type SumsOptions = sums.SumsOptions

func Sums(opts SumsOptions) (*types.SumsResult, error) {
	return sums.Sums(opts)
}

// Diagonals computes the main diagonal sum, secondary product and ratio.
type DiagonalsOptions = diagonals.DiagonalsOptions

func Diagonals(opts DiagonalsOptions) (*types.DiagonalsResult, error) {
	return diagonals.Diagonals(opts)
}

// SortDiagonals sorts around the main and secondary diagonals.
type SortOptions = sorting.SortOptions

func SortDiagonals(opts SortOptions) (*types.SortResult, error) {
	return sorting.SortDiagonals(opts)
}

// RotateRing rotates one ring of a square matrix.
type RotateOptions = rotate.RotateOptions

func RotateRing(opts RotateOptions) (*types.RotateResult, error) {
	return rotate.RotateRing(opts)
}

// GenConfig outputs or writes the default configuration.
type GenConfigOptions = genconfig.GenConfigOptions

func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}

// InputOptions selects where a command's matrix comes from.
type InputOptions = input.Options

func ResolveInput(opts InputOptions) (matrix.Matrix, error) {
	return input.Resolve(opts)
}
