// Package rotate implements the ring rotation command.
package rotate

import (
	"github.com/arthur-debert/matrixlab/pkg/logging"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/arthur-debert/matrixlab/pkg/ring"
	"github.com/arthur-debert/matrixlab/pkg/types"
)

// RotateOptions holds options for the rotate command
type RotateOptions struct {
	Matrix matrix.Matrix

	// Ring is the 1-based ring index, 1 being the outermost.
	Ring      int
	Direction ring.Direction
	Angle     ring.Angle
}

// RotateRing rotates one ring of a copy of the matrix. The input is not
// modified.
func RotateRing(opts RotateOptions) (*types.RotateResult, error) {
	logger := logging.GetLogger("commands.rotate")
	defer logging.LogOperationStart(logger, "rotate")()

	if err := ring.Validate(opts.Matrix, opts.Ring, opts.Direction, opts.Angle); err != nil {
		return nil, err
	}

	before, err := ring.Edges(opts.Matrix, opts.Ring)
	if err != nil {
		return nil, err
	}

	rotated := opts.Matrix.Clone()
	if err := ring.Rotate(rotated, opts.Ring, opts.Direction, opts.Angle); err != nil {
		return nil, err
	}

	after, err := ring.Edges(rotated, opts.Ring)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("ring", opts.Ring).
		Str("direction", opts.Direction.String()).
		Int("angle", int(opts.Angle)).
		Msg("Rotated ring")

	return &types.RotateResult{
		Original:  opts.Matrix.Clone(),
		Rotated:   rotated,
		Ring:      opts.Ring,
		Direction: opts.Direction,
		Angle:     opts.Angle,
		Clockwise: ring.Normalize(opts.Direction, opts.Angle),
		Before:    before,
		After:     after,
		Cells:     ring.Cells(opts.Matrix.Rows(), opts.Ring),
	}, nil
}
