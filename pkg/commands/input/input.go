// Package input resolves the matrix a command operates on, either from a
// file or from the random generator.
package input

import (
	"github.com/arthur-debert/matrixlab/pkg/generate"
	"github.com/arthur-debert/matrixlab/pkg/logging"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/arthur-debert/matrixlab/pkg/matrixio"
)

// Options selects the matrix source. File wins over generation when set.
type Options struct {
	// File is a matrix file path. Empty means generate.
	File string

	// Loader reads File. Defaults to the OS filesystem.
	Loader *matrixio.Loader

	// Generator and Generate describe the random matrix used when File is
	// empty.
	Generator *generate.Generator
	Generate  generate.Options
}

// Resolve returns the matrix described by opts.
func Resolve(opts Options) (matrix.Matrix, error) {
	logger := logging.GetLogger("commands.input")

	if opts.File != "" {
		loader := opts.Loader
		if loader == nil {
			loader = matrixio.NewOSLoader()
		}
		logger.Debug().Str("file", opts.File).Msg("Loading matrix from file")
		return loader.Load(opts.File)
	}

	gen := opts.Generator
	if gen == nil {
		gen = generate.NewRandom()
	}
	logger.Debug().
		Int("rows", opts.Generate.Rows).
		Int("cols", opts.Generate.Cols).
		Int("min", opts.Generate.Min).
		Int("max", opts.Generate.Max).
		Msg("Generating random matrix")
	return gen.Matrix(opts.Generate)
}
