// Package generate fills matrices with random integers.
package generate

import (
	"math/rand/v2"

	"github.com/arthur-debert/matrixlab/pkg/errors"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
)

// Options describes the matrix to generate. Values are drawn uniformly from
// the inclusive range [Min, Max].
type Options struct {
	Rows int
	Cols int
	Min  int
	Max  int

	// ExcludeZero redraws any zero.
	ExcludeZero bool
	// RandomSign negates each drawn value with probability 1/2.
	RandomSign bool
}

// Validate reports whether opts can produce a matrix.
func (o Options) Validate() error {
	if o.Rows <= 0 || o.Cols <= 0 {
		return errors.Newf(errors.ErrInvalidDimension,
			"dimensions must be positive, got %dx%d", o.Rows, o.Cols).
			WithDetail("rows", o.Rows).
			WithDetail("cols", o.Cols)
	}
	if o.Min > o.Max {
		return errors.Newf(errors.ErrInvalidRange,
			"minimum %d is greater than maximum %d", o.Min, o.Max).
			WithDetail("min", o.Min).
			WithDetail("max", o.Max)
	}
	if o.ExcludeZero && o.Min == 0 && o.Max == 0 {
		return errors.New(errors.ErrInvalidRange,
			"range [0,0] has no values once zero is excluded")
	}
	return nil
}

// Generator draws random matrices from a single source.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator backed by rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded returns a deterministic Generator for seed.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewRandom returns a Generator seeded from the runtime's entropy source.
func NewRandom() *Generator {
	return NewSeeded(rand.Uint64())
}

// Matrix generates a matrix according to opts.
func (g *Generator) Matrix(opts Options) (matrix.Matrix, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m, err := matrix.New(opts.Rows, opts.Cols)
	if err != nil {
		return nil, err
	}

	for i := range m {
		for j := range m[i] {
			m[i][j] = g.value(opts)
		}
	}
	return m, nil
}

// Square generates an n×n matrix; the Rows and Cols of opts are ignored.
func (g *Generator) Square(n int, opts Options) (matrix.Matrix, error) {
	opts.Rows, opts.Cols = n, n
	return g.Matrix(opts)
}

// IntBetween returns a uniform integer in [lo, hi]. lo must not exceed hi.
func (g *Generator) IntBetween(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) value(opts Options) int {
	for {
		v := g.IntBetween(opts.Min, opts.Max)
		if opts.ExcludeZero && v == 0 {
			continue
		}
		if opts.RandomSign && g.rng.IntN(2) == 1 {
			v = -v
		}
		return v
	}
}
