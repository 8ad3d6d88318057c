// Package config handles configuration management for matrixlab.
// It layers embedded TOML defaults, an optional user file (TOML or YAML),
// MATRIXLAB_ environment variables and command-line overrides.
package config

import "github.com/arthur-debert/matrixlab/pkg/generate"

// Display controls how matrices are rendered.
type Display struct {
	Format      string `koanf:"format" validate:"oneof=auto term terminal text plain json"`
	CellWidth   int    `koanf:"cell_width" validate:"gte=1,lte=32"`
	IndexWidth  int    `koanf:"index_width" validate:"gte=1,lte=32"`
	ClearScreen bool   `koanf:"clear_screen"`
}

// Sums configures the random matrix of the row/column sums feature.
type Sums struct {
	MinSize  int `koanf:"min_size" validate:"gte=1"`
	MaxSize  int `koanf:"max_size" validate:"gtefield=MinSize"`
	MinValue int `koanf:"min_value"`
	MaxValue int `koanf:"max_value" validate:"gtefield=MinValue"`
}

// ValueRange is the random value range used by a square-matrix feature.
type ValueRange struct {
	MinValue    int  `koanf:"min_value"`
	MaxValue    int  `koanf:"max_value" validate:"gtefield=MinValue"`
	ExcludeZero bool `koanf:"exclude_zero"`
	RandomSign  bool `koanf:"random_sign"`
}

// Config is the complete matrixlab configuration.
type Config struct {
	Display   Display    `koanf:"display"`
	Sums      Sums       `koanf:"sums"`
	Diagonals ValueRange `koanf:"diagonals"`
	Sorting   ValueRange `koanf:"sorting"`
	Rotation  ValueRange `koanf:"rotation"`
}

// Generate returns generator options for an n×n matrix drawn from v.
func (v ValueRange) Generate(n int) generate.Options {
	return generate.Options{
		Rows:        n,
		Cols:        n,
		Min:         v.MinValue,
		Max:         v.MaxValue,
		ExcludeZero: v.ExcludeZero,
		RandomSign:  v.RandomSign,
	}
}

// Generate returns generator options for a rows×cols matrix.
func (s Sums) Generate(rows, cols int) generate.Options {
	return generate.Options{Rows: rows, Cols: cols, Min: s.MinValue, Max: s.MaxValue}
}
