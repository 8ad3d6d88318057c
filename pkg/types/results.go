package types

import (
	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/arthur-debert/matrixlab/pkg/possort"
	"github.com/arthur-debert/matrixlab/pkg/ring"
)

// SumsResult holds the result of the 'sums' command.
type SumsResult struct {
	Matrix  matrix.Matrix `json:"matrix"`
	RowSums []int         `json:"rowSums"`
	ColSums []int         `json:"colSums"`
	Total   int           `json:"total"`
}

// DiagonalsResult holds the result of the 'diagonals' command.
type DiagonalsResult struct {
	Matrix            matrix.Matrix `json:"matrix"`
	MainDiagonal      []int         `json:"mainDiagonal"`
	SecondaryDiagonal []int         `json:"secondaryDiagonal"`
	Sum               int           `json:"sum"`
	Product           int64         `json:"product"`

	// Ratio is nil when the secondary product is zero.
	Ratio *float64 `json:"ratio"`
}

// HasRatio reports whether the sum/product ratio is defined.
func (r *DiagonalsResult) HasRatio() bool {
	return r.Ratio != nil
}

// SortResult holds the result of the 'sort' command. Both sorts start from
// Original independently.
type SortResult struct {
	Original         matrix.Matrix   `json:"original"`
	Main             matrix.Matrix   `json:"main"`
	MainRegions      possort.Regions `json:"mainRegions"`
	Secondary        matrix.Matrix   `json:"secondary"`
	SecondaryRegions possort.Regions `json:"secondaryRegions"`
}

// RotateResult holds the result of the 'rotate' command.
type RotateResult struct {
	Original  matrix.Matrix  `json:"original"`
	Rotated   matrix.Matrix  `json:"rotated"`
	Ring      int            `json:"ring"`
	Direction ring.Direction `json:"direction"`
	Angle     ring.Angle     `json:"angle"`
	Clockwise ring.Angle     `json:"clockwise"`
	Before    ring.Ring      `json:"before"`
	After     ring.Ring      `json:"after"`
	Cells     [][2]int       `json:"cells"`
}

// GenConfigResult holds the result of the 'gen-config' command.
type GenConfigResult struct {
	Content string `json:"content"`
	Path    string `json:"path,omitempty"`
	Written bool   `json:"written"`
}
