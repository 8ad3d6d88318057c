// Package ring rotates one concentric ring of a square matrix in place.
//
// Ring k (1-based) of an n×n matrix is the square border between row/column
// k-1 and n-k. Its four edges are read as vectors of length n-2k+2:
//
//	top    left to right along row k-1
//	right  top to bottom along column n-k
//	bottom right to left along row n-k
//	left   bottom to top along column k-1
//
// Reading every edge in clockwise order means each corner appears as the last
// element of one edge and the first element of the next. A rotation is a
// permutation of whole edges, so the corners stay consistent.
package ring

import (
	"strings"

	"github.com/arthur-debert/matrixlab/pkg/errors"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
)

// Direction is the sense of a rotation.
type Direction int

const (
	// Right rotates clockwise.
	Right Direction = iota
	// Left rotates counter-clockwise.
	Left
)

// String returns the canonical name of the direction.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts any spelling ParseDirection does.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection accepts right/r/derecha and left/l/izquierda, ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "r", "derecha", "d":
		return Right, nil
	case "left", "l", "izquierda", "i":
		return Left, nil
	default:
		return Right, errors.Newf(errors.ErrInvalidDirection,
			"unknown direction %q, expected left or right", s).
			WithDetail("direction", s)
	}
}

// Angle is a rotation amount in degrees.
type Angle int

// Supported angles.
const (
	Angle90  Angle = 90
	Angle180 Angle = 180
	Angle270 Angle = 270
)

// Angles lists every supported angle in ascending order.
var Angles = []Angle{Angle90, Angle180, Angle270}

// ParseAngle converts degrees into an Angle.
func ParseAngle(degrees int) (Angle, error) {
	a := Angle(degrees)
	if !a.valid() {
		return 0, errors.Newf(errors.ErrInvalidAngle,
			"unsupported angle %d, expected 90, 180 or 270", degrees).
			WithDetail("angle", degrees)
	}
	return a, nil
}

func (a Angle) valid() bool {
	return a == Angle90 || a == Angle180 || a == Angle270
}

// Normalize returns the clockwise angle equivalent to rotating by angle in
// direction dir. Rotating left by θ equals rotating right by 360-θ.
func Normalize(dir Direction, angle Angle) Angle {
	if dir == Left {
		return 360 - angle
	}
	return angle
}

// Count returns how many rings an n×n matrix has.
func Count(n int) int {
	if n <= 0 {
		return 0
	}
	return n / 2
}

// Ring holds the four edge vectors of one ring.
type Ring struct {
	Index  int   `json:"index"`
	Top    []int `json:"top"`
	Right  []int `json:"right"`
	Bottom []int `json:"bottom"`
	Left   []int `json:"left"`
}

// Len returns the edge length.
func (r Ring) Len() int {
	return len(r.Top)
}

// Validate checks every precondition of Rotate without touching m.
func Validate(m matrix.Matrix, k int, dir Direction, angle Angle) error {
	if err := m.RequireSquare(); err != nil {
		return err
	}
	if err := validateIndex(m.Rows(), k); err != nil {
		return err
	}
	if dir != Left && dir != Right {
		return errors.Newf(errors.ErrInvalidDirection, "unknown direction %d", int(dir))
	}
	if !angle.valid() {
		return errors.Newf(errors.ErrInvalidAngle,
			"unsupported angle %d, expected 90, 180 or 270", int(angle)).
			WithDetail("angle", int(angle))
	}
	return nil
}

func validateIndex(n, k int) error {
	if k < 1 || k > Count(n) || n-2*k+2 <= 0 {
		return errors.Newf(errors.ErrInvalidRingIndex,
			"ring %d is out of range for a %dx%d matrix (valid 1..%d)", k, n, n, Count(n)).
			WithDetail("ring", k).
			WithDetail("size", n)
	}
	return nil
}

// Edges extracts ring k of m without modifying it.
func Edges(m matrix.Matrix, k int) (Ring, error) {
	if err := m.RequireSquare(); err != nil {
		return Ring{}, err
	}
	if err := validateIndex(m.Rows(), k); err != nil {
		return Ring{}, err
	}
	return extract(m, k), nil
}

// Rotate rotates ring k of the square matrix m by angle in direction dir.
// m is modified in place and left untouched when validation fails.
func Rotate(m matrix.Matrix, k int, dir Direction, angle Angle) error {
	if err := Validate(m, k, dir, angle); err != nil {
		return err
	}

	r := extract(m, k)
	switch Normalize(dir, angle) {
	case Angle90:
		store(m, k, Ring{Top: r.Left, Right: r.Top, Bottom: r.Right, Left: r.Bottom})
	case Angle180:
		store(m, k, Ring{Top: r.Bottom, Right: r.Left, Bottom: r.Top, Left: r.Right})
	case Angle270:
		store(m, k, Ring{Top: r.Right, Right: r.Bottom, Bottom: r.Left, Left: r.Top})
	}
	return nil
}

func extract(m matrix.Matrix, k int) Ring {
	n := m.Rows()
	size := n - 2*k + 2
	r := Ring{
		Index:  k,
		Top:    make([]int, 0, size),
		Right:  make([]int, 0, size),
		Bottom: make([]int, 0, size),
		Left:   make([]int, 0, size),
	}

	for i := k - 1; i <= n-k; i++ {
		r.Top = append(r.Top, m[k-1][i])
		r.Right = append(r.Right, m[i][n-k])
		r.Bottom = append(r.Bottom, m[n-k][n-1-i])
		r.Left = append(r.Left, m[n-1-i][k-1])
	}
	return r
}

// store writes r back using the same walk as extract.
func store(m matrix.Matrix, k int, r Ring) {
	n := m.Rows()
	for idx, i := 0, k-1; i <= n-k; idx, i = idx+1, i+1 {
		m[k-1][i] = r.Top[idx]
		m[i][n-k] = r.Right[idx]
		m[n-k][n-1-i] = r.Bottom[idx]
		m[n-1-i][k-1] = r.Left[idx]
	}
}

// Cells returns the coordinates of ring k of an n×n matrix in clockwise order
// starting at the top-left corner. Each corner appears once.
func Cells(n, k int) [][2]int {
	if validateIndex(n, k) != nil {
		return nil
	}

	lo, hi := k-1, n-k
	cells := make([][2]int, 0, 4*(hi-lo))
	for j := lo; j < hi; j++ {
		cells = append(cells, [2]int{lo, j})
	}
	for i := lo; i < hi; i++ {
		cells = append(cells, [2]int{i, hi})
	}
	for j := hi; j > lo; j-- {
		cells = append(cells, [2]int{hi, j})
	}
	for i := hi; i > lo; i-- {
		cells = append(cells, [2]int{i, lo})
	}
	return cells
}
