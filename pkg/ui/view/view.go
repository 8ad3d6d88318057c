// Package view turns command results into titled sections of tables and
// text lines that the text and terminal renderers share.
package view

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/arthur-debert/matrixlab/pkg/possort"
	"github.com/arthur-debert/matrixlab/pkg/style"
	"github.com/arthur-debert/matrixlab/pkg/types"
	"github.com/arthur-debert/matrixlab/pkg/ui/table"
)

// Section is one titled block of output. Lines may carry style markup
// unless Raw is set.
type Section struct {
	Title string
	Table *table.Table
	Lines []string
	Raw   bool
}

// Build returns the sections for a known result type. The boolean is false
// for types without a view.
func Build(result interface{}) ([]Section, bool) {
	switch v := result.(type) {
	case *types.SumsResult:
		return Sums(v), true
	case *types.DiagonalsResult:
		return Diagonals(v), true
	case *types.SortResult:
		return Sort(v), true
	case *types.RotateResult:
		return Rotate(v), true
	case *types.GenConfigResult:
		return GenConfig(v), true
	default:
		return nil, false
	}
}

// Sums shows the matrix with a row-sum column and a column-sum footer.
func Sums(r *types.SumsResult) []Section {
	return []Section{{
		Title: "Row and column sums",
		Table: &table.Table{Matrix: r.Matrix, RowSums: r.RowSums, ColSums: r.ColSums},
		Lines: []string{fmt.Sprintf("Total: [bold]%d[/bold]", r.Total)},
	}}
}

// Diagonals shows the matrix, each diagonal on its own, and the ratio.
func Diagonals(r *types.DiagonalsResult) []Section {
	n := r.Matrix.Rows()
	onMain := func(i, j int) bool { return i == j }
	onSecondary := func(i, j int) bool { return i+j == n-1 }

	ratio := fmt.Sprintf("%d/%d = [bold]%.4f[/bold]", r.Sum, r.Product, derefRatio(r))
	if !r.HasRatio() {
		ratio = fmt.Sprintf("%d/%d is [warning]undefined[/warning]: the secondary diagonal product is zero", r.Sum, r.Product)
	}

	return []Section{
		{
			Title: "Matrix",
			Table: &table.Table{Matrix: r.Matrix, Highlight: mark(func(i, j int) bool {
				return onMain(i, j) || onSecondary(i, j)
			}, style.HighlightDiagonal)},
		},
		{
			Title: "Main diagonal",
			Table: &table.Table{Matrix: r.Matrix.MaskMain(), Highlight: mark(onMain, style.HighlightDiagonal)},
			Lines: []string{fmt.Sprintf("Sum of the main diagonal: [bold]%d[/bold]", r.Sum)},
		},
		{
			Title: "Secondary diagonal",
			Table: &table.Table{Matrix: r.Matrix.MaskSecondary(), Highlight: mark(onSecondary, style.HighlightDiagonal)},
			Lines: []string{fmt.Sprintf("Product of the secondary diagonal: [bold]%d[/bold]", r.Product)},
		},
		{
			Title: "Sum divided by product",
			Lines: []string{ratio},
		},
	}
}

func derefRatio(r *types.DiagonalsResult) float64 {
	if r.Ratio == nil {
		return 0
	}
	return *r.Ratio
}

// Sort shows the original matrix and both sorted versions.
func Sort(r *types.SortResult) []Section {
	n := r.Original.Rows()
	mainRegions := regions(possort.AboveMain, possort.BelowMain)
	secondaryRegions := regions(possort.AboveSecondary(n), possort.BelowSecondary(n))

	return []Section{
		{
			Title: "Matrix",
			Table: &table.Table{Matrix: r.Original, Highlight: mainRegions},
		},
		{
			Title: "Sorted around the main diagonal",
			Table: &table.Table{Matrix: r.Main, Highlight: mainRegions},
			Lines: regionLines(r.MainRegions, "main"),
		},
		{
			Title: "Sorted around the secondary diagonal",
			Table: &table.Table{Matrix: r.Secondary, Highlight: secondaryRegions},
			Lines: regionLines(r.SecondaryRegions, "secondary"),
		},
	}
}

func regions(above, below possort.Predicate) func(i, j int) style.Highlight {
	return func(i, j int) style.Highlight {
		switch {
		case above(i, j):
			return style.HighlightAbove
		case below(i, j):
			return style.HighlightBelow
		default:
			return style.HighlightDiagonal
		}
	}
}

func regionLines(r possort.Regions, diagonal string) []string {
	return []string{
		fmt.Sprintf("Above the %s diagonal, %s: [above]%s[/above]",
			diagonal, possort.AboveOrder, joinInts(possort.Values(r.Above))),
		fmt.Sprintf("Below the %s diagonal, %s: [below]%s[/below]",
			diagonal, possort.BelowOrder, joinInts(possort.Values(r.Below))),
	}
}

// Rotate shows the matrix before and after with the ring highlighted.
func Rotate(r *types.RotateResult) []Section {
	inRing := make(map[[2]int]bool, len(r.Cells))
	for _, c := range r.Cells {
		inRing[c] = true
	}
	highlight := mark(func(i, j int) bool { return inRing[[2]int{i, j}] }, style.HighlightRing)

	summary := fmt.Sprintf("Ring [ring]%d[/ring] rotated %s %d degrees", r.Ring, r.Direction, r.Angle)
	if r.Clockwise != r.Angle {
		summary += fmt.Sprintf(" (%d degrees clockwise)", r.Clockwise)
	}

	return []Section{
		{
			Title: "Matrix",
			Table: &table.Table{Matrix: r.Original, Highlight: highlight},
		},
		{
			Title: "Rotated",
			Table: &table.Table{Matrix: r.Rotated, Highlight: highlight},
			Lines: []string{summary},
		},
	}
}

// GenConfig shows the default config, or where it was written.
func GenConfig(r *types.GenConfigResult) []Section {
	if r.Written {
		return []Section{{Lines: []string{fmt.Sprintf("[success]Config written to[/success] %s", r.Path)}}}
	}
	return []Section{{Lines: []string{strings.TrimRight(r.Content, "\n")}, Raw: true}}
}

func mark(pred func(i, j int) bool, h style.Highlight) func(i, j int) style.Highlight {
	return func(i, j int) style.Highlight {
		if pred(i, j) {
			return h
		}
		return style.HighlightNone
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

// Matrix is a single untitled table, used by the interactive shell to echo
// its input.
func Matrix(title string, m matrix.Matrix) []Section {
	return []Section{{Title: title, Table: &table.Table{Matrix: m}}}
}
