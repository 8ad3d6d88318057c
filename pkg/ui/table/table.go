// Package table lays out a matrix as a fixed-width text table with an index
// column, a column-index header and optional row and column sums.
//
// The plain layout is:
//
//	Filas/Columnas         0         1            Suma
//	             0         1         2               3
//	             1         3         4               7
//	          Suma         4         6             ---
package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/matrixlab/pkg/matrix"
	"github.com/arthur-debert/matrixlab/pkg/style"
)

const (
	// HeaderLabel heads the index column.
	HeaderLabel = "Filas/Columnas"
	// SumLabel heads the row-sum column and the column-sum footer.
	SumLabel = "Suma"
	// FooterEnd fills the footer cell under the row-sum column.
	FooterEnd = "---"
)

// Layout holds the column widths.
type Layout struct {
	CellWidth  int
	IndexWidth int
}

// DefaultLayout returns the classic 8-wide cells and 14-wide index column.
func DefaultLayout() Layout {
	return Layout{CellWidth: 8, IndexWidth: 14}
}

// Table is one matrix to lay out.
type Table struct {
	Matrix matrix.Matrix

	// Highlight classifies each cell. Nil means no highlighting.
	Highlight func(row, col int) style.Highlight

	// RowSums and ColSums, when set, add a sum column and a sum footer.
	RowSums []int
	ColSums []int
}

func (t Table) highlight(i, j int) style.Highlight {
	if t.Highlight == nil {
		return style.HighlightNone
	}
	return t.Highlight(i, j)
}

// painter styles a padded cell. The plain layout passes text through.
type painter func(text string, h style.Highlight, kind cellKind) string

type cellKind int

const (
	kindHeader cellKind = iota
	kindIndex
	kindValue
	kindSum
)

// Plain lays out t without any styling.
func (l Layout) Plain(t Table) string {
	return l.render(t, func(text string, _ style.Highlight, _ cellKind) string { return text })
}

// Styled lays out t with lipgloss styles. Cells are padded before styling so
// escape sequences never change the column widths.
func (l Layout) Styled(t Table) string {
	return l.render(t, func(text string, h style.Highlight, kind cellKind) string {
		var s lipgloss.Style
		switch kind {
		case kindHeader:
			s = style.HeaderStyle
		case kindIndex:
			s = style.IndexStyle
		case kindSum:
			s = style.SumStyle
		default:
			s = style.CellStyle(h)
		}
		return s.Render(text)
	})
}

func (l Layout) render(t Table, paint painter) string {
	l = l.withDefaults()
	var b strings.Builder
	withSums := t.RowSums != nil

	b.WriteString(paint(fmt.Sprintf("%-*s", l.IndexWidth, HeaderLabel), style.HighlightNone, kindHeader))
	b.WriteString(" ")
	for j := 0; j < t.Matrix.Cols(); j++ {
		b.WriteString(paint(l.cell(j), style.HighlightNone, kindHeader))
	}
	if withSums {
		b.WriteString(" ")
		b.WriteString(paint(fmt.Sprintf("%*s", l.IndexWidth, SumLabel), style.HighlightNone, kindHeader))
	}
	b.WriteString("\n")

	for i, row := range t.Matrix {
		b.WriteString(paint(fmt.Sprintf("%*d", l.IndexWidth, i), style.HighlightNone, kindIndex))
		b.WriteString(" ")
		for j, v := range row {
			b.WriteString(paint(l.cell(v), t.highlight(i, j), kindValue))
		}
		if withSums && i < len(t.RowSums) {
			b.WriteString(paint(fmt.Sprintf(" %*d ", l.IndexWidth, t.RowSums[i]), style.HighlightNone, kindSum))
		}
		b.WriteString("\n")
	}

	if t.ColSums != nil {
		b.WriteString(paint(fmt.Sprintf("%*s", l.IndexWidth, SumLabel), style.HighlightNone, kindIndex))
		b.WriteString(" ")
		for _, s := range t.ColSums {
			b.WriteString(paint(l.cell(s), style.HighlightNone, kindSum))
		}
		if withSums {
			b.WriteString(" ")
			b.WriteString(fmt.Sprintf("%*s", l.IndexWidth, FooterEnd))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (l Layout) cell(v int) string {
	return fmt.Sprintf(" %*d ", l.CellWidth, v)
}

func (l Layout) withDefaults() Layout {
	d := DefaultLayout()
	if l.CellWidth <= 0 {
		l.CellWidth = d.CellWidth
	}
	if l.IndexWidth <= 0 {
		l.IndexWidth = d.IndexWidth
	}
	return l
}
