package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	// Text styles
	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// Box and container styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)

// Table styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	IndexStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	SumStyle = lipgloss.NewStyle().
			Foreground(InfoColor).
			Italic(true)
)

// Highlight marks the region a matrix cell belongs to.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightDiagonal
	HighlightRing
	HighlightAbove
	HighlightBelow
)

var cellStyles = map[Highlight]lipgloss.Style{
	HighlightNone:     NormalStyle,
	HighlightDiagonal: lipgloss.NewStyle().Foreground(DiagonalColor).Bold(true),
	HighlightRing:     lipgloss.NewStyle().Foreground(RingColor).Bold(true),
	HighlightAbove:    lipgloss.NewStyle().Foreground(AboveColor),
	HighlightBelow:    lipgloss.NewStyle().Foreground(BelowColor),
}

// CellStyle returns the style for a cell in region h.
func CellStyle(h Highlight) lipgloss.Style {
	if s, ok := cellStyles[h]; ok {
		return s
	}
	return NormalStyle
}

// Helper functions
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

func Italic(s string) string {
	return lipgloss.NewStyle().Italic(true).Render(s)
}

func Underline(s string) string {
	return lipgloss.NewStyle().Underline(true).Render(s)
}
