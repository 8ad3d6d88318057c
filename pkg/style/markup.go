package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var tagPattern = regexp.MustCompile(`\[(/?)([a-z_]+)\]`)

// MarkupParser renders [tag]text[/tag] markup with lipgloss styles.
type MarkupParser struct {
	styles   map[string]lipgloss.Style
	patterns map[string]*regexp.Regexp
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{
		styles:   map[string]lipgloss.Style{},
		patterns: map[string]*regexp.Regexp{},
	}
	defaults := map[string]lipgloss.Style{
		"title":     SubtitleStyle,
		"success":   SuccessStyle,
		"error":     ErrorStyle,
		"warning":   WarningStyle,
		"info":      InfoStyle,
		"muted":     MutedStyle,
		"bold":      lipgloss.NewStyle().Bold(true),
		"italic":    lipgloss.NewStyle().Italic(true),
		"underline": lipgloss.NewStyle().Underline(true),

		"diagonal": CellStyle(HighlightDiagonal),
		"ring":     CellStyle(HighlightRing),
		"above":    CellStyle(HighlightAbove),
		"below":    CellStyle(HighlightBelow),
	}
	for tag, s := range defaults {
		p.AddStyle(tag, s)
	}
	return p
}

// AddStyle allows adding custom styles
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.styles[tag] = style
	p.patterns[tag] = regexp.MustCompile(`\[` + tag + `\](.*?)\[/` + tag + `\]`)
}

// Render processes markup text and returns styled output. Nested tags are
// resolved from the inside out.
func (p *MarkupParser) Render(text string) string {
	result := text
	for {
		before := result
		for tag, pattern := range p.patterns {
			s := p.styles[tag]
			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				return s.Render(pattern.FindStringSubmatch(match)[1])
			})
		}
		if result == before {
			return result
		}
	}
}

// Strip removes every known tag and leaves the text unstyled.
func (p *MarkupParser) Strip(text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(match string) string {
		if _, ok := p.styles[tagPattern.FindStringSubmatch(match)[2]]; ok {
			return ""
		}
		return match
	})
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// Strip is a convenience function using the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}
