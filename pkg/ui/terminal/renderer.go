// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/matrixlab/pkg/errors"
	"github.com/arthur-debert/matrixlab/pkg/style"
	"github.com/arthur-debert/matrixlab/pkg/ui/table"
	"github.com/arthur-debert/matrixlab/pkg/ui/view"
)

// Renderer provides rich terminal output with lipgloss tables and pterm
// prefixes
type Renderer struct {
	output io.Writer
	layout table.Layout
}

// New creates a new terminal renderer
func New(w io.Writer, layout table.Layout) (*Renderer, error) {
	return &Renderer{output: w, layout: layout}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	sections, ok := view.Build(result)
	if !ok {
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
	return r.RenderSections(sections)
}

// RenderSections writes each section with a styled title and table.
func (r *Renderer) RenderSections(sections []view.Section) error {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if s.Title != "" {
			b.WriteString(style.SubtitleStyle.Render(s.Title))
			b.WriteString("\n")
		}
		if s.Table != nil {
			b.WriteString(r.layout.Styled(*s.Table))
		}
		for _, line := range s.Lines {
			if !s.Raw {
				line = style.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with a pterm error prefix, followed by its
// details sorted by key.
func (r *Renderer) RenderError(err error) error {
	if _, werr := fmt.Fprintf(r.output, "%s %s\n",
		pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error())); werr != nil {
		return werr
	}

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line := fmt.Sprintf("%s: %v", k, details[k])
		if _, werr := fmt.Fprintln(r.output, style.Indent(style.MutedStyle.Render(line), 1)); werr != nil {
			return werr
		}
	}
	return nil
}

// RenderMessage renders a simple message with a pterm info prefix
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", pterm.Info.Prefix.Text, style.Render(msg))
	return err
}
