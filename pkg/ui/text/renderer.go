// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/matrixlab/pkg/style"
	"github.com/arthur-debert/matrixlab/pkg/ui/table"
	"github.com/arthur-debert/matrixlab/pkg/ui/view"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
	layout table.Layout
}

// New creates a new text renderer
func New(output io.Writer, layout table.Layout) (*Renderer, error) {
	return &Renderer{output: output, layout: layout}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	sections, ok := view.Build(result)
	if !ok {
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
	return r.RenderSections(sections)
}

// RenderSections writes each section: title, table, then lines.
func (r *Renderer) RenderSections(sections []view.Section) error {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if s.Title != "" {
			b.WriteString(strings.ToUpper(s.Title))
			b.WriteString("\n")
		}
		if s.Table != nil {
			b.WriteString(r.layout.Plain(*s.Table))
		}
		for _, line := range s.Lines {
			if !s.Raw {
				line = style.Strip(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Strip(msg))
	return err
}
