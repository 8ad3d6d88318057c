// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/matrixlab/pkg/errors"
	"github.com/arthur-debert/matrixlab/pkg/ui/json"
	"github.com/arthur-debert/matrixlab/pkg/ui/table"
	"github.com/arthur-debert/matrixlab/pkg/ui/terminal"
	"github.com/arthur-debert/matrixlab/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message. It may carry style markup.
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer, layout table.Layout) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(Resolve(format, output), output, layout)
	case FormatTerminal:
		return terminal.New(output, layout)
	case FormatText:
		return text.New(output, layout)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

// Resolve turns FormatAuto into a concrete format for output. Writers that
// are not files are treated as plain text.
func Resolve(format Format, output io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}
