package shell

import (
	"io"

	"github.com/muesli/termenv"
)

// ScreenClearer clears the screen between menu screens.
type ScreenClearer interface {
	Clear(w io.Writer)
}

// TerminalClearer clears with ANSI sequences through termenv.
type TerminalClearer struct{}

// Clear moves the cursor home and erases the display.
func (TerminalClearer) Clear(w io.Writer) {
	out := termenv.NewOutput(w)
	out.ClearScreen()
}

// NopClearer leaves the screen alone. It is used when output is not a
// terminal or clearing is disabled in the config.
type NopClearer struct{}

// Clear does nothing.
func (NopClearer) Clear(io.Writer) {}
