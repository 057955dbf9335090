package output

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DetectTerminal probes stdout once for color support and width. Color
// requires an interactive terminal whose profile offers at least the 8
// basic ANSI colors; NO_COLOR disables it outright. Width falls back to
// 80 columns when stdout is not a terminal or the probe fails.
func DetectTerminal() (colorEnabled bool, width int) {
	width = 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	if termenv.EnvNoColor() {
		return false, width
	}
	colorEnabled = termenv.ColorProfile() != termenv.Ascii
	return colorEnabled, width
}

// IsTerminal reports whether stdout is attached to an interactive
// terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// StdinIsTerminal reports whether stdin is attached to an interactive
// terminal, used to decide between positional and piped message input.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
