// Package term provides ANSI color state and terminal detection.
//
// Styles are package-level because multiple packages (logging, display)
// need them for output formatting. [Configure] resolves the color mode once
// during startup; when colors are disabled [Paint] returns text unchanged.
package term

import (
	"os"
	"strings"

	"github.com/gookit/color"
	xterm "golang.org/x/term"

	"github.com/backmassage/firmbuild/internal/config"
)

// Styles used across the CLI.
var (
	Red     = color.New(color.FgLightRed, color.OpBold)
	Green   = color.New(color.FgLightGreen, color.OpBold)
	Yellow  = color.New(color.FgLightYellow, color.OpBold)
	Blue    = color.New(color.FgLightBlue, color.OpBold)
	Cyan    = color.New(color.FgLightCyan, color.OpBold)
	Magenta = color.New(color.FgLightMagenta, color.OpBold)
)

var enabled bool

// Configure resolves the color mode and switches rendering on or off.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
	if enabled {
		color.ForceOpenColor()
	}
	color.Enable = enabled
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return enabled }

// Paint renders text in style s, or returns it unchanged when colors are off.
func Paint(s color.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Sprint(text)
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}
