package img2ascii

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// BypassDetectionEnv forces the detected color mode, e.g. "truecolor" or "none"
const BypassDetectionEnv = "IMG2ASCII_BYPASS_DETECTION"

// TerminalSize returns the size of the terminal attached to stdout
func TerminalSize() (cols, rows int, ok bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return cols, rows, true
}

// DetectColorMode returns the best color mode supported by stdout. It honors
// NO_COLOR, COLORTERM and CLICOLOR_FORCE and returns ColorNone when stdout is
// not a terminal.
func DetectColorMode() ColorMode {
	if forced := strings.TrimSpace(os.Getenv(BypassDetectionEnv)); forced != "" {
		if mode, err := ParseColorMode(strings.ToLower(forced)); err == nil && mode != ColorAuto {
			return mode
		}
	}

	return colorModeFromProfile(termenv.EnvColorProfile())
}
