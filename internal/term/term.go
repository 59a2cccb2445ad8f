// Package term holds the colors boxgen uses for its run log and banner.
//
// Each log level has its own color, and [Configure] fills them in from
// --color (or the config file's color key). With colors off every value
// is "", so callers concatenate them unconditionally.
package term

import (
	"os"

	"github.com/muesli/termenv"

	"github.com/backmassage/boxgen/internal/config"
)

// Level colors, keyed by the log line that uses them. NC ends a colored span.
var (
	Red     = "" // ERROR
	Green   = "" // SUCCESS, the run summary
	Yellow  = "" // WARN: duplicates, skipped glyphs, interrupts
	Blue    = "" // INFO
	Cyan    = "" // DEBUG (--verbose)
	Magenta = "" // GEN lines and the banner
	NC      = ""
)

// palette is the bold bright ANSI set used when colors are on.
var palette = [...]string{
	"\033[1;91m", "\033[1;92m", "\033[1;93m", "\033[1;94m",
	"\033[1;96m", "\033[1;95m", "\033[0m",
}

// Configure turns the log colors on or off for mode. The logger calls it
// before the banner is printed.
func Configure(mode config.ColorMode) {
	var p [len(palette)]string
	if resolve(mode) {
		p = palette
	}
	Red, Green, Yellow, Blue, Cyan, Magenta, NC = p[0], p[1], p[2], p[3], p[4], p[5], p[6]
}

// Enabled reports whether the last Configure turned colors on.
func Enabled() bool { return NC != "" }

// resolve maps a color mode to on or off. In auto mode stdout must be a
// color-capable terminal; termenv honors TERM=dumb, NO_COLOR and
// CLICOLOR_FORCE.
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return termenv.NewOutput(os.Stdout).EnvColorProfile() != termenv.Ascii
	}
}
