// Package display prints the startup banner and formats run summaries.
package display

import (
	"fmt"
	"io"

	"github.com/backmassage/boxgen/internal/term"
)

// PrintBanner writes the ASCII art banner to w; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, ` _
| |__   _____  ____ _  ___ _ __
| '_ \ / _ \ \/ / _`+"`"+` |/ _ \ '_ \
| |_) | (_) >  < (_| |  __/ | | |
|_.__/ \___/_/\_\__, |\___|_| |_|
                |___/
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
