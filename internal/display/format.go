package display

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatBytes returns a human-readable IEC size ("512 B", "1.5 KiB").
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.IBytes(uint64(-bytes))
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatCount returns n with thousands separators ("1,634").
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatDuration rounds d for the run summary: milliseconds below one
// second, tenths of a second above.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}

// FormatPlural returns "1 icon" or "3 icons" with a separated count.
func FormatPlural(n int, singular string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%s %ss", FormatCount(n), singular)
}
