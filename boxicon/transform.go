package boxicon

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Flip mirrors an icon along one axis.
type Flip string

const (
	FlipNone       Flip = ""
	FlipHorizontal Flip = "horizontal"
	FlipVertical   Flip = "vertical"
)

// degSuffix is the unit accepted on string rotations ("90deg").
const degSuffix = "deg"

// reNumberPrefix matches the longest numeric prefix a JavaScript
// parseFloat would accept.
var reNumberPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// BuildTransform returns the SVG transform for flip and rotate: the flip
// scale first, then the rotation, space-joined. It returns "" when neither
// is set. rotate is a bare number ("45") or carries a "deg" suffix ("45deg").
//
//	BuildTransform(FlipHorizontal, "45") == "scale(-1,1) rotate(45)"
func BuildTransform(flip Flip, rotate string) string {
	var parts []string
	switch flip {
	case FlipHorizontal:
		parts = append(parts, "scale(-1,1)")
	case FlipVertical:
		parts = append(parts, "scale(1,-1)")
	}
	if rotate != "" {
		parts = append(parts, "rotate("+Deg(parseDegrees(rotate))+")")
	}
	return strings.Join(parts, " ")
}

// Deg formats a numeric rotation the way it appears in a transform and in
// [Props.Rotate]. Values follow JavaScript number printing: shortest
// decimal form, exponent form ("1e+21", "1e-7") when the magnitude is at
// least 1e21 or below 1e-6, and "NaN" or "Infinity" spelled out.
func Deg(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	if a := math.Abs(v); a >= 1e21 || a < 1e-6 {
		return expForm(v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// expForm renders v as mantissa "e" sign exponent with no exponent
// padding, so 1e-07 becomes 1e-7.
func expForm(v float64) string {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	mant, sign, digits := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + string(sign) + digits
}

// parseDegrees strips the "deg" suffix and reads the leading number;
// anything unparsable is NaN.
func parseDegrees(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, degSuffix))
	m := reNumberPrefix.FindString(s)
	if m == "" {
		return math.NaN()
	}
	if strings.HasSuffix(m, "Infinity") {
		if m[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	// Out-of-range values come back as ±Inf or 0 alongside ErrRange,
	// which is what parseFloat yields too.
	v, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}
