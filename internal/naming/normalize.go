package naming

import (
	"strings"

	"github.com/ErikKalkoken/go-set"
	"github.com/iancoleman/strcase"
)

const (
	// DefaultPrefix is the Boxicons filename prefix stripped before normalizing.
	DefaultPrefix = "bx-"

	// SVGExt is the asset extension (matched case-insensitively).
	SVGExt = ".svg"

	// Marker is prepended to names starting with a digit and appended to
	// reserved names.
	Marker = "Icon"
)

// reserved holds names that would shadow globals or type names in the
// generated TypeScript modules.
var reserved = set.Of(
	"Component", "Fragment", "Element", "Node", "Event", "Error",
	"Function", "Object", "Array", "String", "Number", "Boolean",
	"Symbol", "Map", "Set", "Promise", "Proxy", "Reflect", "Date",
	"RegExp", "JSON", "Math", "Intl", "NaN", "Infinity", "undefined",
	"null", "true", "false",
)

// IsReserved reports whether name is in the reserved set.
func IsReserved(name string) bool {
	return reserved.Contains(name)
}

// Normalize derives the component identifier for an SVG filename using
// [DefaultPrefix]. For example "bx-home-alt.svg" becomes "HomeAlt".
func Normalize(filename string) string {
	return NormalizeWithPrefix(filename, DefaultPrefix)
}

// NormalizeWithPrefix is [Normalize] with a caller-chosen prefix.
//
// Segments are separated by '-' or by any rune that is not an ASCII letter
// or digit; empty segments are dropped. Only the first letter of each
// segment is upper-cased, the rest is kept as-is ("bx-eCommerce" →
// "ECommerce").
func NormalizeWithPrefix(filename, prefix string) string {
	name := filename
	if len(name) >= len(SVGExt) && strings.EqualFold(name[len(name)-len(SVGExt):], SVGExt) {
		name = name[:len(name)-len(SVGExt)]
	}
	if prefix != "" {
		name = strings.TrimPrefix(name, prefix)
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, seg := range strings.FieldsFunc(name, isSeparator) {
		b.WriteString(upperFirst(seg))
	}
	result := b.String()

	switch {
	case result == "":
		result = Marker
	case isDigit(result[0]):
		result = Marker + result
	}
	if IsReserved(result) {
		result += Marker
	}
	return result
}

// IsValidIdentifier reports whether name starts with an ASCII letter,
// contains only ASCII letters and digits, and is not reserved.
func IsValidIdentifier(name string) bool {
	if name == "" || !isLetter(name[0]) {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isLetter(name[i]) && !isDigit(name[i]) {
			return false
		}
	}
	return !IsReserved(name)
}

// FileStem returns the snake_case file stem used for Go output files
// ("HomeAlt" → "home_alt").
func FileStem(identifier string) string {
	return strcase.ToSnake(identifier)
}

func upperFirst(seg string) string {
	if c := seg[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + seg[1:]
	}
	return seg
}

func isSeparator(r rune) bool {
	return r > 0x7f || !(isLetter(byte(r)) || isDigit(byte(r)))
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
