package svg

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	templateLiteralEscaper = strings.NewReplacer(`\`, `\\`, "`", "\\`", "${", `\${`)
	singleQuotedEscaper    = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
)

// EscapeTemplateLiteral escapes s for the body of a JavaScript template
// literal so that evaluating `...` yields s unchanged.
func EscapeTemplateLiteral(s string) string {
	return templateLiteralEscaper.Replace(s)
}

// EscapeSingleQuoted escapes s for a single-quoted JavaScript string.
func EscapeSingleQuoted(s string) string {
	return singleQuotedEscaper.Replace(s)
}

// GoStringLiteral returns a Go string literal for s: a raw string when s
// can be written as one, otherwise an interpreted (quoted) string.
func GoStringLiteral(s string) string {
	if strings.ContainsAny(s, "`\r\x00\ufeff") || !utf8.ValidString(s) {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}
