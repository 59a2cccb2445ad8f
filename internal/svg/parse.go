// Package svg extracts the viewBox and inner markup of SVG assets and
// escapes markup for embedding into generated source files.
package svg

import (
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"

	"github.com/backmassage/boxgen/boxicon"
)

// Glyph is the parsed form of one asset; it is the runtime type so the Go
// target can embed it directly.
type Glyph = boxicon.Glyph

// reInner captures everything between the first <svg ...> start tag and
// the last </svg>.
var reInner = regexp.MustCompile(`(?s)<svg[^>]*>(.*)</svg>`)

// Parse extracts the glyph from raw SVG markup. It never fails: a missing
// viewBox yields [boxicon.DefaultViewBox] and a missing <svg> element yields
// empty inner markup.
func Parse(raw string) Glyph {
	g := Glyph{ViewBox: boxicon.DefaultViewBox}
	if vb, ok := ViewBox(raw); ok {
		g.ViewBox = vb
	}
	if m := reInner.FindStringSubmatch(raw); m != nil {
		g.Inner = strings.TrimSpace(m[1])
	}
	return g
}

// ViewBox returns the first non-empty viewBox attribute in raw. The scan
// is token-based and tolerant: it stops quietly at the first lexing error
// and accepts either quote style.
func ViewBox(raw string) (string, bool) {
	l := xml.NewLexer(parse.NewInputString(raw))
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			return "", false
		case xml.AttributeToken:
			if string(l.Text()) != "viewBox" {
				continue
			}
			if v := strings.TrimSpace(unquote(string(l.AttrVal()))); v != "" {
				return v, true
			}
		}
	}
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
