package svg

import (
	"go/ast"
	"go/parser"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name        string
		raw         string
		wantViewBox string
		wantInner   string
	}{
		{
			"typical asset",
			`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M1 1"/></svg>`,
			"0 0 24 24", `<path d="M1 1"/>`,
		},
		{
			"missing viewBox",
			`<svg xmlns="http://www.w3.org/2000/svg"><path d="M1 1"/></svg>`,
			"0 0 24 24", `<path d="M1 1"/>`,
		},
		{
			"single quotes and whitespace",
			"<?xml version=\"1.0\"?>\n<svg viewBox='0 0 32 32' width=\"32\">\n  <g><circle r=\"4\"/></g>\n</svg>\n",
			"0 0 32 32", `<g><circle r="4"/></g>`,
		},
		{
			"empty viewBox falls through to default",
			`<svg viewBox=""><path/></svg>`,
			"0 0 24 24", "<path/>",
		},
		{
			"not svg",
			"plain text",
			"0 0 24 24", "",
		},
		{
			"unterminated svg",
			`<svg viewBox="0 0 20 20"><path d="M1 1"/>`,
			"0 0 20 20", "",
		},
		{
			"malformed attribute after viewBox",
			`<svg viewBox="1 2 3 4" =broken><path/></svg>`,
			"1 2 3 4", "<path/>",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := Parse(tc.raw)
			assert.Equal(t, tc.wantViewBox, g.ViewBox)
			assert.Equal(t, tc.wantInner, g.Inner)
		})
	}
}

// evalTemplateLiteral evaluates the body of a JavaScript template literal
// that contains no substitutions.
func evalTemplateLiteral(t *testing.T, body string) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		switch c := body[i]; c {
		case '`':
			t.Fatalf("unescaped backtick at %d in %q", i, body)
		case '$':
			if i+1 < len(body) && body[i+1] == '{' {
				t.Fatalf("unescaped substitution at %d in %q", i, body)
			}
			b.WriteByte(c)
		case '\\':
			i++
			require.Less(t, i, len(body), "dangling backslash")
			b.WriteByte(body[i])
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func TestEscapeTemplateLiteral_RoundTrip(t *testing.T) {
	inputs := []string{
		`<text>a ` + "`" + `tick` + "`" + ` and ${injected}</text>`,
		`<path d="M1 1"/>`,
		`back\slash \` + "`" + ` $ {} $${x}`,
		"",
	}
	for _, in := range inputs {
		assert.Equal(t, in, evalTemplateLiteral(t, EscapeTemplateLiteral(in)))
	}
}

func TestEscapeSingleQuoted(t *testing.T) {
	assert.Equal(t, `0 0 24 24`, EscapeSingleQuoted("0 0 24 24"))
	assert.Equal(t, `a\'b\\c\n`, EscapeSingleQuoted("a'b\\c\n"))
}

func TestGoStringLiteral_RoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantRaw bool
	}{
		{"plain markup uses raw string", `<path d="M1 1"/>`, true},
		{"backtick forces quoting", "<text>`${x}`</text>", false},
		{"carriage return forces quoting", "<g>\r\n</g>", false},
		{"interpolation-like text stays raw", `<text>${x}</text>`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lit := GoStringLiteral(tc.in)
			assert.Equal(t, tc.wantRaw, strings.HasPrefix(lit, "`"))

			expr, err := parser.ParseExpr(lit)
			require.NoError(t, err)
			bl, ok := expr.(*ast.BasicLit)
			require.True(t, ok)
			got, err := strconv.Unquote(bl.Value)
			require.NoError(t, err)
			assert.Equal(t, tc.in, got)
		})
	}
}
