package boxicon

import (
	"html"
	"slices"
	"sort"
	"strconv"
	"strings"
)

const (
	// DefaultViewBox is used when an asset declares no viewBox.
	DefaultViewBox = "0 0 24 24"

	// PaddinglessViewBox crops the 2px inset Boxicons draw inside 24×24.
	PaddinglessViewBox = "2 2 20 20"

	// DefaultFill makes icons inherit the surrounding text color.
	DefaultFill = "currentColor"

	xmlns = "http://www.w3.org/2000/svg"
)

// Glyph is the parsed content of one SVG asset.
type Glyph struct {
	ViewBox string
	Inner   string // markup between <svg> and </svg>, embedded verbatim
}

// Icon is one generated icon with its per-pack glyphs.
type Icon struct {
	Name        string
	DefaultPack Pack
	BrandOnly   bool
	Glyphs      map[Pack]Glyph
}

// Props are the display options of an icon. The zero value renders the
// default pack at base size in currentColor.
type Props struct {
	Pack          Pack   // Falls back to the icon's default pack when unset or unknown.
	Fill          string // Default: "currentColor".
	Opacity       string
	Width         string // Overrides the size-derived width.
	Height        string // Overrides the size-derived height.
	Size          Size   // Default: "base".
	Flip          Flip
	Rotate        string // "45" or "45deg"; see [Deg] for numeric values.
	RemovePadding bool

	// Attrs are extra attributes applied last; they replace computed
	// attributes of the same name.
	Attrs map[string]string
}

// Packs returns the packs backing ic in priority order.
func (ic *Icon) Packs() []Pack {
	packs := make([]Pack, 0, len(ic.Glyphs))
	for p := range ic.Glyphs {
		packs = append(packs, p)
	}
	slices.SortFunc(packs, func(a, b Pack) int { return a.Priority() - b.Priority() })
	return packs
}

// Glyph returns the glyph for pack p, falling back to the default pack.
func (ic *Icon) Glyph(p Pack) Glyph {
	if g, ok := ic.Glyphs[p]; ok {
		return g
	}
	return ic.Glyphs[ic.DefaultPack]
}

// Attributes returns the <svg> attributes for p in render order.
func (ic *Icon) Attributes(p Props) [][2]string {
	g := ic.Glyph(p.Pack)

	viewBox := g.ViewBox
	if p.RemovePadding {
		viewBox = PaddinglessViewBox
	}
	px := strconv.Itoa(SizePixels(p.Size))
	width, height := p.Width, p.Height
	if width == "" {
		width = px
	}
	if height == "" {
		height = px
	}
	fill := p.Fill
	if fill == "" {
		fill = DefaultFill
	}

	attrs := [][2]string{
		{"xmlns", xmlns},
		{"viewBox", viewBox},
		{"width", width},
		{"height", height},
		{"fill", fill},
	}
	if p.Opacity != "" {
		attrs = append(attrs, [2]string{"opacity", p.Opacity})
	}
	if t := BuildTransform(p.Flip, p.Rotate); t != "" {
		attrs = append(attrs, [2]string{"transform", t}, [2]string{"style", "transform-origin: center"})
	}

	keys := make([]string, 0, len(p.Attrs))
	for k := range p.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		i := slices.IndexFunc(attrs, func(a [2]string) bool { return a[0] == k })
		if i >= 0 {
			attrs[i][1] = p.Attrs[k]
			continue
		}
		attrs = append(attrs, [2]string{k, p.Attrs[k]})
	}
	return attrs
}

// Render returns the <svg> element for ic with options p.
func (ic *Icon) Render(p Props) string {
	var b strings.Builder
	b.WriteString("<svg")
	for _, a := range ic.Attributes(p) {
		b.WriteString(" ")
		b.WriteString(a[0])
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a[1]))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(ic.Glyph(p.Pack).Inner)
	b.WriteString("</svg>")
	return b.String()
}

// String renders ic with default options.
func (ic *Icon) String() string {
	return ic.Render(Props{})
}
