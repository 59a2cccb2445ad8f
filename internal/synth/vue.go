package synth

import (
	"path"

	"github.com/backmassage/boxgen/boxicon"
	"github.com/backmassage/boxgen/internal/svg"
)

const vueIconsDir = "icons"

// VueTarget emits one TypeScript Vue component per icon under icons/, an
// icons/index.ts barrel, and the shared types.ts, utils.ts and index.ts.
type VueTarget struct{}

type vueEntry struct {
	Pack    boxicon.Pack
	ViewBox string // escaped for a single-quoted string
	Content string // escaped for a template literal
}

type vueComponentData struct {
	Name               string
	DefaultPack        boxicon.Pack
	PaddinglessViewBox string
	Entries            []vueEntry
}

type vueSizeRow struct {
	Size   boxicon.Size
	Pixels int
}

// Name implements [Target].
func (t *VueTarget) Name() string { return TargetVue }

// ComponentPath implements [Target].
func (t *VueTarget) ComponentPath(identifier string) string {
	return path.Join(vueIconsDir, identifier+".ts")
}

// Reserve implements [Target]. Vue identifiers are used verbatim.
func (t *VueTarget) Reserve([]string) {}

// Component implements [Target].
func (t *VueTarget) Component(c *Component) ([]byte, error) {
	data := vueComponentData{
		Name:               c.Config.Name,
		DefaultPack:        c.Config.DefaultPack,
		PaddinglessViewBox: boxicon.PaddinglessViewBox,
	}
	for _, p := range c.Packs() {
		g := c.Glyphs[p]
		data.Entries = append(data.Entries, vueEntry{
			Pack:    p,
			ViewBox: svg.EscapeSingleQuoted(g.ViewBox),
			Content: svg.EscapeTemplateLiteral(g.Inner),
		})
	}
	return execute("vue_component.ts.tmpl", data)
}

// Index implements [Target].
func (t *VueTarget) Index(identifiers []string) (File, error) {
	b, err := execute("vue_index.ts.tmpl", struct{ Names []string }{identifiers})
	if err != nil {
		return File{}, err
	}
	return File{Path: path.Join(vueIconsDir, "index.ts"), Data: b}, nil
}

// Support implements [Target].
func (t *VueTarget) Support() ([]File, error) {
	quote := func(s string) string { return "'" + s + "'" }

	var packs, sizes []string
	for _, p := range boxicon.Packs {
		packs = append(packs, quote(string(p)))
	}
	var table []vueSizeRow
	for _, s := range boxicon.Sizes {
		sizes = append(sizes, quote(string(s)))
		table = append(table, vueSizeRow{Size: s, Pixels: boxicon.SizePixels(s)})
	}

	specs := []struct {
		path string
		tmpl string
		data any
	}{
		{"types.ts", "vue_types.ts.tmpl", struct{ Packs, Sizes []string }{packs, sizes}},
		{"utils.ts", "vue_utils.ts.tmpl", struct {
			SizeTable []vueSizeRow
			BaseSize  boxicon.Size
		}{table, boxicon.SizeBase}},
		{"index.ts", "vue_root_index.ts.tmpl", nil},
	}
	files := make([]File, 0, len(specs))
	for _, s := range specs {
		b, err := execute(s.tmpl, s.data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: s.path, Data: b})
	}
	return files, nil
}
