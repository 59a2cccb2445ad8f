package synth

import (
	"fmt"
	"strings"

	"github.com/ErikKalkoken/go-set"
	"golang.org/x/tools/imports"

	"github.com/backmassage/boxgen/boxicon"
	"github.com/backmassage/boxgen/internal/naming"
	"github.com/backmassage/boxgen/internal/svg"
)

const (
	// DefaultGoPackage is the package name of generated Go icons.
	DefaultGoPackage = "boxicons"

	// DefaultRuntime is the import path of the runtime package.
	DefaultRuntime = "github.com/backmassage/boxgen/boxicon"

	goIndexStem = "index"
	goDocStem   = "doc"
)

// goIndexSymbols are the exported names index.go declares; icons with the
// same identifier get a suffixed variable name (see [GoTarget.VarName]).
var goIndexSymbols = set.Of("All", "Names", "Lookup")

// goBuildSuffixes are file name suffixes the go tool treats as build
// constraints or tests.
var goBuildSuffixes = set.Of(
	"test",
	"aix", "android", "darwin", "dragonfly", "freebsd", "hurd", "illumos", "ios",
	"js", "linux", "nacl", "netbsd", "openbsd", "plan9", "solaris", "wasip1",
	"windows", "zos",
	"386", "amd64", "amd64p32", "arm", "armbe", "arm64", "arm64be", "loong64",
	"mips", "mipsle", "mips64", "mips64le", "mips64p32", "mips64p32le",
	"ppc", "ppc64", "ppc64le", "riscv", "riscv64", "s390", "s390x",
	"sparc", "sparc64", "wasm",
)

var formatOptions = &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true}

// GoTarget emits a Go package with one file per icon, an index.go
// registry and a doc.go package comment.
type GoTarget struct {
	Package string
	Runtime string

	stems *naming.CollisionResolver
	vars  map[string]string // identifier → variable name
	taken set.Set[string]   // variable names in use
}

type goEntry struct {
	Pack    boxicon.Pack
	ViewBox string // Go string literal
	Content string // Go string literal
}

type goComponentData struct {
	Package     string
	Runtime     string
	Name        string
	Var         string
	DefaultPack boxicon.Pack
	BrandOnly   bool
	PackNames   []string
	Entries     []goEntry
}

type goIndexEntry struct {
	Name string
	Var  string
}

// NewGoTarget returns a Go target; empty arguments select the defaults.
func NewGoTarget(pkg, runtime string) *GoTarget {
	if pkg == "" {
		pkg = DefaultGoPackage
	}
	if runtime == "" {
		runtime = DefaultRuntime
	}
	t := &GoTarget{
		Package: pkg,
		Runtime: runtime,
		stems:   naming.NewCollisionResolver(),
		vars:    make(map[string]string),
		taken:   goIndexSymbols.Clone(),
	}
	t.stems.Resolve("", goIndexStem)
	t.stems.Resolve("", goDocStem)
	return t
}

// Name implements [Target].
func (t *GoTarget) Name() string { return TargetGo }

// ComponentPath implements [Target]. Stems are snake_case; stems the go
// tool would read as a build constraint or test get an "_icon" suffix and
// case-insensitive clashes get "_dupN".
func (t *GoTarget) ComponentPath(identifier string) string {
	stem := naming.FileStem(identifier)
	if i := strings.LastIndexByte(stem, '_'); i >= 0 && goBuildSuffixes.Contains(stem[i+1:]) {
		stem += "_icon"
	}
	return t.stems.Resolve(identifier, stem) + ".go"
}

// Reserve implements [Target]. Every identifier that is not an index
// symbol claims its own name as a variable, so suffixed names chosen later
// never shadow another icon.
func (t *GoTarget) Reserve(identifiers []string) {
	for _, id := range identifiers {
		if !goIndexSymbols.Contains(id) {
			t.VarName(id)
		}
	}
}

// VarName returns the Go variable name for identifier. Identifiers that
// clash with an index symbol or a name already in use get an "Icon"
// suffix, then "Icon2", "Icon3" and so on. The choice is stable for the
// life of the target.
func (t *GoTarget) VarName(identifier string) string {
	if v, ok := t.vars[identifier]; ok {
		return v
	}
	v := identifier
	if t.taken.Contains(v) {
		v = identifier + naming.Marker
		for n := 2; t.taken.Contains(v); n++ {
			v = fmt.Sprintf("%s%s%d", identifier, naming.Marker, n)
		}
	}
	t.vars[identifier] = v
	t.taken.Add(v)
	return v
}

// Component implements [Target].
func (t *GoTarget) Component(c *Component) ([]byte, error) {
	data := goComponentData{
		Package:     t.Package,
		Runtime:     t.Runtime,
		Name:        c.Config.Name,
		Var:         t.VarName(c.Config.Name),
		DefaultPack: c.Config.DefaultPack,
		BrandOnly:   c.Config.BrandOnly,
	}
	for _, p := range c.Packs() {
		g := c.Glyphs[p]
		data.PackNames = append(data.PackNames, string(p))
		data.Entries = append(data.Entries, goEntry{
			Pack:    p,
			ViewBox: svg.GoStringLiteral(g.ViewBox),
			Content: svg.GoStringLiteral(g.Inner),
		})
	}
	return t.render(c.Config.Name+".go", "go_component.go.tmpl", data)
}

// Index implements [Target].
func (t *GoTarget) Index(identifiers []string) (File, error) {
	entries := make([]goIndexEntry, len(identifiers))
	for i, id := range identifiers {
		entries[i] = goIndexEntry{Name: id, Var: t.VarName(id)}
	}
	data := struct {
		Package string
		Runtime string
		Entries []goIndexEntry
	}{t.Package, t.Runtime, entries}
	b, err := t.render(goIndexStem+".go", "go_index.go.tmpl", data)
	if err != nil {
		return File{}, err
	}
	return File{Path: goIndexStem + ".go", Data: b}, nil
}

// Support implements [Target].
func (t *GoTarget) Support() ([]File, error) {
	b, err := t.render(goDocStem+".go", "go_doc.go.tmpl", struct{ Package string }{t.Package})
	if err != nil {
		return nil, err
	}
	return []File{{Path: goDocStem + ".go", Data: b}}, nil
}

// render executes tmpl and gofmt-formats the result.
func (t *GoTarget) render(filename, tmpl string, data any) ([]byte, error) {
	src, err := execute(tmpl, data)
	if err != nil {
		return nil, err
	}
	out, err := imports.Process(filename, src, formatOptions)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return out, nil
}
