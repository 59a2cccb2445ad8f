// Package synth turns merged icon configs into component source files.
//
// A [Target] renders one output format: "vue" emits TypeScript Vue
// components plus their shared types and helpers, "go" emits a Go package
// of [boxicon.Icon] values. Both embed every backing pack's glyph and fall
// back to the icon's default pack at runtime.
package synth

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/backmassage/boxgen/boxicon"
	"github.com/backmassage/boxgen/internal/pack"
	"github.com/backmassage/boxgen/internal/planner"
	"github.com/backmassage/boxgen/internal/svg"
)

// Target names.
const (
	TargetVue = "vue"
	TargetGo  = "go"
)

// ErrUnknownTarget is returned by [NewTarget] for unsupported target names.
var ErrUnknownTarget = errors.New("unknown target")

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"join":      strings.Join,
	"packConst": packConst,
}).ParseFS(templateFS, "templates/*.tmpl"))

// Source locates the asset backing an identifier in a pack.
type Source interface {
	Lookup(p boxicon.Pack, id string) (pack.Asset, bool)
}

// Component pairs an icon config with the parsed glyph of each pack that
// actually backs it.
type Component struct {
	Config *planner.IconConfig
	Glyphs map[boxicon.Pack]svg.Glyph
}

// Packs returns the packs with a glyph, in the config's pack order.
func (c *Component) Packs() []boxicon.Pack {
	var packs []boxicon.Pack
	for _, p := range c.Config.Packs {
		if _, ok := c.Glyphs[p]; ok {
			packs = append(packs, p)
		}
	}
	return packs
}

// Build re-locates and parses the asset of every pack in cfg. It returns
// false when no pack yields a glyph; callers skip such icons.
func Build(cfg *planner.IconConfig, src Source) (*Component, bool) {
	c := &Component{Config: cfg, Glyphs: make(map[boxicon.Pack]svg.Glyph, len(cfg.Packs))}
	for _, p := range cfg.Packs {
		a, ok := src.Lookup(p, cfg.Name)
		if !ok {
			continue
		}
		c.Glyphs[p] = svg.Parse(a.Content)
	}
	if len(c.Glyphs) == 0 {
		return nil, false
	}
	return c, true
}

// File is one generated output file, relative to the output directory.
type File struct {
	Path string
	Data []byte
}

// Target renders components, the index and shared support files for one
// output format.
type Target interface {
	// Name returns the target name ("vue" or "go").
	Name() string
	// Reserve registers every identifier of the run before any component
	// is rendered, so generated symbol names can avoid all of them.
	Reserve(identifiers []string)
	// ComponentPath returns the output path of the component for identifier.
	ComponentPath(identifier string) string
	// Component renders one component.
	Component(c *Component) ([]byte, error)
	// Index renders the aggregate export file for the sorted identifiers.
	Index(identifiers []string) (File, error)
	// Support returns shared files every component depends on.
	Support() ([]File, error)
}

// Options configures target construction.
type Options struct {
	Package string // Go package name (go target).
	Runtime string // import path of the boxicon runtime (go target).
}

// NewTarget returns the target called name.
func NewTarget(name string, opts Options) (Target, error) {
	switch name {
	case TargetVue:
		return &VueTarget{}, nil
	case TargetGo:
		return NewGoTarget(opts.Package, opts.Runtime), nil
	}
	return nil, fmt.Errorf("%w %q (use 'vue' or 'go')", ErrUnknownTarget, name)
}

func execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// packConst returns the boxicon constant name for p ("basic" → "PackBasic").
func packConst(p boxicon.Pack) string {
	s := string(p)
	if s == "" {
		return "Pack"
	}
	return "Pack" + strings.ToUpper(s[:1]) + s[1:]
}
