package planner

import (
	"sort"

	"github.com/backmassage/boxgen/boxicon"
)

// IconConfig describes how one output component is assembled. It is
// produced by BuildPlan and consumed by the synthesizer.
type IconConfig struct {
	Name        string         `yaml:"name"`
	Packs       []boxicon.Pack `yaml:"packs"`       // backing packs, in registration order
	DefaultPack boxicon.Pack   `yaml:"defaultPack"` // first of basic, filled, brands in Packs
	BrandOnly   bool           `yaml:"brandOnly"`
}

// Plan maps identifier → config for every icon of a run.
type Plan map[string]*IconConfig

// Names returns the identifiers in lexicographic order.
func (p Plan) Names() []string {
	names := make([]string, 0, len(p))
	for n := range p {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Configs returns the configs in lexicographic identifier order.
func (p Plan) Configs() []*IconConfig {
	names := p.Names()
	out := make([]*IconConfig, len(names))
	for i, n := range names {
		out[i] = p[n]
	}
	return out
}
