package planner

import (
	"github.com/backmassage/boxgen/boxicon"
	"github.com/backmassage/boxgen/internal/pack"
)

// BuildPlan unions the identifiers of the three packs into a Plan. This is
// the central decision matrix the pipeline calls once per run.
//
// Flow:
//  1. Every basic identifier: packs [basic] (+ filled if present), default basic
//  2. Filled identifiers not yet registered: packs [filled], default filled
//  3. Brand identifiers: new ones are brand-only with default brands;
//     existing ones get brands appended and keep their default
func BuildPlan(basic, filled, brands pack.Assets) Plan {
	plan := make(Plan, len(basic)+len(filled)+len(brands))

	// --- 1. Basic ---
	for name := range basic {
		cfg := &IconConfig{
			Name:        name,
			Packs:       []boxicon.Pack{boxicon.PackBasic},
			DefaultPack: boxicon.PackBasic,
		}
		if _, ok := filled[name]; ok {
			cfg.Packs = append(cfg.Packs, boxicon.PackFilled)
		}
		plan[name] = cfg
	}

	// --- 2. Filled ---
	for name := range filled {
		if _, ok := plan[name]; ok {
			continue
		}
		plan[name] = &IconConfig{
			Name:        name,
			Packs:       []boxicon.Pack{boxicon.PackFilled},
			DefaultPack: boxicon.PackFilled,
		}
	}

	// --- 3. Brands ---
	for name := range brands {
		if cfg, ok := plan[name]; ok {
			cfg.Packs = append(cfg.Packs, boxicon.PackBrands)
			continue
		}
		plan[name] = &IconConfig{
			Name:        name,
			Packs:       []boxicon.Pack{boxicon.PackBrands},
			DefaultPack: boxicon.PackBrands,
			BrandOnly:   true,
		}
	}
	return plan
}

// BuildPlanFromSet is [BuildPlan] over a pack.Set.
func BuildPlanFromSet(s pack.Set) Plan {
	return BuildPlan(s[boxicon.PackBasic], s[boxicon.PackFilled], s[boxicon.PackBrands])
}
