// Package planner merges the identifiers of all packs into one IconConfig
// per output component.
//
// Implemented:
//   - IconConfig, Plan (types.go)
//   - BuildPlan: priority merge basic → filled → brands (planner.go)
//
// Merge policy: basic is always the default style when it backs an icon,
// filled is the default only for icons basic lacks, and brands never
// displaces a non-brand default; brand-only icons are flagged.
package planner
