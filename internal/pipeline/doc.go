// Package pipeline orchestrates pack reading, merge planning, per-icon
// synthesis, and batch summary reporting.
//
// A run is a single sequential batch: read all packs → plan → for each
// identifier in lexicographic order synthesize and write → index → support
// files → optional manifest. [Watch] repeats that batch whenever SVG files
// change.
package pipeline
