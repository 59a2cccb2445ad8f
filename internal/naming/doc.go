// Package naming maps icon filenames to component identifiers and resolves
// output file stem collisions.
//
// Types:
//   - CollisionResolver (stem → owning identifier, case-insensitive)
//
// Functions:
//   - Normalize(filename) → identifier
//     Strip "bx-" and ".svg", split on separators, capitalize each segment,
//     guard leading digits with "Icon", suffix reserved words with "Icon".
//   - NormalizeWithPrefix(filename, prefix) → identifier
//   - IsValidIdentifier(name) → bool
//   - FileStem(identifier) → snake_case stem for Go output files
//
// Normalization is a pure function of the filename: the same logical icon
// in different packs always yields the same identifier, which is what lets
// the planner merge packs.
package naming
