package boxicon

// Pack is a visual variant of the icon set.
type Pack string

const (
	PackBasic  Pack = "basic"  // Outline icons; preferred default.
	PackFilled Pack = "filled" // Solid icons.
	PackBrands Pack = "brands" // Logos; never the default when another pack backs the icon.
)

// Packs lists every pack in default-selection priority order.
var Packs = []Pack{PackBasic, PackFilled, PackBrands}

// Valid reports whether p is one of [Packs].
func (p Pack) Valid() bool {
	switch p {
	case PackBasic, PackFilled, PackBrands:
		return true
	}
	return false
}

// Priority returns p's index in [Packs], or len(Packs) for unknown packs.
func (p Pack) Priority() int {
	for i, q := range Packs {
		if p == q {
			return i
		}
	}
	return len(Packs)
}
