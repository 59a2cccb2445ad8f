package boxicon

// Size is a named icon size keyword.
type Size string

const (
	SizeXS   Size = "xs"
	SizeSM   Size = "sm"
	SizeBase Size = "base"
	SizeMD   Size = "md"
	SizeLG   Size = "lg"
	SizeXL   Size = "xl"
	Size2XL  Size = "2xl"
	Size3XL  Size = "3xl"
	Size4XL  Size = "4xl"
	Size5XL  Size = "5xl"
)

// Sizes lists the keywords from smallest to largest.
var Sizes = []Size{SizeXS, SizeSM, SizeBase, SizeMD, SizeLG, SizeXL, Size2XL, Size3XL, Size4XL, Size5XL}

var sizePixels = map[Size]int{
	SizeXS:   16,
	SizeSM:   20,
	SizeBase: 24,
	SizeMD:   36,
	SizeLG:   48,
	SizeXL:   64,
	Size2XL:  96,
	Size3XL:  128,
	Size4XL:  256,
	Size5XL:  512,
}

// SizePixels returns the pixel dimension for s. Unknown or empty keywords
// resolve to the base size (24).
func SizePixels(s Size) int {
	if px, ok := sizePixels[s]; ok {
		return px
	}
	return sizePixels[SizeBase]
}
