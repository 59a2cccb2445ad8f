package boxicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizePixels(t *testing.T) {
	cases := []struct {
		size Size
		want int
	}{
		{SizeXS, 16},
		{SizeSM, 20},
		{SizeBase, 24},
		{SizeMD, 36},
		{SizeLG, 48},
		{SizeXL, 64},
		{Size2XL, 96},
		{Size3XL, 128},
		{Size4XL, 256},
		{Size5XL, 512},
		{"unknown", 24},
		{"", 24},
	}
	for _, tc := range cases {
		t.Run(string(tc.size), func(t *testing.T) {
			assert.Equal(t, tc.want, SizePixels(tc.size))
		})
	}
	assert.Len(t, Sizes, len(sizePixels))
}

func TestBuildTransform(t *testing.T) {
	cases := []struct {
		name   string
		flip   Flip
		rotate string
		want   string
	}{
		{"nothing set", FlipNone, "", ""},
		{"flip horizontal and rotate", FlipHorizontal, "45", "scale(-1,1) rotate(45)"},
		{"flip vertical only", FlipVertical, "", "scale(1,-1)"},
		{"rotate with deg suffix", FlipNone, "90deg", "rotate(90)"},
		{"fractional", FlipNone, "12.5", "rotate(12.5)"},
		{"negative", FlipNone, "-30deg", "rotate(-30)"},
		{"numeric prefix only", FlipNone, "15px", "rotate(15)"},
		{"unparsable", FlipNone, "abc", "rotate(NaN)"},
		{"unknown flip ignored", "diagonal", "", ""},
		{"surrounding space", FlipNone, " 180 deg ", "rotate(180)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildTransform(tc.flip, tc.rotate))
		})
	}
}

func TestDeg(t *testing.T) {
	assert.Equal(t, "45", Deg(45))
	assert.Equal(t, "0.5", Deg(0.5))
	assert.Equal(t, "0", Deg(-0.0))
	assert.Equal(t, "rotate(45)", BuildTransform(FlipNone, Deg(45)))
}

func TestDeg_ExponentForm(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1e21, "1e+21"},
		{1.23e22, "1.23e+22"},
		{-1e21, "-1e+21"},
		{1e20, "100000000000000000000"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{-1.5e-10, "-1.5e-10"},
		{5e-324, "5e-324"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Deg(tt.in), "Deg(%g)", tt.in)
	}
	assert.Equal(t, "rotate(1e+21)", BuildTransform(FlipNone, "1e21"))
	assert.Equal(t, "rotate(1e-7)", BuildTransform(FlipNone, "0.0000001deg"))
}

func TestPack(t *testing.T) {
	assert.True(t, PackBrands.Valid())
	assert.False(t, Pack("outline").Valid())
	assert.Less(t, PackBasic.Priority(), PackFilled.Priority())
	assert.Less(t, PackFilled.Priority(), PackBrands.Priority())
	assert.Equal(t, len(Packs), Pack("outline").Priority())
}

func homeIcon() *Icon {
	return &Icon{
		Name:        "Home",
		DefaultPack: PackBasic,
		Glyphs: map[Pack]Glyph{
			PackFilled: {ViewBox: "0 0 24 24", Inner: `<path d="M2 2"/>`},
			PackBasic:  {ViewBox: "0 0 24 24", Inner: `<path d="M1 1"/>`},
		},
	}
}

func TestIcon_Packs(t *testing.T) {
	assert.Equal(t, []Pack{PackBasic, PackFilled}, homeIcon().Packs())
}

func TestIcon_Glyph(t *testing.T) {
	ic := homeIcon()
	assert.Equal(t, `<path d="M2 2"/>`, ic.Glyph(PackFilled).Inner)
	assert.Equal(t, `<path d="M1 1"/>`, ic.Glyph("").Inner)
	assert.Equal(t, `<path d="M1 1"/>`, ic.Glyph(PackBrands).Inner)
}

func TestIcon_Render(t *testing.T) {
	ic := homeIcon()

	t.Run("defaults", func(t *testing.T) {
		want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24" fill="currentColor"><path d="M1 1"/></svg>`
		assert.Equal(t, want, ic.Render(Props{}))
		assert.Equal(t, want, ic.String())
	})
	t.Run("pack size and transform", func(t *testing.T) {
		got := ic.Render(Props{Pack: PackFilled, Size: SizeXL, Flip: FlipHorizontal, Rotate: "45"})
		want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="64" height="64" fill="currentColor" transform="scale(-1,1) rotate(45)" style="transform-origin: center"><path d="M2 2"/></svg>`
		assert.Equal(t, want, got)
	})
	t.Run("explicit dimensions win over size", func(t *testing.T) {
		got := ic.Render(Props{Size: SizeXL, Width: "10", Fill: "red", Opacity: "0.5"})
		assert.Contains(t, got, `width="10" height="64" fill="red" opacity="0.5"`)
	})
	t.Run("remove padding", func(t *testing.T) {
		assert.Contains(t, ic.Render(Props{RemovePadding: true}), `viewBox="2 2 20 20"`)
	})
	t.Run("extra attributes override and append", func(t *testing.T) {
		got := ic.Render(Props{Attrs: map[string]string{"fill": "blue", "class": `a"b`}})
		assert.Contains(t, got, `fill="blue" class="a&#34;b"`)
	})
}
