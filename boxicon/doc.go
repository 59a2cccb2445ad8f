// Package boxicon is the runtime for icon packages generated by boxgen's Go
// target. Each generated icon is an [Icon] value holding one [Glyph] per
// pack that backs it; [Icon.Render] turns it into an <svg> element using the
// same options as the Vue components (pack, fill, opacity, width, height,
// size, flip, rotate, removePadding).
//
// The size table ([SizePixels]) and transform builder ([BuildTransform])
// are also the source the Vue target emits its utils.ts from, so both
// targets agree on the numbers.
package boxicon
