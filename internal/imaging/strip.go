package imaging

import (
	"image"

	"github.com/spriteworks/spriteforge/internal/sprite"
)

// ColorStrip renders a color list as a 1-pixel-tall image, one pixel per
// color in the given order. Returns nil for an empty list; there is no
// zero-width image to produce.
func ColorStrip(colors []sprite.RGB) *image.NRGBA {
	if len(colors) == 0 {
		return nil
	}

	strip := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for i, c := range colors {
		off := i * 4
		strip.Pix[off+0] = c.R
		strip.Pix[off+1] = c.G
		strip.Pix[off+2] = c.B
		strip.Pix[off+3] = 255
	}
	return strip
}

// HexStrings formats a color list as "#rrggbb" strings in the same order.
func HexStrings(colors []sprite.RGB) []string {
	hex := make([]string, len(colors))
	for i, c := range colors {
		hex[i] = c.Hex()
	}
	return hex
}
