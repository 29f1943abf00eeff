package sprite

import (
	"image"

	"github.com/disintegration/imaging"
)

// BuildUniqueSprite builds an RGBA buffer the size of region where only
// pixels whose color is unique to the region are opaque; every other pixel
// is fully transparent (0,0,0,0).
//
// When the region contains no unique colors at all there is nothing to
// highlight: the result is nil with a nil error, which callers must treat
// as a distinct "no result" outcome rather than an empty buffer.
func BuildUniqueSprite(img image.Image, region Region, progress ProgressFunc) (*image.RGBA, error) {
	if err := region.Validate(img); err != nil {
		return nil, err
	}

	t := newTracker(progress)
	b := img.Bounds()

	// The analysis scans the whole image while compositing scans only the
	// region, so the bar is split in proportion to those pixel counts.
	imagePixels := b.Dx() * b.Dy()
	split := 100 * imagePixels / (imagePixels + region.Pixels())

	unique, err := findUniqueColors(img, region, newTracker(t.stage(0, split)))
	if err != nil {
		return nil, err
	}
	if len(unique) == 0 {
		if err := t.report(100); err != nil {
			return nil, err
		}
		return nil, nil
	}

	set := make(colorSet, len(unique))
	for _, c := range unique {
		set.add(c)
	}

	src := imaging.Clone(img)
	srcMin := src.Bounds().Min
	out := image.NewRGBA(image.Rect(0, 0, region.Width, region.Height))
	for y := 0; y < region.Height; y++ {
		srcOff := src.PixOffset(srcMin.X+region.X, srcMin.Y+region.Y+y)
		dstOff := out.PixOffset(0, y)
		for x := 0; x < region.Width; x++ {
			c := rgbAt(src.Pix, srcOff)
			if set.has(c) {
				out.Pix[dstOff+0] = c.R
				out.Pix[dstOff+1] = c.G
				out.Pix[dstOff+2] = c.B
				out.Pix[dstOff+3] = 255
			}
			srcOff += 4
			dstOff += 4
		}
		if err := t.span(split, 100, y+1, region.Height); err != nil {
			return nil, err
		}
	}

	return out, nil
}
