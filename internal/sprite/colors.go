package sprite

import (
	"image"

	"github.com/disintegration/imaging"
)

// FindUniqueColors returns the colors that appear inside region but nowhere
// else in img, sorted by descending (R, G, B) tuple value.
//
// The exterior set is computed by scanning the true pixels outside the
// rectangle. The region is never blanked out of a copy and rescanned; that
// approach injects the fill color into the exterior set and can falsely
// disqualify a genuinely unique color that happens to match it.
//
// Progress advances across both scans weighted by their pixel counts.
func FindUniqueColors(img image.Image, region Region, progress ProgressFunc) ([]RGB, error) {
	return findUniqueColors(img, region, newTracker(progress))
}

func findUniqueColors(img image.Image, region Region, t *tracker) ([]RGB, error) {
	if err := region.Validate(img); err != nil {
		return nil, err
	}

	// NRGBA keeps channels non-premultiplied: a pixel's stored RGB survives
	// unchanged whatever its alpha, so comparisons really are on RGB only.
	src := imaging.Clone(img)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	total := w * h
	done := 0

	// Region coordinates are relative to the top-left pixel, whatever the
	// buffer's Bounds().Min happens to be.
	at := func(x, y int) int {
		return src.PixOffset(b.Min.X+x, b.Min.Y+y)
	}

	// Pass 1: colors inside the region.
	inside := make(colorSet, 64)
	for y := region.Y; y < region.Y+region.Height; y++ {
		off := at(region.X, y)
		for x := 0; x < region.Width; x++ {
			inside.add(rgbAt(src.Pix, off))
			off += 4
		}
		done += region.Width
		if err := t.span(0, 100, done, total); err != nil {
			return nil, err
		}
	}

	// Pass 2: colors of the exterior, scanned row by row. Rows overlapping
	// the region skip its columns.
	exterior := make(colorSet, 64)
	for y := 0; y < h; y++ {
		x0, x1 := 0, w
		if y >= region.Y && y < region.Y+region.Height {
			off := at(0, y)
			for x := 0; x < region.X; x++ {
				exterior.add(rgbAt(src.Pix, off))
				off += 4
			}
			x0 = region.X + region.Width
			done += region.X
		}
		off := at(x0, y)
		for x := x0; x < x1; x++ {
			exterior.add(rgbAt(src.Pix, off))
			off += 4
		}
		done += x1 - x0
		if err := t.span(0, 100, done, total); err != nil {
			return nil, err
		}
	}

	return inside.minus(exterior), nil
}
