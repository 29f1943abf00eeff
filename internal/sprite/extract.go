package sprite

import (
	"image"

	"github.com/disintegration/imaging"
)

// Extract copies the region out of img into a new buffer of exactly
// region.Width x region.Height pixels. The result shares no memory with
// the source image.
func Extract(img image.Image, region Region) (*image.NRGBA, error) {
	if err := region.Validate(img); err != nil {
		return nil, err
	}

	min := img.Bounds().Min
	rect := image.Rect(
		min.X+region.X,
		min.Y+region.Y,
		min.X+region.X+region.Width,
		min.Y+region.Y+region.Height,
	)
	return imaging.Crop(img, rect), nil
}
