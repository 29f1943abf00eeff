package sprite

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidRegion is returned when a region violates the geometric
// invariant relative to its image. Invalid regions are rejected, never
// clamped, so callers cannot silently lose pixels.
var ErrInvalidRegion = errors.New("invalid region")

// Region is an axis-aligned rectangle selecting a sub-area of an image.
// Coordinates are 0-based from the image's top-left corner.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Pixels returns the number of pixels the region covers.
func (r Region) Pixels() int {
	return r.Width * r.Height
}

// Contains reports whether the image-relative coordinate (x, y) lies
// inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func (r Region) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Validate checks the region against an image's dimensions:
// X >= 0, Y >= 0, Width > 0, Height > 0, and the rectangle must lie fully
// inside the image.
func (r Region) Validate(img image.Image) error {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidRegion, r.Width, r.Height)
	case r.X < 0 || r.Y < 0:
		return fmt.Errorf("%w: origin (%d,%d) must not be negative", ErrInvalidRegion, r.X, r.Y)
	case r.X+r.Width > w || r.Y+r.Height > h:
		return fmt.Errorf("%w: %s extends past image bounds %dx%d", ErrInvalidRegion, r, w, h)
	}
	return nil
}
