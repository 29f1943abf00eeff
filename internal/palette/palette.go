// Package palette extracts a dominant color palette from a sprite, for
// callers that want a compact summary of a region's colors rather than the
// exact unique set.
package palette

import (
	"fmt"
	"image"
	"sort"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/spriteworks/spriteforge/internal/sprite"
)

// Method selects the palette extraction algorithm.
type Method int

const (
	// MethodDominant uses a weighted color histogram.
	MethodDominant Method = iota
	// MethodKMeans clusters pixel colors with k-means.
	MethodKMeans
)

func (m Method) String() string {
	switch m {
	case MethodKMeans:
		return "kmeans"
	default:
		return "dominant"
	}
}

// ParseMethod maps a config/tool string onto a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "dominant":
		return MethodDominant, nil
	case "kmeans":
		return MethodKMeans, nil
	default:
		return 0, fmt.Errorf("unknown palette method %q", s)
	}
}

// Entry is one palette color.
type Entry struct {
	Hex string     `json:"hex"`
	RGB sprite.RGB `json:"rgb"`
}

// Extract returns up to k palette colors for img, ordered darkest to
// brightest.
func Extract(img image.Image, k int, method Method) ([]Entry, error) {
	if k <= 0 {
		return nil, fmt.Errorf("palette size must be positive, got %d", k)
	}

	var cols []colorful.Color
	var err error
	switch method {
	case MethodKMeans:
		cols, err = kmeansPalette(img, k)
	default:
		cols = dominantPalette(img, k)
	}
	if err != nil {
		return nil, err
	}

	sortByBrightness(cols)

	entries := make([]Entry, len(cols))
	for i, c := range cols {
		cc := c.Clamped()
		entries[i] = Entry{
			Hex: cc.Hex(),
			RGB: sprite.RGB{
				R: uint8(cc.R*255 + 0.5),
				G: uint8(cc.G*255 + 0.5),
				B: uint8(cc.B*255 + 0.5),
			},
		}
	}
	return entries, nil
}

func dominantPalette(img image.Image, k int) []colorful.Color {
	candidates := dominantcolor.FindWeight(img, k)
	cols := make([]colorful.Color, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		cols = append(cols, col.Clamped())
	}
	return cols
}

// sampleCap bounds the number of observations fed to k-means so large
// sprites stay tractable.
const sampleCap = 10000

func kmeansPalette(img image.Image, k int) ([]colorful.Color, error) {
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	stride := 1
	for total/(stride*stride) > sampleCap {
		stride++
	}

	var obs clusters.Observations
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		for x := b.Min.X; x < b.Max.X; x += stride {
			r, g, bb, _ := img.At(x, y).RGBA()
			obs = append(obs, clusters.Coordinates{
				float64(r>>8) / 255.0,
				float64(g>>8) / 255.0,
				float64(bb>>8) / 255.0,
			})
		}
	}
	if len(obs) == 0 {
		return nil, fmt.Errorf("image has no pixels to cluster")
	}
	if k > len(obs) {
		k = len(obs)
	}

	km := kmeans.New()
	cl, err := km.Partition(obs, k)
	if err != nil {
		return nil, fmt.Errorf("k-means clustering failed: %w", err)
	}

	cols := make([]colorful.Color, 0, len(cl))
	for _, c := range cl {
		center := c.Center
		if len(center) < 3 {
			continue
		}
		cols = append(cols, colorful.Color{R: center[0], G: center[1], B: center[2]}.Clamped())
	}
	return cols, nil
}

// sortByBrightness orders colors from darkest to brightest by linear
// luminance, so the first entry is the likeliest background tone.
func sortByBrightness(cols []colorful.Color) {
	sort.Slice(cols, func(i, j int) bool {
		return luminance(cols[i]) < luminance(cols[j])
	})
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
