package sprite

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an exact 8-bit color value. Uniqueness and stability comparisons
// throughout this package are on RGB only; alpha is ignored.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color in "#rrggbb" form.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// key packs the channels into a single comparable value, R most
// significant, so numeric order equals lexicographic (R, G, B) order.
func (c RGB) key() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// sortDescending orders colors by descending (R, G, B) tuple value, the
// deterministic presentation order for analysis results.
func sortDescending(colors []RGB) {
	sort.Slice(colors, func(i, j int) bool {
		return colors[i].key() > colors[j].key()
	})
}

// colorSet is a hash set of colors. Membership tests are O(1) average,
// which matters because the compositors test one pixel at a time.
type colorSet map[RGB]struct{}

func (s colorSet) add(c RGB) {
	s[c] = struct{}{}
}

func (s colorSet) has(c RGB) bool {
	_, ok := s[c]
	return ok
}

// minus returns s - other as a slice in descending tuple order.
func (s colorSet) minus(other colorSet) []RGB {
	diff := make([]RGB, 0, len(s))
	for c := range s {
		if !other.has(c) {
			diff = append(diff, c)
		}
	}
	sortDescending(diff)
	return diff
}

// rgbAt reads the stored color at index i of a 4-byte-per-pixel buffer
// (*image.NRGBA or *image.RGBA). The alpha byte is not consulted.
func rgbAt(pix []uint8, i int) RGB {
	return RGB{R: pix[i], G: pix[i+1], B: pix[i+2]}
}
