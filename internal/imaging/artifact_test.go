package imaging

import (
	"image"
	"image/color"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/spriteworks/spriteforge/internal/sprite"
)

func solidTestImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("/data/frames/scene.png", "", "highlight")

	if dir := filepath.Dir(got); dir != "/data/frames" {
		t.Errorf("directory: got %s, want /data/frames", dir)
	}
	name := filepath.Base(got)
	if ok, _ := regexp.MatchString(`^highlight_\d{14}\.png$`, name); !ok {
		t.Errorf("file name %q does not match highlight_<timestamp>.png", name)
	}

	got = OutputPath("/data/frames/scene.png", "/out", "sprite")
	if dir := filepath.Dir(got); dir != "/out" {
		t.Errorf("override directory: got %s, want /out", dir)
	}
}

func TestWritePNG_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	strip := ColorStrip([]sprite.RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 0, B: 255}})

	if err := WritePNG(path, strip); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	cache := NewImageCache()
	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 1 {
		t.Fatalf("dimensions: got %dx%d, want 2x1", b.Dx(), b.Dy())
	}
	r, _, _, _ := img.At(0, 0).RGBA()
	if uint8(r>>8) != 255 {
		t.Errorf("pixel 0: red channel %d, want 255", uint8(r>>8))
	}
}

func TestWritePNG_BadPath(t *testing.T) {
	strip := ColorStrip([]sprite.RGB{{R: 1, G: 2, B: 3}})
	if err := WritePNG("/nonexistent/dir/out.png", strip); err == nil {
		t.Error("WritePNG should fail for unwritable path")
	}
}

func TestColorStrip(t *testing.T) {
	colors := []sprite.RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}, {R: 0, G: 0, B: 255}}

	strip := ColorStrip(colors)
	if strip == nil {
		t.Fatal("ColorStrip returned nil for non-empty list")
	}
	if b := strip.Bounds(); b.Dx() != 3 || b.Dy() != 1 {
		t.Fatalf("dimensions: got %dx%d, want 3x1", b.Dx(), b.Dy())
	}
	for i, want := range colors {
		r, g, b, a := strip.At(i, 0).RGBA()
		got := sprite.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		if got != want || uint8(a>>8) != 255 {
			t.Errorf("pixel %d: got %v alpha %d, want %v opaque", i, got, uint8(a>>8), want)
		}
	}
}

func TestColorStrip_Empty(t *testing.T) {
	if strip := ColorStrip(nil); strip != nil {
		t.Error("ColorStrip(nil) should return nil")
	}
}

func TestHexStrings(t *testing.T) {
	got := HexStrings([]sprite.RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 0, B: 255}})
	want := []string{"#ff0000", "#0000ff"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hex %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSampleColor(t *testing.T) {
	img := solidTestImage(10, 10, color.NRGBA{255, 0, 0, 255})

	result, err := SampleColor(img, 5, 5)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Hex != "#ff0000" {
		t.Errorf("hex: got %s, want #ff0000", result.Hex)
	}
	if result.RGBA != (RGBAColor{R: 255, A: 255}) {
		t.Errorf("rgba: got %+v, want pure opaque red", result.RGBA)
	}
	if result.HSL.H != 0 || result.HSL.S != 100 || result.HSL.L != 50 {
		t.Errorf("hsl: got %+v, want {0 100 50}", result.HSL)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := solidTestImage(10, 10, color.NRGBA{0, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 10, 0},
		{"y at height", 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y); err == nil {
				t.Error("SampleColor should fail outside bounds")
			}
		})
	}
}
