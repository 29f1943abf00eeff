package sprite

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestBuildSequenceDiff_IdenticalCrops(t *testing.T) {
	// N identical crops: output equals the first crop, fully opaque.
	crop := solidImage(3, 3, red)
	crop.Set(1, 1, blue)

	out, err := BuildSequenceDiff([]image.Image{crop, crop, crop}, nil)
	if err != nil {
		t.Fatalf("BuildSequenceDiff failed: %v", err)
	}
	if out == nil {
		t.Fatal("got no result, want a buffer")
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if a := alphaOf(out, x, y); a != 255 {
				t.Errorf("pixel (%d,%d): alpha %d, want 255", x, y, a)
			}
			if got, want := rgbOf(out, x, y), rgbOf(crop, x, y); got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBuildSequenceDiff_CenterPixelDiffers(t *testing.T) {
	// Two 3x3 crops identical except the center: transparency at exactly
	// the center, opacity elsewhere.
	a := solidImage(3, 3, red)
	b := solidImage(3, 3, red)
	b.Set(1, 1, blue)

	out, err := BuildSequenceDiff([]image.Image{a, b}, nil)
	if err != nil {
		t.Fatalf("BuildSequenceDiff failed: %v", err)
	}
	if out == nil {
		t.Fatal("got no result, want a buffer")
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			alpha := alphaOf(out, x, y)
			if x == 1 && y == 1 {
				if alpha != 0 {
					t.Errorf("center pixel: alpha %d, want 0", alpha)
				}
				if got := rgbOf(out, x, y); got != (RGB{0, 0, 0}) {
					t.Errorf("center pixel: channels %v, want zeroed", got)
				}
				continue
			}
			if alpha != 255 {
				t.Errorf("pixel (%d,%d): alpha %d, want 255", x, y, alpha)
			}
			if got := rgbOf(out, x, y); got != (RGB{255, 0, 0}) {
				t.Errorf("pixel (%d,%d): got %v, want red", x, y, got)
			}
		}
	}
}

func TestBuildSequenceDiff_ReferenceIsFirstCrop(t *testing.T) {
	// The stable color comes from the first crop even when later crops
	// agree with each other on a different value.
	first := solidImage(2, 2, red)
	later := solidImage(2, 2, blue)

	out, err := BuildSequenceDiff([]image.Image{first, later, later}, nil)
	if err != nil {
		t.Fatalf("BuildSequenceDiff failed: %v", err)
	}
	if out == nil {
		t.Fatal("got no result, want a buffer")
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if a := alphaOf(out, x, y); a != 0 {
				t.Errorf("pixel (%d,%d): alpha %d, want 0 (no pixel stable)", x, y, a)
			}
		}
	}
}

func TestBuildSequenceDiff_AlphaDifferenceIsStable(t *testing.T) {
	// Two crops with identical stored RGB everywhere; one pixel differs only
	// in alpha. Stability is judged on stored RGB, so every pixel stays
	// opaque in the output.
	a := solidImage(2, 2, red)
	b := solidImage(2, 2, red)
	b.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 0})

	out, err := BuildSequenceDiff([]image.Image{a, b}, nil)
	if err != nil {
		t.Fatalf("BuildSequenceDiff failed: %v", err)
	}
	if out == nil {
		t.Fatal("got no result, want a buffer")
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if alpha := alphaOf(out, x, y); alpha != 255 {
				t.Errorf("pixel (%d,%d): alpha %d, want 255", x, y, alpha)
			}
			if got := rgbOf(out, x, y); got != (RGB{255, 0, 0}) {
				t.Errorf("pixel (%d,%d): got %v, want red", x, y, got)
			}
		}
	}
}

func TestBuildSequenceDiff_TransparentPixelsCompareStoredRGB(t *testing.T) {
	// Fully transparent pixels with different stored RGB are different
	// colors. Scaling channels by alpha would collapse both to (0,0,0) and
	// fake stability.
	a := solidImage(2, 1, red)
	a.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 0})
	b := solidImage(2, 1, red)
	b.SetNRGBA(0, 0, color.NRGBA{40, 50, 60, 0})

	out, err := BuildSequenceDiff([]image.Image{a, b}, nil)
	if err != nil {
		t.Fatalf("BuildSequenceDiff failed: %v", err)
	}
	if out == nil {
		t.Fatal("got no result, want a buffer")
	}
	if alpha := alphaOf(out, 0, 0); alpha != 0 {
		t.Errorf("pixel (0,0): alpha %d, want 0 (stored RGB differs)", alpha)
	}
	if alpha := alphaOf(out, 1, 0); alpha != 255 {
		t.Errorf("pixel (1,0): alpha %d, want 255", alpha)
	}
}

func TestBuildSequenceDiff_TooFewCrops(t *testing.T) {
	out, err := BuildSequenceDiff([]image.Image{solidImage(2, 2, red)}, nil)
	if err != nil {
		t.Fatalf("BuildSequenceDiff failed: %v", err)
	}
	if out != nil {
		t.Error("single crop: got a buffer, want no result")
	}

	out, err = BuildSequenceDiff(nil, nil)
	if err != nil {
		t.Fatalf("BuildSequenceDiff failed: %v", err)
	}
	if out != nil {
		t.Error("empty sequence: got a buffer, want no result")
	}
}

func TestBuildSequenceDiff_SkipsMismatchedSizes(t *testing.T) {
	ref := solidImage(3, 3, red)
	odd := solidImage(2, 2, red)
	same := solidImage(3, 3, red)

	out, err := BuildSequenceDiff([]image.Image{ref, odd, same}, nil)
	if err != nil {
		t.Fatalf("BuildSequenceDiff failed: %v", err)
	}
	if out == nil {
		t.Fatal("got no result, want a buffer from the two usable crops")
	}
	if a := alphaOf(out, 0, 0); a != 255 {
		t.Errorf("alpha %d, want 255", a)
	}

	// Only mismatched crops remain after the reference: no result.
	out, err = BuildSequenceDiff([]image.Image{ref, odd}, nil)
	if err != nil {
		t.Fatalf("BuildSequenceDiff failed: %v", err)
	}
	if out != nil {
		t.Error("got a buffer, want no result after skipping the only companion crop")
	}
}

func TestBuildSequenceDiff_Cancel(t *testing.T) {
	frames := make([]image.Image, 8)
	for i := range frames {
		frames[i] = solidImage(16, 16, red)
	}

	out, err := BuildSequenceDiff(frames, func(p int) error {
		if p >= 30 {
			return errors.New("stop")
		}
		return nil
	})
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("got %v, want ErrCancelled", err)
	}
	if out != nil {
		t.Error("cancelled operation leaked a partial buffer")
	}
}

func TestDiffRegionAcross(t *testing.T) {
	region := Region{X: 1, Y: 1, Width: 3, Height: 3}

	frames := make([]image.Image, 3)
	for i := range frames {
		img := solidImage(6, 6, red)
		// A moving pixel outside the region must not affect the result.
		img.Set(5, 5-i, blue)
		frames[i] = img
	}
	// One frame differs inside the region at (2,2).
	frames[2].(*image.NRGBA).Set(2, 2, green)

	var reports []int
	out, err := DiffRegionAcross(frames, region, func(p int) error {
		reports = append(reports, p)
		return nil
	})
	if err != nil {
		t.Fatalf("DiffRegionAcross failed: %v", err)
	}
	if out == nil {
		t.Fatal("got no result, want a buffer")
	}
	if w, h := out.Bounds().Dx(), out.Bounds().Dy(); w != 3 || h != 3 {
		t.Fatalf("dimensions: got %dx%d, want 3x3", w, h)
	}

	// (2,2) in image space is (1,1) in region space.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := uint8(255)
			if x == 1 && y == 1 {
				want = 0
			}
			if a := alphaOf(out, x, y); a != want {
				t.Errorf("pixel (%d,%d): alpha %d, want %d", x, y, a, want)
			}
		}
	}

	for i := 1; i < len(reports); i++ {
		if reports[i] <= reports[i-1] {
			t.Errorf("progress not strictly increasing: %v", reports)
			break
		}
	}
	if len(reports) == 0 || reports[len(reports)-1] != 100 {
		t.Errorf("final progress: %v, want last report of 100", reports)
	}
}

func TestDiffRegionAcross_SkipsUnusableImages(t *testing.T) {
	region := Region{X: 0, Y: 0, Width: 4, Height: 4}

	frames := []image.Image{
		solidImage(4, 4, red),
		solidImage(2, 2, red), // region does not fit: skipped
		solidImage(4, 4, red),
	}

	out, err := DiffRegionAcross(frames, region, nil)
	if err != nil {
		t.Fatalf("DiffRegionAcross failed: %v", err)
	}
	if out == nil {
		t.Fatal("got no result, want a buffer from the two usable frames")
	}

	// With only one usable frame the operation degrades to no result.
	out, err = DiffRegionAcross(frames[:2], region, nil)
	if err != nil {
		t.Fatalf("DiffRegionAcross failed: %v", err)
	}
	if out != nil {
		t.Error("got a buffer, want no result with a single usable frame")
	}
}
