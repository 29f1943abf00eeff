package sprite

import (
	"image"
	"log"

	"github.com/disintegration/imaging"
)

// BuildSequenceDiff compares the same region cropped from several frames
// and builds a composite where a pixel is opaque only if its RGB value is
// identical across every crop. Differing pixels become fully transparent
// with zeroed channels.
//
// The first crop is the fixed reference: every later crop is compared
// against it, never against an accumulated intermediate, so equality cannot
// drift transitively. Opaque pixels take their color from the reference.
//
// Crops whose dimensions do not match the first are skipped and logged.
// With fewer than 2 usable crops there is nothing to compare and the result
// is nil with a nil error.
func BuildSequenceDiff(crops []image.Image, progress ProgressFunc) (*image.RGBA, error) {
	return buildSequenceDiff(crops, newTracker(progress), 0)
}

func buildSequenceDiff(crops []image.Image, t *tracker, lo int) (*image.RGBA, error) {
	if len(crops) < 2 {
		return nil, nil
	}

	// Non-premultiplied buffers: stability is judged on stored RGB, never on
	// alpha-scaled values.
	ref := imaging.Clone(crops[0])
	w, h := ref.Bounds().Dx(), ref.Bounds().Dy()

	stable := make([]bool, w*h)
	for i := range stable {
		stable[i] = true
	}

	// Reserve the tail of the bar for assembling the output buffer.
	const assembleShare = 5
	foldHi := 100 - assembleShare

	usable := 1
	for i, crop := range crops[1:] {
		cur := imaging.Clone(crop)
		cw, ch := cur.Bounds().Dx(), cur.Bounds().Dy()
		if cw != w || ch != h {
			log.Printf("sequence diff: skipping crop %d: size %dx%d differs from reference %dx%d", i+1, cw, ch, w, h)
			continue
		}
		usable++

		idx := 0
		for off := 0; off < len(ref.Pix); off += 4 {
			if stable[idx] && rgbAt(cur.Pix, off) != rgbAt(ref.Pix, off) {
				stable[idx] = false
			}
			idx++
		}
		if err := t.span(lo, foldHi, i+1, len(crops)-1); err != nil {
			return nil, err
		}
	}

	if usable < 2 {
		return nil, nil
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for idx, ok := range stable {
		if !ok {
			continue
		}
		off := idx * 4
		out.Pix[off+0] = ref.Pix[off+0]
		out.Pix[off+1] = ref.Pix[off+1]
		out.Pix[off+2] = ref.Pix[off+2]
		out.Pix[off+3] = 255
	}
	if err := t.report(100); err != nil {
		return nil, err
	}

	return out, nil
}

// DiffRegionAcross crops region from each image in an ordered sequence and
// feeds the crops to BuildSequenceDiff. Images the region does not fit are
// skipped and logged rather than failing the whole run; if fewer than 2
// crops survive, the result is nil.
//
// Progress covers cropping first (roughly the first 40%) and the
// comparison fold after it, each advancing with items processed.
func DiffRegionAcross(images []image.Image, region Region, progress ProgressFunc) (*image.RGBA, error) {
	t := newTracker(progress)

	const cropHi = 40
	crops := make([]image.Image, 0, len(images))
	for i, img := range images {
		crop, err := Extract(img, region)
		if err != nil {
			log.Printf("sequence diff: skipping image %d: %v", i, err)
		} else {
			crops = append(crops, crop)
		}
		if err := t.span(0, cropHi, i+1, len(images)); err != nil {
			return nil, err
		}
	}

	return buildSequenceDiff(crops, t, cropHi)
}
