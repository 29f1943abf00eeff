// Package sequence discovers and loads ordered frame sequences for the
// sequence-diff operation: sibling images assumed to depict the same scene
// at different moments.
package sequence

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"log"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
)

// DefaultPattern matches the frames the original sprite pipelines produce.
const DefaultPattern = "*.png"

// Discover returns the files in dir matching pattern, sorted by name so
// the sequence order is deterministic.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad sequence pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Frames holds the decoded members of a sequence in discovery order.
// Unreadable members are recorded in Skipped rather than failing the load;
// the diff operation decides whether enough frames survived.
type Frames struct {
	Images  []image.Image
	Paths   []string
	Skipped []string
}

// Load decodes paths concurrently with at most workers decodes in flight.
// Files that cannot be opened or decoded are logged and skipped. Order of
// the result follows the input order, not decode completion.
func Load(ctx context.Context, paths []string, workers int) (*Frames, error) {
	if workers < 1 {
		workers = 1
	}

	decoded := make([]image.Image, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := decodeFile(path)
			if err != nil {
				log.Printf("sequence: skipping %s: %v", path, err)
				return nil
			}
			decoded[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	frames := &Frames{}
	for i, img := range decoded {
		if img == nil {
			frames.Skipped = append(frames.Skipped, paths[i])
			continue
		}
		frames.Images = append(frames.Images, img)
		frames.Paths = append(frames.Paths, paths[i])
	}
	return frames, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}
