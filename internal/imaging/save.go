package imaging

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// OutputPath builds a timestamped artifact path in the directory of the
// source image: <dir>/<name>_<YYYYMMDDhhmmss>.png. When dir is non-empty it
// overrides the source directory.
func OutputPath(src, dir, name string) string {
	if dir == "" {
		dir = filepath.Dir(src)
	}
	stamp := time.Now().Format("20060102150405")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", name, stamp))
}

// WritePNG encodes img to path. The file is created or truncated.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
