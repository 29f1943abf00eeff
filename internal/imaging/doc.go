// Package imaging handles the file-facing side of the sprite workflow:
// loading and caching source images, sampling individual pixels, and
// persisting the artifacts the analysis engine produces.
//
// Decoding and encoding stay entirely in this package; the analysis engine
// in internal/sprite only ever sees decoded image.Image values.
//
// # Artifacts
//
// Result buffers are written as PNG next to the source image they were
// derived from, named <prefix>_<timestamp>.png. Unique-color lists can
// additionally be rendered as a one-pixel-tall strip image, one pixel per
// color.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are
// stateless.
package imaging
