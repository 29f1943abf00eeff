// Package sprite implements the pixel-analysis engine for sprite extraction.
//
// The package operates on decoded image.Image values supplied by the caller
// and never retains them across calls. It provides four operations:
//
//   - Extract: copy a rectangular region out of an image
//   - FindUniqueColors: the set of colors present inside a region but
//     nowhere else in the image
//   - BuildUniqueSprite: an RGBA buffer where only uniquely-colored pixels
//     are opaque
//   - BuildSequenceDiff / DiffRegionAcross: a composite over the same region
//     of several near-identical frames where only frame-stable pixels are
//     opaque
//
// # Coordinate System
//
// Regions are 0-based and relative to the image's top-left corner,
// regardless of the image's Bounds().Min. A Region must lie fully inside
// the image; out-of-bounds or empty regions are rejected with
// ErrInvalidRegion, never clamped.
//
// # Color Comparisons
//
// All uniqueness and stability comparisons are exact value equality on the
// 8-bit RGB channels. Alpha never participates.
//
// # Progress and Cancellation
//
// The long-running operations accept a ProgressFunc. It receives monotonic
// percentages in [0,100]; returning a non-nil error cancels the operation,
// which stops promptly and returns ErrCancelled with no partial output.
//
// # Concurrency
//
// All operations are stateless and share no mutable state, so independent
// invocations may run on independent goroutines. Inputs are only read;
// every output buffer is freshly allocated.
package sprite
