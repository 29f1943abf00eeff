// Package server implements the MCP (Model Context Protocol) surface of the
// sprite tools.
//
// This is the collaborator layer around the analysis engine in
// internal/sprite: it loads and caches images, validates tool arguments,
// runs the pixel scans, and returns or persists the resulting artifacts.
// The engine itself stays protocol-free.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// Long-running scans additionally emit notifications/progress messages
// with a per-tool progress token, driven by the engine's progress
// capability.
//
// # Available Tools
//
// Basic image information:
//   - image_load, image_dimensions, image_sample_color
//
// Sprite operations:
//   - sprite_extract: crop a region out of an image
//   - sprite_unique_colors: colors exclusive to a region
//   - sprite_unique: sprite showing only region-unique colors
//   - sprite_sequence_diff: frame-stable composite across a directory of
//     near-identical frames
//   - sprite_palette: dominant palette of an image or region
package server
