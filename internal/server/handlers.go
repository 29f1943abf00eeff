package server

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"path/filepath"

	"github.com/spriteworks/spriteforge/internal/imaging"
	"github.com/spriteworks/spriteforge/internal/palette"
	"github.com/spriteworks/spriteforge/internal/sequence"
	"github.com/spriteworks/spriteforge/internal/sprite"
	"github.com/spriteworks/spriteforge/internal/system"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "sprite_extract").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Sprite Operations
	case "sprite_extract":
		return s.handleSpriteExtract(args)
	case "sprite_unique_colors":
		return s.handleSpriteUniqueColors(args)
	case "sprite_unique":
		return s.handleSpriteUnique(args)
	case "sprite_sequence_diff":
		return s.handleSpriteSequenceDiff(args)
	case "sprite_palette":
		return s.handleSpritePalette(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type sampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Sprite Operation Handlers ===

// regionArgs is the argument shape shared by the sprite tools.
type regionArgs struct {
	Path   string `json:"path"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (a regionArgs) region() sprite.Region {
	return sprite.Region{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height}
}

type spriteExtractArgs struct {
	regionArgs
	Scale float64 `json:"scale"`
	Save  bool    `json:"save"`
}

// SpriteResult is the common result shape for tools that produce a raster
// artifact.
type SpriteResult struct {
	Found       bool   `json:"found"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	ImageBase64 string `json:"image_base64,omitempty"`
	MimeType    string `json:"mime_type,omitempty"`
	SavedPath   string `json:"saved_path,omitempty"`
}

func (s *Server) handleSpriteExtract(args json.RawMessage) (interface{}, error) {
	var a spriteExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	crop, err := sprite.Extract(img, a.region())
	if err != nil {
		return nil, err
	}

	result := &SpriteResult{Found: true, MimeType: "image/png"}
	if a.Save {
		path := imaging.OutputPath(a.Path, s.cfg.OutputDir, s.cfg.SpriteName)
		if err := imaging.WritePNG(path, crop); err != nil {
			return nil, err
		}
		result.SavedPath = path
	}

	scaled := imaging.Scale(crop, a.Scale)
	result.Width = scaled.Bounds().Dx()
	result.Height = scaled.Bounds().Dy()
	result.ImageBase64, err = imaging.EncodeBase64PNG(scaled)
	if err != nil {
		return nil, err
	}
	return result, nil
}

type uniqueColorsArgs struct {
	regionArgs
	SaveStrip bool `json:"save_strip"`
}

// ColorEntry is one unique color in a tool response.
type ColorEntry struct {
	Hex string     `json:"hex"`
	RGB sprite.RGB `json:"rgb"`
}

// UniqueColorsResult lists the colors exclusive to a region.
type UniqueColorsResult struct {
	Count     int          `json:"count"`
	Colors    []ColorEntry `json:"colors"`
	StripPath string       `json:"strip_path,omitempty"`
}

func (s *Server) handleSpriteUniqueColors(args json.RawMessage) (interface{}, error) {
	var a uniqueColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	colors, err := sprite.FindUniqueColors(img, a.region(), s.progressReporter("sprite_unique_colors"))
	if err != nil {
		return nil, err
	}

	result := &UniqueColorsResult{
		Count:  len(colors),
		Colors: make([]ColorEntry, len(colors)),
	}
	for i, c := range colors {
		result.Colors[i] = ColorEntry{Hex: c.Hex(), RGB: c}
	}

	if a.SaveStrip && len(colors) > 0 {
		path := imaging.OutputPath(a.Path, s.cfg.OutputDir, s.cfg.ColorsName)
		if err := imaging.WritePNG(path, imaging.ColorStrip(colors)); err != nil {
			return nil, err
		}
		result.StripPath = path
	}
	return result, nil
}

type spriteUniqueArgs struct {
	regionArgs
	Save bool `json:"save"`
}

func (s *Server) handleSpriteUnique(args json.RawMessage) (interface{}, error) {
	var a spriteUniqueArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	out, err := sprite.BuildUniqueSprite(img, a.region(), s.progressReporter("sprite_unique"))
	if err != nil {
		return nil, err
	}
	if out == nil {
		// Nothing unique to highlight; distinct from an empty buffer.
		return &SpriteResult{Found: false}, nil
	}

	return s.rasterResult(out, a.Path, s.cfg.HighlightName, a.Save)
}

type sequenceDiffArgs struct {
	regionArgs
	Pattern string `json:"pattern"`
	Save    bool   `json:"save"`
}

// SequenceDiffResult extends the raster result with sequence bookkeeping.
type SequenceDiffResult struct {
	SpriteResult
	FramesUsed    int      `json:"frames_used"`
	FramesSkipped []string `json:"frames_skipped,omitempty"`
}

func (s *Server) handleSpriteSequenceDiff(args json.RawMessage) (interface{}, error) {
	var a sequenceDiffArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	pattern := a.Pattern
	if pattern == "" {
		pattern = s.cfg.SequencePattern
	}

	paths, err := sequence.Discover(filepath.Dir(a.Path), pattern)
	if err != nil {
		return nil, err
	}

	frames, err := sequence.Load(context.Background(), paths, system.Workers(s.cfg.Workers))
	if err != nil {
		return nil, err
	}

	out, err := sprite.DiffRegionAcross(frames.Images, a.region(), s.progressReporter("sprite_sequence_diff"))
	if err != nil {
		return nil, err
	}

	result := &SequenceDiffResult{
		FramesUsed:    len(frames.Images),
		FramesSkipped: frames.Skipped,
	}
	if out == nil {
		// Fewer than two usable frames, or none matched the region.
		return result, nil
	}

	raster, err := s.rasterResult(out, a.Path, s.cfg.ExtractedName, a.Save)
	if err != nil {
		return nil, err
	}
	result.SpriteResult = *raster
	return result, nil
}

type paletteArgs struct {
	regionArgs
	Count  int    `json:"count"`
	Method string `json:"method"`
}

// PaletteResult holds the extracted palette, darkest color first.
type PaletteResult struct {
	Method string          `json:"method"`
	Colors []palette.Entry `json:"colors"`
}

func (s *Server) handleSpritePalette(args json.RawMessage) (interface{}, error) {
	var a paletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = s.cfg.PaletteSize
	}
	method, err := palette.ParseMethod(a.Method)
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	// A region is optional; a zero-size region means "whole image".
	var target image.Image = img
	if a.Width != 0 || a.Height != 0 {
		crop, err := sprite.Extract(img, a.region())
		if err != nil {
			return nil, err
		}
		target = crop
	}

	entries, err := palette.Extract(target, a.Count, method)
	if err != nil {
		return nil, err
	}
	return &PaletteResult{Method: method.String(), Colors: entries}, nil
}

// rasterResult encodes a produced buffer and optionally persists it under
// the given artifact prefix.
func (s *Server) rasterResult(img image.Image, srcPath, prefix string, save bool) (*SpriteResult, error) {
	result := &SpriteResult{
		Found:    true,
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
		MimeType: "image/png",
	}

	var err error
	result.ImageBase64, err = imaging.EncodeBase64PNG(img)
	if err != nil {
		return nil, err
	}

	if save {
		path := imaging.OutputPath(srcPath, s.cfg.OutputDir, prefix)
		if err := imaging.WritePNG(path, img); err != nil {
			return nil, err
		}
		result.SavedPath = path
	}
	return result, nil
}
