package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// regionProperties is the shared schema fragment for the region arguments
// every sprite operation takes.
func regionProperties() map[string]interface{} {
	return map[string]interface{}{
		"x": map[string]interface{}{
			"type":        "integer",
			"description": "Region left edge X coordinate (0-based)",
		},
		"y": map[string]interface{}{
			"type":        "integer",
			"description": "Region top edge Y coordinate (0-based)",
		},
		"width": map[string]interface{}{
			"type":        "integer",
			"description": "Region width in pixels (must be positive)",
		},
		"height": map[string]interface{}{
			"type":        "integer",
			"description": "Region height in pixels (must be positive)",
		},
	}
}

func withPath(props map[string]interface{}) map[string]interface{} {
	props["path"] = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	regionRequired := []string{"path", "x", "y", "width", "height"}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and alpha-channel information.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": withPath(map[string]interface{}{}),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": withPath(map[string]interface{}{}),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Sample the color at a single pixel coordinate, returned as hex, RGBA, and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withPath(map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				}),
				"required": []string{"path", "x", "y"},
			},
		},

		// Sprite Operations
		{
			Name:        "sprite_extract",
			Description: "Crop a rectangular sprite out of an image. Returns the sprite as base64 PNG and optionally saves it as a timestamped artifact next to the source.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withPath(mergeProps(regionProperties(), map[string]interface{}{
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional preview scale factor (e.g. 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
					"save": map[string]interface{}{
						"type":        "boolean",
						"description": "Write the sprite as a PNG artifact next to the source image",
						"default":     false,
					},
				})),
				"required": regionRequired,
			},
		},
		{
			Name:        "sprite_unique_colors",
			Description: "Find the colors that occur inside the region but nowhere else in the image, sorted by descending RGB value. Optionally saves a 1-pixel-tall color strip artifact.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withPath(mergeProps(regionProperties(), map[string]interface{}{
					"save_strip": map[string]interface{}{
						"type":        "boolean",
						"description": "Write the unique colors as a strip image artifact",
						"default":     false,
					},
				})),
				"required": regionRequired,
			},
		},
		{
			Name:        "sprite_unique",
			Description: "Build a sprite the size of the region where only pixels with region-unique colors are opaque; everything else is transparent. Reports 'found: false' when the region has no unique colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withPath(mergeProps(regionProperties(), map[string]interface{}{
					"save": map[string]interface{}{
						"type":        "boolean",
						"description": "Write the result as a PNG artifact next to the source image",
						"default":     false,
					},
				})),
				"required": regionRequired,
			},
		},
		{
			Name:        "sprite_sequence_diff",
			Description: "Compare the same region across every matching image in the source image's directory and build a composite where only pixels identical in every frame are opaque. Use this to matte out a moving foreground element.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withPath(mergeProps(regionProperties(), map[string]interface{}{
					"pattern": map[string]interface{}{
						"type":        "string",
						"description": "Glob for sibling frames (default from config, normally *.png)",
					},
					"save": map[string]interface{}{
						"type":        "boolean",
						"description": "Write the result as a PNG artifact next to the source image",
						"default":     false,
					},
				})),
				"required": regionRequired,
			},
		},
		{
			Name:        "sprite_palette",
			Description: "Extract a dominant color palette from an image or a region of it, ordered darkest to brightest.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withPath(mergeProps(regionProperties(), map[string]interface{}{
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of palette colors (default from config)",
					},
					"method": map[string]interface{}{
						"type":        "string",
						"description": "Extraction method: 'dominant' (histogram) or 'kmeans'",
						"default":     "dominant",
					},
				})),
				"required": []string{"path"},
			},
		},
	}
}

func mergeProps(dst, src map[string]interface{}) map[string]interface{} {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
