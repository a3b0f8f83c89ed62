package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the optional image path shared by every tool.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file. Omit or leave empty to use the built-in 3x3 test grid.",
}

// transformProperties returns the properties shared by transform tools, plus extra.
func transformProperties(extra map[string]interface{}) map[string]interface{} {
	props := map[string]interface{}{
		"path": pathProperty,
		"scale": map[string]interface{}{
			"type":        "integer",
			"description": "Enlarge each grid pixel to a scale x scale block in the returned PNG (each side at most 8192 pixels). Default 1",
			"default":     1,
		},
		"include_pixels": map[string]interface{}{
			"type":        "boolean",
			"description": "Also return the raw [r, g, b] channel values of every pixel. Default false",
			"default":     false,
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

func transformTool(name, description string, extra map[string]interface{}, required ...string) Tool {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": transformProperties(extra),
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return Tool{Name: name, Description: description, InputSchema: schema}
}

var thresholdProperty = map[string]interface{}{
	"type":        "number",
	"description": "Threshold compared against the pixel average (r+g+b)/3, nominally 0-1. Default 0.5",
	"default":     0.5,
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Grid Information
		{
			Name:        "grid_load",
			Description: "Load (or reload) an image as a pixel grid and return its dimensions and format. Other tools reuse the loaded image until grid_load is called again for the same path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
			},
		},
		{
			Name:        "grid_stats",
			Description: "Per-channel mean, standard deviation, minimum and maximum of a pixel grid.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
			},
		},

		// Color Transforms
		transformTool("grid_negative",
			"Invert every channel (c becomes 1 - c).", nil),
		transformTool("grid_grayscale",
			"Replace every pixel by the average of its channels.", nil),
		transformTool("grid_brightness",
			"Add delta to every channel and clamp the result to 0-1.",
			map[string]interface{}{
				"delta": map[string]interface{}{
					"type":        "number",
					"description": "Amount added to each channel. Negative values darken.",
				},
			}, "delta"),
		transformTool("grid_binarize",
			"Turn pixels white when their average is at least the threshold, black otherwise.",
			map[string]interface{}{"threshold": thresholdProperty}),
		transformTool("grid_threshold_highlight",
			"Turn pixels red when their average is strictly above the threshold; other pixels are unchanged.",
			map[string]interface{}{"threshold": thresholdProperty}),
		transformTool("grid_sepia",
			"Apply the sepia tone matrix, clamping channels to a maximum of 1.", nil),

		// Geometric Transform
		transformTool("grid_mirror",
			"Reflect the grid horizontally (reverse every row).", nil),

		// Composite Filter
		transformTool("grid_flag_filter",
			"Recolor the grid in three horizontal bands (yellow, blue, red). Pure green, blue, black and white pixels take the band color; others get a band-specific channel boost.", nil),

		// Inspection
		{
			Name:        "grid_find_green",
			Description: "Find the first pixel that is exactly pure green [0, 1, 0], scanning rows top to bottom and left to right.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
			},
		},
		{
			Name:        "grid_sample_color",
			Description: "Get the exact channel values of the pixel at (row, col).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"row": map[string]interface{}{
						"type":        "integer",
						"description": "Row index (0-based, from top)",
					},
					"col": map[string]interface{}{
						"type":        "integer",
						"description": "Column index (0-based, from left)",
					},
				},
				"required": []string{"row", "col"},
			},
		},
		{
			Name:        "grid_sample_colors_multi",
			Description: "Get the channel values at multiple grid coordinates in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"row":   map[string]interface{}{"type": "integer"},
								"col":   map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"row", "col"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"points"},
			},
		},
		{
			Name:        "grid_dominant_colors",
			Description: "Return the N most frequent (quantized) colors of a grid.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (default 5)",
						"default":     5,
					},
				},
			},
		},
		{
			Name:        "grid_render",
			Description: "Render a grid as PNG, optionally with cell boundary lines and row,col labels. Useful for looking at tiny grids.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels per grid cell (default 1, or 32 when show_grid or show_coordinates is set)",
					},
					"show_grid": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw lines between cells (needs scale >= 4)",
						"default":     false,
					},
					"show_coordinates": map[string]interface{}{
						"type":        "boolean",
						"description": "Label cells with row,col (cell lines are drawn as well)",
						"default":     false,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Line color as #RRGGBB or #RRGGBBAA (default #FF000080)",
						"default":     "#FF000080",
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
