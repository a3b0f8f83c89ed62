package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/pixelgrid-tools/internal/imaging"
	"github.com/ironsheep/pixelgrid-tools/internal/pixelgrid"
)

// Defaults applied when optional tool arguments are omitted.
const (
	defaultThreshold    = 0.5
	defaultColorCount   = 5
	defaultOverlayScale = 32
	defaultOverlayColor = "#FF000080"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "grid_load", "grid_negative").
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
	if len(params.Arguments) == 0 {
		params.Arguments = json.RawMessage("{}")
	}

	if s.debug {
		log.Printf("tools/call %s %s", params.Name, params.Arguments)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tools/call %s failed: %v", params.Name, err)
		}
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the grid (empty path selects the built-in grid)
//  4. Calls the appropriate pixelgrid/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Grid Information
	case "grid_load":
		return s.handleGridLoad(args)
	case "grid_stats":
		return s.handleGridStats(args)

	// Transforms
	case "grid_negative":
		return s.handleSimpleTransform(args, pixelgrid.OpNegative, pixelgrid.Invert)
	case "grid_grayscale":
		return s.handleSimpleTransform(args, pixelgrid.OpGrayscale, pixelgrid.Grayscale)
	case "grid_sepia":
		return s.handleSimpleTransform(args, pixelgrid.OpSepia, pixelgrid.Sepia)
	case "grid_mirror":
		return s.handleSimpleTransform(args, pixelgrid.OpMirror, pixelgrid.Mirror)
	case "grid_flag_filter":
		return s.handleSimpleTransform(args, pixelgrid.OpFlag, pixelgrid.FlagFilter)
	case "grid_brightness":
		return s.handleGridBrightness(args)
	case "grid_binarize":
		return s.handleThresholdTransform(args, pixelgrid.OpBinarize, pixelgrid.Binarize)
	case "grid_threshold_highlight":
		return s.handleThresholdTransform(args, pixelgrid.OpThreshold, pixelgrid.ThresholdHighlight)

	// Inspection
	case "grid_find_green":
		return s.handleGridFindGreen(args)
	case "grid_sample_color":
		return s.handleGridSampleColor(args)
	case "grid_sample_colors_multi":
		return s.handleGridSampleColorsMulti(args)
	case "grid_dominant_colors":
		return s.handleGridDominantColors(args)
	case "grid_render":
		return s.handleGridRender(args)

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

// loadGrid resolves path to a fresh grid.
func (s *Server) loadGrid(path string) (pixelgrid.Grid, error) {
	g, err := imaging.LoadGrid(s.cache, path)
	if err != nil {
		return nil, err
	}
	if s.debug {
		log.Printf("loaded %s: %dx%d", sourceName(path), g.Rows(), g.Cols())
	}
	return g, nil
}

func sourceName(path string) string {
	if path == "" {
		return imaging.SourceFixture
	}
	return path
}

// === Grid Information Handlers ===

type gridPathArgs struct {
	Path string `json:"path"`
}

// handleGridLoad always reads the file again so later tools see its current contents.
func (s *Server) handleGridLoad(args json.RawMessage) (interface{}, error) {
	var a gridPathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Path)
	return imaging.LoadGridInfo(s.cache, a.Path)
}

func (s *Server) handleGridStats(args json.RawMessage) (interface{}, error) {
	var a gridPathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.loadGrid(a.Path)
	if err != nil {
		return nil, err
	}
	return pixelgrid.ComputeStats(g)
}

// === Transform Handlers ===

// TransformResult contains a transformed grid rendered as PNG
type TransformResult struct {
	Operation string `json:"operation"`
	Source    string `json:"source"`
	*imaging.RenderResult
	Pixels pixelgrid.Grid `json:"pixels,omitempty"`
}

type transformArgs struct {
	Path          string `json:"path"`
	Scale         int    `json:"scale"`
	IncludePixels bool   `json:"include_pixels"`
}

func (s *Server) runTransform(a transformArgs, op string, fn func(pixelgrid.Grid) pixelgrid.Grid) (*TransformResult, error) {
	if a.Scale == 0 {
		a.Scale = 1
	}
	g, err := s.loadGrid(a.Path)
	if err != nil {
		return nil, err
	}

	out := fn(g)
	rendered, err := imaging.Render(out, a.Scale)
	if err != nil {
		return nil, err
	}

	result := &TransformResult{
		Operation:    op,
		Source:       sourceName(a.Path),
		RenderResult: rendered,
	}
	if a.IncludePixels {
		result.Pixels = out
	}
	return result, nil
}

func (s *Server) handleSimpleTransform(args json.RawMessage, op string, fn func(pixelgrid.Grid) pixelgrid.Grid) (interface{}, error) {
	var a transformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.runTransform(a, op, fn)
}

type gridBrightnessArgs struct {
	transformArgs
	Delta *float64 `json:"delta"`
}

func (s *Server) handleGridBrightness(args json.RawMessage) (interface{}, error) {
	var a gridBrightnessArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Delta == nil {
		return nil, fmt.Errorf("missing required argument: delta")
	}
	delta := *a.Delta
	return s.runTransform(a.transformArgs, pixelgrid.OpBright, func(g pixelgrid.Grid) pixelgrid.Grid {
		return pixelgrid.AdjustBrightness(g, delta)
	})
}

type gridThresholdArgs struct {
	transformArgs
	Threshold *float64 `json:"threshold"`
}

func (s *Server) handleThresholdTransform(args json.RawMessage, op string, fn func(pixelgrid.Grid, float64) pixelgrid.Grid) (interface{}, error) {
	var a gridThresholdArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	threshold := defaultThreshold
	if a.Threshold != nil {
		threshold = *a.Threshold
	}
	return s.runTransform(a.transformArgs, op, func(g pixelgrid.Grid) pixelgrid.Grid {
		return fn(g, threshold)
	})
}

// === Inspection Handlers ===

// FindGreenResult reports the first pure green pixel.
// Row and Col are -1 when Found is false.
type FindGreenResult struct {
	Found bool `json:"found"`
	Row   int  `json:"row"`
	Col   int  `json:"col"`
}

func (s *Server) handleGridFindGreen(args json.RawMessage) (interface{}, error) {
	var a gridPathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.loadGrid(a.Path)
	if err != nil {
		return nil, err
	}
	row, col, ok := pixelgrid.FindGreen(g)
	return &FindGreenResult{Found: ok, Row: row, Col: col}, nil
}

type gridSampleColorArgs struct {
	Path string `json:"path"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

func (s *Server) handleGridSampleColor(args json.RawMessage) (interface{}, error) {
	var a gridSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.loadGrid(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(g, a.Row, a.Col)
}

type gridSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		Row   int    `json:"row"`
		Col   int    `json:"col"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleGridSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a gridSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.loadGrid(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{Row: p.Row, Col: p.Col, Label: p.Label}
	}
	return imaging.SampleColorsMulti(g, points)
}

type gridDominantColorsArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func (s *Server) handleGridDominantColors(args json.RawMessage) (interface{}, error) {
	var a gridDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = defaultColorCount
	}
	g, err := s.loadGrid(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(g, a.Count)
}

type gridRenderArgs struct {
	Path            string `json:"path"`
	Scale           int    `json:"scale"`
	ShowGrid        bool   `json:"show_grid"`
	ShowCoordinates bool   `json:"show_coordinates"`
	GridColor       string `json:"grid_color"`
}

func (s *Server) handleGridRender(args json.RawMessage) (interface{}, error) {
	var a gridRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	overlay := a.ShowGrid || a.ShowCoordinates
	if a.Scale == 0 {
		a.Scale = 1
		if overlay {
			a.Scale = defaultOverlayScale
		}
	}
	if a.GridColor == "" {
		a.GridColor = defaultOverlayColor
	}
	g, err := s.loadGrid(a.Path)
	if err != nil {
		return nil, err
	}

	if !overlay {
		return imaging.Render(g, a.Scale)
	}
	return imaging.RenderOverlay(g, a.Scale, a.ShowCoordinates, a.GridColor)
}
