package imaging

import (
	"fmt"
	"math"
	"sort"

	"github.com/ironsheep/pixelgrid-tools/internal/pixelgrid"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// HSL is often more intuitive for color manipulation than RGB:
//   - Hue represents the color type (red, green, blue, etc.)
//   - Saturation represents color intensity (gray to vivid)
//   - Lightness represents brightness (black to white)
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a pixel value in multiple representations.
//
// This struct provides the same color in four formats to suit different use cases:
//   - Pixel: The raw float channels exactly as stored in the grid
//   - Hex: Compact string format for CSS/web usage
//   - RGB: Standard 8-bit components
//   - HSL: Perceptual color space for intuitive color operations
type ColorResult struct {
	Pixel pixelgrid.Pixel `json:"pixel"` // Raw channels [r, g, b]
	Hex   string          `json:"hex"`   // Hex format "#RRGGBB"
	RGB   RGBColor        `json:"rgb"`   // 8-bit RGB components
	HSL   HSLColor        `json:"hsl"`   // HSL representation
	Pure  bool            `json:"pure"`  // Exactly green, blue, black or white
}

// SampleColor returns the pixel at (row, col) in multiple formats.
//
// Parameters:
//   - g: The source grid.
//   - row: Row index (0-based, 0 = topmost row).
//   - col: Column index (0-based, 0 = leftmost pixel).
//
// Returns:
//   - *ColorResult: The color at (row, col).
//   - error: Non-nil if the coordinates are outside the grid.
//
// # Color Conversion
//
// The 8-bit, hex and HSL forms are computed from the channels clamped to
// [0,1]; Pixel holds the unclamped values.
func SampleColor(g pixelgrid.Grid, row, col int) (*ColorResult, error) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside grid bounds", row, col)
	}
	return describePixel(g[row][col]), nil
}

func describePixel(p pixelgrid.Pixel) *ColorResult {
	c := p.Color().Clamped()
	r8, g8, b8 := c.RGB255()
	return &ColorResult{
		Pixel: p,
		Hex:   p.Hex(),
		RGB:   RGBColor{R: r8, G: g8, B: b8},
		HSL:   toHSL(c.Hsl()),
		Pure:  pixelgrid.IsPure(p),
	}
}

// LabeledPoint represents a grid coordinate with an optional descriptive label.
type LabeledPoint struct {
	Row   int    // Row index (0-based)
	Col   int    // Column index (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"` // Optional label (empty if not provided)
	Row   int         `json:"row"`             // Row that was sampled
	Col   int         `json:"col"`             // Column that was sampled
	Color ColorResult `json:"color"`           // The color at this location
}

// MultiColorResult contains color samples from multiple points.
//
// Results are returned in the same order as the input points.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"` // Color samples in input order
}

// SampleColorsMulti samples several grid coordinates in a single call.
//
// On error, no partial results are returned.
func SampleColorsMulti(g pixelgrid.Grid, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		color, err := SampleColor(g, p.Row, p.Col)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.Row, p.Col, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			Row:   p.Row,
			Col:   p.Col,
			Color: *color,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// ColorFrequency represents a color and its occurrence frequency in a grid.
type ColorFrequency struct {
	Hex        string   `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Count      int      `json:"count"`      // Number of pixels with this color
	Percentage float64  `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        RGBColor `json:"rgb"`        // RGB components (quantized)
}

// DominantColorsResult contains the most frequently occurring colors in a grid.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"` // Colors sorted by frequency (descending)
}

// DominantColors extracts the N most common colors from a grid.
//
// # Color Quantization
//
// To group similar colors, each 8-bit component is quantized by dividing by 16
// and rounding down:
//
//	quantized = (original / 16) * 16
//
// Colors with equal counts are ordered by hex value so results are stable.
func DominantColors(g pixelgrid.Grid, count int) (*DominantColorsResult, error) {
	colorCounts := make(map[RGBColor]int)
	totalPixels := 0

	for _, row := range g {
		for _, p := range row {
			r, gr, b := p.Color().Clamped().RGB255()
			key := RGBColor{R: r / 16 * 16, G: gr / 16 * 16, B: b / 16 * 16}
			colorCounts[key]++
			totalPixels++
		}
	}
	if totalPixels == 0 {
		return nil, fmt.Errorf("cannot compute dominant colors: %w", pixelgrid.ErrEmptyGrid)
	}

	colors := make([]ColorFrequency, 0, len(colorCounts))
	for rgb, cnt := range colorCounts {
		colors = append(colors, ColorFrequency{
			Hex:        fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B),
			Count:      cnt,
			Percentage: math.Round(float64(cnt)/float64(totalPixels)*10000) / 100,
			RGB:        rgb,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Count != colors[j].Count {
			return colors[i].Count > colors[j].Count
		}
		return colors[i].Hex < colors[j].Hex
	})

	if count > 0 && len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

// toHSL converts go-colorful's HSL (hue in degrees, s and l in [0,1]) to
// integer degrees and percentages.
func toHSL(h, s, l float64) HSLColor {
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}
