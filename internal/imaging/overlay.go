package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pixelgrid-tools/internal/pixelgrid"
)

// defaultOverlayColor is used when the requested line color cannot be parsed.
var defaultOverlayColor = color.RGBA{255, 0, 0, 128}

// minOverlayScale is the smallest scale at which cell lines are drawn.
const minOverlayScale = 4

// RenderOverlay renders the grid enlarged with cell boundary lines.
//
// Lines are drawn between cells when scale is at least 4. When showCoordinates
// is set, each cell wide enough to hold it gets a "row,col" label. lineHex
// accepts "#RRGGBB" or "#RRGGBBAA"; invalid colors fall back to semi-transparent
// red.
func RenderOverlay(g pixelgrid.Grid, scale int, showCoordinates bool, lineHex string) (*RenderResult, error) {
	base, err := RenderImage(g, scale)
	if err != nil {
		return nil, err
	}
	if scale < 1 {
		scale = 1
	}

	lineColor, err := parseHexColor(lineHex)
	if err != nil {
		lineColor = defaultOverlayColor
	}

	bounds := base.Bounds()
	result := image.NewRGBA(bounds)
	draw.Draw(result, bounds, base, bounds.Min, draw.Src)

	if scale >= minOverlayScale {
		width, height := bounds.Dx(), bounds.Dy()

		// Vertical lines
		for x := scale; x < width; x += scale {
			for y := 0; y < height; y++ {
				blend(result, x, y, lineColor)
			}
		}

		// Horizontal lines
		for y := scale; y < height; y += scale {
			for x := 0; x < width; x++ {
				blend(result, x, y, lineColor)
			}
		}
	}

	if showCoordinates {
		labelColor := color.RGBA{255, 255, 255, 255}
		bgColor := color.RGBA{0, 0, 0, 180}

		for row := 0; row < g.Rows(); row++ {
			for col := 0; col < g.Cols(); col++ {
				label := fmt.Sprintf("%d,%d", row, col)
				if len(label)*4+2 > scale || scale < 9 {
					continue
				}
				drawLabel(result, col*scale+2, row*scale+2, label, labelColor, bgColor)
			}
		}
	}

	return encodeResult(g, result, scale)
}

// blend draws c over the pixel at (x, y) honoring its alpha.
func blend(img *image.RGBA, x, y int, c color.RGBA) {
	draw.Draw(img, image.Rect(x, y, x+1, y+1), image.NewUniform(premultiply(c)), image.Point{}, draw.Over)
}

// premultiply converts a straight-alpha color to the premultiplied form color.RGBA expects.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080".
// The returned color has straight (non-premultiplied) alpha.
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	hex = strings.TrimPrefix(hex, "#")

	var a uint8 = 255
	switch len(hex) {
	case 6:
	case 8:
		val, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.RGBA{}, err
		}
		a = uint8(val)
		hex = hex[:6]
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// labelGlyphs is a 3×5 bitmap font covering the characters of "row,col" labels.
// Each glyph row is a bit mask, most significant of the three bits on the left.
var labelGlyphs = map[rune][5]uint8{
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b001, 0b001},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	',': {0b000, 0b000, 0b000, 0b010, 0b010},
}

const (
	glyphAdvance = 4 // glyph width plus one pixel of spacing
	labelHeight  = 7
)

// drawLabel writes text at (x, y) over a filled background box.
// Pixels falling outside img are skipped; unknown characters leave a gap.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	bounds := img.Bounds()
	set := func(px, py int, c color.RGBA) {
		if image.Pt(px, py).In(bounds) {
			img.SetRGBA(px, py, c)
		}
	}

	width := len(text) * glyphAdvance
	for py := y - 1; py < y+labelHeight; py++ {
		for px := x - 1; px < x+width; px++ {
			set(px, py, bg)
		}
	}

	for i, ch := range []rune(text) {
		glyph, ok := labelGlyphs[ch]
		if !ok {
			continue
		}
		left := x + i*glyphAdvance
		for row, bits := range glyph {
			for col := 0; col < 3; col++ {
				if bits&(0b100>>col) != 0 {
					set(left+col, y+row, fg)
				}
			}
		}
	}
}
