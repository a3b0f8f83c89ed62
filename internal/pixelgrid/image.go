package pixelgrid

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// FromImage converts a decoded image into a grid.
//
// Row 0 corresponds to the top of the image bounds and col 0 to the left.
// The alpha channel is dropped: colors are un-premultiplied, and fully
// transparent pixels become Black. 8-bit channel values map exactly to
// multiples of 1/255, so 0 and 255 become exactly 0.0 and 1.0.
func FromImage(img image.Image) Grid {
	bounds := img.Bounds()
	g := make(Grid, bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		g[y] = make([]Pixel, bounds.Dx())
		for x := 0; x < bounds.Dx(); x++ {
			c, _ := colorful.MakeColor(img.At(x+bounds.Min.X, y+bounds.Min.Y))
			g[y][x] = PixelFromColor(c)
		}
	}
	return g
}

// ToImage converts the grid to an opaque 8-bit image.
//
// Channels are clamped to [0,1] and rounded to the nearest 8-bit value. The
// image width is taken from the first row.
func ToImage(g Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	for y, row := range g {
		for x, p := range row {
			r, gr, b := p.Color().Clamped().RGB255()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: gr, B: b, A: 255})
		}
	}
	return img
}
