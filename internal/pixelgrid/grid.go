package pixelgrid

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrMalformedGrid is returned by Validate for grids that are not rectangular.
	ErrMalformedGrid = errors.New("malformed grid")

	// ErrEmptyGrid is returned by operations that need at least one pixel.
	ErrEmptyGrid = errors.New("empty grid")
)

// Pixel is a single RGB value with channels in the nominal range [0.0, 1.0].
//
// Index 0 is red, 1 is green and 2 is blue.
type Pixel [3]float64

// Reference colors used by the transforms and the built-in fixture.
var (
	Black  = Pixel{0.0, 0.0, 0.0}
	White  = Pixel{1.0, 1.0, 1.0}
	Red    = Pixel{1.0, 0.0, 0.0}
	Green  = Pixel{0.0, 1.0, 0.0}
	Blue   = Pixel{0.0, 0.0, 1.0}
	Yellow = Pixel{1.0, 1.0, 0.0}
)

// Average returns the mean of the three channels, (r+g+b)/3.
func (p Pixel) Average() float64 {
	return (p[0] + p[1] + p[2]) / 3
}

// Color returns the pixel as a go-colorful color.
func (p Pixel) Color() colorful.Color {
	return colorful.Color{R: p[0], G: p[1], B: p[2]}
}

// Hex returns the pixel as "#RRGGBB". Channels outside [0,1] are clamped first.
func (p Pixel) Hex() string {
	r, g, b := p.Color().Clamped().RGB255()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// PixelFromColor converts a go-colorful color to a Pixel without clamping.
func PixelFromColor(c colorful.Color) Pixel {
	return Pixel{c.R, c.G, c.B}
}

// Grid is a rectangular collection of pixel rows.
//
// Grids are indexed as g[row][col]. All rows are expected to have the same
// length; see Validate.
type Grid [][]Pixel

// New creates a rows×cols grid filled with fill.
func New(rows, cols int, fill Pixel) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]Pixel, cols)
		for c := range g[r] {
			g[r][c] = fill
		}
	}
	return g
}

// SampleGrid returns a freshly built copy of the built-in 3×3 test grid:
//
//	yellow yellow green
//	blue   blue   black
//	red    red    white
//
// Each call returns an independent grid, so callers may modify it freely.
func SampleGrid() Grid {
	return Grid{
		{Yellow, Yellow, Green},
		{Blue, Blue, Black},
		{Red, Red, White},
	}
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the column count, read from the first row.
// An empty grid has zero columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = make([]Pixel, len(row))
		copy(out[r], row)
	}
	return out
}

// Validate checks that the grid is rectangular.
//
// A grid with zero rows is valid. Otherwise every row must have the same,
// non-zero length as the first row. The returned error wraps ErrMalformedGrid.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return nil
	}
	cols := len(g[0])
	if cols == 0 {
		return fmt.Errorf("%w: row 0 is empty", ErrMalformedGrid)
	}
	for r, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d pixels, want %d", ErrMalformedGrid, r, len(row), cols)
		}
	}
	return nil
}

// Equal reports whether two grids have the same shape and exactly equal pixels.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Map returns a new grid with fn applied to every pixel.
//
// fn receives the pixel value and its position. Rows are visited top to
// bottom and pixels left to right. The input grid is not modified.
func (g Grid) Map(fn func(row, col int, p Pixel) Pixel) Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = make([]Pixel, len(row))
		for c, p := range row {
			out[r][c] = fn(r, c, p)
		}
	}
	return out
}

// MapPixels is Map for functions that do not depend on position.
func (g Grid) MapPixels(fn func(p Pixel) Pixel) Grid {
	return g.Map(func(_, _ int, p Pixel) Pixel {
		return fn(p)
	})
}
