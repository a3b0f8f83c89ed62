package pixelgrid

import "math"

// Band identifies one of the three horizontal bands used by FlagFilter.
type Band int

const (
	Band1 Band = iota + 1
	Band2
	Band3
)

// flagBoost is added to the boosted channels of non-pure pixels.
const flagBoost = 0.5

// bandColors is the replacement for pure pixels, indexed by band.
// All pure colors share this table.
var bandColors = map[Band]Pixel{
	Band1: Yellow,
	Band2: Blue,
	Band3: Red,
}

// BandBoundaries splits height rows into three contiguous bands.
//
// Rows [0, band1) form Band1, [band1, band2) Band2 and [band2, height) Band3.
//
// For height > 3 the first band takes half of the rows and the rest are split
// evenly:
//
//	band1 = height / 2
//	band2 = band1 + (height - band1) / 2
//
// For height <= 3 integer division would collapse bands, so:
//
//	band1 = max(1, height / 3)
//	band2 = max(2, 2 * height / 3)
func BandBoundaries(height int) (band1, band2 int) {
	if height > 3 {
		band1 = height / 2
		band2 = band1 + (height-band1)/2
		return band1, band2
	}
	return max(1, height/3), max(2, 2*height/3)
}

// BandOf returns the band a row falls in for the given boundaries.
func BandOf(row, band1, band2 int) Band {
	switch {
	case row < band1:
		return Band1
	case row < band2:
		return Band2
	default:
		return Band3
	}
}

// IsPure reports whether p is exactly green, blue, black or white.
func IsPure(p Pixel) bool {
	switch p {
	case Green, Blue, Black, White:
		return true
	}
	return false
}

// FlagFilter recolors the grid in three horizontal bands.
//
// Pure pixels (see IsPure) are replaced by the band color: yellow in Band1,
// blue in Band2 and red in Band3. The four pure colors share the same table,
// so only the row decides the result.
//
// Other pixels are boosted instead, each boosted channel by 0.5 and clamped
// to 1:
//   - Band1: red and green
//   - Band2: blue
//   - Band3: red
//
// The returned grid has the shape of g and holds a new value for every pixel.
func FlagFilter(g Grid) Grid {
	band1, band2 := BandBoundaries(g.Rows())
	return g.Map(func(row, _ int, p Pixel) Pixel {
		band := BandOf(row, band1, band2)
		if IsPure(p) {
			return bandColors[band]
		}
		return boostBand(p, band)
	})
}

func boostBand(p Pixel, band Band) Pixel {
	switch band {
	case Band1:
		return Pixel{boost(p[0]), boost(p[1]), p[2]}
	case Band2:
		return Pixel{p[0], p[1], boost(p[2])}
	default:
		return Pixel{boost(p[0]), p[1], p[2]}
	}
}

func boost(c float64) float64 {
	return math.Min(c+flagBoost, 1)
}
