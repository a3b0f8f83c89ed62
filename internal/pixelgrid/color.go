package pixelgrid

import "math"

// Sepia coefficients, one row per output channel (R', G', B').
var sepiaMatrix = [3][3]float64{
	{0.393, 0.769, 0.189},
	{0.349, 0.686, 0.168},
	{0.272, 0.534, 0.131},
}

// Invert returns the negative of the grid: every channel c becomes 1 - c.
//
// No clamping is applied. For inputs in [0,1] the output is also in [0,1], and
// Invert is its own inverse up to floating-point rounding.
func Invert(g Grid) Grid {
	return g.MapPixels(func(p Pixel) Pixel {
		return Pixel{1 - p[0], 1 - p[1], 1 - p[2]}
	})
}

// Grayscale replaces every pixel with [avg, avg, avg] where avg = (r+g+b)/3.
func Grayscale(g Grid) Grid {
	return g.MapPixels(func(p Pixel) Pixel {
		avg := p.Average()
		return Pixel{avg, avg, avg}
	})
}

// AdjustBrightness adds delta to every channel and clamps the result to [0,1].
//
// Parameters:
//   - g: The source grid.
//   - delta: Amount added to each channel. May be negative; its magnitude is
//     not restricted.
//
// Every channel of the returned grid is in [0,1] regardless of the input.
func AdjustBrightness(g Grid, delta float64) Grid {
	return g.MapPixels(func(p Pixel) Pixel {
		shifted := Pixel{p[0] + delta, p[1] + delta, p[2] + delta}
		return PixelFromColor(shifted.Color().Clamped())
	})
}

// Binarize maps every pixel to White or Black.
//
// A pixel whose channel average is greater than or equal to threshold becomes
// White; every other pixel becomes Black. The comparison is inclusive, unlike
// ThresholdHighlight. The output only ever contains Black and White, and
// Binarize is idempotent for any threshold.
func Binarize(g Grid, threshold float64) Grid {
	return g.MapPixels(func(p Pixel) Pixel {
		if p.Average() >= threshold {
			return White
		}
		return Black
	})
}

// ThresholdHighlight turns pixels brighter than threshold red.
//
// A pixel whose channel average is strictly greater than threshold becomes
// Red; every other pixel is copied through unchanged. A pixel whose average
// equals threshold is therefore left alone, while Binarize would make it White.
func ThresholdHighlight(g Grid, threshold float64) Grid {
	return g.MapPixels(func(p Pixel) Pixel {
		if p.Average() > threshold {
			return Red
		}
		return p
	})
}

// Sepia applies the sepia tone matrix to every pixel:
//
//	R' = 0.393R + 0.769G + 0.189B
//	G' = 0.349R + 0.686G + 0.168B
//	B' = 0.272R + 0.534G + 0.131B
//
// Each resulting channel is clamped to a maximum of 1. There is no lower clamp;
// with inputs in [0,1] the coefficients cannot produce negative values.
func Sepia(g Grid) Grid {
	return g.MapPixels(func(p Pixel) Pixel {
		var out Pixel
		for i, coef := range sepiaMatrix {
			v := coef[0]*p[0] + coef[1]*p[1] + coef[2]*p[2]
			out[i] = math.Min(v, 1)
		}
		return out
	})
}
