package pixelgrid

// FindPixel returns the position of the first pixel exactly equal to target.
//
// The grid is scanned in row-major order (row 0 first, left to right within a
// row) and the scan stops at the first match. ok is false if no pixel matches.
// Matching is exact on all three channels; no tolerance is applied.
func FindPixel(g Grid, target Pixel) (row, col int, ok bool) {
	for r, pixels := range g {
		for c, p := range pixels {
			if p == target {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// FindGreen returns the position of the first pure green pixel, [0, 1, 0].
//
// Pixels produced by earlier transforms rarely equal pure green exactly, so
// this is mostly useful on hand-built grids or palette images.
func FindGreen(g Grid) (row, col int, ok bool) {
	return FindPixel(g, Green)
}
