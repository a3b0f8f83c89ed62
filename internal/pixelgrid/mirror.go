package pixelgrid

// Mirror reflects the grid horizontally.
//
// Each row of the copy is reversed by swapping pixel i with pixel width-1-i for
// i in [0, width/2). For odd widths the center pixel stays where it is. Row
// count and width are unchanged, and Mirror is its own inverse.
func Mirror(g Grid) Grid {
	out := g.Clone()
	for _, row := range out {
		width := len(row)
		for i := 0; i < width/2; i++ {
			row[i], row[width-1-i] = row[width-1-i], row[i]
		}
	}
	return out
}
