package renderer

// Tile is a rectangular, non-overlapping region of the framebuffer
// assigned to a single worker: [X0, X1) x [Y0, Y1).
type Tile struct {
	X0, Y0, X1, Y1 int
}

// Width returns the tile's pixel width.
func (t Tile) Width() int { return t.X1 - t.X0 }

// Height returns the tile's pixel height.
func (t Tile) Height() int { return t.Y1 - t.Y0 }

// TileSplit partitions a width x height image into at most hParts x
// wParts tiles of ceil(width/wParts) x ceil(height/hParts) pixels,
// clamping the last row/column to the image bounds when the division
// isn't exact; rounding up can leave fewer rows or columns than asked.
func TileSplit(width, height, wParts, hParts int) []Tile {
	if wParts < 1 {
		wParts = 1
	}
	if hParts < 1 {
		hParts = 1
	}

	tileW := (width + wParts - 1) / wParts
	tileH := (height + hParts - 1) / hParts

	var tiles []Tile
	for y0 := 0; y0 < height; y0 += tileH {
		y1 := min(y0+tileH, height)
		for x0 := 0; x0 < width; x0 += tileW {
			x1 := min(x0+tileW, width)
			tiles = append(tiles, Tile{X0: x0, Y0: y0, X1: x1, Y1: y1})
		}
	}
	return tiles
}
