package renderer

import (
	"image"
	"math"
	"math/rand"
)

// Tile represents a rectangular region of the image rendered by one worker
type Tile struct {
	ID     int             // Unique tile identifier, row-major in the grid
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Tile-owned generator, never shared between goroutines
}

// NewTile creates a new tile with its own generator
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(seed)),
	}
}

// GridSize returns how many tiles span each image axis for a requested cell count
func GridSize(cells int) int {
	return max(1, int(math.Round(math.Sqrt(float64(cells)))))
}

// NewTileGrid splits a width×height image into a GridSize(cells) square grid.
// Every tile but the last in a row (column) has the same width (height); the
// last one also takes the remainder, so the tiles cover every pixel exactly
// once. Tile seeds are drawn from meta in tile order before any work starts.
func NewTileGrid(width, height, cells int, meta *rand.Rand) []*Tile {
	side := GridSize(cells)
	columns := min(side, max(width, 1))
	rows := min(side, max(height, 1))

	tileWidth := width / columns
	tileHeight := height / rows

	tiles := make([]*Tile, 0, columns*rows)
	for row := 0; row < rows; row++ {
		y0 := row * tileHeight
		y1 := y0 + tileHeight
		if row == rows-1 {
			y1 = height
		}

		for col := 0; col < columns; col++ {
			x0 := col * tileWidth
			x1 := x0 + tileWidth
			if col == columns-1 {
				x1 = width
			}

			tiles = append(tiles, NewTile(len(tiles), image.Rect(x0, y0, x1, y1), meta.Int63()))
		}
	}

	return tiles
}
