package renderer

import "image"

// Tile is a rectangular block of pixels rendered as one unit of work
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid covers a width x height image with tiles of at most
// tileSize x tileSize pixels, in row-major order. A tile size below 1 means
// one pixel per tile.
func NewTileGrid(width, height, tileSize int) []Tile {
	if tileSize < 1 {
		tileSize = 1
	}

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize
	tiles := make([]Tile, 0, tilesX*tilesY)

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			bounds := image.Rect(
				tx*tileSize,
				ty*tileSize,
				min((tx+1)*tileSize, width),
				min((ty+1)*tileSize, height),
			)
			tiles = append(tiles, Tile{ID: len(tiles), Bounds: bounds})
		}
	}

	return tiles
}
