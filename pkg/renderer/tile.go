package renderer

import (
	"image"
	"math/rand"
)

// Tile is a rectangular screen region plus an independently seeded RNG,
// generalized from the teacher's progressive.Tile (which additionally
// tracks PassesCompleted for progressive refinement, not needed here
// since this driver runs tiles to completion in one pass).
type Tile struct {
	ID     int
	Bounds image.Rectangle
	RNG    *rand.Rand
}

// NewTileGrid partitions a width x height image into tile_size x tile_size
// tiles, clipped at the image edges, and seeds each tile's RNG from a
// single host-thread random source before any tile is scheduled so the
// grid is reproducible for a given seed regardless of scheduling order.
func NewTileGrid(width, height, tileSize int, seed *rand.Rand) []*Tile {
	if tileSize <= 0 {
		tileSize = width
	}
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	var tiles []*Tile
	id := 0
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * tileSize
			y0 := ty * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tileSeed := seed.Int63()
			tiles = append(tiles, &Tile{
				ID:     id,
				Bounds: image.Rect(x0, y0, x1, y1),
				RNG:    rand.New(rand.NewSource(tileSeed)),
			})
			id++
		}
	}
	return tiles
}
