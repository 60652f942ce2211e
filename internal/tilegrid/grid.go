// Package tilegrid implements the dense, tile-backed logical image that
// every Layer's pixel data lives in.
package tilegrid

import "github.com/Saking-tech/AI-Paint/internal/pixel"

// Grid is a logical image of width W and height H, tiled into
// ceil(W/TileSize) x ceil(H/TileSize) tiles stored contiguously in
// row-major tile order.
type Grid struct {
	W, H           int
	tilesX, tilesY int
	tiles          []*pixel.Tile
}

// New allocates a Grid of the given pixel dimensions, fully populated
// with blank (default-pixel) tiles.
func New(w, h int) *Grid {
	g := &Grid{W: w, H: h}
	g.tilesX = ceilDiv(w, pixel.TileSize)
	g.tilesY = ceilDiv(h, pixel.TileSize)
	g.tiles = make([]*pixel.Tile, g.tilesX*g.tilesY)
	for ty := 0; ty < g.tilesY; ty++ {
		for tx := 0; tx < g.tilesX; tx++ {
			g.tiles[ty*g.tilesX+tx] = pixel.NewTile(tx*pixel.TileSize, ty*pixel.TileSize)
		}
	}
	return g
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// TileCountX returns the number of tile columns.
func (g *Grid) TileCountX() int { return g.tilesX }

// TileCountY returns the number of tile rows.
func (g *Grid) TileCountY() int { return g.tilesY }

// TileAt returns the tile at tile-grid coordinates (tx, ty), or nil if
// out of range.
func (g *Grid) TileAt(tx, ty int) *pixel.Tile {
	if tx < 0 || tx >= g.tilesX || ty < 0 || ty >= g.tilesY {
		return nil
	}
	return g.tiles[ty*g.tilesX+tx]
}

// Tiles returns the grid's tiles in row-major order. The caller must not
// grow or shrink the returned slice, but may mutate the tiles.
func (g *Grid) Tiles() []*pixel.Tile {
	return g.tiles
}

// locate maps a pixel coordinate to its owning tile and local offset.
// ok is false if (x, y) is outside the grid.
func (g *Grid) locate(x, y int) (tile *pixel.Tile, lx, ly int, ok bool) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return nil, 0, 0, false
	}
	tx, ty := x/pixel.TileSize, y/pixel.TileSize
	return g.TileAt(tx, ty), x % pixel.TileSize, y % pixel.TileSize, true
}

// At returns the pixel at image-space coordinates (x, y). Out-of-range
// coordinates yield the default pixel.
func (g *Grid) At(x, y int) pixel.Pixel {
	tile, lx, ly, ok := g.locate(x, y)
	if !ok {
		return pixel.Default
	}
	return tile.At(lx, ly)
}

// Set writes the pixel at image-space coordinates (x, y), marking the
// owning tile dirty. Out-of-range coordinates are silently discarded.
func (g *Grid) Set(x, y int, p pixel.Pixel) {
	tile, lx, ly, ok := g.locate(x, y)
	if !ok {
		return
	}
	tile.Set(lx, ly, p)
}

// Clear resets every tile to the default pixel.
func (g *Grid) Clear() {
	for _, t := range g.tiles {
		t.Clear()
	}
}

// Fill sets every pixel in every tile to p.
func (g *Grid) Fill(p pixel.Pixel) {
	for _, t := range g.tiles {
		t.Fill(p)
	}
}

// DirtyTiles returns the tiles whose Dirty flag is set, in row-major
// tile order.
func (g *Grid) DirtyTiles() []*pixel.Tile {
	var dirty []*pixel.Tile
	for _, t := range g.tiles {
		if t.Dirty {
			dirty = append(dirty, t)
		}
	}
	return dirty
}

// ClearDirty resets the dirty flag on every tile.
func (g *Grid) ClearDirty() {
	for _, t := range g.tiles {
		t.ClearDirty()
	}
}

// Clone returns a deep copy of the grid: every tile's pixel data and
// dirty flag are duplicated.
func (g *Grid) Clone() *Grid {
	clone := &Grid{W: g.W, H: g.H, tilesX: g.tilesX, tilesY: g.tilesY}
	clone.tiles = make([]*pixel.Tile, len(g.tiles))
	for i, t := range g.tiles {
		clone.tiles[i] = t.Clone()
	}
	return clone
}

// Equal reports whether two grids have the same size and hold identical
// pixels inside the W x H image. Tile storage beyond W or H is not part
// of the image and is not compared. Used by snapshot-comparison tests.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) != other.At(x, y) {
				return false
			}
		}
	}
	return true
}
