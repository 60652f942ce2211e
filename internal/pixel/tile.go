package pixel

// Tile is a fixed TileSize x TileSize block of pixels anchored at an
// origin in the parent TileGrid's pixel space. Out-of-range local reads
// return the default pixel; out-of-range writes are silently discarded.
// Any write through a mutable accessor sets Dirty.
type Tile struct {
	OriginX, OriginY int
	Dirty            bool
	pixels           [TileSize * TileSize]Pixel
}

// NewTile creates a tile anchored at (originX, originY), filled with the
// default pixel.
func NewTile(originX, originY int) *Tile {
	t := &Tile{OriginX: originX, OriginY: originY}
	t.Clear()
	t.Dirty = false
	return t
}

func inRange(x, y int) bool {
	return x >= 0 && x < TileSize && y >= 0 && y < TileSize
}

// At returns the pixel at local coordinates (x, y). Out-of-range
// coordinates yield the default pixel rather than panicking.
func (t *Tile) At(x, y int) Pixel {
	if !inRange(x, y) {
		return Default
	}
	return t.pixels[y*TileSize+x]
}

// Set writes the pixel at local coordinates (x, y) and marks the tile
// dirty. Out-of-range coordinates are silently discarded.
func (t *Tile) Set(x, y int, p Pixel) {
	if !inRange(x, y) {
		return
	}
	t.pixels[y*TileSize+x] = p
	t.Dirty = true
}

// Clear resets every pixel to the default value and marks the tile dirty.
func (t *Tile) Clear() {
	t.Fill(Default)
}

// Fill sets every pixel in the tile to p and marks the tile dirty.
func (t *Tile) Fill(p Pixel) {
	for i := range t.pixels {
		t.pixels[i] = p
	}
	t.Dirty = true
}

// Clone returns a deep copy of the tile, including its dirty flag.
func (t *Tile) Clone() *Tile {
	clone := &Tile{OriginX: t.OriginX, OriginY: t.OriginY, Dirty: t.Dirty}
	clone.pixels = t.pixels
	return clone
}

// Equal reports whether two tiles hold identical pixel data. Origin and
// dirty flag are not compared; this mirrors the value-equality the
// snapshot tests need ("pixels only").
func (t *Tile) Equal(other *Tile) bool {
	if other == nil {
		return false
	}
	return t.pixels == other.pixels
}

// Buffer exposes the tile's contiguous pixel storage for in-place
// processing by filter plugins. Plugins must not resize the returned
// slice.
func (t *Tile) Buffer() []Pixel {
	return t.pixels[:]
}

// AddInPlace adds other's pixels into t channel-wise, saturating, and
// marks t dirty. Both tiles must be the same size (always true: both are
// TileSize x TileSize).
func (t *Tile) AddInPlace(other *Tile) {
	for i := range t.pixels {
		t.pixels[i] = t.pixels[i].Add(other.pixels[i])
	}
	t.Dirty = true
}

// SubInPlace subtracts other's pixels from t channel-wise, saturating,
// and marks t dirty.
func (t *Tile) SubInPlace(other *Tile) {
	for i := range t.pixels {
		t.pixels[i] = t.pixels[i].Sub(other.pixels[i])
	}
	t.Dirty = true
}

// ScaleInPlace multiplies every channel of every pixel by factor,
// saturating, and marks t dirty.
func (t *Tile) ScaleInPlace(factor float64) {
	for i := range t.pixels {
		t.pixels[i] = t.pixels[i].Mul(factor)
	}
	t.Dirty = true
}

// MarkDirty sets the dirty flag without mutating pixels; used by render
// paths that write through Buffer() directly.
func (t *Tile) MarkDirty() {
	t.Dirty = true
}

// ClearDirty resets the dirty flag without touching pixel data.
func (t *Tile) ClearDirty() {
	t.Dirty = false
}
