// Package layer implements the named, tile-backed image with
// compositing metadata (opacity, blend mode, visibility, clip mask,
// adjustment stack) that a Canvas stacks to form a painting.
package layer

import (
	"github.com/Saking-tech/AI-Paint/internal/blend"
	"github.com/Saking-tech/AI-Paint/internal/pixel"
	"github.com/Saking-tech/AI-Paint/internal/tilegrid"
)

// NoClipMask is the sentinel ClipMaskIndex value meaning "no clip mask".
const NoClipMask = -1

// Adjustment is one entry of a Layer's adjustment stack: a named
// operation plus its float-valued parameters. The engine exposes this
// as typed data only — no adjustment semantics are invented here, so
// applyAdjustments (below) is an identity pass until a concrete
// adjustment registry defines one.
type Adjustment struct {
	Type   string
	Params map[string]float64
}

// Layer is a named tile grid plus the metadata the Compositor needs to
// blend it into a Canvas's output.
type Layer struct {
	Name    string
	Pixels  *tilegrid.Grid
	Opacity float64
	Mode    blend.Mode
	Visible bool

	// ClipMaskIndex is a non-owning reference to another layer in the
	// same Canvas's layer list, resolved by index rather than pointer so
	// that Canvas can invalidate it cleanly on layer removal/reorder.
	// NoClipMask means no clip mask is set.
	ClipMaskIndex int

	adjustments []Adjustment
}

// New creates a layer named name with a blank W x H pixel grid, fully
// opaque, visible, blend mode Normal, and no clip mask.
func New(name string, w, h int) *Layer {
	return &Layer{
		Name:          name,
		Pixels:        tilegrid.New(w, h),
		Opacity:       1.0,
		Mode:          blend.Normal,
		Visible:       true,
		ClipMaskIndex: NoClipMask,
	}
}

// SetOpacity clamps v to [0, 1] before storing it.
func (l *Layer) SetOpacity(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	l.Opacity = v
}

// Adjustments returns the layer's adjustment stack in application order.
// The returned slice is owned by Layer; callers must not mutate it.
func (l *Layer) Adjustments() []Adjustment {
	return l.adjustments
}

// AppendAdjustment appends adj to the end of the adjustment stack.
func (l *Layer) AppendAdjustment(adj Adjustment) {
	l.adjustments = append(l.adjustments, adj)
}

// RemoveAdjustment removes the adjustment at index i. Out-of-range i is
// a silent no-op.
func (l *Layer) RemoveAdjustment(i int) {
	if i < 0 || i >= len(l.adjustments) {
		return
	}
	l.adjustments = append(l.adjustments[:i], l.adjustments[i+1:]...)
}

// ClearAdjustments empties the adjustment stack.
func (l *Layer) ClearAdjustments() {
	l.adjustments = nil
}

// applyAdjustments is the placeholder hook for adjustment semantics:
// the stack is exposed as typed data, but no adjustment behavior is
// implemented, so this pass is the identity function. It exists so a
// future adjustment registry has a single call site to extend.
func (l *Layer) applyAdjustments(_ *tilegrid.Grid) {
}

// RenderTo composites this layer onto target at pixel offset (dx, dy).
// A hidden layer, or one with opacity <= 0, renders as a no-op.
func (l *Layer) RenderTo(target *tilegrid.Grid, dx, dy int) {
	if !l.Visible || l.Opacity <= 0 {
		return
	}

	l.applyAdjustments(l.Pixels)

	for ty := 0; ty < l.Pixels.TileCountY(); ty++ {
		for tx := 0; tx < l.Pixels.TileCountX(); tx++ {
			tile := l.Pixels.TileAt(tx, ty)
			for ly := 0; ly < pixel.TileSize; ly++ {
				sy := tile.OriginY + ly
				if sy >= l.Pixels.H {
					continue
				}
				py := sy + dy
				if py < 0 || py >= target.H {
					continue
				}
				for lx := 0; lx < pixel.TileSize; lx++ {
					sx := tile.OriginX + lx
					if sx >= l.Pixels.W {
						continue
					}
					px := sx + dx
					if px < 0 || px >= target.W {
						continue
					}
					src := tile.At(lx, ly)
					dst := target.At(px, py)
					blend.Over(&dst, src, l.Mode, l.Opacity)
					target.Set(px, py, dst)
				}
			}
		}
	}
}
