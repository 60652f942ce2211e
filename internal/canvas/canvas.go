// Package canvas implements the orchestrator that owns a painting's
// layer stack, selection, and undo history, and dispatches strokes and
// filters onto it. Canvas carries no thread-safety guarantees of its
// own: callers are expected to drive it from a single thread, the way
// a UI event loop drives application state; only filter dispatch
// parallelizes internally, transparently to the caller.
package canvas

import (
	"log"
	"time"

	"github.com/Saking-tech/AI-Paint/internal/blend"
	"github.com/Saking-tech/AI-Paint/internal/filter"
	"github.com/Saking-tech/AI-Paint/internal/layer"
	"github.com/Saking-tech/AI-Paint/internal/pixel"
	"github.com/Saking-tech/AI-Paint/internal/stroke"
	"github.com/Saking-tech/AI-Paint/internal/tilegrid"
	"github.com/Saking-tech/AI-Paint/internal/undo"
	"github.com/Saking-tech/AI-Paint/pkg/colorutil"
	"github.com/Saking-tech/AI-Paint/pkg/geometry"
)

// defaultMaxUndoStates is the undo history ceiling a fresh Canvas
// starts with.
const defaultMaxUndoStates = 50

// Canvas is the ordered stack of Layers, the current selection, and the
// owned undo history for one painting. All layers always share the
// Canvas's current (W, H).
type Canvas struct {
	W, H int

	layers    []*layer.Layer
	selection []geometry.PointInt
	undoStack *undo.Stack

	logger *log.Logger
}

// New constructs a Canvas of size w x h with a single layer named
// "Background", per the invariant that every Canvas has at least one
// layer immediately after construction.
func New(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	c := &Canvas{
		W:         w,
		H:         h,
		undoStack: undo.New(defaultMaxUndoStates, unixNow),
	}
	c.layers = append(c.layers, layer.New("Background", w, h))
	return c, nil
}

func unixNow() int64 { return time.Now().Unix() }

// SetLogger sets the logger Canvas uses for developer-facing
// diagnostics (never for routine per-stroke or per-pixel operations). A
// nil logger silences diagnostics.
func (c *Canvas) SetLogger(l *log.Logger) { c.logger = l }

func (c *Canvas) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

// AddLayer appends a new blank layer named name to the top of the
// stack and returns it.
func (c *Canvas) AddLayer(name string) *layer.Layer {
	l := layer.New(name, c.W, c.H)
	c.layers = append(c.layers, l)
	return l
}

// RemoveLayer removes the layer at index i. Out-of-range i is a silent
// no-op. Any remaining layer whose ClipMaskIndex pointed at i loses its
// clip mask; any pointing above i has its index shifted down by one, so
// clip-mask references stay valid after removal.
func (c *Canvas) RemoveLayer(i int) {
	if i < 0 || i >= len(c.layers) {
		return
	}
	c.layers = append(c.layers[:i], c.layers[i+1:]...)
	for _, l := range c.layers {
		switch {
		case l.ClipMaskIndex == i:
			l.ClipMaskIndex = layer.NoClipMask
		case l.ClipMaskIndex > i:
			l.ClipMaskIndex--
		}
	}
}

// MoveLayer moves the layer at index from to index to, shifting the
// layers between them (an ordered move, not a swap). Out-of-range from
// or to is a silent no-op. Clip-mask references are re-resolved by
// identity so they keep pointing at the same layer after the move.
func (c *Canvas) MoveLayer(from, to int) {
	n := len(c.layers)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}

	maskTargets := make([]*layer.Layer, n)
	for i, l := range c.layers {
		if l.ClipMaskIndex != layer.NoClipMask {
			maskTargets[i] = c.layers[l.ClipMaskIndex]
		}
	}

	moved := c.layers[from]
	movedTarget := maskTargets[from]
	c.layers = append(c.layers[:from], c.layers[from+1:]...)
	maskTargets = append(maskTargets[:from], maskTargets[from+1:]...)

	c.layers = append(c.layers[:to], append([]*layer.Layer{moved}, c.layers[to:]...)...)
	maskTargets = append(maskTargets[:to], append([]*layer.Layer{movedTarget}, maskTargets[to:]...)...)

	for i, l := range c.layers {
		target := maskTargets[i]
		if target == nil {
			l.ClipMaskIndex = layer.NoClipMask
			continue
		}
		for j, candidate := range c.layers {
			if candidate == target {
				l.ClipMaskIndex = j
				break
			}
		}
	}
}

// GetLayer returns the layer at index i, or nil if i is out of range.
func (c *Canvas) GetLayer(i int) *layer.Layer {
	if i < 0 || i >= len(c.layers) {
		return nil
	}
	return c.layers[i]
}

// GetLayers returns a copy of the ordered layer list (index 0 is the
// bottom layer). The returned slice is safe for the caller to reorder
// independently of the Canvas; the Layer values themselves are shared.
func (c *Canvas) GetLayers() []*layer.Layer {
	out := make([]*layer.Layer, len(c.layers))
	copy(out, c.layers)
	return out
}

// SetLayerBlendMode validates mode before applying it, returning
// ErrInvalidBlendMode for a value outside the twelve defined enum
// members. Out-of-range layerIndex is a silent no-op, consistent with
// every other index-based accessor.
func (c *Canvas) SetLayerBlendMode(layerIndex int, mode blend.Mode) error {
	if !mode.Valid() {
		return ErrInvalidBlendMode
	}
	l := c.GetLayer(layerIndex)
	if l == nil {
		return nil
	}
	l.Mode = mode
	return nil
}

// Resize reallocates every layer with blank pixels of the new size,
// discarding all existing pixel content — this is the documented,
// preserved behavior, not an oversight.
func (c *Canvas) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return ErrInvalidDimensions
	}
	c.W, c.H = w, h
	for _, l := range c.layers {
		l.Pixels = tilegrid.New(w, h)
	}
	return nil
}

// RenderTo clears target and composites every layer onto it in
// strictly bottom-to-top order.
func (c *Canvas) RenderTo(target *tilegrid.Grid) {
	target.Clear()
	for _, l := range c.layers {
		l.RenderTo(target, 0, 0)
	}
}

// GetCompositedImage renders the canvas and returns it as an external
// 16-bit BGRA matrix.
func (c *Canvas) GetCompositedImage() []uint16 {
	target := tilegrid.New(c.W, c.H)
	c.RenderTo(target)
	return target.ToMatrix()
}

// BeginStroke pushes a snapshot of every layer's current pixel grid
// onto the undo stack, labeled description. This captures the
// pre-stroke state; EndStroke is a sealing no-op, because the state
// undo must restore is the one recorded here, before any kernel
// mutation.
func (c *Canvas) BeginStroke(description string) {
	snapshots := make([]*tilegrid.Grid, len(c.layers))
	for i, l := range c.layers {
		snapshots[i] = l.Pixels
	}
	c.undoStack.Push(description, snapshots)
}

// EndStroke seals the current stroke. It performs no work: the
// relevant snapshot was already taken by BeginStroke.
func (c *Canvas) EndStroke() {}

// CanUndo reports whether Undo has a prior state to restore.
func (c *Canvas) CanUndo() bool { return c.undoStack.CanUndo() }

// CanRedo reports whether Redo has a forward state to restore.
func (c *Canvas) CanRedo() bool { return c.undoStack.CanRedo() }

// Undo restores every layer's pixels to the snapshot before the most
// recent BeginStroke not yet undone. A no-op, returning false, when
// !CanUndo.
func (c *Canvas) Undo() bool {
	if !c.undoStack.CanUndo() {
		return false
	}
	c.restore(c.undoStack.Pop())
	return true
}

// Redo re-applies the most recently undone stroke. A no-op, returning
// false, when !CanRedo.
func (c *Canvas) Redo() bool {
	if !c.undoStack.CanRedo() {
		return false
	}
	c.restore(c.undoStack.Redo())
	return true
}

func (c *Canvas) restore(snapshots []*tilegrid.Grid) {
	for i, snap := range snapshots {
		if i >= len(c.layers) || snap == nil {
			continue
		}
		// Swap rather than copy: snapshots is the undo stack's own slice
		// (Pop and Redo return it uncopied), so the layer takes the stored
		// grid and the history entry keeps the grid the layer held until
		// now. The next Redo or Undo of this entry then restores that grid.
		snapshots[i], c.layers[i].Pixels = c.layers[i].Pixels, snap
	}
}

// DrawBrushStroke paints color onto the layer at layerIndex along
// points, independently at each point. Out-of-range layerIndex is a
// silent no-op.
func (c *Canvas) DrawBrushStroke(layerIndex int, points []geometry.PointInt, size, opacity float64, color pixel.Pixel) {
	l := c.GetLayer(layerIndex)
	if l == nil {
		return
	}
	stroke.Brush(l.Pixels, points, size, opacity, color)
}

// EraseBrushStroke reduces alpha on the layer at layerIndex along
// points, independently at each point. Out-of-range layerIndex is a
// silent no-op.
func (c *Canvas) EraseBrushStroke(layerIndex int, points []geometry.PointInt, size, opacity float64) {
	l := c.GetLayer(layerIndex)
	if l == nil {
		return
	}
	stroke.Eraser(l.Pixels, points, size, opacity)
}

// SetSelection replaces the current selection with points. An empty or
// nil points clears it. The selection never gates pixel writes; it is
// advisory metadata consulted only by ApplyFilter's mask rasterization.
func (c *Canvas) SetSelection(points []geometry.PointInt) {
	c.selection = points
}

// ClearSelection empties the current selection.
func (c *Canvas) ClearSelection() { c.selection = nil }

// HasSelection reports whether a non-empty selection is set.
func (c *Canvas) HasSelection() bool { return len(c.selection) > 0 }

// AddAdjustment appends adj to the adjustment stack of the layer at
// layerIndex. This is the secondary, typed-data-only path kept
// alongside ApplyFilter's registry dispatch; it does not invoke any
// plugin. Out-of-range layerIndex is a silent no-op.
func (c *Canvas) AddAdjustment(layerIndex int, adj layer.Adjustment) {
	l := c.GetLayer(layerIndex)
	if l == nil {
		return
	}
	l.AppendAdjustment(adj)
}

// ApplyFilter looks up filterName in the filter plugin registry and
// dispatches it across every tile of the layer at layerIndex, passing
// params and cb through unchanged. Out-of-range layerIndex is a silent
// no-op (matching every other index-based accessor); an unregistered
// filterName returns ErrUnknownFilter. When the Canvas has a selection,
// it is rasterized per tile and handed to mask-aware plugins (currently
// only Inpaint); plugins that ignore masks are unaffected.
func (c *Canvas) ApplyFilter(layerIndex int, filterName string, params filter.Params, cb filter.ProgressCallback) error {
	l := c.GetLayer(layerIndex)
	if l == nil {
		return nil
	}
	plugin, ok := filter.LookupFresh(filterName)
	if !ok {
		return ErrUnknownFilter
	}

	var masks []*pixel.Tile
	if c.HasSelection() {
		masks = c.rasterizeSelectionMasks(l.Pixels)
	}

	c.logf("canvas: applying filter %q to layer %d", filterName, layerIndex)
	return filter.Dispatch(plugin, l.Pixels.Tiles(), masks, c.W, c.H, params, cb)
}

// rasterizeSelectionMasks builds one mask tile per tile of grid, each
// tile-aligned and holding a non-zero alpha wherever the current
// selection polygon covers that pixel. A tile entirely outside the
// selection gets a nil mask entry.
func (c *Canvas) rasterizeSelectionMasks(grid *tilegrid.Grid) []*pixel.Tile {
	polygon := make([]geometry.Point2D, len(c.selection))
	for i, p := range c.selection {
		polygon[i] = p.ToFloat()
	}

	tiles := grid.Tiles()
	masks := make([]*pixel.Tile, len(tiles))
	for i, t := range tiles {
		mask := pixel.NewTile(t.OriginX, t.OriginY)
		any := false
		for ly := 0; ly < pixel.TileSize; ly++ {
			gy := t.OriginY + ly
			if gy >= c.H {
				continue
			}
			for lx := 0; lx < pixel.TileSize; lx++ {
				gx := t.OriginX + lx
				if gx >= c.W {
					continue
				}
				if geometry.PointInPolygon(geometry.Point2D{X: float64(gx), Y: float64(gy)}, polygon) {
					mask.Set(lx, ly, pixel.Pixel{A: colorutil.MaxChannel})
					any = true
				}
			}
		}
		if any {
			masks[i] = mask
		}
	}
	return masks
}
