// Package filter implements the uniform per-tile processing contract
// used by Canvas.ApplyFilter, its static plugin registry, and the four
// reference plugins (Gaussian blur, unsharp mask, inpaint, smudge).
package filter

import "github.com/Saking-tech/AI-Paint/internal/pixel"

// Plugin is a named, per-tile image-processing operation. A plugin's
// ProcessTile mutates tile in place; it sees only that tile's own
// pixels plus the full canvas dimensions for context, never neighbor
// tiles, so any kernel with spatial extent beyond a pixel will show
// visible seams at tile boundaries. This tile-isolation simplification
// is deliberate: a halo-aware rewrite would pad tiles with neighbor
// pixels before processing, which is future work, not part of this
// contract.
type Plugin interface {
	Name() string
	Version() string
	Description() string
	ProcessTile(tile *pixel.Tile, canvasW, canvasH int, params Params)
}

// MaskAwarePlugin is implemented by plugins that consult a per-tile
// mask in addition to the tile's own pixels — currently only Inpaint.
// mask is a tile-aligned selection rasterization (non-zero alpha marks
// a selected pixel) or nil if the caller has none; a mask-aware plugin
// decides its own fallback when mask is nil or entirely empty.
type MaskAwarePlugin interface {
	Plugin
	ProcessTileMasked(tile *pixel.Tile, canvasW, canvasH int, params Params, mask *pixel.Tile)
}

// StatefulPlugin is implemented by plugins that carry state across the
// tiles of one invocation (currently only Smudge). Fresh returns a new
// Plugin value with empty state; callers must call Fresh once per
// logical invocation (e.g. once per smudge stroke) and reuse the result
// for every tile of that invocation, never across invocations.
type StatefulPlugin interface {
	Plugin
	Fresh() Plugin
}

// ProgressCallback is the cooperative progress/cancel pair a Dispatch
// caller may supply. A nil ProgressCallback is treated as no-progress,
// never-cancelled.
type ProgressCallback interface {
	Progress(fraction float64)
	Cancelled() bool
}

// noopCallback is the default used when the caller passes nil.
type noopCallback struct{}

func (noopCallback) Progress(float64) {}
func (noopCallback) Cancelled() bool  { return false }

func callbackOrNoop(cb ProgressCallback) ProgressCallback {
	if cb == nil {
		return noopCallback{}
	}
	return cb
}
