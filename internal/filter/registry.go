package filter

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/Saking-tech/AI-Paint/internal/pixel"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Plugin{}
)

// Register adds plugin to the static registry under its own Name(). A
// name collision overwrites the previous registration and logs a
// warning to logger (or log.Default() if nil); this should only ever
// happen if two plugins are registered under the same name by mistake.
func Register(plugin Plugin, logger *log.Logger) {
	registryMu.Lock()
	defer registryMu.Unlock()

	name := plugin.Name()
	if _, exists := registry[name]; exists {
		if logger == nil {
			logger = log.Default()
		}
		logger.Printf("filter: plugin %q re-registered, replacing previous registration", name)
	}
	registry[name] = plugin
}

// Lookup returns the registered plugin for name, or (nil, false) if no
// plugin is registered under that name.
func Lookup(name string) (Plugin, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	return p, ok
}

func init() {
	Register(GaussianBlur{}, nil)
	Register(UnsharpMask{}, nil)
	Register(Inpaint{}, nil)
	Register(NewSmudge(), nil)
}

// LookupFresh returns the registered plugin for name ready for one
// invocation: stateful plugins (currently only Smudge) are handed back
// via Fresh() so each invocation gets its own state, never the shared
// registry singleton; stateless plugins are returned as registered.
func LookupFresh(name string) (Plugin, bool) {
	p, ok := Lookup(name)
	if !ok {
		return nil, false
	}
	if sp, ok := p.(StatefulPlugin); ok {
		return sp.Fresh(), true
	}
	return p, true
}

// Dispatch fans tiles out across a runtime.NumCPU()-sized worker pool,
// calling plugin.ProcessTile (or, for a MaskAwarePlugin, ProcessTileMasked
// with masks[i]) on each tile exactly once. Per-tile completion order is
// unspecified; progress and cancellation checks are serialized under a
// mutex so concurrent tiles never race on cb. Dispatch invokes
// cb.Progress after each completed tile and stops launching new tiles
// once cb.Cancelled() returns true — tiles already in flight when
// cancellation is observed still finish and mutate the grid; there is
// no rollback. masks may be nil, or shorter than tiles; a missing or
// nil mask entry is passed through as nil.
func Dispatch(plugin Plugin, tiles []*pixel.Tile, masks []*pixel.Tile, canvasW, canvasH int, params Params, cb ProgressCallback) error {
	if plugin == nil {
		return fmt.Errorf("filter: nil plugin")
	}
	cb = callbackOrNoop(cb)
	total := len(tiles)
	if total == 0 {
		return nil
	}
	if cb.Cancelled() {
		return nil
	}

	maskAware, _ := plugin.(MaskAwarePlugin)

	numWorkers := runtime.NumCPU()
	sem := make(chan struct{}, numWorkers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0
	cancelled := false

	for i, tile := range tiles {
		mu.Lock()
		if cancelled {
			mu.Unlock()
			break
		}
		mu.Unlock()

		var mask *pixel.Tile
		if i < len(masks) {
			mask = masks[i]
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(t, m *pixel.Tile) {
			defer wg.Done()
			defer func() { <-sem }()

			if maskAware != nil {
				maskAware.ProcessTileMasked(t, canvasW, canvasH, params, m)
			} else {
				plugin.ProcessTile(t, canvasW, canvasH, params)
			}

			mu.Lock()
			done++
			cb.Progress(float64(done) / float64(total))
			if cb.Cancelled() {
				cancelled = true
			}
			mu.Unlock()
		}(tile, mask)
	}
	wg.Wait()

	return nil
}
