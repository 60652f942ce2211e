// Package smudge holds the per-invocation color buffer the Smudge
// filter resamples from on each call, replacing the process-wide
// global buffer a naive port would otherwise carry forward.
package smudge

import (
	"sync"

	"github.com/Saking-tech/AI-Paint/internal/pixel"
)

// State is the Smudge filter's working memory: one buffer per tile
// origin, kept for as long as the owning Smudge value is reused.
// Canvas.ApplyFilter gets a new Smudge, and with it a new State, on
// every call and drops it when the call returns, so a State is never
// shared across calls or canvases.
type State struct {
	mu      sync.Mutex
	buffers map[[2]int][]pixel.Pixel
}

// New returns an empty State.
func New() *State {
	return &State{buffers: map[[2]int][]pixel.Pixel{}}
}

// Get returns the buffered pixels last resampled for the tile at
// origin, or (nil, false) if this is the first touch of that tile.
func (s *State) Get(origin [2]int) ([]pixel.Pixel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf, ok := s.buffers[origin]
	return buf, ok
}

// Set stores buf as the resampled buffer for the tile at origin,
// replacing whatever was stored for it before.
func (s *State) Set(origin [2]int, buf []pixel.Pixel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffers[origin] = buf
}
